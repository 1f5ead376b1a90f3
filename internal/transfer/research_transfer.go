package transfer

type SourceCreation struct {
	Type       string `json:"type"`
	Name       string `json:"name"`
	ProfileURL string `json:"profileUrl"`
	Keyword    string `json:"keyword"`
}

type CaptureCreation struct {
	SourceID   string `json:"sourceId"`
	AuthorName string `json:"authorName"`
	AuthorURL  string `json:"authorUrl"`
	PostURL    string `json:"postUrl"`
	Text       string `json:"text"`
	CapturedAt string `json:"capturedAt"`
}
