package transfer

type DraftCreation struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// DraftUpdate is a partial update; nil fields are left unchanged.
type DraftUpdate struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	Language      *string `json:"language"`
	Status        *string `json:"status"`
	PromptVersion *string `json:"promptVersion"`
}
