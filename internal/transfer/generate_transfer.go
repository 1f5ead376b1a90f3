package transfer

type GenerateRequest struct {
	Topic        string `json:"topic"`
	Language     string `json:"language"`
	Audience     string `json:"audience"`
	Tone         string `json:"tone"`
	VariantCount int    `json:"variantCount"`
}

type ScoreRequest struct {
	Text string `json:"text"`
}
