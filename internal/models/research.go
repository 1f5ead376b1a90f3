package models

import "time"

type ResearchSource struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Type       string    `json:"type"`
	Name       string    `json:"name"`
	ProfileURL string    `json:"profileUrl,omitempty"`
	Keyword    string    `json:"keyword,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

const (
	SourceTypePerson  = "person"
	SourceTypeKeyword = "keyword"
)

type CapturedPost struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	SourceID   string    `json:"sourceId,omitempty"`
	AuthorName string    `json:"authorName"`
	AuthorURL  string    `json:"authorUrl,omitempty"`
	PostURL    string    `json:"postUrl,omitempty"`
	Text       string    `json:"text"`
	CapturedAt time.Time `json:"capturedAt"`
}
