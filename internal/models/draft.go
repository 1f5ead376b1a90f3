package models

import "time"

type Draft struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Language      string    `json:"language"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	PromptVersion string    `json:"promptVersion,omitempty"`
}

const (
	DraftStatusDraft     = "draft"
	DraftStatusScheduled = "scheduled"
	DraftStatusPublished = "published"
)

const (
	LanguageEnglish    = "en"
	LanguagePortuguese = "pt-BR"
)

func ValidDraftStatus(status string) bool {
	switch status {
	case DraftStatusDraft, DraftStatusScheduled, DraftStatusPublished:
		return true
	}
	return false
}

func ValidLanguage(language string) bool {
	return language == LanguageEnglish || language == LanguagePortuguese
}
