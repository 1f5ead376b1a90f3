package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Vajbratya/automnator/internal/models"
	"github.com/Vajbratya/automnator/internal/store"
	"github.com/Vajbratya/automnator/internal/transfer"
)

type ResearchService interface {
	ListSources(ctx context.Context, userID string) ([]*models.ResearchSource, error)
	CreateSource(ctx context.Context, userID string, sc *transfer.SourceCreation) (*models.ResearchSource, error)
	DeleteSource(ctx context.Context, userID, sourceID string) error

	ListCaptures(ctx context.Context, userID string) ([]*models.CapturedPost, error)
	CreateCapture(ctx context.Context, userID string, cc *transfer.CaptureCreation) (*models.CapturedPost, error)
	DeleteCapture(ctx context.Context, userID, captureID string) error
}

type researchService struct {
	s store.Store
}

func NewResearchService(s store.Store) ResearchService {
	return &researchService{s: s}
}

func (r *researchService) ListSources(ctx context.Context, userID string) ([]*models.ResearchSource, error) {
	return r.s.ListSources(ctx, userID)
}

func (r *researchService) CreateSource(ctx context.Context, userID string, sc *transfer.SourceCreation) (*models.ResearchSource, error) {
	return r.s.CreateSource(ctx, userID, store.SourceCreateInput{
		Type:       sc.Type,
		Name:       sc.Name,
		ProfileURL: sc.ProfileURL,
		Keyword:    sc.Keyword,
	})
}

func (r *researchService) DeleteSource(ctx context.Context, userID, sourceID string) error {
	return r.s.DeleteSource(ctx, userID, sourceID)
}

func (r *researchService) ListCaptures(ctx context.Context, userID string) ([]*models.CapturedPost, error) {
	return r.s.ListCaptures(ctx, userID)
}

func (r *researchService) CreateCapture(ctx context.Context, userID string, cc *transfer.CaptureCreation) (*models.CapturedPost, error) {
	input := store.CaptureCreateInput{
		SourceID:   cc.SourceID,
		AuthorName: cc.AuthorName,
		AuthorURL:  cc.AuthorURL,
		PostURL:    cc.PostURL,
		Text:       cc.Text,
	}

	if cc.CapturedAt != "" {
		capturedAt, err := time.Parse(time.RFC3339, cc.CapturedAt)
		if err != nil {
			err = fmt.Errorf("%w: invalid capturedAt datetime", store.ErrValidation)
			slog.Info(err.Error())
			return nil, err
		}
		input.CapturedAt = &capturedAt
	}

	return r.s.CreateCapture(ctx, userID, input)
}

func (r *researchService) DeleteCapture(ctx context.Context, userID, captureID string) error {
	return r.s.DeleteCapture(ctx, userID, captureID)
}
