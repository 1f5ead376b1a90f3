package service

import (
	"context"

	"github.com/Vajbratya/automnator/internal/models"
	"github.com/Vajbratya/automnator/internal/store"
	"github.com/Vajbratya/automnator/internal/transfer"
)

type DraftService interface {
	List(ctx context.Context, userID string) ([]*models.Draft, error)
	Get(ctx context.Context, userID, draftID string) (*models.Draft, error)
	Create(ctx context.Context, userID string, dc *transfer.DraftCreation) (*models.Draft, error)
	Update(ctx context.Context, userID, draftID string, du *transfer.DraftUpdate) (*models.Draft, error)
	Delete(ctx context.Context, userID, draftID string) error
}

type draftService struct {
	s store.Store
}

func NewDraftService(s store.Store) DraftService {
	return &draftService{s: s}
}

func (d *draftService) List(ctx context.Context, userID string) ([]*models.Draft, error) {
	return d.s.ListDrafts(ctx, userID)
}

func (d *draftService) Get(ctx context.Context, userID, draftID string) (*models.Draft, error) {
	return d.s.GetDraft(ctx, userID, draftID)
}

func (d *draftService) Create(ctx context.Context, userID string, dc *transfer.DraftCreation) (*models.Draft, error) {
	return d.s.CreateDraft(ctx, userID, store.DraftCreateInput{
		Title:    dc.Title,
		Content:  dc.Content,
		Language: dc.Language,
	})
}

func (d *draftService) Update(ctx context.Context, userID, draftID string, du *transfer.DraftUpdate) (*models.Draft, error) {
	return d.s.UpdateDraft(ctx, userID, draftID, store.DraftUpdateInput{
		Title:         du.Title,
		Content:       du.Content,
		Language:      du.Language,
		Status:        du.Status,
		PromptVersion: du.PromptVersion,
	})
}

func (d *draftService) Delete(ctx context.Context, userID, draftID string) error {
	return d.s.DeleteDraft(ctx, userID, draftID)
}
