package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// JournalService manages the journal entries of the calling user.
type JournalService struct {
	repomanager repomanager.RepositoryManager
}

func NewJournalService(m repomanager.RepositoryManager) *JournalService {
	return &JournalService{repomanager: m}
}

func (s *JournalService) List(ctx context.Context, userID string) ([]*models.JournalEntry, error) {
	entries, err := s.repomanager.Journal().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing journal: %w", err)
	}
	return entries, nil
}

func (s *JournalService) Get(ctx context.Context, userID, id string) ([]*models.JournalEntry, error) {
	entries, err := s.repomanager.Journal().Find(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("error finding journal entry: %w", err)
	}
	return entries, nil
}

func (s *JournalService) Create(ctx context.Context, userID string, in *models.JournalPatch) (*models.JournalEntry, error) {
	var missing []string
	if in.Date == nil {
		missing = append(missing, "date")
	}
	if in.Scope == nil {
		missing = append(missing, "scope")
	}
	if in.Text == nil {
		missing = append(missing, "text")
	}
	if len(missing) > 0 {
		return nil, common.BadRequest("The request is missing the following field(s): " + common.QuoteList(missing))
	}

	entry := &models.JournalEntry{ID: uuid.NewString(), UserID: userID}
	in.Apply(entry)

	if err := s.repomanager.Journal().Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("error creating journal entry: %w", err)
	}
	return entry, nil
}

func (s *JournalService) Update(ctx context.Context, userID, id string, patch *models.JournalPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if _, err := s.repomanager.Journal().Update(ctx, userID, id, patch); err != nil {
		return fmt.Errorf("error updating journal entry: %w", err)
	}
	return nil
}

func (s *JournalService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repomanager.Journal().Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting journal entry: %w", err)
	}
	return nil
}
