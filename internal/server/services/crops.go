package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gardenkeeper/internal/common"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/models"
	"github.com/dmitrijs2005/gardenkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CropService manages the crops of the calling user. Another user's crop id
// behaves like an unknown one everywhere.
type CropService struct {
	repomanager repomanager.RepositoryManager
}

func NewCropService(m repomanager.RepositoryManager) *CropService {
	return &CropService{repomanager: m}
}

func (s *CropService) List(ctx context.Context, userID string) ([]*models.Crop, error) {
	crops, err := s.repomanager.Crops().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing crops: %w", err)
	}
	return crops, nil
}

// Get returns a list with the crop, or an empty list.
func (s *CropService) Get(ctx context.Context, userID, id string) ([]*models.Crop, error) {
	crops, err := s.repomanager.Crops().Find(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("error finding crop: %w", err)
	}
	return crops, nil
}

// Create stores a new crop owned by userID.
func (s *CropService) Create(ctx context.Context, userID string, in *models.CropPatch) (*models.Crop, error) {
	if missing := missingCropFields(in); len(missing) > 0 {
		return nil, common.BadRequest("The request is missing the following field(s): " + common.QuoteList(missing))
	}

	crop := &models.Crop{ID: uuid.NewString(), UserID: userID}
	in.Apply(crop)

	if err := s.repomanager.Crops().Create(ctx, crop); err != nil {
		return nil, fmt.Errorf("error creating crop: %w", err)
	}
	return crop, nil
}

// Update applies patch to the caller's crop. Nothing is written for an empty
// patch or a crop the caller does not own.
func (s *CropService) Update(ctx context.Context, userID, id string, patch *models.CropPatch) error {
	if patch.IsEmpty() {
		return nil
	}
	if _, err := s.repomanager.Crops().Update(ctx, userID, id, patch); err != nil {
		return fmt.Errorf("error updating crop: %w", err)
	}
	return nil
}

func (s *CropService) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.repomanager.Crops().Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("error deleting crop: %w", err)
	}
	return nil
}

// Owned reports whether crop id belongs to userID.
func (s *CropService) Owned(ctx context.Context, userID, id string) (bool, error) {
	crops, err := s.Get(ctx, userID, id)
	if err != nil {
		return false, err
	}
	return len(crops) > 0, nil
}

// missingCropFields reports mandatory attributes that are absent or null.
func missingCropFields(in *models.CropPatch) []string {
	var missing []string
	if in.Name == nil {
		missing = append(missing, "name")
	}
	if in.Variety == nil {
		missing = append(missing, "variety")
	}
	if in.PlantDate == nil {
		missing = append(missing, "plant_date")
	}
	if in.GerminationDays == nil {
		missing = append(missing, "germination_days")
	}
	if in.HarvestDays == nil {
		missing = append(missing, "harvest_days")
	}
	return missing
}
