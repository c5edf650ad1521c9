package services

import (
	"context"
	"fmt"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type BikeService struct {
	bikeRepo ports.BikeRepository
	logger   ports.LoggerPort
	validate *validator.Validate
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *BikeService {
	return &BikeService{
		bikeRepo: bikeRepo,
		logger:   logger,
		validate: validate,
	}
}

func (s *BikeService) RegisterBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if err := s.validate.Struct(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if bike.BikeID == uuid.Nil {
		bike.BikeID = uuid.New()
	}
	if bike.Status == "" {
		bike.Status = domain.StatusSafe
	}
	if bike.Condition == "" {
		bike.Condition = domain.ConditionNew
	}
	if bike.Documents == nil {
		bike.Documents = []*domain.BikeDocument{}
	}
	if bike.Accessories == nil {
		bike.Accessories = []*domain.Accessory{}
	}
	now := time.Now()
	bike.CreatedAt = now
	bike.UpdatedAt = now

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to register bike", map[string]interface{}{
			"error":        err.Error(),
			"frame_number": bike.FrameNumber,
		})
		return nil, err
	}

	s.logger.Info("Bike registered successfully", map[string]interface{}{
		"bike_id":      createdBike.BikeID,
		"frame_number": createdBike.FrameNumber,
	})

	return createdBike, nil
}

func (s *BikeService) GetBikeByID(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("invalid bike ID: %w", err)
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	return bike, nil
}

func (s *BikeService) GetBikesByOwnerID(ctx context.Context, ownerID string) ([]*domain.Bike, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"owner_id": ownerID,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("invalid owner ID: %w", err)
	}

	bikes, err := s.bikeRepo.GetBikesByOwnerID(ctx, ownerUUID)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error":    err.Error(),
			"owner_id": ownerID,
		})
		return nil, err
	}

	return bikes, nil
}

func (s *BikeService) ListBikes(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ListBikes(ctx)
	if err != nil {
		s.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return bikes, nil
}

// ListSelectable returns the bikes offerable as theft-report candidates:
// current status SAFE or FOR_SALE. Stolen or sold bikes are excluded.
func (s *BikeService) ListSelectable(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ListBikes(ctx)
	if err != nil {
		s.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	selectable := make([]*domain.Bike, 0, len(bikes))
	for _, bike := range bikes {
		if bike.Reportable() {
			selectable = append(selectable, bike)
		}
	}
	return selectable, nil
}

func (s *BikeService) ListForSale(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ListBikes(ctx)
	if err != nil {
		s.logger.Error("Failed to list bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	listed := make([]*domain.Bike, 0, len(bikes))
	for _, bike := range bikes {
		if bike.Status == domain.StatusForSale {
			listed = append(listed, bike)
		}
	}
	return listed, nil
}

// UpdateBike applies descriptive edits only. Frame number and status are
// immutable through this path: the frame number identifies the physical
// bike, and status moves only through the dedicated workflow triggers.
func (s *BikeService) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	existing, err := s.bikeRepo.GetBikeByID(ctx, bike.BikeID)
	if err != nil {
		s.logger.Error("Failed to get bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bike.BikeID,
		})
		return nil, err
	}

	bike.FrameNumber = existing.FrameNumber
	bike.Status = existing.Status
	bike.OwnerID = existing.OwnerID
	bike.CreatedAt = existing.CreatedAt
	bike.UpdatedAt = time.Now()

	if err := s.validate.Struct(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	updatedBike, err := s.bikeRepo.UpdateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bike.BikeID,
		})
		return nil, err
	}

	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bike.BikeID,
	})

	return updatedBike, nil
}

func (s *BikeService) DeleteBike(ctx context.Context, bikeID string) error {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return fmt.Errorf("invalid bike ID: %w", err)
	}

	if err := s.bikeRepo.DeleteBike(ctx, bikeUUID); err != nil {
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return err
	}

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return nil
}

// MarkForSale publishes the bike on the marketplace. Only a SAFE bike
// can be listed; status and listing price are committed in one repo step.
func (s *BikeService) MarkForSale(ctx context.Context, bikeID string, price float64) (*domain.Bike, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		return nil, fmt.Errorf("invalid bike ID: %w", err)
	}

	bike, err := s.bikeRepo.SetForSale(ctx, bikeUUID, price)
	if err != nil {
		s.logger.Warn("Failed to list bike for sale", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.logger.Info("Bike listed for sale", map[string]interface{}{
		"bike_id": bikeID,
		"price":   price,
	})

	return bike, nil
}

// MarkSold completes a marketplace sale: FOR_SALE -> SOLD.
func (s *BikeService) MarkSold(ctx context.Context, bikeID string) (*domain.Bike, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		return nil, fmt.Errorf("invalid bike ID: %w", err)
	}

	bike, err := s.bikeRepo.CompareAndSetStatus(ctx, bikeUUID,
		[]domain.BikeStatus{domain.StatusForSale}, domain.StatusSold)
	if err != nil {
		s.logger.Warn("Failed to mark bike sold", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.logger.Info("Bike marked sold", map[string]interface{}{
		"bike_id": bikeID,
	})

	return bike, nil
}

// MarkStolen is the theft-workflow side effect: the status is overwritten
// to STOLEN from either SAFE or FOR_SALE. A bike mid-sale loses its
// listing visibility.
func (s *BikeService) MarkStolen(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	bike, err := s.bikeRepo.CompareAndSetStatus(ctx, bikeID,
		[]domain.BikeStatus{domain.StatusSafe, domain.StatusForSale}, domain.StatusStolen)
	if err != nil {
		s.logger.Error("Failed to mark bike stolen", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.logger.Info("Bike marked stolen", map[string]interface{}{
		"bike_id": bikeID,
	})

	return bike, nil
}

func (s *BikeService) StatusChanges(ctx context.Context) []domain.StatusChange {
	return s.bikeRepo.StatusChanges(ctx)
}
