package services

import (
	"context"
	"fmt"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AccessoryService struct {
	accessoryRepo ports.AccessoryRepository
	logger        ports.LoggerPort
	validate      *validator.Validate
}

func NewAccessoryService(
	accessoryRepo ports.AccessoryRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *AccessoryService {
	return &AccessoryService{
		accessoryRepo: accessoryRepo,
		logger:        logger,
		validate:      validate,
	}
}

func (s *AccessoryService) AddAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error) {
	if err := s.validate.Struct(accessory); err != nil {
		s.logger.Error("Accessory validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if accessory.ID == uuid.Nil {
		accessory.ID = uuid.New()
	}

	createdAccessory, err := s.accessoryRepo.AddAccessory(ctx, accessory)
	if err != nil {
		s.logger.Error("Failed to add accessory", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": accessory.BikeID,
		})
		return nil, err
	}

	s.logger.Info("Accessory added successfully", map[string]interface{}{
		"accessory_id": createdAccessory.ID,
		"bike_id":      createdAccessory.BikeID,
		"name":         createdAccessory.Name,
	})

	return createdAccessory, nil
}

func (s *AccessoryService) GetAccessoriesByBikeID(ctx context.Context, bikeID string) ([]*domain.Accessory, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("invalid bike ID: %w", err)
	}

	accessories, err := s.accessoryRepo.GetAccessoriesByBikeID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get accessories", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	return accessories, nil
}

func (s *AccessoryService) RemoveAccessory(ctx context.Context, accessoryID string) error {
	accessoryUUID, err := uuid.Parse(accessoryID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"accessory_id": accessoryID,
			"error":        err.Error(),
		})
		return fmt.Errorf("invalid accessory ID: %w", err)
	}

	if _, err := s.accessoryRepo.GetAccessoryByID(ctx, accessoryUUID); err != nil {
		s.logger.Error("Failed to get accessory", map[string]interface{}{
			"error":        err.Error(),
			"accessory_id": accessoryID,
		})
		return err
	}

	if err := s.accessoryRepo.RemoveAccessory(ctx, accessoryUUID); err != nil {
		s.logger.Error("Failed to remove accessory", map[string]interface{}{
			"error":        err.Error(),
			"accessory_id": accessoryID,
		})
		return err
	}

	s.logger.Info("Accessory removed successfully", map[string]interface{}{
		"accessory_id": accessoryID,
	})

	return nil
}
