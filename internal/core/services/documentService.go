package services

import (
	"context"
	"fmt"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
	"github.com/veloguard/veloguard-backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type DocumentService struct {
	documentRepo ports.DocumentRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewDocumentService(
	documentRepo ports.DocumentRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		logger:       logger,
		validate:     validate,
	}
}

func (s *DocumentService) AddDocument(ctx context.Context, bikeID string, document *domain.BikeDocument) (*domain.BikeDocument, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("invalid bike ID: %w", err)
	}

	if err := s.validate.Struct(document); err != nil {
		s.logger.Error("Document validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("validation error: %w", err)
	}

	if document.ID == uuid.Nil {
		document.ID = uuid.New()
	}

	createdDocument, err := s.documentRepo.AddDocument(ctx, bikeUUID, document)
	if err != nil {
		s.logger.Error("Failed to add document", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	s.logger.Info("Document added successfully", map[string]interface{}{
		"document_id": createdDocument.ID,
		"bike_id":     bikeID,
		"category":    createdDocument.Category,
	})

	return createdDocument, nil
}

func (s *DocumentService) GetDocumentsByBikeID(ctx context.Context, bikeID string) ([]*domain.BikeDocument, error) {
	bikeUUID, err := uuid.Parse(bikeID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"bike_id": bikeID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("invalid bike ID: %w", err)
	}

	documents, err := s.documentRepo.GetDocumentsByBikeID(ctx, bikeUUID)
	if err != nil {
		s.logger.Error("Failed to get documents", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
		return nil, err
	}

	return documents, nil
}

func (s *DocumentService) RemoveDocument(ctx context.Context, documentID string) error {
	documentUUID, err := uuid.Parse(documentID)
	if err != nil {
		s.logger.Error("Invalid UUID format", map[string]interface{}{
			"document_id": documentID,
			"error":       err.Error(),
		})
		return fmt.Errorf("invalid document ID: %w", err)
	}

	if _, err := s.documentRepo.GetDocumentByID(ctx, documentUUID); err != nil {
		s.logger.Error("Failed to get document", map[string]interface{}{
			"error":       err.Error(),
			"document_id": documentID,
		})
		return err
	}

	if err := s.documentRepo.RemoveDocument(ctx, documentUUID); err != nil {
		s.logger.Error("Failed to remove document", map[string]interface{}{
			"error":       err.Error(),
			"document_id": documentID,
		})
		return err
	}

	s.logger.Info("Document removed successfully", map[string]interface{}{
		"document_id": documentID,
	})

	return nil
}
