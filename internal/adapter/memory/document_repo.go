package memory

import (
	"context"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

// DocumentRepository stores attached documents inside their bike record,
// the same shape the accessory list uses.
type DocumentRepository struct {
	store *Store
}

func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func (r *DocumentRepository) AddDocument(ctx context.Context, bikeID uuid.UUID, document *domain.BikeDocument) (*domain.BikeDocument, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bike, ok := r.store.bikes[bikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}

	stored := *document
	bike.Documents = append(bike.Documents, &stored)
	result := stored
	return &result, nil
}

func (r *DocumentRepository) GetDocumentByID(ctx context.Context, documentID uuid.UUID) (*domain.BikeDocument, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, bike := range r.store.bikes {
		for _, d := range bike.Documents {
			if d.ID == documentID {
				result := *d
				return &result, nil
			}
		}
	}
	return nil, domain.ErrDocumentNotFound
}

func (r *DocumentRepository) GetDocumentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.BikeDocument, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bike, ok := r.store.bikes[bikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}

	documents := make([]*domain.BikeDocument, len(bike.Documents))
	for i, d := range bike.Documents {
		doc := *d
		documents[i] = &doc
	}
	return documents, nil
}

func (r *DocumentRepository) RemoveDocument(ctx context.Context, documentID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, bike := range r.store.bikes {
		for i, d := range bike.Documents {
			if d.ID == documentID {
				bike.Documents = append(bike.Documents[:i], bike.Documents[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrDocumentNotFound
}
