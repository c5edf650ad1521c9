package memory

import (
	"context"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

// AccessoryRepository stores accessories inside their bike record so the
// fact sheet always sees the current list.
type AccessoryRepository struct {
	store *Store
}

func NewAccessoryRepository(store *Store) *AccessoryRepository {
	return &AccessoryRepository{store: store}
}

func (r *AccessoryRepository) AddAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bike, ok := r.store.bikes[accessory.BikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}

	stored := *accessory
	bike.Accessories = append(bike.Accessories, &stored)
	result := stored
	return &result, nil
}

func (r *AccessoryRepository) GetAccessoryByID(ctx context.Context, accessoryID uuid.UUID) (*domain.Accessory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, bike := range r.store.bikes {
		for _, a := range bike.Accessories {
			if a.ID == accessoryID {
				result := *a
				return &result, nil
			}
		}
	}
	return nil, domain.ErrAccessoryNotFound
}

func (r *AccessoryRepository) GetAccessoriesByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.Accessory, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bike, ok := r.store.bikes[bikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}

	accessories := make([]*domain.Accessory, len(bike.Accessories))
	for i, a := range bike.Accessories {
		ac := *a
		accessories[i] = &ac
	}
	return accessories, nil
}

func (r *AccessoryRepository) RemoveAccessory(ctx context.Context, accessoryID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, bike := range r.store.bikes {
		for i, a := range bike.Accessories {
			if a.ID == accessoryID {
				bike.Accessories = append(bike.Accessories[:i], bike.Accessories[i+1:]...)
				return nil
			}
		}
	}
	return domain.ErrAccessoryNotFound
}
