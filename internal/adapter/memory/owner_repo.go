package memory

import (
	"context"
	"errors"

	"github.com/veloguard/veloguard-backend/internal/core/domain"
)

type OwnerRepository struct {
	store *Store
}

// NewOwnerRepository seeds the single owner profile. The profile is
// read-only input to report rendering.
func NewOwnerRepository(store *Store, owner *domain.OwnerProfile) *OwnerRepository {
	store.mu.Lock()
	profile := *owner
	store.owner = &profile
	store.mu.Unlock()
	return &OwnerRepository{store: store}
}

func (r *OwnerRepository) GetOwner(ctx context.Context) (*domain.OwnerProfile, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if r.store.owner == nil {
		return nil, errors.New("owner profile not configured")
	}
	profile := *r.store.owner
	return &profile, nil
}
