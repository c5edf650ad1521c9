package memory

import (
	"context"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

type BikeRepository struct {
	store *Store
}

func NewBikeRepository(store *Store) *BikeRepository {
	return &BikeRepository{store: store}
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.bikes {
		if existing.FrameNumber == bike.FrameNumber {
			return nil, domain.ErrFrameNumberTaken
		}
	}

	stored := cloneBike(bike)
	r.store.bikes[stored.BikeID] = stored
	r.store.bikeOrder = append(r.store.bikeOrder, stored.BikeID)
	return cloneBike(stored), nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bike, ok := r.store.bikes[bikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}
	return cloneBike(bike), nil
}

func (r *BikeRepository) GetBikesByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Bike, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var bikes []*domain.Bike
	for _, id := range r.store.bikeOrder {
		bike, ok := r.store.bikes[id]
		if ok && bike.OwnerID == ownerID {
			bikes = append(bikes, cloneBike(bike))
		}
	}
	return bikes, nil
}

func (r *BikeRepository) ListBikes(ctx context.Context) ([]*domain.Bike, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	bikes := make([]*domain.Bike, 0, len(r.store.bikeOrder))
	for _, id := range r.store.bikeOrder {
		if bike, ok := r.store.bikes[id]; ok {
			bikes = append(bikes, cloneBike(bike))
		}
	}
	return bikes, nil
}

// UpdateBike replaces descriptive fields; frame number and status are
// taken from the stored record, they move only through their dedicated
// paths.
func (r *BikeRepository) UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.bikes[bike.BikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}

	stored := cloneBike(bike)
	stored.FrameNumber = existing.FrameNumber
	stored.Status = existing.Status
	r.store.bikes[stored.BikeID] = stored
	return cloneBike(stored), nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, bikeID uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bikes[bikeID]; !ok {
		return domain.ErrBikeNotFound
	}
	delete(r.store.bikes, bikeID)
	for i, id := range r.store.bikeOrder {
		if id == bikeID {
			r.store.bikeOrder = append(r.store.bikeOrder[:i], r.store.bikeOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (r *BikeRepository) CompareAndSetStatus(ctx context.Context, bikeID uuid.UUID, expected []domain.BikeStatus, next domain.BikeStatus) (*domain.Bike, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bike, ok := r.store.bikes[bikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}

	matched := false
	for _, status := range expected {
		if bike.Status == status {
			matched = true
			break
		}
	}
	if !matched {
		return nil, domain.ErrStatusConflict
	}

	now := time.Now()
	r.store.changes = append(r.store.changes, domain.StatusChange{
		BikeID:    bikeID,
		From:      bike.Status,
		To:        next,
		ChangedAt: now,
	})
	bike.Status = next
	bike.UpdatedAt = now
	return cloneBike(bike), nil
}

// SetForSale is the listing transition. Status and listing price change
// under one lock acquisition so a FOR_SALE bike can never be observed
// without its price.
func (r *BikeRepository) SetForSale(ctx context.Context, bikeID uuid.UUID, price float64) (*domain.Bike, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	bike, ok := r.store.bikes[bikeID]
	if !ok {
		return nil, domain.ErrBikeNotFound
	}
	if bike.Status != domain.StatusSafe {
		return nil, domain.ErrStatusConflict
	}

	now := time.Now()
	r.store.changes = append(r.store.changes, domain.StatusChange{
		BikeID:    bikeID,
		From:      bike.Status,
		To:        domain.StatusForSale,
		ChangedAt: now,
	})
	bike.Status = domain.StatusForSale
	bike.ListingPrice = price
	bike.UpdatedAt = now
	return cloneBike(bike), nil
}

func (r *BikeRepository) StatusChanges(ctx context.Context) []domain.StatusChange {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	changes := make([]domain.StatusChange, len(r.store.changes))
	copy(changes, r.store.changes)
	return changes
}
