package memory

import (
	"context"
	"testing"
	"time"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBike(frameNumber string) *domain.Bike {
	now := time.Now()
	return &domain.Bike{
		BikeID:      uuid.New(),
		OwnerID:     uuid.New(),
		FrameNumber: frameNumber,
		Make:        "Canyon",
		Status:      domain.StatusSafe,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBikeRepositoryCRUD(t *testing.T) {
	repo := NewBikeRepository(NewStore())
	ctx := context.Background()

	bike := newBike("FRAME1")
	created, err := repo.CreateBike(ctx, bike)
	require.NoError(t, err)
	assert.Equal(t, bike.BikeID, created.BikeID)

	got, err := repo.GetBikeByID(ctx, bike.BikeID)
	require.NoError(t, err)
	assert.Equal(t, "FRAME1", got.FrameNumber)

	got.Color = "Rot"
	updated, err := repo.UpdateBike(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Rot", updated.Color)

	all, err := repo.ListBikes(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.DeleteBike(ctx, bike.BikeID))
	_, err = repo.GetBikeByID(ctx, bike.BikeID)
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestBikeRepositoryFrameNumberUniqueness(t *testing.T) {
	repo := NewBikeRepository(NewStore())
	ctx := context.Background()

	_, err := repo.CreateBike(ctx, newBike("DUP1"))
	require.NoError(t, err)

	_, err = repo.CreateBike(ctx, newBike("DUP1"))
	assert.ErrorIs(t, err, domain.ErrFrameNumberTaken)
}

func TestBikeRepositoryReturnsClones(t *testing.T) {
	repo := NewBikeRepository(NewStore())
	ctx := context.Background()

	bike := newBike("CLONE1")
	_, err := repo.CreateBike(ctx, bike)
	require.NoError(t, err)

	got, err := repo.GetBikeByID(ctx, bike.BikeID)
	require.NoError(t, err)
	got.Make = "Mutated"

	again, err := repo.GetBikeByID(ctx, bike.BikeID)
	require.NoError(t, err)
	assert.Equal(t, "Canyon", again.Make)
}

func TestCompareAndSetStatus(t *testing.T) {
	repo := NewBikeRepository(NewStore())
	ctx := context.Background()

	bike := newBike("CAS1")
	_, err := repo.CreateBike(ctx, bike)
	require.NoError(t, err)

	// SAFE -> FOR_SALE succeeds.
	updated, err := repo.CompareAndSetStatus(ctx, bike.BikeID,
		[]domain.BikeStatus{domain.StatusSafe}, domain.StatusForSale)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusForSale, updated.Status)

	// Expecting SAFE again conflicts.
	_, err = repo.CompareAndSetStatus(ctx, bike.BikeID,
		[]domain.BikeStatus{domain.StatusSafe}, domain.StatusSold)
	assert.ErrorIs(t, err, domain.ErrStatusConflict)

	// Multiple expected values: FOR_SALE -> STOLEN.
	updated, err = repo.CompareAndSetStatus(ctx, bike.BikeID,
		[]domain.BikeStatus{domain.StatusSafe, domain.StatusForSale}, domain.StatusStolen)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStolen, updated.Status)

	changes := repo.StatusChanges(ctx)
	require.Len(t, changes, 2)
	assert.Equal(t, domain.StatusSafe, changes[0].From)
	assert.Equal(t, domain.StatusForSale, changes[0].To)
	assert.Equal(t, domain.StatusForSale, changes[1].From)
	assert.Equal(t, domain.StatusStolen, changes[1].To)
}

func TestSetForSale(t *testing.T) {
	repo := NewBikeRepository(NewStore())
	ctx := context.Background()

	bike := newBike("SALE1")
	_, err := repo.CreateBike(ctx, bike)
	require.NoError(t, err)

	// Status and price land together.
	updated, err := repo.SetForSale(ctx, bike.BikeID, 1499.50)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusForSale, updated.Status)
	assert.Equal(t, 1499.50, updated.ListingPrice)

	// Re-listing conflicts, the price stays untouched.
	_, err = repo.SetForSale(ctx, bike.BikeID, 99)
	assert.ErrorIs(t, err, domain.ErrStatusConflict)

	got, err := repo.GetBikeByID(ctx, bike.BikeID)
	require.NoError(t, err)
	assert.Equal(t, 1499.50, got.ListingPrice)

	changes := repo.StatusChanges(ctx)
	require.Len(t, changes, 1)
	assert.Equal(t, domain.StatusSafe, changes[0].From)
	assert.Equal(t, domain.StatusForSale, changes[0].To)

	_, err = repo.SetForSale(ctx, uuid.New(), 500)
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestCompareAndSetStatusUnknownBike(t *testing.T) {
	repo := NewBikeRepository(NewStore())

	_, err := repo.CompareAndSetStatus(context.Background(), uuid.New(),
		[]domain.BikeStatus{domain.StatusSafe}, domain.StatusStolen)
	assert.ErrorIs(t, err, domain.ErrBikeNotFound)
}

func TestUpdateBikePreservesFrameNumberAndStatus(t *testing.T) {
	repo := NewBikeRepository(NewStore())
	ctx := context.Background()

	bike := newBike("KEEP1")
	_, err := repo.CreateBike(ctx, bike)
	require.NoError(t, err)

	edit := *bike
	edit.FrameNumber = "TAMPERED"
	edit.Status = domain.StatusStolen
	edit.Color = "Blau"

	updated, err := repo.UpdateBike(ctx, &edit)
	require.NoError(t, err)
	assert.Equal(t, "KEEP1", updated.FrameNumber)
	assert.Equal(t, domain.StatusSafe, updated.Status)
	assert.Equal(t, "Blau", updated.Color)
}
