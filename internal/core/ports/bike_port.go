package ports

import (
	"context"

	"github.com/veloguard/veloguard-backend/internal/core/domain"

	"github.com/google/uuid"
)

type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, bikeID uuid.UUID) (*domain.Bike, error)
	GetBikesByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*domain.Bike, error)
	ListBikes(ctx context.Context) ([]*domain.Bike, error)
	UpdateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	DeleteBike(ctx context.Context, bikeID uuid.UUID) error

	// CompareAndSetStatus transitions the bike's status only if the
	// current value is one of expected, and records the change in the
	// mutation log. Returns ErrStatusConflict otherwise.
	CompareAndSetStatus(ctx context.Context, bikeID uuid.UUID, expected []domain.BikeStatus, next domain.BikeStatus) (*domain.Bike, error)

	// SetForSale transitions SAFE -> FOR_SALE and records the listing
	// price in the same step, so a listing never exists without a price.
	SetForSale(ctx context.Context, bikeID uuid.UUID, price float64) (*domain.Bike, error)

	// StatusChanges returns the registry mutation log, oldest first.
	StatusChanges(ctx context.Context) []domain.StatusChange
}

type AccessoryRepository interface {
	AddAccessory(ctx context.Context, accessory *domain.Accessory) (*domain.Accessory, error)
	GetAccessoryByID(ctx context.Context, accessoryID uuid.UUID) (*domain.Accessory, error)
	GetAccessoriesByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.Accessory, error)
	RemoveAccessory(ctx context.Context, accessoryID uuid.UUID) error
}

type DocumentRepository interface {
	AddDocument(ctx context.Context, bikeID uuid.UUID, document *domain.BikeDocument) (*domain.BikeDocument, error)
	GetDocumentByID(ctx context.Context, documentID uuid.UUID) (*domain.BikeDocument, error)
	GetDocumentsByBikeID(ctx context.Context, bikeID uuid.UUID) ([]*domain.BikeDocument, error)
	RemoveDocument(ctx context.Context, documentID uuid.UUID) error
}
