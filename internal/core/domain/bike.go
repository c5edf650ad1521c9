package domain

import (
	"time"

	"github.com/google/uuid"
)

// swagger:model domain.Bike
type Bike struct {
	BikeID                uuid.UUID        `json:"bike_id"`
	OwnerID               uuid.UUID        `json:"owner_id"`
	FrameNumber           string           `json:"frame_number" validate:"required,max=50"` // Fahrgestellnummer, immutable
	Make                  string           `json:"make" validate:"required,max=100"`
	Model                 string           `json:"model" validate:"max=100"`
	Color                 string           `json:"color" validate:"max=50"`
	Description           string           `json:"description"`
	DistinctiveFeatures   string           `json:"distinctive_features"` // Kratzer, Sticker etc.
	Condition             BikeCondition    `json:"condition"`
	PurchaseDate          string           `json:"purchase_date"`
	PurchasePrice         float64          `json:"purchase_price"`
	ListingPrice          float64          `json:"listing_price,omitempty"`
	StorageLocation       string           `json:"storage_location,omitempty"` // Abstellort
	InsuranceProvider     string           `json:"insurance_provider,omitempty"`
	InsurancePolicyNumber string           `json:"insurance_policy_number,omitempty"`
	FrameSize             string           `json:"frame_size,omitempty"`
	TireSize              string           `json:"tire_size,omitempty"`
	SuspensionTravel      string           `json:"suspension_travel,omitempty"`
	BrakeType             string           `json:"brake_type,omitempty"`
	ImageURL              string           `json:"image_url,omitempty"`
	Documents             []*BikeDocument  `json:"documents"`
	Accessories           []*Accessory     `json:"accessories"`
	Status                BikeStatus       `json:"status"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

type BikeStatus string

const (
	StatusSafe    BikeStatus = "SAFE"
	StatusStolen  BikeStatus = "STOLEN"
	StatusForSale BikeStatus = "FOR_SALE"
	StatusSold    BikeStatus = "SOLD"
)

type BikeCondition string

const (
	ConditionNew  BikeCondition = "NEU"
	ConditionUsed BikeCondition = "GEBRAUCHT"
)

type DocumentCategory string

const (
	DocReceiptPurchase DocumentCategory = "RECEIPT_PURCHASE"
	DocReceiptSale     DocumentCategory = "RECEIPT_SALE"
	DocInsurance       DocumentCategory = "INSURANCE"
	DocOther           DocumentCategory = "OTHER"
)

type BikeDocument struct {
	ID         uuid.UUID        `json:"id"`
	Name       string           `json:"name" validate:"required,max=255"`
	Category   DocumentCategory `json:"category" validate:"required,oneof=RECEIPT_PURCHASE RECEIPT_SALE INSURANCE OTHER"`
	ContentRef string           `json:"content_ref"`
	DateAdded  time.Time        `json:"date_added"`
}

type Accessory struct {
	ID          uuid.UUID `json:"id"`
	BikeID      uuid.UUID `json:"bike_id" validate:"required"`
	Name        string    `json:"name" validate:"required,max=100"` // e.g. "Tacho", "Sattel"
	Description string    `json:"description" validate:"max=500"`
	CreatedAt   time.Time `json:"created_at"`
}

// Reportable tells whether the bike may be offered as a theft-report
// candidate. Already stolen or sold bikes are excluded.
func (b *Bike) Reportable() bool {
	return b.Status == StatusSafe || b.Status == StatusForSale
}

// StatusChange is one entry of the registry mutation log.
type StatusChange struct {
	BikeID    uuid.UUID  `json:"bike_id"`
	From      BikeStatus `json:"from"`
	To        BikeStatus `json:"to"`
	ChangedAt time.Time  `json:"changed_at"`
}
