package designs

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("design not found")

// StatusPending is the review status every design starts in; later values
// ("approved", "rejected", ...) arrive via the PATCH allow-list and are not
// validated against a catalog.
const StatusPending = "pending"

// TypeRef is a {id, label} pair for jewelry and metal type metadata.
type TypeRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Design is a saved jewelry design: an image snapshot, the serialized canvas
// it was rendered from, type metadata and a review status. UserID is the
// owner reference as supplied by the caller; it is not a verified foreign
// key. CreatedAt/UpdatedAt are store bookkeeping and stay off the wire.
type Design struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Image       string    `json:"image"`
	JSON        string    `json:"json"`
	Status      string    `json:"status"`
	JewelryType TypeRef   `json:"jewelryType"`
	MetalType   TypeRef   `json:"metalType"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// NewDesign carries the required creation fields. Status and Date are not
// here on purpose: status always starts at StatusPending and date is set at
// creation time.
type NewDesign struct {
	UserID      string
	Name        string
	Image       string
	JSON        string
	JewelryType TypeRef
	MetalType   TypeRef
	Notes       string
}

// Patch is the allow-listed partial update. Nil means "leave unchanged";
// anything outside these fields never reaches the store.
type Patch struct {
	Name        *string
	Notes       *string
	Status      *string
	Image       *string
	JSON        *string
	JewelryType *TypeRef
	MetalType   *TypeRef
}
