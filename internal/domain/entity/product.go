package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Product is a sellable listing owned by a farmer account.
// The owner is fixed at creation; stock never goes negative.
type Product struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the listing.
	FarmerID    uuid.UUID // Owning farmer account; immutable after creation.
	Name        string
	Description string
	Price       float64   // Unit price, non-negative.
	Stock       int       // Units available; decremented only at purchase time.
	ImageURL    string
	Organic     bool
	Location    orb.Point // Inherited from the farmer's geo-point at creation.
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Farmer *User // Owning farmer, populated by list queries that expand it.
}
