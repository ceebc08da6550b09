package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated account. Every party and invoice is scoped
// to exactly one owning user.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	AuthProvider string    `db:"auth_provider" json:"auth_provider"`
	GoogleSub    string    `db:"google_sub" json:"-"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// Party represents a billable counterparty (customer) record.
// Immutable after creation; deleted explicitly together with its invoices.
type Party struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   uuid.UUID `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	Mobile    string    `db:"mobile" json:"mobile"`
	Email     string    `db:"email" json:"email,omitempty"`
	Address   string    `db:"address" json:"address,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// InvoiceItem is a single line on an invoice. PerKg is an optional per-unit-weight
// multiplier; 0 means pricing is by flat unit rate.
type InvoiceItem struct {
	Product string  `json:"product"`
	Qty     float64 `json:"qty"`
	Rate    float64 `json:"rate"`
	PerKg   float64 `json:"per_kg"`
	Total   float64 `json:"total"`
}

// Invoice is an immutable, dated bill for one Party. GrandTotal is computed once
// at creation and persisted; there is no edit path, so it cannot go stale.
type Invoice struct {
	ID         uuid.UUID     `db:"id" json:"id"`
	OwnerID    uuid.UUID     `db:"owner_id" json:"owner_id"`
	PartyID    uuid.UUID     `db:"party_id" json:"party_id"`
	Items      []InvoiceItem `db:"-" json:"items"`
	GrandTotal float64       `db:"grand_total" json:"grand_total"`
	CreatedAt  time.Time     `db:"created_at" json:"created_at"`
}

// Dimensions holds recommended furniture dimensions in centimeters.
type Dimensions struct {
	HeightCm float64 `json:"height_cm"`
	WidthCm  float64 `json:"width_cm"`
	DepthCm  float64 `json:"depth_cm"`
}

// Recommendation is the structured result of an AI material/size recommendation.
type Recommendation struct {
	RecommendedMaterial   string     `json:"recommended_material"`
	RecommendedDimensions Dimensions `json:"recommended_dimensions"`
	Considerations        []string   `json:"considerations"`
}

// CatalogItem is a configurable furniture model from the product catalog.
type CatalogItem struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Model     string    `db:"model" json:"model"`
	Material  string    `db:"material" json:"material"`
	HeightCm  float64   `db:"height_cm" json:"height_cm"`
	WidthCm   float64   `db:"width_cm" json:"width_cm"`
	DepthCm   float64   `db:"depth_cm" json:"depth_cm"`
	BaseRate  float64   `db:"base_rate" json:"base_rate"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
