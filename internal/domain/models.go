package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Village represents a gram panchayat administered through the portal.
type Village struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	District  string    `db:"district" json:"district"`
	Taluka    string    `db:"taluka" json:"taluka"`
	Code      string    `db:"code" json:"code"`
	Status    Status    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// User represents a portal account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         UserRole  `db:"role" json:"role"`
	Status       Status    `db:"status" json:"status"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// IsActive reports whether the account may sign in.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// UserVillageAccess grants a non-super-admin user access to one village.
type UserVillageAccess struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	VillageID uuid.UUID `db:"village_id" json:"village_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// PropertyConstruction is one building or open-land line of a property.
// UsageType and ConstructionType are matched by exact string against the
// usage factor and construction/land rate keys; they are not foreign keys.
type PropertyConstruction struct {
	UsageType        string  `json:"usage_type"`
	ConstructionType string  `json:"construction_type"`
	ConstructionYear int     `json:"construction_year"`
	Floor            string  `json:"floor"`
	Length           float64 `json:"length"`
	Width            float64 `json:"width"`
	AreaSqFt         float64 `json:"area_sq_ft"`
}

// IsOpenLand reports whether the line carries the open-land year sentinel.
func (c PropertyConstruction) IsOpenLand() bool {
	return c.ConstructionYear == OpenLandYear
}

// Constructions is stored as a JSONB array on the property row.
type Constructions []PropertyConstruction

// Value implements driver.Valuer.
func (c Constructions) Value() (driver.Value, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c)
}

// Scan implements sql.Scanner.
func (c *Constructions) Scan(src interface{}) error {
	return scanJSON(src, c)
}

// Directions records the neighbouring boundaries of a property.
type Directions struct {
	East  string `json:"east,omitempty"`
	West  string `json:"west,omitempty"`
	North string `json:"north,omitempty"`
	South string `json:"south,omitempty"`
}

// Value implements driver.Valuer.
func (d Directions) Value() (driver.Value, error) {
	return json.Marshal(d)
}

// Scan implements sql.Scanner.
func (d *Directions) Scan(src interface{}) error {
	return scanJSON(src, d)
}

// Property is a village property record with its construction lines.
type Property struct {
	ID            uuid.UUID     `db:"id" json:"id"`
	VillageID     uuid.UUID     `db:"village_id" json:"village_id"`
	PropertyNo    string        `db:"property_no" json:"property_no"`
	WardNo        string        `db:"ward_no" json:"ward_no"`
	OwnerName     string        `db:"owner_name" json:"owner_name"`
	AadharNumber  string        `db:"aadhar_number" json:"aadhar_number,omitempty"`
	SpouseName    string        `db:"spouse_name" json:"spouse_name,omitempty"`
	OccupierName  string        `db:"occupier_name" json:"occupier_name,omitempty"`
	Address       string        `db:"address" json:"address,omitempty"`
	Mobile        string        `db:"mobile" json:"mobile,omitempty"`
	Mobile2       string        `db:"mobile2" json:"mobile2,omitempty"`
	Directions    Directions    `db:"directions" json:"directions"`
	WaterTaxType  string        `db:"water_tax_type" json:"water_tax_type,omitempty"`
	IsTaxExempt   bool          `db:"is_tax_exempt" json:"is_tax_exempt"`
	Constructions Constructions `db:"constructions" json:"constructions"`
	Status        Status        `db:"status" json:"status"`
	CreatedAt     time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `db:"updated_at" json:"updated_at"`
}

// TotalAreaSqFt sums the recorded area of every construction line.
func (p *Property) TotalAreaSqFt() float64 {
	var total float64
	for _, c := range p.Constructions {
		total += c.AreaSqFt
	}
	return total
}

func scanJSON(src interface{}, dst interface{}) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported JSON column type %T", src)
	}
}
