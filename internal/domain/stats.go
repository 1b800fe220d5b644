package domain

import "github.com/google/uuid"

// PortalStats holds portal-wide counts for the super admin dashboard.
type PortalStats struct {
	Users    int `db:"users" json:"users"`
	Admins   int `db:"admins" json:"admins"`
	Villages int `db:"villages" json:"villages"`
}

// VillageStats holds property counts for one village.
type VillageStats struct {
	VillageID        uuid.UUID `db:"village_id" json:"village_id"`
	VillageName      string    `db:"village_name" json:"village_name"`
	Properties       int       `db:"properties" json:"properties"`
	ExemptProperties int       `db:"exempt_properties" json:"exempt_properties"`
}
