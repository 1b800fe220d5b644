package domain

// UserRole defines the portal role hierarchy.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleUser       UserRole = "USER"
)

// ValidUserRoles is the set of assignable roles.
var ValidUserRoles = map[UserRole]bool{
	RoleSuperAdmin: true,
	RoleAdmin:      true,
	RoleUser:       true,
}

// Status is the lifecycle flag shared by users, villages and properties.
type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusInactive Status = "INACTIVE"
)

// ValidStatuses is the set of accepted status values.
var ValidStatuses = map[Status]bool{
	StatusActive:   true,
	StatusInactive: true,
}

// SlabTaxKey identifies one of the area-banded levies.
type SlabTaxKey string

const (
	SlabTaxHealth            SlabTaxKey = "HEALTH"
	SlabTaxElectricitySupply SlabTaxKey = "ELECTRICITY_SUPPLY"
	SlabTaxDivabatti         SlabTaxKey = "DIVABATTI"
)

// SlabTaxKeys lists the levies in display order.
var SlabTaxKeys = []SlabTaxKey{SlabTaxHealth, SlabTaxElectricitySupply, SlabTaxDivabatti}

// ValidSlabTaxKey reports whether k is a known levy key.
func ValidSlabTaxKey(k SlabTaxKey) bool {
	for _, key := range SlabTaxKeys {
		if key == k {
			return true
		}
	}
	return false
}

// RateCategory names a rate table in the global catalog.
type RateCategory string

const (
	RateCategoryConstructionLand RateCategory = "construction_land"
	RateCategoryDepreciation     RateCategory = "depreciation"
	RateCategoryUsageFactor      RateCategory = "usage_factor"
	RateCategoryWaterSupply      RateCategory = "water_supply"
	RateCategorySlabTax          RateCategory = "slab_tax"
)

// OpenLandYear is the construction year sentinel for open land with no building.
const OpenLandYear = 0

// MinConstructionYear is the earliest accepted construction year for a real building.
const MinConstructionYear = 1900
