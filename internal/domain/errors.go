package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserInactive         = errors.New("user is inactive")
	ErrVillageInactive      = errors.New("village is inactive")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateVillageCode = errors.New("village code already exists")
	ErrDuplicatePropertyNo  = errors.New("property number already exists in this village")
	ErrDuplicateRate        = errors.New("a rate with the same key and effective date already exists")
	ErrInvalidRate          = errors.New("invalid rate values")
	ErrInvalidSlabRange     = errors.New("slab upper bound must not be below lower bound")
	ErrInvalidTaxKey        = errors.New("invalid slab tax key")
	ErrInvalidRole          = errors.New("invalid user role")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrVillageAccessDenied  = errors.New("no access to this village")
	ErrAlreadyAssigned      = errors.New("user already has access to this village")
	ErrInvalidConstruction  = errors.New("invalid construction line")
	ErrInvalidAadhar        = errors.New("aadhar number must be 12 digits")
	ErrInvalidDate          = errors.New("invalid date, expected YYYY-MM-DD")
	ErrStorageDisabled      = errors.New("object storage is not configured")
	ErrUnsupportedFormat    = errors.New("unsupported export format")
)
