package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

// ConstructionInput is one construction line as submitted. AreaSqFt is
// always derived from Length and Width.
type ConstructionInput struct {
	UsageType        string  `json:"usage_type" binding:"required"`
	ConstructionType string  `json:"construction_type" binding:"required"`
	ConstructionYear int     `json:"construction_year"`
	Floor            string  `json:"floor"`
	Length           float64 `json:"length"`
	Width            float64 `json:"width"`
}

// CreatePropertyInput is the DTO for creating a property.
type CreatePropertyInput struct {
	PropertyNo    string              `json:"property_no" binding:"required"`
	WardNo        string              `json:"ward_no"`
	OwnerName     string              `json:"owner_name" binding:"required"`
	AadharNumber  string              `json:"aadhar_number"`
	SpouseName    string              `json:"spouse_name"`
	OccupierName  string              `json:"occupier_name"`
	Address       string              `json:"address"`
	Mobile        string              `json:"mobile"`
	Mobile2       string              `json:"mobile2"`
	Directions    domain.Directions   `json:"directions"`
	WaterTaxType  string              `json:"water_tax_type"`
	IsTaxExempt   bool                `json:"is_tax_exempt"`
	Constructions []ConstructionInput `json:"constructions" binding:"dive"`
	Status        domain.Status       `json:"status"`
}

// UpdatePropertyInput is the DTO for updating a property. A non-nil
// Constructions replaces every line.
type UpdatePropertyInput struct {
	PropertyNo    *string              `json:"property_no"`
	WardNo        *string              `json:"ward_no"`
	OwnerName     *string              `json:"owner_name"`
	AadharNumber  *string              `json:"aadhar_number"`
	SpouseName    *string              `json:"spouse_name"`
	OccupierName  *string              `json:"occupier_name"`
	Address       *string              `json:"address"`
	Mobile        *string              `json:"mobile"`
	Mobile2       *string              `json:"mobile2"`
	Directions    *domain.Directions   `json:"directions"`
	WaterTaxType  *string              `json:"water_tax_type"`
	IsTaxExempt   *bool                `json:"is_tax_exempt"`
	Constructions *[]ConstructionInput `json:"constructions"`
	Status        *domain.Status       `json:"status"`
}

// PropertyService defines the village-scoped property contract.
type PropertyService interface {
	Create(ctx context.Context, villageID uuid.UUID, input CreatePropertyInput) (*domain.Property, error)
	GetByID(ctx context.Context, villageID, propertyID uuid.UUID) (*domain.Property, error)
	List(ctx context.Context, villageID uuid.UUID, offset, limit int) ([]domain.Property, int, error)
	Update(ctx context.Context, villageID, propertyID uuid.UUID, input UpdatePropertyInput) (*domain.Property, error)
	Delete(ctx context.Context, villageID, propertyID uuid.UUID) error
}

type propertyService struct {
	repo        port.PropertyRepository
	villageRepo port.VillageRepository
}

// NewPropertyService creates a new PropertyService implementation.
func NewPropertyService(repo port.PropertyRepository, villageRepo port.VillageRepository) PropertyService {
	return &propertyService{repo: repo, villageRepo: villageRepo}
}

func (s *propertyService) Create(ctx context.Context, villageID uuid.UUID, input CreatePropertyInput) (*domain.Property, error) {
	if _, err := s.villageRepo.GetByID(ctx, villageID); err != nil {
		return nil, err
	}
	status, err := statusOrActive(input.Status)
	if err != nil {
		return nil, err
	}
	if err := validateAadhar(input.AadharNumber); err != nil {
		return nil, err
	}
	lines, err := BuildConstructions(input.Constructions)
	if err != nil {
		return nil, err
	}

	p := &domain.Property{
		VillageID:     villageID,
		PropertyNo:    strings.TrimSpace(input.PropertyNo),
		WardNo:        strings.TrimSpace(input.WardNo),
		OwnerName:     strings.TrimSpace(input.OwnerName),
		AadharNumber:  strings.TrimSpace(input.AadharNumber),
		SpouseName:    strings.TrimSpace(input.SpouseName),
		OccupierName:  strings.TrimSpace(input.OccupierName),
		Address:       strings.TrimSpace(input.Address),
		Mobile:        strings.TrimSpace(input.Mobile),
		Mobile2:       strings.TrimSpace(input.Mobile2),
		Directions:    input.Directions,
		WaterTaxType:  strings.TrimSpace(input.WaterTaxType),
		IsTaxExempt:   input.IsTaxExempt,
		Constructions: lines,
		Status:        status,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertyService) GetByID(ctx context.Context, villageID, propertyID uuid.UUID) (*domain.Property, error) {
	return s.repo.GetByID(ctx, villageID, propertyID)
}

func (s *propertyService) List(ctx context.Context, villageID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	return s.repo.ListByVillage(ctx, villageID, offset, limit)
}

func (s *propertyService) Update(ctx context.Context, villageID, propertyID uuid.UUID, input UpdatePropertyInput) (*domain.Property, error) {
	p, err := s.repo.GetByID(ctx, villageID, propertyID)
	if err != nil {
		return nil, err
	}

	setTrimmed(&p.PropertyNo, input.PropertyNo)
	setTrimmed(&p.WardNo, input.WardNo)
	setTrimmed(&p.OwnerName, input.OwnerName)
	setTrimmed(&p.SpouseName, input.SpouseName)
	setTrimmed(&p.OccupierName, input.OccupierName)
	setTrimmed(&p.Address, input.Address)
	setTrimmed(&p.Mobile, input.Mobile)
	setTrimmed(&p.Mobile2, input.Mobile2)
	setTrimmed(&p.WaterTaxType, input.WaterTaxType)
	if input.AadharNumber != nil {
		if err := validateAadhar(*input.AadharNumber); err != nil {
			return nil, err
		}
		p.AadharNumber = strings.TrimSpace(*input.AadharNumber)
	}
	if input.Directions != nil {
		p.Directions = *input.Directions
	}
	if input.IsTaxExempt != nil {
		p.IsTaxExempt = *input.IsTaxExempt
	}
	if input.Constructions != nil {
		lines, err := BuildConstructions(*input.Constructions)
		if err != nil {
			return nil, err
		}
		p.Constructions = lines
	}
	if input.Status != nil {
		if !domain.ValidStatuses[*input.Status] {
			return nil, domain.ErrInvalidStatus
		}
		p.Status = *input.Status
	}
	if p.PropertyNo == "" || p.OwnerName == "" {
		return nil, domain.ErrInvalidConstruction
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *propertyService) Delete(ctx context.Context, villageID, propertyID uuid.UUID) error {
	return s.repo.Delete(ctx, villageID, propertyID)
}

// BuildConstructions validates submitted lines and derives each line's area
// as length times width.
func BuildConstructions(inputs []ConstructionInput) (domain.Constructions, error) {
	lines := make(domain.Constructions, 0, len(inputs))
	for _, in := range inputs {
		usage := strings.TrimSpace(in.UsageType)
		kind := strings.TrimSpace(in.ConstructionType)
		if usage == "" || kind == "" {
			return nil, domain.ErrInvalidConstruction
		}
		if in.Length < 0 || in.Width < 0 {
			return nil, domain.ErrInvalidConstruction
		}
		if in.ConstructionYear != domain.OpenLandYear && in.ConstructionYear < domain.MinConstructionYear {
			return nil, domain.ErrInvalidConstruction
		}
		lines = append(lines, domain.PropertyConstruction{
			UsageType:        usage,
			ConstructionType: kind,
			ConstructionYear: in.ConstructionYear,
			Floor:            strings.TrimSpace(in.Floor),
			Length:           in.Length,
			Width:            in.Width,
			AreaSqFt:         in.Length * in.Width,
		})
	}
	return lines, nil
}

func validateAadhar(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	if len(v) != 12 {
		return domain.ErrInvalidAadhar
	}
	for _, r := range v {
		if r < '0' || r > '9' {
			return domain.ErrInvalidAadhar
		}
	}
	return nil
}

func setTrimmed(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
