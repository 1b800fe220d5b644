package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/port"
)

type propertyRepo struct {
	db *sqlx.DB
}

// NewPropertyRepo creates a new PostgreSQL-backed PropertyRepository.
func NewPropertyRepo(db *sqlx.DB) port.PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, p *domain.Property) error {
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `INSERT INTO properties (id, village_id, property_no, ward_no, owner_name, aadhar_number,
		spouse_name, occupier_name, address, mobile, mobile2, directions, water_tax_type,
		is_tax_exempt, constructions, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.VillageID, p.PropertyNo, p.WardNo, p.OwnerName, p.AadharNumber,
		p.SpouseName, p.OccupierName, p.Address, p.Mobile, p.Mobile2, p.Directions, p.WaterTaxType,
		p.IsTaxExempt, p.Constructions, p.Status, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicatePropertyNo
		case isForeignKeyViolation(err):
			return domain.ErrNotFound
		}
		return fmt.Errorf("propertyRepo.Create: %w", err)
	}
	return nil
}

func (r *propertyRepo) GetByID(ctx context.Context, villageID, propertyID uuid.UUID) (*domain.Property, error) {
	var p domain.Property
	err := r.db.GetContext(ctx, &p,
		"SELECT * FROM properties WHERE id = $1 AND village_id = $2", propertyID, villageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("propertyRepo.GetByID: %w", err)
	}
	return &p, nil
}

func (r *propertyRepo) ListByVillage(ctx context.Context, villageID uuid.UUID, offset, limit int) ([]domain.Property, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM properties WHERE village_id = $1", villageID)
	if err != nil {
		return nil, 0, fmt.Errorf("propertyRepo.ListByVillage count: %w", err)
	}

	var props []domain.Property
	err = r.db.SelectContext(ctx, &props,
		"SELECT * FROM properties WHERE village_id = $1 ORDER BY property_no ASC LIMIT $2 OFFSET $3",
		villageID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("propertyRepo.ListByVillage: %w", err)
	}
	return props, total, nil
}

func (r *propertyRepo) ListAllByVillage(ctx context.Context, villageID uuid.UUID) ([]domain.Property, error) {
	var props []domain.Property
	err := r.db.SelectContext(ctx, &props,
		"SELECT * FROM properties WHERE village_id = $1 ORDER BY ward_no ASC, property_no ASC", villageID)
	if err != nil {
		return nil, fmt.Errorf("propertyRepo.ListAllByVillage: %w", err)
	}
	return props, nil
}

func (r *propertyRepo) Update(ctx context.Context, p *domain.Property) error {
	p.UpdatedAt = time.Now().UTC()
	query := `UPDATE properties SET property_no = $1, ward_no = $2, owner_name = $3, aadhar_number = $4,
		spouse_name = $5, occupier_name = $6, address = $7, mobile = $8, mobile2 = $9, directions = $10,
		water_tax_type = $11, is_tax_exempt = $12, constructions = $13, status = $14, updated_at = $15
		WHERE id = $16 AND village_id = $17`
	result, err := r.db.ExecContext(ctx, query,
		p.PropertyNo, p.WardNo, p.OwnerName, p.AadharNumber, p.SpouseName, p.OccupierName,
		p.Address, p.Mobile, p.Mobile2, p.Directions, p.WaterTaxType, p.IsTaxExempt,
		p.Constructions, p.Status, p.UpdatedAt, p.ID, p.VillageID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicatePropertyNo
		}
		return fmt.Errorf("propertyRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *propertyRepo) Delete(ctx context.Context, villageID, propertyID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM properties WHERE id = $1 AND village_id = $2", propertyID, villageID)
	if err != nil {
		return fmt.Errorf("propertyRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
