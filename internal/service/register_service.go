package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"grampanchayat/internal/domain"
	"grampanchayat/internal/export"
	"grampanchayat/internal/port"
)

// Register formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// RenderedRegister is a register file ready to stream.
type RenderedRegister struct {
	Filename    string
	ContentType string
	Body        []byte
}

// ArchivedRegister describes a register stored in object storage.
type ArchivedRegister struct {
	Key         string    `json:"key"`
	URL         string    `json:"url"`
	GeneratedAt time.Time `json:"generated_at"`
}

// RegisterService renders village assessment registers.
type RegisterService interface {
	Render(ctx context.Context, villageID uuid.UUID, asOf *time.Time, format string) (*RenderedRegister, error)
	Archive(ctx context.Context, villageID uuid.UUID, asOf *time.Time) (*ArchivedRegister, error)
}

type registerService struct {
	assessments AssessmentService
	storage     port.ObjectStorage
	now         func() time.Time
}

// NewRegisterService creates a new RegisterService. storage may be nil when
// archiving is disabled.
func NewRegisterService(assessments AssessmentService, storage port.ObjectStorage) RegisterService {
	return NewRegisterServiceWithClock(assessments, storage, time.Now)
}

// NewRegisterServiceWithClock is NewRegisterService with an injectable clock.
func NewRegisterServiceWithClock(assessments AssessmentService, storage port.ObjectStorage, now func() time.Time) RegisterService {
	return &registerService{assessments: assessments, storage: storage, now: now}
}

func (s *registerService) Render(ctx context.Context, villageID uuid.UUID, asOf *time.Time, format string) (*RenderedRegister, error) {
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX {
		return nil, domain.ErrUnsupportedFormat
	}

	reg, err := s.build(ctx, villageID, asOf)
	if err != nil {
		return nil, err
	}
	return render(reg, format)
}

func (s *registerService) Archive(ctx context.Context, villageID uuid.UUID, asOf *time.Time) (*ArchivedRegister, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageDisabled
	}

	reg, err := s.build(ctx, villageID, asOf)
	if err != nil {
		return nil, err
	}
	out, err := render(reg, FormatXLSX)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("registers/%s/%s.xlsx", villageID, reg.GeneratedAt.Format("20060102-150405"))
	if _, err := s.storage.Put(ctx, port.PutObjectInput{
		Key:         key,
		Body:        bytes.NewReader(out.Body),
		ContentType: out.ContentType,
		Size:        int64(len(out.Body)),
	}); err != nil {
		return nil, fmt.Errorf("register.Archive: %w", err)
	}

	url, err := s.storage.PresignGet(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("register.Archive: %w", err)
	}
	return &ArchivedRegister{Key: key, URL: url, GeneratedAt: reg.GeneratedAt}, nil
}

func (s *registerService) build(ctx context.Context, villageID uuid.UUID, asOf *time.Time) (*export.Register, error) {
	va, err := s.assessments.AssessVillage(ctx, villageID, asOf)
	if err != nil {
		return nil, err
	}

	reg := &export.Register{
		VillageName: va.Village.Name,
		VillageCode: va.Village.Code,
		AsOf:        va.AsOf,
		Year:        va.Year,
		GeneratedAt: s.now().UTC(),
		Entries:     make([]export.Entry, 0, len(va.Entries)),
	}
	for _, e := range va.Entries {
		reg.Entries = append(reg.Entries, export.Entry{Property: e.Property, Assessment: e.Assessment})
	}
	return reg, nil
}

func render(reg *export.Register, format string) (*RenderedRegister, error) {
	var buf bytes.Buffer
	out := &RenderedRegister{Filename: export.BuildFilename(reg.VillageName, format, reg.GeneratedAt)}

	switch format {
	case FormatXLSX:
		if err := export.WriteXLSX(&buf, reg); err != nil {
			return nil, fmt.Errorf("rendering xlsx register: %w", err)
		}
		out.ContentType = xlsxContentType
	default:
		if err := export.WriteCSV(&buf, reg); err != nil {
			return nil, fmt.Errorf("rendering csv register: %w", err)
		}
		out.ContentType = "text/csv; charset=utf-8"
	}
	out.Body = buf.Bytes()
	return out, nil
}
