package service

import (
	"strings"
	"time"

	"grampanchayat/internal/domain"
)

// maxListAll caps unpaginated listings.
const maxListAll = 10000

// DateLayout is the wire format for effective dates and as-of dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date (or a full RFC 3339 timestamp) to UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	return time.Time{}, domain.ErrInvalidDate
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
