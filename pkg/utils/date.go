package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateOnly = "2006-01-02"

// Date accepts either an RFC 3339 timestamp or a bare calendar date in JSON.
// A bare date is midnight UTC.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		d.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}

	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		d.Time = t.UTC()
		return nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", raw)
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Time.UTC().Format(time.RFC3339Nano))
}

// Ptr returns nil for the zero date
func (d *Date) Ptr() *time.Time {
	if d == nil || d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}
