package store

import (
	"fmt"
	"time"
)

// DateLayout is the storage format for calendar-date columns.
const DateLayout = "2006-01-02"

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	DateLayout,
}

// Time scans timestamp and date columns from either driver: the local driver
// yields time.Time, the cloud driver yields the stored text.
type Time struct {
	time.Time
}

func (t *Time) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		t.Time = v
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	case nil:
		t.Time = time.Time{}
		return nil
	}
	return fmt.Errorf("cannot scan %T into store.Time", value)
}

func (t *Time) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as time", s)
}

// NullTime is Time for nullable columns.
type NullTime struct {
	Time  time.Time
	Valid bool
}

func (t *NullTime) Scan(value any) error {
	if value == nil {
		t.Time, t.Valid = time.Time{}, false
		return nil
	}
	var inner Time
	if err := inner.Scan(value); err != nil {
		return err
	}
	t.Time, t.Valid = inner.Time, true
	return nil
}

// Ptr returns the scanned time or nil when the column was NULL.
func (t NullTime) Ptr() *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
