package store

import (
	"fmt"
	"time"
)

// sqliteTimeLayouts are the text forms SQLite produces for timestamps.
var sqliteTimeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.RFC3339Nano,
}

// scanTime is a sql.Scanner for timestamp columns. PostgreSQL returns
// time.Time; SQLite may return the stored text when the column type is not
// known to the driver (e.g. in RETURNING clauses).
type scanTime struct {
	t *time.Time
}

// Scan implements sql.Scanner.
func (s scanTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*s.t = v
		return nil
	case nil:
		*s.t = time.Time{}
		return nil
	case string:
		return s.parse(v)
	case []byte:
		return s.parse(string(v))
	default:
		return fmt.Errorf("unsupported timestamp type %T", src)
	}
}

func (s scanTime) parse(v string) error {
	for _, layout := range sqliteTimeLayouts {
		if parsed, err := time.Parse(layout, v); err == nil {
			*s.t = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", v)
}
