package notion

import (
	"encoding/json"
	"fmt"
	"regexp"
	"time"
)

// bareDatePattern matches an ISO 8601 calendar date with no time component.
var bareDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// rfc3339Offset renders UTC as +00:00 rather than Z, so bare dates format
// back as YYYY-MM-DDT00:00:00+00:00.
const rfc3339Offset = "2006-01-02T15:04:05.999999999-07:00"

// DateValue is a single date or instant from the API. A bare YYYY-MM-DD
// string parses by appending a synthetic midnight UTC; the date-only flag
// keeps the two forms distinct for re-serialization. Full timestamps are
// normalized to UTC, preserving the instant but not the original offset
// rendering.
type DateValue struct {
	instant  time.Time
	dateOnly bool
}

// ParseDateValue classifies a string as a bare date or an RFC 3339
// timestamp. Any other shape fails with ErrInvalidDate.
func ParseDateValue(s string) (DateValue, error) {
	if bareDatePattern.MatchString(s) {
		t, err := time.Parse(time.RFC3339, s+"T00:00:00Z")
		if err != nil {
			return DateValue{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		return DateValue{instant: t, dateOnly: true}, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return DateValue{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}
	return DateValue{instant: t.UTC()}, nil
}

// NewDate builds a date-only value.
func NewDate(year int, month time.Month, day int) DateValue {
	return DateValue{
		instant:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		dateOnly: true,
	}
}

// NewDateTime builds a full-timestamp value, normalized to UTC.
func NewDateTime(t time.Time) DateValue {
	return DateValue{instant: t.UTC()}
}

// Time returns the value as an instant. Date-only values report midnight UTC.
func (d DateValue) Time() time.Time {
	return d.instant
}

// DateOnly reports whether the value carries no time component.
func (d DateValue) DateOnly() bool {
	return d.dateOnly
}

// IsZero reports whether the value is unset.
func (d DateValue) IsZero() bool {
	return d.instant.IsZero() && !d.dateOnly
}

// Equal reports whether two values denote the same instant and form.
func (d DateValue) Equal(other DateValue) bool {
	return d.dateOnly == other.dateOnly && d.instant.Equal(other.instant)
}

// String renders the value in RFC 3339 form. Date-only values render as
// their midnight-UTC form; timestamps keep their instant with the offset
// normalized to +00:00.
func (d DateValue) String() string {
	return d.instant.UTC().Format(rfc3339Offset)
}

func (d DateValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DateValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{
			Err: fmt.Errorf("%w: %v", ErrInvalidDate, err),
			Raw: cloneRaw(data),
		}
	}

	v, err := ParseDateValue(s)
	if err != nil {
		return &DecodeError{Err: err, Raw: cloneRaw(data)}
	}

	*d = v
	return nil
}

// Date is a date property value: a start with an optional end for ranges.
type Date struct {
	Start DateValue  `json:"start"`
	End   *DateValue `json:"end,omitempty"`
}

// String renders the date, or "start - end" for ranges.
func (d Date) String() string {
	if d.End != nil {
		return d.Start.String() + " - " + d.End.String()
	}
	return d.Start.String()
}
