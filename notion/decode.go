package notion

import (
	"bytes"
	"encoding/json"
)

// fragment is a JSON object split into raw members, so variant payloads can
// be dispatched on, re-parsed, or preserved verbatim.
type fragment map[string]json.RawMessage

func parseFragment(data []byte) (fragment, error) {
	var frag fragment
	if err := json.Unmarshal(data, &frag); err != nil {
		return nil, newSchemaError("", data, err)
	}
	return frag, nil
}

// discriminator reads the string field naming which union variant a fragment
// encodes. A missing or non-string tag is a decode error, never a fallback.
func (f fragment) discriminator(field string, data []byte) (string, error) {
	raw, ok := f[field]
	if !ok || isNull(raw) {
		return "", newFieldError(ErrMissingDiscriminator, field, data)
	}
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return "", newFieldError(ErrMissingDiscriminator, field, data)
	}
	return tag, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// parseField decodes a required member of a fragment. Absent members report
// ErrNoSuchProperty; present-but-misshapen members report ErrSchemaMismatch
// with the offending payload attached.
func parseField[T any](f fragment, key string) (T, error) {
	var v T
	raw, ok := f[key]
	if !ok {
		return v, newFieldError(ErrNoSuchProperty, key, nil)
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, newSchemaError(key, raw, err)
	}
	return v, nil
}

// optionalField is parseField for members that may be absent or null. Either
// form yields the zero value.
func optionalField[T any](f fragment, key string) (T, error) {
	var v T
	raw, ok := f[key]
	if !ok || isNull(raw) {
		return v, nil
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, newSchemaError(key, raw, err)
	}
	return v, nil
}

// unmarshalVariant decodes the designated sub-field for a matched tag into
// dst. The sub-field must be present: a known tag without its payload is
// upstream drift, not a new variant.
func unmarshalVariant(f fragment, key string, dst any) error {
	raw, ok := f[key]
	if !ok {
		return newFieldError(ErrNoSuchProperty, key, nil)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return newSchemaError(key, raw, err)
	}
	return nil
}

// UnsupportedValue retains a union variant this library does not recognize.
// Raw holds the original fragment verbatim, so unknown upstream data can be
// inspected and re-serialized losslessly.
type UnsupportedValue struct {
	Type string
	Raw  json.RawMessage
}

func newUnsupported(tag string, data []byte) *UnsupportedValue {
	return &UnsupportedValue{Type: tag, Raw: cloneRaw(data)}
}

// MarshalJSON re-emits the preserved fragment unchanged.
func (u *UnsupportedValue) MarshalJSON() ([]byte, error) {
	if u.Raw == nil {
		return []byte("null"), nil
	}
	return cloneRaw(u.Raw), nil
}
