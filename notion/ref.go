package notion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Ref is a parsed reference to a Notion page or database.
type Ref struct {
	ID  string // 32-char hex id (UUID without dashes)
	URL string // the full URL, when the reference was a URL
}

// String returns the canonical string representation.
func (r *Ref) String() string {
	if r.URL != "" {
		return r.URL
	}
	return r.ID
}

var (
	// Matches Notion URLs whose path ends in a 32-char hex id, with an
	// optional workspace segment and title slug before it.
	notionURLPattern = regexp.MustCompile(`(?i)^https://www\.notion\.so/([a-zA-Z0-9_-]*/)*([a-zA-Z0-9_-]+-)*([a-f0-9]{32})(?:\?[^/]*)?$`)

	// Matches a 32-char hex id (UUID without dashes).
	hexIDPattern = regexp.MustCompile(`(?i)^[a-f0-9]{32}$`)
)

// ParseRef parses the reference formats users paste:
//   - "notion:page-id" / "nt:page-id"  -> id with scheme
//   - "https://www.notion.so/...-id"   -> URL (with or without scheme)
//   - "a1b2c3d4e5f6..."                -> bare 32-char hex id
//   - "a1b2c3d4-e5f6-..."              -> UUID with dashes
func ParseRef(input string) (*Ref, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty reference", ErrInvalidReference)
	}

	stripped := strings.TrimPrefix(input, "notion:")
	stripped = strings.TrimPrefix(stripped, "nt:")

	if matches := notionURLPattern.FindStringSubmatch(stripped); len(matches) > 3 {
		return &Ref{ID: strings.ToLower(matches[3]), URL: stripped}, nil
	}

	if id, err := uuid.Parse(stripped); err == nil {
		return &Ref{ID: strings.ReplaceAll(id.String(), "-", "")}, nil
	}

	if hexIDPattern.MatchString(stripped) {
		return &Ref{ID: strings.ToLower(stripped)}, nil
	}

	return nil, fmt.Errorf("%w: unrecognized format: %s (expected 32-char id, UUID, or Notion URL)", ErrInvalidReference, input)
}

// ExtractID extracts the trailing id from a Notion URL, or "" when the URL
// does not carry one.
func ExtractID(url string) string {
	if matches := notionURLPattern.FindStringSubmatch(url); len(matches) > 3 {
		return strings.ToLower(matches[3])
	}
	return ""
}

// NormalizeID converts any accepted reference form to a lowercase 32-char
// hex id. Unrecognized input passes through unchanged so the API can report
// it.
func NormalizeID(id string) string {
	if ref, err := ParseRef(id); err == nil {
		return ref.ID
	}
	return id
}
