package notion

import "encoding/json"

// BlockListResponse is one page of results from a block children listing.
type BlockListResponse struct {
	Object     string  `json:"object,omitempty"`
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

// PageListResponse is one page of results from a database query.
type PageListResponse struct {
	Object     string `json:"object,omitempty"`
	Results    []Page `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// UserListResponse is one page of results from the user listing.
type UserListResponse struct {
	Object     string `json:"object,omitempty"`
	Results    []User `json:"results"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor,omitempty"`
}

// SearchResponse is one page of results from the search endpoint.
type SearchResponse struct {
	Object     string         `json:"object,omitempty"`
	Results    []SearchResult `json:"results"`
	HasMore    bool           `json:"has_more"`
	NextCursor string         `json:"next_cursor,omitempty"`
}

// SearchResult is one search match: a page or a database, discriminated by
// the object field.
type SearchResult struct {
	Object string

	Page        *Page
	Database    *Database
	Unsupported *UnsupportedValue
}

func (r *SearchResult) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	tag, err := frag.discriminator("object", data)
	if err != nil {
		return err
	}
	r.Object = tag

	switch tag {
	case "page":
		r.Page = &Page{}
		if err := json.Unmarshal(data, r.Page); err != nil {
			r.Page = nil
			return err
		}
		return nil
	case "database":
		r.Database = &Database{}
		if err := json.Unmarshal(data, r.Database); err != nil {
			r.Database = nil
			return err
		}
		return nil
	default:
		r.Unsupported = newUnsupported(tag, data)
		return nil
	}
}

func (r SearchResult) MarshalJSON() ([]byte, error) {
	switch {
	case r.Unsupported != nil:
		return r.Unsupported.MarshalJSON()
	case r.Page != nil:
		return json.Marshal(r.Page)
	case r.Database != nil:
		return json.Marshal(r.Database)
	default:
		return []byte("null"), nil
	}
}

// DatabaseQueryRequest narrows and orders a database query.
type DatabaseQueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
}

// Filter is a query filter. Leaf filters name a property and one condition;
// And/Or compose sub-filters.
type Filter struct {
	Property    string             `json:"property,omitempty"`
	Status      *StatusFilter      `json:"status,omitempty"`
	Select      *SelectFilter      `json:"select,omitempty"`
	MultiSelect *MultiSelectFilter `json:"multi_select,omitempty"`
	Checkbox    *CheckboxFilter    `json:"checkbox,omitempty"`
	And         []Filter           `json:"and,omitempty"`
	Or          []Filter           `json:"or,omitempty"`
}

// StatusFilter filters by status property.
type StatusFilter struct {
	Equals       string `json:"equals,omitempty"`
	DoesNotEqual string `json:"does_not_equal,omitempty"`
	IsEmpty      bool   `json:"is_empty,omitempty"`
	IsNotEmpty   bool   `json:"is_not_empty,omitempty"`
}

// SelectFilter filters by select property.
type SelectFilter struct {
	Equals       string `json:"equals,omitempty"`
	DoesNotEqual string `json:"does_not_equal,omitempty"`
	IsEmpty      bool   `json:"is_empty,omitempty"`
	IsNotEmpty   bool   `json:"is_not_empty,omitempty"`
}

// MultiSelectFilter filters by multi_select property.
type MultiSelectFilter struct {
	Contains       string `json:"contains,omitempty"`
	DoesNotContain string `json:"does_not_contain,omitempty"`
	IsEmpty        bool   `json:"is_empty,omitempty"`
	IsNotEmpty     bool   `json:"is_not_empty,omitempty"`
}

// CheckboxFilter filters by checkbox property.
type CheckboxFilter struct {
	Equals       *bool `json:"equals,omitempty"`
	DoesNotEqual *bool `json:"does_not_equal,omitempty"`
}

// Sort orders query results by a property or timestamp.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"` // "ascending" or "descending"
}

// SearchRequest queries pages and databases shared with the integration.
type SearchRequest struct {
	Query       string        `json:"query,omitempty"`
	Filter      *SearchFilter `json:"filter,omitempty"`
	Sort        *SearchSort   `json:"sort,omitempty"`
	StartCursor string        `json:"start_cursor,omitempty"`
	PageSize    int           `json:"page_size,omitempty"`
}

// SearchFilter restricts search results to pages or databases.
type SearchFilter struct {
	Value    string `json:"value"`    // "page" or "database"
	Property string `json:"property"` // always "object"
}

// SearchSort orders search results by last edited time.
type SearchSort struct {
	Direction string `json:"direction"`
	Timestamp string `json:"timestamp"` // always "last_edited_time"
}
