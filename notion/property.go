package notion

import (
	"encoding/json"
	"fmt"
	"sort"
)

// PropertyType names the variant of a page property value or of a database
// property schema descriptor.
type PropertyType string

const (
	PropertyTypeTitle          PropertyType = "title"
	PropertyTypeRichText       PropertyType = "rich_text"
	PropertyTypeNumber         PropertyType = "number"
	PropertyTypeSelect         PropertyType = "select"
	PropertyTypeMultiSelect    PropertyType = "multi_select"
	PropertyTypeStatus         PropertyType = "status"
	PropertyTypeDate           PropertyType = "date"
	PropertyTypeFormula        PropertyType = "formula"
	PropertyTypeCheckbox       PropertyType = "checkbox"
	PropertyTypeURL            PropertyType = "url"
	PropertyTypeEmail          PropertyType = "email"
	PropertyTypePhoneNumber    PropertyType = "phone_number"
	PropertyTypePeople         PropertyType = "people"
	PropertyTypeRelation       PropertyType = "relation"
	PropertyTypeCreatedTime    PropertyType = "created_time"
	PropertyTypeCreatedBy      PropertyType = "created_by"
	PropertyTypeLastEditedTime PropertyType = "last_edited_time"
	PropertyTypeLastEditedBy   PropertyType = "last_edited_by"
)

// SelectOption is one choice in a select, multi-select, or status property.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color Color  `json:"color,omitempty"`
}

// Property is one concrete property value on a page. The field matching Type
// carries the value; unknown type tags land in Unsupported with the original
// fragment preserved, so new upstream property kinds decode without error.
type Property struct {
	ID      string
	Type    PropertyType
	NextURL string

	Title          []RichText
	RichText       []RichText
	Number         *float64
	Select         *SelectOption
	MultiSelect    []SelectOption
	Status         *SelectOption
	Date           *Date
	Formula        *Formula
	Checkbox       bool
	URL            string
	Email          string
	PhoneNumber    string
	People         []User
	Relation       []PartialPage
	CreatedTime    *DateValue
	CreatedBy      *PartialUser
	LastEditedTime *DateValue
	LastEditedBy   *PartialUser

	Unsupported *UnsupportedValue
}

func (p *Property) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	if p.ID, err = parseField[string](frag, "id"); err != nil {
		return err
	}
	if p.NextURL, err = optionalField[string](frag, "next_url"); err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	p.Type = PropertyType(tag)

	switch p.Type {
	case PropertyTypeTitle:
		p.Title, err = parseField[[]RichText](frag, "title")
	case PropertyTypeRichText:
		p.RichText, err = parseField[[]RichText](frag, "rich_text")
	case PropertyTypeNumber:
		p.Number, err = optionalField[*float64](frag, "number")
	case PropertyTypeSelect:
		p.Select, err = optionalField[*SelectOption](frag, "select")
	case PropertyTypeMultiSelect:
		p.MultiSelect, err = parseField[[]SelectOption](frag, "multi_select")
	case PropertyTypeStatus:
		p.Status, err = optionalField[*SelectOption](frag, "status")
	case PropertyTypeDate:
		p.Date, err = optionalField[*Date](frag, "date")
	case PropertyTypeFormula:
		p.Formula = &Formula{}
		err = unmarshalVariant(frag, "formula", p.Formula)
	case PropertyTypeCheckbox:
		p.Checkbox, err = parseField[bool](frag, "checkbox")
	case PropertyTypeURL:
		p.URL, err = optionalField[string](frag, "url")
	case PropertyTypeEmail:
		p.Email, err = optionalField[string](frag, "email")
	case PropertyTypePhoneNumber:
		p.PhoneNumber, err = optionalField[string](frag, "phone_number")
	case PropertyTypePeople:
		p.People, err = parseField[[]User](frag, "people")
	case PropertyTypeRelation:
		p.Relation, err = parseField[[]PartialPage](frag, "relation")
	case PropertyTypeCreatedTime:
		p.CreatedTime, err = parsePointerField[DateValue](frag, "created_time")
	case PropertyTypeCreatedBy:
		p.CreatedBy, err = parsePointerField[PartialUser](frag, "created_by")
	case PropertyTypeLastEditedTime:
		p.LastEditedTime, err = parsePointerField[DateValue](frag, "last_edited_time")
	case PropertyTypeLastEditedBy:
		p.LastEditedBy, err = parsePointerField[PartialUser](frag, "last_edited_by")
	default:
		p.Unsupported = newUnsupported(tag, data)
	}

	return err
}

// parsePointerField is parseField returning a pointer to the decoded value.
func parsePointerField[T any](f fragment, key string) (*T, error) {
	v, err := parseField[T](f, key)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (p Property) MarshalJSON() ([]byte, error) {
	if p.Unsupported != nil {
		return p.Unsupported.MarshalJSON()
	}

	obj := map[string]any{"id": p.ID, "type": p.Type}
	if p.NextURL != "" {
		obj["next_url"] = p.NextURL
	}

	switch p.Type {
	case PropertyTypeTitle:
		obj["title"] = emptyIfNil(p.Title)
	case PropertyTypeRichText:
		obj["rich_text"] = emptyIfNil(p.RichText)
	case PropertyTypeNumber:
		obj["number"] = p.Number
	case PropertyTypeSelect:
		obj["select"] = p.Select
	case PropertyTypeMultiSelect:
		obj["multi_select"] = emptyIfNil(p.MultiSelect)
	case PropertyTypeStatus:
		obj["status"] = p.Status
	case PropertyTypeDate:
		obj["date"] = p.Date
	case PropertyTypeFormula:
		obj["formula"] = p.Formula
	case PropertyTypeCheckbox:
		obj["checkbox"] = p.Checkbox
	case PropertyTypeURL:
		obj["url"] = p.URL
	case PropertyTypeEmail:
		obj["email"] = p.Email
	case PropertyTypePhoneNumber:
		obj["phone_number"] = p.PhoneNumber
	case PropertyTypePeople:
		obj["people"] = emptyIfNil(p.People)
	case PropertyTypeRelation:
		obj["relation"] = emptyIfNil(p.Relation)
	case PropertyTypeCreatedTime:
		obj["created_time"] = p.CreatedTime
	case PropertyTypeCreatedBy:
		obj["created_by"] = p.CreatedBy
	case PropertyTypeLastEditedTime:
		obj["last_edited_time"] = p.LastEditedTime
	case PropertyTypeLastEditedBy:
		obj["last_edited_by"] = p.LastEditedBy
	}

	return json.Marshal(obj)
}

// emptyIfNil keeps list-valued payloads as [] rather than null on re-encode.
func emptyIfNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// PlainText extracts a human-readable string from text-bearing property
// kinds, and "" for everything else.
func (p Property) PlainText() string {
	switch {
	case len(p.Title) > 0:
		return PlainText(p.Title)
	case len(p.RichText) > 0:
		return PlainText(p.RichText)
	case p.Select != nil:
		return p.Select.Name
	case p.Status != nil:
		return p.Status.Name
	default:
		return ""
	}
}

// Properties indexes a page's decoded property values both by display name
// and by each value's stable id. Both views resolve to the same values; the
// map is fixed once decoded.
type Properties struct {
	byName map[string]Property
	byID   map[string]Property
}

func (p *Properties) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	byName := make(map[string]Property, len(frag))
	byID := make(map[string]Property, len(frag))

	for key, raw := range frag {
		var prop Property
		if err := json.Unmarshal(raw, &prop); err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		byName[key] = prop
		if prop.ID != "" {
			byID[prop.ID] = prop
		}
	}

	p.byName = byName
	p.byID = byID
	return nil
}

// MarshalJSON re-emits the by-name object.
func (p Properties) MarshalJSON() ([]byte, error) {
	if p.byName == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.byName)
}

// Get looks up a property by its display name.
func (p Properties) Get(name string) (Property, bool) {
	prop, ok := p.byName[name]
	return prop, ok
}

// GetByID looks up a property by its stable id, which survives renames.
func (p Properties) GetByID(id string) (Property, bool) {
	prop, ok := p.byID[id]
	return prop, ok
}

// Names returns the property display names in sorted order.
func (p Properties) Names() []string {
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of properties.
func (p Properties) Len() int {
	return len(p.byName)
}

// Title returns the plain text of the page's title property, if any.
func (p Properties) Title() string {
	for _, prop := range p.byName {
		if prop.Type == PropertyTypeTitle {
			return PlainText(prop.Title)
		}
	}
	return ""
}
