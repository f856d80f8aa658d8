package notion

import (
	"encoding/json"
	"fmt"
	"sort"
)

// NumberConfig is the schema configuration of a number property.
type NumberConfig struct {
	Format string `json:"format,omitempty"`
}

// SelectConfig is the schema configuration of a select or multi-select
// property: the set of available options.
type SelectConfig struct {
	Options []SelectOption `json:"options"`
}

// StatusGroup is one group of status options (e.g. "To-do", "Complete").
type StatusGroup struct {
	ID        string   `json:"id,omitempty"`
	Name      string   `json:"name"`
	Color     Color    `json:"color,omitempty"`
	OptionIDs []string `json:"option_ids,omitempty"`
}

// StatusConfig is the schema configuration of a status property.
type StatusConfig struct {
	Options []SelectOption `json:"options"`
	Groups  []StatusGroup  `json:"groups,omitempty"`
}

// FormulaConfig is the schema configuration of a formula property.
type FormulaConfig struct {
	Expression string `json:"expression"`
}

// RelationConfig is the schema configuration of a relation property.
type RelationConfig struct {
	DatabaseID string `json:"database_id"`
}

// DatabaseProperty is a schema descriptor for one database column. It is
// distinct from the concrete Property values pages carry: a select schema
// lists the available options where a select value names the chosen one.
// Variants without configuration (title, rich_text, date, ...) carry only
// the type tag.
type DatabaseProperty struct {
	ID   string
	Name string
	Type PropertyType

	Number      *NumberConfig
	Select      *SelectConfig
	MultiSelect *SelectConfig
	Status      *StatusConfig
	Formula     *FormulaConfig
	Relation    *RelationConfig

	Unsupported *UnsupportedValue
}

func (p *DatabaseProperty) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	if p.ID, err = parseField[string](frag, "id"); err != nil {
		return err
	}
	if p.Name, err = optionalField[string](frag, "name"); err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	p.Type = PropertyType(tag)

	switch p.Type {
	case PropertyTypeNumber:
		p.Number = &NumberConfig{}
		return unmarshalVariant(frag, "number", p.Number)
	case PropertyTypeSelect:
		p.Select = &SelectConfig{}
		return unmarshalVariant(frag, "select", p.Select)
	case PropertyTypeMultiSelect:
		p.MultiSelect = &SelectConfig{}
		return unmarshalVariant(frag, "multi_select", p.MultiSelect)
	case PropertyTypeStatus:
		p.Status = &StatusConfig{}
		return unmarshalVariant(frag, "status", p.Status)
	case PropertyTypeFormula:
		p.Formula = &FormulaConfig{}
		return unmarshalVariant(frag, "formula", p.Formula)
	case PropertyTypeRelation:
		p.Relation = &RelationConfig{}
		return unmarshalVariant(frag, "relation", p.Relation)
	case PropertyTypeTitle, PropertyTypeRichText, PropertyTypeDate,
		PropertyTypeCheckbox, PropertyTypeURL, PropertyTypeEmail,
		PropertyTypePhoneNumber, PropertyTypePeople,
		PropertyTypeCreatedTime, PropertyTypeCreatedBy,
		PropertyTypeLastEditedTime, PropertyTypeLastEditedBy:
		// Configless kinds: the type tag is the whole schema.
		return nil
	default:
		p.Unsupported = newUnsupported(tag, data)
		return nil
	}
}

func (p DatabaseProperty) MarshalJSON() ([]byte, error) {
	if p.Unsupported != nil {
		return p.Unsupported.MarshalJSON()
	}

	obj := map[string]any{"id": p.ID, "type": p.Type}
	if p.Name != "" {
		obj["name"] = p.Name
	}

	switch p.Type {
	case PropertyTypeNumber:
		obj["number"] = p.Number
	case PropertyTypeSelect:
		obj["select"] = p.Select
	case PropertyTypeMultiSelect:
		obj["multi_select"] = p.MultiSelect
	case PropertyTypeStatus:
		obj["status"] = p.Status
	case PropertyTypeFormula:
		obj["formula"] = p.Formula
	case PropertyTypeRelation:
		obj["relation"] = p.Relation
	default:
		obj[string(p.Type)] = struct{}{}
	}

	return json.Marshal(obj)
}

// DatabaseProperties indexes a database's schema descriptors by column name
// and by stable id, mirroring Properties for page values.
type DatabaseProperties struct {
	byName map[string]DatabaseProperty
	byID   map[string]DatabaseProperty
}

func (p *DatabaseProperties) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	byName := make(map[string]DatabaseProperty, len(frag))
	byID := make(map[string]DatabaseProperty, len(frag))

	for key, raw := range frag {
		var prop DatabaseProperty
		if err := json.Unmarshal(raw, &prop); err != nil {
			return fmt.Errorf("property %q: %w", key, err)
		}
		if prop.Name == "" {
			prop.Name = key
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

func (p DatabaseProperties) MarshalJSON() ([]byte, error) {
	if p.byName == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p.byName)
}

// Get looks up a schema descriptor by column name.
func (p DatabaseProperties) Get(name string) (DatabaseProperty, bool) {
	prop, ok := p.byName[name]
	return prop, ok
}

// GetByID looks up a schema descriptor by its stable id.
func (p DatabaseProperties) GetByID(id string) (DatabaseProperty, bool) {
	prop, ok := p.byID[id]
	return prop, ok
}

// Names returns the column names in sorted order.
func (p DatabaseProperties) Names() []string {
	names := make([]string, 0, len(p.byName))
	for name := range p.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of columns.
func (p DatabaseProperties) Len() int {
	return len(p.byName)
}
