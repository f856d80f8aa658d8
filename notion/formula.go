package notion

import "encoding/json"

// FormulaType names the result kind of a formula property.
type FormulaType string

const (
	FormulaTypeString  FormulaType = "string"
	FormulaTypeNumber  FormulaType = "number"
	FormulaTypeBoolean FormulaType = "boolean"
	FormulaTypeDate    FormulaType = "date"
)

// Formula is a computed property result. Every variant is optional because
// the API may report a formula with no value.
type Formula struct {
	Type FormulaType

	String  *string
	Number  *float64
	Boolean *bool
	Date    *Date

	Unsupported *UnsupportedValue
}

func (f *Formula) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	f.Type = FormulaType(tag)

	switch f.Type {
	case FormulaTypeString:
		f.String, err = optionalField[*string](frag, "string")
	case FormulaTypeNumber:
		f.Number, err = optionalField[*float64](frag, "number")
	case FormulaTypeBoolean:
		f.Boolean, err = optionalField[*bool](frag, "boolean")
	case FormulaTypeDate:
		f.Date, err = optionalField[*Date](frag, "date")
	default:
		f.Unsupported = newUnsupported(tag, data)
	}

	return err
}

func (f Formula) MarshalJSON() ([]byte, error) {
	if f.Unsupported != nil {
		return f.Unsupported.MarshalJSON()
	}

	obj := map[string]any{"type": f.Type}
	switch f.Type {
	case FormulaTypeString:
		obj["string"] = f.String
	case FormulaTypeNumber:
		obj["number"] = f.Number
	case FormulaTypeBoolean:
		obj["boolean"] = f.Boolean
	case FormulaTypeDate:
		obj["date"] = f.Date
	}

	return json.Marshal(obj)
}
