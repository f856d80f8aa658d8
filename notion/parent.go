package notion

import "encoding/json"

// ParentType names where an entity lives in the containment hierarchy.
type ParentType string

const (
	ParentTypePage      ParentType = "page_id"
	ParentTypeDatabase  ParentType = "database_id"
	ParentTypeBlock     ParentType = "block_id"
	ParentTypeWorkspace ParentType = "workspace"
)

// Parent is a reference to the entity that contains a page, database, or
// block. Workspace-rooted entities have no containing id.
type Parent struct {
	Type ParentType

	PageID     string
	DatabaseID string
	BlockID    string
	Workspace  bool

	Unsupported *UnsupportedValue
}

func (p *Parent) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	p.Type = ParentType(tag)

	switch p.Type {
	case ParentTypePage:
		p.PageID, err = parseField[string](frag, "page_id")
	case ParentTypeDatabase:
		p.DatabaseID, err = parseField[string](frag, "database_id")
	case ParentTypeBlock:
		p.BlockID, err = parseField[string](frag, "block_id")
	case ParentTypeWorkspace:
		p.Workspace, err = parseField[bool](frag, "workspace")
	default:
		p.Unsupported = newUnsupported(tag, data)
	}

	return err
}

func (p Parent) MarshalJSON() ([]byte, error) {
	if p.Unsupported != nil {
		return p.Unsupported.MarshalJSON()
	}

	obj := map[string]any{"type": p.Type}
	switch p.Type {
	case ParentTypePage:
		obj["page_id"] = p.PageID
	case ParentTypeDatabase:
		obj["database_id"] = p.DatabaseID
	case ParentTypeBlock:
		obj["block_id"] = p.BlockID
	case ParentTypeWorkspace:
		obj["workspace"] = p.Workspace
	}

	return json.Marshal(obj)
}

// ID returns the containing entity's id, or "" for workspace parents.
func (p Parent) ID() string {
	switch p.Type {
	case ParentTypePage:
		return p.PageID
	case ParentTypeDatabase:
		return p.DatabaseID
	case ParentTypeBlock:
		return p.BlockID
	default:
		return ""
	}
}
