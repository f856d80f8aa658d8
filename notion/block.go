package notion

import "encoding/json"

// BlockType names the content variant of a block.
type BlockType string

const (
	BlockTypeParagraph        BlockType = "paragraph"
	BlockTypeHeading1         BlockType = "heading_1"
	BlockTypeHeading2         BlockType = "heading_2"
	BlockTypeHeading3         BlockType = "heading_3"
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	BlockTypeToDo             BlockType = "to_do"
	BlockTypeQuote            BlockType = "quote"
	BlockTypeCallout          BlockType = "callout"
	BlockTypeCode             BlockType = "code"
	BlockTypeImage            BlockType = "image"
	BlockTypeVideo            BlockType = "video"
	BlockTypeFile             BlockType = "file"
	BlockTypePDF              BlockType = "pdf"
	BlockTypeDivider          BlockType = "divider"
	BlockTypeChildPage        BlockType = "child_page"
	BlockTypeChildDatabase    BlockType = "child_database"
	BlockTypeColumn           BlockType = "column"
	BlockTypeColumnList       BlockType = "column_list"
)

// Paragraph is a plain text block.
type Paragraph struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// Heading is a heading block at any of the three levels. Toggleable headings
// fold their siblings in the UI; the flag has no structural meaning here.
type Heading struct {
	RichText     []RichText `json:"rich_text"`
	Color        Color      `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable,omitempty"`
}

// ListItem is a bulleted or numbered list entry.
type ListItem struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// ToDo is a checkbox list entry.
type ToDo struct {
	RichText []RichText `json:"rich_text"`
	Checked  *bool      `json:"checked,omitempty"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// Quote is a block quote.
type Quote struct {
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// Callout is an emphasized block with an optional icon.
type Callout struct {
	Icon     *Icon      `json:"icon,omitempty"`
	RichText []RichText `json:"rich_text"`
	Color    Color      `json:"color,omitempty"`
	Children []Block    `json:"children,omitempty"`
}

// CodeLanguage tags a code block's syntax. Like Color, it is an open string
// enum; tags outside this list decode unchanged.
type CodeLanguage string

const (
	LanguagePlainText  CodeLanguage = "plain text"
	LanguageBash       CodeLanguage = "bash"
	LanguageShell      CodeLanguage = "shell"
	LanguageC          CodeLanguage = "c"
	LanguageCPP        CodeLanguage = "c++"
	LanguageCSS        CodeLanguage = "css"
	LanguageGo         CodeLanguage = "go"
	LanguageHTML       CodeLanguage = "html"
	LanguageJava       CodeLanguage = "java"
	LanguageJavaScript CodeLanguage = "javascript"
	LanguageJSON       CodeLanguage = "json"
	LanguageMarkdown   CodeLanguage = "markdown"
	LanguagePython     CodeLanguage = "python"
	LanguageRuby       CodeLanguage = "ruby"
	LanguageRust       CodeLanguage = "rust"
	LanguageSQL        CodeLanguage = "sql"
	LanguageTypeScript CodeLanguage = "typescript"
	LanguageYAML       CodeLanguage = "yaml"
)

// Code is a code block with a language tag and an optional caption.
type Code struct {
	RichText []RichText   `json:"rich_text"`
	Caption  []RichText   `json:"caption,omitempty"`
	Language CodeLanguage `json:"language,omitempty"`
}

// ChildPage is a stub for a page nested under this block.
type ChildPage struct {
	Title string `json:"title"`
}

// ChildDatabase is a stub for a database nested under this block.
type ChildDatabase struct {
	Title string `json:"title"`
}

// Column is one column of a column list.
type Column struct {
	Children []Block `json:"children,omitempty"`
}

// ColumnList is a horizontal arrangement of columns.
type ColumnList struct {
	Children []Block `json:"children,omitempty"`
}

// FileBlock is a file attachment with an optional caption.
type FileBlock struct {
	File    File
	Caption []RichText
}

func (b *FileBlock) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, &b.File); err != nil {
		return err
	}
	b.Caption, err = optionalField[[]RichText](frag, "caption")
	return err
}

func (b FileBlock) MarshalJSON() ([]byte, error) {
	raw, err := json.Marshal(b.File)
	if err != nil {
		return nil, err
	}
	if len(b.Caption) == 0 {
		return raw, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	caption, err := json.Marshal(b.Caption)
	if err != nil {
		return nil, err
	}
	obj["caption"] = caption
	return json.Marshal(obj)
}

// Block is one node of page content. The field matching Type carries the
// payload; child-bearing payloads hold their children inline when the
// response inlined them. HasChildren set with no inline children only means
// a separate children-listing call would return more blocks.
type Block struct {
	ID             string
	Parent         Parent
	CreatedTime    DateValue
	LastEditedTime DateValue
	CreatedBy      PartialUser
	LastEditedBy   PartialUser
	HasChildren    bool
	Archived       bool
	Type           BlockType

	Paragraph        *Paragraph
	Heading1         *Heading
	Heading2         *Heading
	Heading3         *Heading
	BulletedListItem *ListItem
	NumberedListItem *ListItem
	ToDo             *ToDo
	Quote            *Quote
	Callout          *Callout
	Code             *Code
	Image            *File
	Video            *File
	File             *FileBlock
	PDF              *File
	ChildPage        *ChildPage
	ChildDatabase    *ChildDatabase
	Column           *Column
	ColumnList       *ColumnList

	// Unsupported carries the payload of an unrecognized block type, keyed
	// by its tag, exactly as received.
	Unsupported *UnsupportedValue
}

func (b *Block) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	if b.ID, err = parseField[string](frag, "id"); err != nil {
		return err
	}
	if b.Parent, err = parseField[Parent](frag, "parent"); err != nil {
		return err
	}
	if b.CreatedTime, err = parseField[DateValue](frag, "created_time"); err != nil {
		return err
	}
	if b.LastEditedTime, err = parseField[DateValue](frag, "last_edited_time"); err != nil {
		return err
	}
	if b.CreatedBy, err = parseField[PartialUser](frag, "created_by"); err != nil {
		return err
	}
	if b.LastEditedBy, err = parseField[PartialUser](frag, "last_edited_by"); err != nil {
		return err
	}
	if b.HasChildren, err = parseField[bool](frag, "has_children"); err != nil {
		return err
	}
	if b.Archived, err = parseField[bool](frag, "archived"); err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	b.Type = BlockType(tag)

	switch b.Type {
	case BlockTypeParagraph:
		b.Paragraph = &Paragraph{}
		return unmarshalVariant(frag, tag, b.Paragraph)
	case BlockTypeHeading1:
		b.Heading1 = &Heading{}
		return unmarshalVariant(frag, tag, b.Heading1)
	case BlockTypeHeading2:
		b.Heading2 = &Heading{}
		return unmarshalVariant(frag, tag, b.Heading2)
	case BlockTypeHeading3:
		b.Heading3 = &Heading{}
		return unmarshalVariant(frag, tag, b.Heading3)
	case BlockTypeBulletedListItem:
		b.BulletedListItem = &ListItem{}
		return unmarshalVariant(frag, tag, b.BulletedListItem)
	case BlockTypeNumberedListItem:
		b.NumberedListItem = &ListItem{}
		return unmarshalVariant(frag, tag, b.NumberedListItem)
	case BlockTypeToDo:
		b.ToDo = &ToDo{}
		return unmarshalVariant(frag, tag, b.ToDo)
	case BlockTypeQuote:
		b.Quote = &Quote{}
		return unmarshalVariant(frag, tag, b.Quote)
	case BlockTypeCallout:
		b.Callout = &Callout{}
		return unmarshalVariant(frag, tag, b.Callout)
	case BlockTypeCode:
		b.Code = &Code{}
		return unmarshalVariant(frag, tag, b.Code)
	case BlockTypeImage:
		b.Image = &File{}
		return unmarshalVariant(frag, tag, b.Image)
	case BlockTypeVideo:
		b.Video = &File{}
		return unmarshalVariant(frag, tag, b.Video)
	case BlockTypeFile:
		b.File = &FileBlock{}
		return unmarshalVariant(frag, tag, b.File)
	case BlockTypePDF:
		b.PDF = &File{}
		return unmarshalVariant(frag, tag, b.PDF)
	case BlockTypeDivider:
		// No payload beyond the tag.
		return nil
	case BlockTypeChildPage:
		b.ChildPage = &ChildPage{}
		return unmarshalVariant(frag, tag, b.ChildPage)
	case BlockTypeChildDatabase:
		b.ChildDatabase = &ChildDatabase{}
		return unmarshalVariant(frag, tag, b.ChildDatabase)
	case BlockTypeColumn:
		b.Column = &Column{}
		return unmarshalVariant(frag, tag, b.Column)
	case BlockTypeColumnList:
		b.ColumnList = &ColumnList{}
		return unmarshalVariant(frag, tag, b.ColumnList)
	default:
		b.Unsupported = newUnsupported(tag, frag[tag])
		return nil
	}
}

func (b Block) MarshalJSON() ([]byte, error) {
	obj := map[string]any{
		"object":           "block",
		"id":               b.ID,
		"parent":           b.Parent,
		"created_time":     b.CreatedTime,
		"last_edited_time": b.LastEditedTime,
		"created_by":       b.CreatedBy,
		"last_edited_by":   b.LastEditedBy,
		"has_children":     b.HasChildren,
		"archived":         b.Archived,
		"type":             b.Type,
	}

	if payload := b.content(); payload != nil {
		obj[string(b.Type)] = payload
	} else if b.Type == BlockTypeDivider {
		obj[string(b.Type)] = struct{}{}
	}

	return json.Marshal(obj)
}

// content returns the payload value matching Type, or nil for payload-free
// and unknown-without-payload blocks.
func (b Block) content() any {
	switch b.Type {
	case BlockTypeParagraph:
		return b.Paragraph
	case BlockTypeHeading1:
		return b.Heading1
	case BlockTypeHeading2:
		return b.Heading2
	case BlockTypeHeading3:
		return b.Heading3
	case BlockTypeBulletedListItem:
		return b.BulletedListItem
	case BlockTypeNumberedListItem:
		return b.NumberedListItem
	case BlockTypeToDo:
		return b.ToDo
	case BlockTypeQuote:
		return b.Quote
	case BlockTypeCallout:
		return b.Callout
	case BlockTypeCode:
		return b.Code
	case BlockTypeImage:
		return b.Image
	case BlockTypeVideo:
		return b.Video
	case BlockTypeFile:
		return b.File
	case BlockTypePDF:
		return b.PDF
	case BlockTypeChildPage:
		return b.ChildPage
	case BlockTypeChildDatabase:
		return b.ChildDatabase
	case BlockTypeColumn:
		return b.Column
	case BlockTypeColumnList:
		return b.ColumnList
	default:
		if b.Unsupported != nil && b.Unsupported.Raw != nil {
			return b.Unsupported
		}
		return nil
	}
}

// Children returns the inline child blocks of child-bearing payloads, or nil.
func (b Block) Children() []Block {
	switch b.Type {
	case BlockTypeParagraph:
		if b.Paragraph != nil {
			return b.Paragraph.Children
		}
	case BlockTypeBulletedListItem:
		if b.BulletedListItem != nil {
			return b.BulletedListItem.Children
		}
	case BlockTypeNumberedListItem:
		if b.NumberedListItem != nil {
			return b.NumberedListItem.Children
		}
	case BlockTypeToDo:
		if b.ToDo != nil {
			return b.ToDo.Children
		}
	case BlockTypeQuote:
		if b.Quote != nil {
			return b.Quote.Children
		}
	case BlockTypeCallout:
		if b.Callout != nil {
			return b.Callout.Children
		}
	case BlockTypeColumn:
		if b.Column != nil {
			return b.Column.Children
		}
	case BlockTypeColumnList:
		if b.ColumnList != nil {
			return b.ColumnList.Children
		}
	}
	return nil
}

// RichTextContent returns the payload's rich text, or nil for block kinds
// that carry none.
func (b Block) RichTextContent() []RichText {
	switch b.Type {
	case BlockTypeParagraph:
		if b.Paragraph != nil {
			return b.Paragraph.RichText
		}
	case BlockTypeHeading1:
		if b.Heading1 != nil {
			return b.Heading1.RichText
		}
	case BlockTypeHeading2:
		if b.Heading2 != nil {
			return b.Heading2.RichText
		}
	case BlockTypeHeading3:
		if b.Heading3 != nil {
			return b.Heading3.RichText
		}
	case BlockTypeBulletedListItem:
		if b.BulletedListItem != nil {
			return b.BulletedListItem.RichText
		}
	case BlockTypeNumberedListItem:
		if b.NumberedListItem != nil {
			return b.NumberedListItem.RichText
		}
	case BlockTypeToDo:
		if b.ToDo != nil {
			return b.ToDo.RichText
		}
	case BlockTypeQuote:
		if b.Quote != nil {
			return b.Quote.RichText
		}
	case BlockTypeCallout:
		if b.Callout != nil {
			return b.Callout.RichText
		}
	case BlockTypeCode:
		if b.Code != nil {
			return b.Code.RichText
		}
	}
	return nil
}
