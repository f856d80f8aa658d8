package notion

import "encoding/json"

// RichTextType names the variant of a rich text span.
type RichTextType string

const (
	RichTextTypeText     RichTextType = "text"
	RichTextTypeMention  RichTextType = "mention"
	RichTextTypeEquation RichTextType = "equation"
)

// Annotations represents text formatting shared by all rich text variants.
type Annotations struct {
	Color         Color `json:"color,omitempty"`
	Bold          bool  `json:"bold,omitempty"`
	Italic        bool  `json:"italic,omitempty"`
	Strikethrough bool  `json:"strikethrough,omitempty"`
	Underline     bool  `json:"underline,omitempty"`
	Code          bool  `json:"code,omitempty"`
}

// Link represents a URL link attached to a text span.
type Link struct {
	URL string `json:"url"`
}

// Text is the literal-text variant of a rich text span.
type Text struct {
	Link    *Link  `json:"link,omitempty"`
	Content string `json:"content"`
}

// Equation is an inline LaTeX expression.
type Equation struct {
	Expression string `json:"expression"`
}

// LinkPreview is a mention of an external link unfurled by Notion.
type LinkPreview struct {
	URL string `json:"url"`
}

// RichText is one formatted span of inline content. Exactly one of the
// variant pointers matching Type is set; types this library does not know
// land in Unsupported with the original fragment preserved.
type RichText struct {
	Type        RichTextType
	PlainText   string
	Href        string
	Annotations Annotations

	Text        *Text
	Mention     *Mention
	Equation    *Equation
	Unsupported *UnsupportedValue
}

func (r *RichText) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}

	r.Type = RichTextType(tag)
	if r.PlainText, err = optionalField[string](frag, "plain_text"); err != nil {
		return err
	}
	if r.Href, err = optionalField[string](frag, "href"); err != nil {
		return err
	}
	if r.Annotations, err = optionalField[Annotations](frag, "annotations"); err != nil {
		return err
	}

	switch r.Type {
	case RichTextTypeText:
		r.Text = &Text{}
		return unmarshalVariant(frag, "text", r.Text)
	case RichTextTypeMention:
		r.Mention = &Mention{}
		return unmarshalVariant(frag, "mention", r.Mention)
	case RichTextTypeEquation:
		r.Equation = &Equation{}
		return unmarshalVariant(frag, "equation", r.Equation)
	default:
		r.Unsupported = newUnsupported(tag, data)
		return nil
	}
}

func (r RichText) MarshalJSON() ([]byte, error) {
	if r.Unsupported != nil {
		return r.Unsupported.MarshalJSON()
	}

	type span struct {
		Type        RichTextType `json:"type"`
		Text        *Text        `json:"text,omitempty"`
		Mention     *Mention     `json:"mention,omitempty"`
		Equation    *Equation    `json:"equation,omitempty"`
		Annotations Annotations  `json:"annotations"`
		PlainText   string       `json:"plain_text"`
		Href        string       `json:"href,omitempty"`
	}

	return json.Marshal(span{
		Type:        r.Type,
		Text:        r.Text,
		Mention:     r.Mention,
		Equation:    r.Equation,
		Annotations: r.Annotations,
		PlainText:   r.PlainText,
		Href:        r.Href,
	})
}

// PlainText concatenates the plain text of a span sequence.
func PlainText(spans []RichText) string {
	var out string
	for _, s := range spans {
		out += s.PlainText
	}
	return out
}

// NewText builds a literal text span, as used in query payloads and tests.
func NewText(content string) RichText {
	return RichText{
		Type:      RichTextTypeText,
		PlainText: content,
		Text:      &Text{Content: content},
	}
}

// MentionType names the variant of a mention.
type MentionType string

const (
	MentionTypeUser        MentionType = "user"
	MentionTypePage        MentionType = "page"
	MentionTypeDatabase    MentionType = "database"
	MentionTypeDate        MentionType = "date"
	MentionTypeLinkPreview MentionType = "link_preview"
)

// Mention is an inline reference to another Notion object, a user, a date,
// or an external link preview.
type Mention struct {
	Type MentionType

	User        *User
	Page        *PartialPage
	Database    *PartialDatabase
	Date        *Date
	LinkPreview *LinkPreview
	Unsupported *UnsupportedValue
}

func (m *Mention) UnmarshalJSON(data []byte) error {
	frag, err := parseFragment(data)
	if err != nil {
		return err
	}

	tag, err := frag.discriminator("type", data)
	if err != nil {
		return err
	}
	m.Type = MentionType(tag)

	switch m.Type {
	case MentionTypeUser:
		m.User = &User{}
		return unmarshalVariant(frag, "user", m.User)
	case MentionTypePage:
		m.Page = &PartialPage{}
		return unmarshalVariant(frag, "page", m.Page)
	case MentionTypeDatabase:
		m.Database = &PartialDatabase{}
		return unmarshalVariant(frag, "database", m.Database)
	case MentionTypeDate:
		m.Date = &Date{}
		return unmarshalVariant(frag, "date", m.Date)
	case MentionTypeLinkPreview:
		m.LinkPreview = &LinkPreview{}
		return unmarshalVariant(frag, "link_preview", m.LinkPreview)
	default:
		m.Unsupported = newUnsupported(tag, data)
		return nil
	}
}

func (m Mention) MarshalJSON() ([]byte, error) {
	if m.Unsupported != nil {
		return m.Unsupported.MarshalJSON()
	}

	type mention struct {
		Type        MentionType      `json:"type"`
		User        *User            `json:"user,omitempty"`
		Page        *PartialPage     `json:"page,omitempty"`
		Database    *PartialDatabase `json:"database,omitempty"`
		Date        *Date            `json:"date,omitempty"`
		LinkPreview *LinkPreview     `json:"link_preview,omitempty"`
	}

	return json.Marshal(mention{
		Type:        m.Type,
		User:        m.User,
		Page:        m.Page,
		Database:    m.Database,
		Date:        m.Date,
		LinkPreview: m.LinkPreview,
	})
}
