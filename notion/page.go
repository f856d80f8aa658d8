package notion

// Page is a Notion page: identity, location in the hierarchy, and its
// property values. All fields are fixed once decoded; refreshing means
// fetching and decoding a new Page.
type Page struct {
	ID             string      `json:"id"`
	URL            string      `json:"url,omitempty"`
	Parent         Parent      `json:"parent"`
	CreatedTime    DateValue   `json:"created_time"`
	LastEditedTime DateValue   `json:"last_edited_time"`
	CreatedBy      PartialUser `json:"created_by"`
	LastEditedBy   PartialUser `json:"last_edited_by"`
	Cover          *File       `json:"cover,omitempty"`
	Icon           *Icon       `json:"icon,omitempty"`
	Properties     Properties  `json:"properties"`
	Archived       bool        `json:"archived"`
}

// Title returns the plain text of the page's title property.
func (p *Page) Title() string {
	return p.Properties.Title()
}
