package notion

// Database is a Notion database: identity, title, and the schema of its
// columns. The Properties here are DatabaseProperty schema descriptors, not
// the concrete values its pages carry.
type Database struct {
	ID             string             `json:"id"`
	URL            string             `json:"url,omitempty"`
	Title          []RichText         `json:"title"`
	Description    []RichText         `json:"description,omitempty"`
	Parent         Parent             `json:"parent"`
	CreatedTime    DateValue          `json:"created_time"`
	LastEditedTime DateValue          `json:"last_edited_time"`
	LastEditedBy   PartialUser        `json:"last_edited_by"`
	Icon           *Icon              `json:"icon,omitempty"`
	Cover          *File              `json:"cover,omitempty"`
	Properties     DatabaseProperties `json:"properties"`
	Archived       bool               `json:"archived"`
	IsInline       bool               `json:"is_inline,omitempty"`
}

// TitleText returns the database title as plain text.
func (d *Database) TitleText() string {
	return PlainText(d.Title)
}
