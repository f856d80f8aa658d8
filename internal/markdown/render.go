// Package markdown renders Notion block trees as markdown text.
package markdown

import (
	"strings"

	"github.com/valksor/go-notion/notion"
)

// Render converts blocks to markdown. Inline children of list items and
// quotes are rendered indented under their parent.
func Render(blocks []notion.Block) string {
	var md strings.Builder
	renderBlocks(&md, blocks, 0)
	return md.String()
}

func renderBlocks(md *strings.Builder, blocks []notion.Block, depth int) {
	for _, block := range blocks {
		renderBlock(md, block, depth)
	}
}

func renderBlock(md *strings.Builder, block notion.Block, depth int) {
	indent := strings.Repeat("  ", depth)

	switch block.Type {
	case notion.BlockTypeParagraph:
		if block.Paragraph != nil {
			md.WriteString(indent)
			writeRichText(md, block.Paragraph.RichText)
			md.WriteString("\n\n")
		}
	case notion.BlockTypeHeading1:
		writeHeading(md, indent, "# ", block.Heading1)
	case notion.BlockTypeHeading2:
		writeHeading(md, indent, "## ", block.Heading2)
	case notion.BlockTypeHeading3:
		writeHeading(md, indent, "### ", block.Heading3)
	case notion.BlockTypeBulletedListItem:
		if block.BulletedListItem != nil {
			md.WriteString(indent)
			md.WriteString("- ")
			writeRichText(md, block.BulletedListItem.RichText)
			md.WriteString("\n")
		}
	case notion.BlockTypeNumberedListItem:
		if block.NumberedListItem != nil {
			md.WriteString(indent)
			md.WriteString("1. ")
			writeRichText(md, block.NumberedListItem.RichText)
			md.WriteString("\n")
		}
	case notion.BlockTypeToDo:
		if block.ToDo != nil {
			checkbox := "- [ ] "
			if block.ToDo.Checked != nil && *block.ToDo.Checked {
				checkbox = "- [x] "
			}
			md.WriteString(indent)
			md.WriteString(checkbox)
			writeRichText(md, block.ToDo.RichText)
			md.WriteString("\n")
		}
	case notion.BlockTypeQuote:
		if block.Quote != nil {
			md.WriteString(indent)
			md.WriteString("> ")
			writeRichText(md, block.Quote.RichText)
			md.WriteString("\n\n")
		}
	case notion.BlockTypeCallout:
		if block.Callout != nil {
			md.WriteString(indent)
			md.WriteString("> ")
			if block.Callout.Icon != nil && block.Callout.Icon.Emoji != "" {
				md.WriteString(block.Callout.Icon.Emoji)
				md.WriteString(" ")
			}
			writeRichText(md, block.Callout.RichText)
			md.WriteString("\n\n")
		}
	case notion.BlockTypeCode:
		if block.Code != nil {
			md.WriteString(indent)
			md.WriteString("```")
			md.WriteString(string(block.Code.Language))
			md.WriteString("\n")
			md.WriteString(notion.PlainText(block.Code.RichText))
			md.WriteString("\n")
			md.WriteString(indent)
			md.WriteString("```\n\n")
		}
	case notion.BlockTypeDivider:
		md.WriteString(indent)
		md.WriteString("---\n\n")
	case notion.BlockTypeImage:
		if block.Image != nil {
			md.WriteString(indent)
			md.WriteString("![](")
			md.WriteString(block.Image.URL())
			md.WriteString(")\n\n")
		}
	case notion.BlockTypeVideo:
		writeFileLink(md, indent, "video", block.Video)
	case notion.BlockTypePDF:
		writeFileLink(md, indent, "pdf", block.PDF)
	case notion.BlockTypeFile:
		if block.File != nil {
			label := "file"
			if caption := notion.PlainText(block.File.Caption); caption != "" {
				label = caption
			}
			writeFileLink(md, indent, label, &block.File.File)
		}
	case notion.BlockTypeChildPage:
		if block.ChildPage != nil {
			md.WriteString(indent)
			md.WriteString("📄 ")
			md.WriteString(block.ChildPage.Title)
			md.WriteString("\n\n")
		}
	case notion.BlockTypeChildDatabase:
		if block.ChildDatabase != nil {
			md.WriteString(indent)
			md.WriteString("🗃 ")
			md.WriteString(block.ChildDatabase.Title)
			md.WriteString("\n\n")
		}
	case notion.BlockTypeColumnList, notion.BlockTypeColumn:
		// Columns flatten; only their children render.
	default:
		// Unknown block kinds render nothing.
	}

	if children := block.Children(); children != nil {
		childDepth := depth
		switch block.Type {
		case notion.BlockTypeBulletedListItem, notion.BlockTypeNumberedListItem, notion.BlockTypeToDo:
			childDepth++
		}
		renderBlocks(md, children, childDepth)
	}
}

func writeHeading(md *strings.Builder, indent, prefix string, heading *notion.Heading) {
	if heading == nil {
		return
	}
	md.WriteString(indent)
	md.WriteString(prefix)
	writeRichText(md, heading.RichText)
	md.WriteString("\n\n")
}

func writeFileLink(md *strings.Builder, indent, label string, file *notion.File) {
	if file == nil {
		return
	}
	md.WriteString(indent)
	md.WriteString("[")
	md.WriteString(label)
	md.WriteString("](")
	md.WriteString(file.URL())
	md.WriteString(")\n\n")
}

// writeRichText renders spans with their annotations. Nested markers follow
// bold > italic > strikethrough order; code spans ignore other annotations.
func writeRichText(md *strings.Builder, spans []notion.RichText) {
	for _, span := range spans {
		text := span.PlainText

		if span.Annotations.Code {
			text = "`" + text + "`"
		} else {
			if span.Annotations.Strikethrough {
				text = "~~" + text + "~~"
			}
			if span.Annotations.Italic {
				text = "*" + text + "*"
			}
			if span.Annotations.Bold {
				text = "**" + text + "**"
			}
		}

		if span.Href != "" {
			text = "[" + text + "](" + span.Href + ")"
		}

		md.WriteString(text)
	}
}
