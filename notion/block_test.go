package notion

import (
	"encoding/json"
	"errors"
	"testing"
)

// blockShell wraps a type tag and payload in the envelope fields every block
// carries.
func blockShell(rest string) string {
	return `{
		"object": "block",
		"id": "b-1",
		"parent": {"type":"page_id","page_id":"p-1"},
		"created_time": "2023-01-01T00:00:00Z",
		"last_edited_time": "2023-01-02T00:00:00Z",
		"created_by": {"id":"u-1"},
		"last_edited_by": {"id":"u-2"},
		"has_children": false,
		"archived": false,
		` + rest + `
	}`
}

func TestBlockUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType BlockType
		check    func(t *testing.T, b Block)
		wantErr  bool
	}{
		{
			name:     "paragraph",
			input:    blockShell(`"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"hi"},"plain_text":"hi"}],"color":"default"}`),
			wantType: BlockTypeParagraph,
			check: func(t *testing.T, b Block) {
				if b.Paragraph == nil {
					t.Fatal("Paragraph = nil")
				}
				if got := PlainText(b.RichTextContent()); got != "hi" {
					t.Errorf("RichTextContent = %q", got)
				}
			},
		},
		{
			name:     "heading with toggle flag",
			input:    blockShell(`"type":"heading_2","heading_2":{"rich_text":[{"type":"text","text":{"content":"Title"},"plain_text":"Title"}],"is_toggleable":true}`),
			wantType: BlockTypeHeading2,
			check: func(t *testing.T, b Block) {
				if b.Heading2 == nil || !b.Heading2.IsToggleable {
					t.Errorf("Heading2 = %+v", b.Heading2)
				}
			},
		},
		{
			name:     "to_do checked",
			input:    blockShell(`"type":"to_do","to_do":{"rich_text":[],"checked":true}`),
			wantType: BlockTypeToDo,
			check: func(t *testing.T, b Block) {
				if b.ToDo == nil || b.ToDo.Checked == nil || !*b.ToDo.Checked {
					t.Errorf("ToDo = %+v", b.ToDo)
				}
			},
		},
		{
			name:     "code with language",
			input:    blockShell(`"type":"code","code":{"rich_text":[{"type":"text","text":{"content":"x := 1"},"plain_text":"x := 1"}],"language":"go"}`),
			wantType: BlockTypeCode,
			check: func(t *testing.T, b Block) {
				if b.Code == nil || b.Code.Language != LanguageGo {
					t.Errorf("Code = %+v", b.Code)
				}
			},
		},
		{
			name:     "code with unlisted language",
			input:    blockShell(`"type":"code","code":{"rich_text":[],"language":"mermaid"}`),
			wantType: BlockTypeCode,
			check: func(t *testing.T, b Block) {
				if b.Code == nil || b.Code.Language != "mermaid" {
					t.Errorf("Code = %+v", b.Code)
				}
			},
		},
		{
			name:     "divider has no payload",
			input:    blockShell(`"type":"divider","divider":{}`),
			wantType: BlockTypeDivider,
			check: func(t *testing.T, b Block) {
				if b.Children() != nil {
					t.Error("divider should have nil children")
				}
			},
		},
		{
			name:     "image",
			input:    blockShell(`"type":"image","image":{"type":"external","external":{"url":"https://example.com/x.png"}}`),
			wantType: BlockTypeImage,
			check: func(t *testing.T, b Block) {
				if b.Image == nil || b.Image.URL() != "https://example.com/x.png" {
					t.Errorf("Image = %+v", b.Image)
				}
			},
		},
		{
			name:     "file with caption",
			input:    blockShell(`"type":"file","file":{"type":"external","external":{"url":"https://example.com/doc.pdf"},"caption":[{"type":"text","text":{"content":"spec sheet"},"plain_text":"spec sheet"}]}`),
			wantType: BlockTypeFile,
			check: func(t *testing.T, b Block) {
				if b.File == nil {
					t.Fatal("File = nil")
				}
				if got := PlainText(b.File.Caption); got != "spec sheet" {
					t.Errorf("Caption = %q", got)
				}
				if b.File.File.URL() != "https://example.com/doc.pdf" {
					t.Errorf("URL = %q", b.File.File.URL())
				}
			},
		},
		{
			name:     "child page",
			input:    blockShell(`"type":"child_page","child_page":{"title":"Sub Page"}`),
			wantType: BlockTypeChildPage,
			check: func(t *testing.T, b Block) {
				if b.ChildPage == nil || b.ChildPage.Title != "Sub Page" {
					t.Errorf("ChildPage = %+v", b.ChildPage)
				}
			},
		},
		{
			name:    "missing shell field",
			input:   `{"id":"b-1","type":"paragraph","paragraph":{"rich_text":[]}}`,
			wantErr: true,
		},
		{
			name:    "missing type tag",
			input:   blockShell(`"paragraph":{"rich_text":[]}`),
			wantErr: true,
		},
		{
			name:    "known tag without payload",
			input:   blockShell(`"type":"paragraph"`),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Block
			err := json.Unmarshal([]byte(tt.input), &b)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if b.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", b.Type, tt.wantType)
			}
			if b.ID != "b-1" {
				t.Errorf("ID = %q, want b-1", b.ID)
			}
			if b.Parent.PageID != "p-1" {
				t.Errorf("Parent = %+v", b.Parent)
			}
			if tt.check != nil {
				tt.check(t, b)
			}
		})
	}
}

func TestBlockMissingShellFieldError(t *testing.T) {
	var b Block
	err := json.Unmarshal([]byte(`{"id":"b-1"}`), &b)
	if !errors.Is(err, ErrNoSuchProperty) {
		t.Errorf("error = %v, want ErrNoSuchProperty", err)
	}
}

func TestBlockUnknownTypeKeepsPayload(t *testing.T) {
	input := blockShell(`"type":"synced_block","synced_block":{"foo":1}`)

	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if b.Type != "synced_block" {
		t.Errorf("Type = %q", b.Type)
	}
	if b.Unsupported == nil {
		t.Fatal("Unsupported = nil")
	}
	if string(b.Unsupported.Raw) != `{"foo":1}` {
		t.Errorf("Unsupported.Raw = %s, want payload fragment", b.Unsupported.Raw)
	}
}

func TestBlockUnknownTypeWithoutPayload(t *testing.T) {
	input := blockShell(`"type":"breadcrumb"`)

	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if b.Unsupported == nil || b.Unsupported.Raw != nil {
		t.Errorf("Unsupported = %+v, want tag with nil payload", b.Unsupported)
	}
}

func TestBlockNestedChildren(t *testing.T) {
	child := blockShell(`"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"inner"},"plain_text":"inner"}]}`)
	input := blockShell(`"type":"bulleted_list_item","bulleted_list_item":{"rich_text":[{"type":"text","text":{"content":"outer"},"plain_text":"outer"}],"children":[` + child + `]}`)

	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	children := b.Children()
	if len(children) != 1 {
		t.Fatalf("Children len = %d, want 1", len(children))
	}
	if got := PlainText(children[0].RichTextContent()); got != "inner" {
		t.Errorf("child text = %q, want inner", got)
	}
}

func TestBlockHasChildrenWithoutInline(t *testing.T) {
	input := `{
		"object": "block",
		"id": "b-1",
		"parent": {"type":"page_id","page_id":"p-1"},
		"created_time": "2023-01-01T00:00:00Z",
		"last_edited_time": "2023-01-02T00:00:00Z",
		"created_by": {"id":"u-1"},
		"last_edited_by": {"id":"u-2"},
		"has_children": true,
		"archived": false,
		"type": "paragraph",
		"paragraph": {"rich_text": []}
	}`

	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	if !b.HasChildren {
		t.Error("HasChildren = false, want true")
	}
	if b.Children() != nil {
		t.Errorf("Children = %v, want nil when none are inlined", b.Children())
	}
}

func TestBlockListOrderPreserved(t *testing.T) {
	makeBlock := func(content string) string {
		return blockShell(`"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"` + content + `"},"plain_text":"` + content + `"}]}`)
	}
	input := `{"object":"list","results":[` + makeBlock("first") + `,` + makeBlock("second") + `,` + makeBlock("third") + `],"has_more":false}`

	var response BlockListResponse
	if err := json.Unmarshal([]byte(input), &response); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	want := []string{"first", "second", "third"}
	if len(response.Results) != len(want) {
		t.Fatalf("Results len = %d, want %d", len(response.Results), len(want))
	}
	for i, block := range response.Results {
		if got := PlainText(block.RichTextContent()); got != want[i] {
			t.Errorf("Results[%d] = %q, want %q", i, got, want[i])
		}
	}
}

func TestBlockMarshalRoundTrip(t *testing.T) {
	input := blockShell(`"type":"quote","quote":{"rich_text":[{"type":"text","text":{"content":"said"},"plain_text":"said"}]}`)

	var b Block
	if err := json.Unmarshal([]byte(input), &b); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}

	out, err := json.Marshal(b)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}

	var again Block
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-Unmarshal error = %v", err)
	}
	if again.Type != BlockTypeQuote || again.Quote == nil {
		t.Errorf("round trip lost payload: %+v", again)
	}
	if got := PlainText(again.RichTextContent()); got != "said" {
		t.Errorf("round trip text = %q, want said", got)
	}
}

func BenchmarkBlockUnmarshal(b *testing.B) {
	data := []byte(blockShell(`"type":"paragraph","paragraph":{"rich_text":[{"type":"text","text":{"content":"Hello world"},"plain_text":"Hello world"}],"color":"default"}`))
	for i := 0; i < b.N; i++ {
		var block Block
		_ = json.Unmarshal(data, &block)
	}
}
