package notion

import (
	"encoding/json"
	"testing"
)

func TestFileUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantURL string
		hosted  bool
		wantErr bool
	}{
		{
			name:    "hosted file",
			input:   `{"type":"file","file":{"url":"https://s3.example/x.png","expiry_time":"2023-06-01T00:00:00Z"}}`,
			wantURL: "https://s3.example/x.png",
			hosted:  true,
		},
		{
			name:    "external file",
			input:   `{"type":"external","external":{"url":"https://example.com/x.png"}}`,
			wantURL: "https://example.com/x.png",
		},
		{
			name:    "known tag without payload",
			input:   `{"type":"file"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f File
			err := json.Unmarshal([]byte(tt.input), &f)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if f.URL() != tt.wantURL {
				t.Errorf("URL() = %q, want %q", f.URL(), tt.wantURL)
			}
			if tt.hosted {
				if f.File == nil {
					t.Fatal("File = nil for hosted file")
				}
				if f.File.ExpiryTime.IsZero() {
					t.Error("hosted file should carry an expiry time")
				}
			} else if f.External == nil {
				t.Error("External = nil for external file")
			}
		})
	}
}

func TestFileUnknownTypePreserved(t *testing.T) {
	original := `{"type":"file_upload","file_upload":{"id":"u-1"}}`

	var f File
	if err := json.Unmarshal([]byte(original), &f); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if f.Unsupported == nil {
		t.Fatal("Unsupported = nil for unknown type")
	}
	if f.URL() != "" {
		t.Errorf("URL() = %q, want empty for unknown type", f.URL())
	}

	out, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(out) != original {
		t.Errorf("round trip = %s, want %s", out, original)
	}
}

func TestIconUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, i Icon)
	}{
		{
			name:  "emoji",
			input: `{"type":"emoji","emoji":"🔥"}`,
			check: func(t *testing.T, i Icon) {
				if i.Type != IconTypeEmoji || i.Emoji != "🔥" {
					t.Errorf("Icon = %+v", i)
				}
			},
		},
		{
			name:  "external",
			input: `{"type":"external","external":{"url":"https://example.com/icon.png"}}`,
			check: func(t *testing.T, i Icon) {
				if i.External == nil || i.External.URL != "https://example.com/icon.png" {
					t.Errorf("Icon.External = %+v", i.External)
				}
			},
		},
		{
			name:  "unknown type",
			input: `{"type":"custom_emoji","custom_emoji":{"id":"e-1"}}`,
			check: func(t *testing.T, i Icon) {
				if i.Unsupported == nil || i.Unsupported.Type != "custom_emoji" {
					t.Errorf("Icon.Unsupported = %+v", i.Unsupported)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i Icon
			if err := json.Unmarshal([]byte(tt.input), &i); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			tt.check(t, i)
		})
	}
}
