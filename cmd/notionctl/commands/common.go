package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/valksor/go-notion/httpclient"
	"github.com/valksor/go-notion/internal/log"
	"github.com/valksor/go-notion/internal/token"
	"github.com/valksor/go-notion/notion"
)

// newClient builds an authenticated client with the retrying transport.
// Token resolution order: env vars, then the config file.
func newClient() (*notion.Client, error) {
	tok, err := token.Resolve(cfg.API.Token)
	if err != nil {
		return nil, err
	}

	retry := httpclient.DefaultRetryConfig()
	if cfg.API.MaxRetries > 0 {
		retry.MaxRetries = cfg.API.MaxRetries
	}

	opts := []notion.Option{
		notion.WithBaseTransport(httpclient.NewRetryingTransport(retry)),
	}
	if cfg.API.Version != "" {
		opts = append(opts, notion.WithVersion(cfg.API.Version))
	}

	return notion.NewClient(tok, opts...), nil
}

// resolveRef parses a user-supplied reference and records it in the recent
// list. Settings save failures are logged, not fatal.
func resolveRef(input string) (*notion.Ref, error) {
	ref, err := notion.ParseRef(input)
	if err != nil {
		return nil, err
	}

	settings.AddRecentRef(input)
	if err := settings.Save(); err != nil {
		log.Debug("save settings", log.Err(err))
	}

	return ref, nil
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

// formatTime renders a timestamp for table output.
func formatTime(v notion.DateValue) string {
	if v.IsZero() {
		return "-"
	}
	if v.DateOnly() {
		return v.Time().Format("2006-01-02")
	}
	return v.Time().Format(time.RFC3339)
}

// truncate shortens s for column display.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
