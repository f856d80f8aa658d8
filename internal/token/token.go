// Package token resolves the Notion API token from its accepted sources.
package token

import (
	"errors"
	"os"
)

// ErrNoToken is returned when no token can be resolved.
var ErrNoToken = errors.New("no notion token found (set NOTION_TOKEN)")

// envVars are checked in priority order; CLI-specific overrides first.
var envVars = []string{
	"NOTIONCTL_TOKEN",
	"NOTION_TOKEN",
	"NOTION_API_KEY",
}

// Resolve resolves the API token.
// Priority order:
//  1. NOTIONCTL_TOKEN env var
//  2. NOTION_TOKEN / NOTION_API_KEY env vars
//  3. configToken (from config.yaml)
//
// Returns ErrNoToken if no token is found.
func Resolve(configToken string) (string, error) {
	for _, envVar := range envVars {
		if token := os.Getenv(envVar); token != "" {
			return token, nil
		}
	}

	if configToken != "" {
		return configToken, nil
	}

	return "", ErrNoToken
}
