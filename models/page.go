package models

import (
	"fmt"
	"strings"
	"time"
)

// Page represents one record of a Notion database: an opaque id, an optional
// last-edited timestamp and a schema-free property map.
type Page struct {
	ID             string                   `json:"id"`
	CreatedTime    *time.Time               `json:"created_time,omitempty"`
	LastEditedTime *time.Time               `json:"last_edited_time,omitempty"`
	Properties     map[string]PropertyValue `json:"properties"`
}

// Title returns the concatenated plain text of the page's title property.
// Pages without a usable title fall back to a short-id placeholder.
func (p Page) Title() string {
	for _, prop := range p.Properties {
		if prop.Kind != KindTitle || len(prop.Title) == 0 {
			continue
		}
		var sb strings.Builder
		for _, span := range prop.Title {
			sb.WriteString(span.PlainText)
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	if p.ID != "" {
		return fmt.Sprintf("Untitled (%s...)", shortID(p.ID))
	}
	return "Untitled"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
