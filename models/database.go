package models

import (
	"fmt"
	"strings"
)

// Database describes one Notion database (a collection of pages sharing a
// property schema). DataSourceID is set when the database was discovered
// through the data-source search API and is preferred for querying.
type Database struct {
	ID             string     `json:"id"`
	DataSourceID   string     `json:"data_source_id,omitempty"`
	TitleSpans     []RichText `json:"title,omitempty"`
	CreatedTime    string     `json:"created_time,omitempty"`
	LastEditedTime string     `json:"last_edited_time,omitempty"`
}

// Title returns the database's plain text title, or a short-id placeholder.
func (d Database) Title() string {
	var sb strings.Builder
	for _, span := range d.TitleSpans {
		sb.WriteString(span.PlainText)
	}
	if sb.Len() > 0 {
		return sb.String()
	}
	if d.ID != "" {
		return fmt.Sprintf("Unknown (%s...)", shortID(d.ID))
	}
	return "Untitled Database"
}
