package common

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeID canonicalizes a Notion identifier. Raw ids are often pasted
// without hyphens; a 32-hex-character id is regrouped into the canonical
// 8-4-4-4-12 form and validated. Anything else is returned unchanged so the
// API can reject it with a useful error.
func NormalizeID(raw string) string {
	clean := strings.NewReplacer("-", "", " ", "").Replace(raw)
	if len(clean) != 32 {
		return raw
	}

	grouped := strings.Join([]string{
		clean[0:8], clean[8:12], clean[12:16], clean[16:20], clean[20:32],
	}, "-")
	if _, err := uuid.Parse(grouped); err != nil {
		return raw
	}
	return grouped
}

// ParseIDList splits a comma-separated id list and normalizes each entry.
// Empty entries are dropped.
func ParseIDList(value string) []string {
	var ids []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ids = append(ids, NormalizeID(part))
	}
	return ids
}
