package entropy

import "github.com/Complexivist-Ran/notion-entropy/models"

// uncategorizedListCap bounds the uncategorized exemplar list.
const uncategorizedListCap = 20

// RecordRef identifies a page in an exemplar list.
type RecordRef struct {
	PageID string
	Title  string
}

// CategorizationResult reports how many pages carry at least one
// categorization signal.
type CategorizationResult struct {
	Categorized   int
	Uncategorized int
	CoverageRate  float64
	// UncategorizedRecords lists up to uncategorizedListCap pages without
	// any categorization signal, in input order.
	UncategorizedRecords []RecordRef
}

// Categorization computes the share of pages that are categorized: a
// non-empty select tag, at least one multi_select tag, or at least one
// relation target, checked in that order.
func Categorization(pages []models.Page) CategorizationResult {
	result := CategorizationResult{}
	if len(pages) == 0 {
		return result
	}

	for _, page := range pages {
		if isCategorized(page) {
			result.Categorized++
			continue
		}
		if len(result.UncategorizedRecords) < uncategorizedListCap {
			result.UncategorizedRecords = append(result.UncategorizedRecords, RecordRef{
				PageID: page.ID,
				Title:  page.Title(),
			})
		}
	}

	result.Uncategorized = len(pages) - result.Categorized
	result.CoverageRate = float64(result.Categorized) / float64(len(pages)) * 100
	return result
}

func isCategorized(page models.Page) bool {
	for _, prop := range page.Properties {
		switch prop.Kind {
		case models.KindSelect:
			if prop.Select != nil {
				return true
			}
		case models.KindMultiSelect:
			if len(prop.MultiSelect) > 0 {
				return true
			}
		case models.KindRelation:
			if len(prop.Relation) > 0 {
				return true
			}
		}
	}
	return false
}
