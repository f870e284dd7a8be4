package entropy

import "github.com/Complexivist-Ran/notion-entropy/models"

// RateNotComputable is the sentinel rate returned when a metric cannot be
// derived from the batch's schema. Callers must check HasRelations (or compare
// against this sentinel) before treating the rate as a percentage.
const RateNotComputable = -1.0

// IsolatedRecord is a page that received no inbound relation reference from
// any other page in the batch.
type IsolatedRecord struct {
	PageID string
	Title  string
}

// LinkResult is the output of the link-breakage metric.
//
// The metric detects isolation (zero inbound relation references within the
// batch), not dangling links to deleted targets; the API gives no way to tell
// those apart, and the report wording must keep that distinction.
type LinkResult struct {
	// Rate is the isolated share in percent, or RateNotComputable when the
	// batch has no relation property anywhere.
	Rate           float64
	Isolated       []IsolatedRecord
	HasRelations   bool
	TotalRelations int
}

// LinkBreakage builds an in-degree map over the batch and reports the share
// of pages nobody links to. Relation targets outside the batch are ignored:
// the graph is closed-world per batch.
func LinkBreakage(pages []models.Page) LinkResult {
	if len(pages) == 0 {
		return LinkResult{}
	}

	inDegree := make(map[string]int, len(pages))
	for _, page := range pages {
		inDegree[page.ID] = 0
	}

	result := LinkResult{}
	for _, page := range pages {
		for _, prop := range page.Properties {
			if prop.Kind != models.KindRelation {
				continue
			}
			result.HasRelations = true
			result.TotalRelations += len(prop.Relation)
			for _, ref := range prop.Relation {
				if _, ok := inDegree[ref.ID]; ok {
					inDegree[ref.ID]++
				}
			}
		}
	}

	if !result.HasRelations {
		result.Rate = RateNotComputable
		return result
	}

	// Iterate pages rather than the map so the isolated list keeps input
	// order.
	for _, page := range pages {
		if inDegree[page.ID] == 0 {
			result.Isolated = append(result.Isolated, IsolatedRecord{
				PageID: page.ID,
				Title:  page.Title(),
			})
		}
	}
	result.Rate = float64(len(result.Isolated)) / float64(len(pages)) * 100
	return result
}
