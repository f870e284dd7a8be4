package entropy

import "github.com/Complexivist-Ran/notion-entropy/models"

// Classification bands for per-record completeness scores.
const (
	fullyCompleteMin     = 80.0
	partiallyCompleteMin = 30.0
)

// CompletenessResult aggregates per-record property completeness.
type CompletenessResult struct {
	// AvgCompleteness is the mean per-record score: filled / total
	// properties, as a percentage. Records with no properties score 0.
	AvgCompleteness   float64
	FullyComplete     int // score >= 80
	PartiallyComplete int // 30 <= score < 80
	MostlyEmpty       int // score < 30, including zero-property records
}

// Completeness scores every record by the share of its properties that hold a
// value (per the PropertyValue.IsFilled predicate table) and buckets each
// record into fully complete, partially complete or mostly empty.
func Completeness(pages []models.Page) CompletenessResult {
	result := CompletenessResult{}
	if len(pages) == 0 {
		return result
	}

	var sum float64
	for _, page := range pages {
		score := recordCompleteness(page)
		sum += score
		switch {
		case score >= fullyCompleteMin:
			result.FullyComplete++
		case score >= partiallyCompleteMin:
			result.PartiallyComplete++
		default:
			result.MostlyEmpty++
		}
	}
	result.AvgCompleteness = sum / float64(len(pages))
	return result
}

func recordCompleteness(page models.Page) float64 {
	if len(page.Properties) == 0 {
		return 0
	}
	filled := 0
	for _, prop := range page.Properties {
		if prop.IsFilled() {
			filled++
		}
	}
	return float64(filled) / float64(len(page.Properties)) * 100
}
