package entropy

import (
	"time"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

// ActivityResult reports how many pages were edited within the last 7, 30 and
// 90 days. The buckets are independent: a page edited yesterday counts in all
// three. Pages without a timestamp count toward the total only, so their
// presence depresses every rate.
type ActivityResult struct {
	TotalRecords int
	Active7d     int
	Active30d    int
	Active90d    int
	Rate7d       float64
	Rate30d      float64
	Rate90d      float64
}

// Activity computes the recent-edit activity metric.
func Activity(pages []models.Page, now time.Time) ActivityResult {
	result := ActivityResult{TotalRecords: len(pages)}
	if len(pages) == 0 {
		return result
	}

	for _, page := range pages {
		if page.LastEditedTime == nil {
			continue
		}
		age := ageDays(now, *page.LastEditedTime)
		if age <= 7 {
			result.Active7d++
		}
		if age <= 30 {
			result.Active30d++
		}
		if age <= 90 {
			result.Active90d++
		}
	}

	total := float64(len(pages))
	result.Rate7d = float64(result.Active7d) / total * 100
	result.Rate30d = float64(result.Active30d) / total * 100
	result.Rate90d = float64(result.Active90d) / total * 100
	return result
}
