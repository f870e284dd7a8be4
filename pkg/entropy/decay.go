// Package entropy implements the metric layer of the audit: pure, stateless
// aggregation functions that turn a batch of page records into normalized
// 0-100 statistics, plus the weighted health scorer that combines them.
//
// Every function takes its inputs (records, thresholds, clock) explicitly and
// returns a result struct; nothing here keeps state between calls. The one
// exception to "no I/O" is the mention-density sampler, which consults a
// BlockFetcher collaborator per sampled record.
package entropy

import (
	"math"
	"sort"
	"time"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

// DefaultDecayThresholds are the staleness windows (in days) used when the
// caller does not supply its own.
var DefaultDecayThresholds = []int{30, 90, 150, 300}

// staleListCap bounds the per-threshold stale record lists in multi-threshold
// results so reports stay readable on large databases.
const staleListCap = 50

// timestampLayout is the display format for last-edited timestamps carried in
// report exemplars.
const timestampLayout = "2006-01-02 15:04:05"

// StaleRecord is one report exemplar of a page that exceeded a staleness
// threshold.
type StaleRecord struct {
	PageID     string
	Title      string
	LastEdited string
	DaysOld    int
}

// DecayResult is the output of the single-threshold time decay metric.
type DecayResult struct {
	// Rate is the share of records older than the threshold, in percent of
	// ALL input records. Records without a timestamp never enter the
	// numerator but stay in the denominator, so missing timestamps lower
	// the apparent decay rather than inflating it.
	Rate     float64
	Outdated []StaleRecord
}

// ThresholdDecay holds the per-threshold slice of a MultiDecayResult.
type ThresholdDecay struct {
	Count   int
	Rate    float64
	Records []StaleRecord // oldest first, capped at staleListCap
}

// MultiDecayResult is the output of the multi-threshold time decay metric.
// Thresholds always contains an entry per requested threshold, even when the
// input is empty.
type MultiDecayResult struct {
	TotalRecords int
	Thresholds   map[int]ThresholdDecay
}

// ageDays returns the whole number of days between lastEdited and now,
// rounded toward negative infinity.
func ageDays(now, lastEdited time.Time) int {
	return int(math.Floor(now.Sub(lastEdited).Hours() / 24))
}

// TimeDecay computes the single-threshold time decay metric: the share of
// pages not edited within thresholdDays of now, along with the full list of
// those pages. Pages without an edit timestamp are skipped.
func TimeDecay(pages []models.Page, thresholdDays int, now time.Time) DecayResult {
	if len(pages) == 0 {
		return DecayResult{}
	}

	var outdated []StaleRecord
	for _, page := range pages {
		if page.LastEditedTime == nil {
			continue
		}
		age := ageDays(now, *page.LastEditedTime)
		if age > thresholdDays {
			outdated = append(outdated, StaleRecord{
				PageID:     page.ID,
				Title:      page.Title(),
				LastEdited: page.LastEditedTime.Format(timestampLayout),
				DaysOld:    age,
			})
		}
	}

	return DecayResult{
		Rate:     float64(len(outdated)) / float64(len(pages)) * 100,
		Outdated: outdated,
	}
}

// MultiThresholdDecay computes decay rates for several staleness windows at
// once. Ages are computed and sorted (oldest first) a single time; each
// threshold then takes its prefix of the shared ordering, so per-threshold
// lists agree with each other and with the single sort.
func MultiThresholdDecay(pages []models.Page, thresholds []int, now time.Time) MultiDecayResult {
	if len(thresholds) == 0 {
		thresholds = DefaultDecayThresholds
	}

	result := MultiDecayResult{
		TotalRecords: len(pages),
		Thresholds:   make(map[int]ThresholdDecay, len(thresholds)),
	}
	if len(pages) == 0 {
		for _, t := range thresholds {
			result.Thresholds[t] = ThresholdDecay{}
		}
		return result
	}

	aged := make([]StaleRecord, 0, len(pages))
	for _, page := range pages {
		if page.LastEditedTime == nil {
			continue
		}
		aged = append(aged, StaleRecord{
			PageID:     page.ID,
			Title:      page.Title(),
			LastEdited: page.LastEditedTime.Format(timestampLayout),
			DaysOld:    ageDays(now, *page.LastEditedTime),
		})
	}
	sort.SliceStable(aged, func(i, j int) bool {
		return aged[i].DaysOld > aged[j].DaysOld
	})

	total := len(pages)
	for _, threshold := range thresholds {
		// aged is sorted oldest first, so everything beyond the threshold
		// is a prefix.
		count := sort.Search(len(aged), func(i int) bool {
			return aged[i].DaysOld <= threshold
		})

		records := aged[:count]
		if len(records) > staleListCap {
			records = records[:staleListCap]
		}

		result.Thresholds[threshold] = ThresholdDecay{
			Count:   count,
			Rate:    float64(count) / float64(total) * 100,
			Records: append([]StaleRecord(nil), records...),
		}
	}
	return result
}
