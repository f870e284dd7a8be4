package entropy

import (
	"testing"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

func TestActivity_BucketsAreIndependent(t *testing.T) {
	// A 5-day-old page counts in all three windows.
	pages := []models.Page{pageAgedDays("a", 5)}
	result := Activity(pages, testNow)

	if result.Active7d != 1 || result.Active30d != 1 || result.Active90d != 1 {
		t.Errorf("buckets = %d/%d/%d, want 1/1/1",
			result.Active7d, result.Active30d, result.Active90d)
	}
}

func TestActivity_MixedAges(t *testing.T) {
	pages := []models.Page{
		pageAgedDays("a", 3),   // in 7d, 30d, 90d
		pageAgedDays("b", 20),  // in 30d, 90d
		pageAgedDays("c", 60),  // in 90d
		pageAgedDays("d", 400), // in none
	}
	result := Activity(pages, testNow)

	if result.Active7d != 1 {
		t.Errorf("Active7d = %d, want 1", result.Active7d)
	}
	if result.Active30d != 2 {
		t.Errorf("Active30d = %d, want 2", result.Active30d)
	}
	if result.Active90d != 3 {
		t.Errorf("Active90d = %d, want 3", result.Active90d)
	}
	if !almostEqual(result.Rate30d, 50.0) {
		t.Errorf("Rate30d = %v, want 50.0", result.Rate30d)
	}
}

func TestActivity_UntimedPagesDepressRates(t *testing.T) {
	pages := []models.Page{
		pageAgedDays("a", 3),
		pageNoTimestamp("b"),
		pageNoTimestamp("c"),
		pageNoTimestamp("d"),
	}
	result := Activity(pages, testNow)

	if result.TotalRecords != 4 {
		t.Errorf("TotalRecords = %d, want 4", result.TotalRecords)
	}
	if !almostEqual(result.Rate7d, 25.0) {
		t.Errorf("Rate7d = %v, want 25.0", result.Rate7d)
	}
}

func TestActivity_EmptyInput(t *testing.T) {
	result := Activity(nil, testNow)
	if result.TotalRecords != 0 || result.Rate7d != 0 || result.Rate30d != 0 || result.Rate90d != 0 {
		t.Errorf("empty input: got %+v, want zeros", result)
	}
}
