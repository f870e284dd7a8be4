package entropy

import (
	"testing"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

func pageWithProps(id string, props map[string]models.PropertyValue) models.Page {
	return models.Page{ID: id, Properties: props}
}

func TestCompleteness_CheckboxOnlyIsFullyComplete(t *testing.T) {
	pages := []models.Page{
		pageWithProps("a", map[string]models.PropertyValue{
			"Done": {Kind: models.KindCheckbox, Checkbox: false},
		}),
	}

	result := Completeness(pages)

	if !almostEqual(result.AvgCompleteness, 100.0) {
		t.Errorf("AvgCompleteness = %v, want 100.0", result.AvgCompleteness)
	}
	if result.FullyComplete != 1 {
		t.Errorf("FullyComplete = %d, want 1", result.FullyComplete)
	}
}

func TestCompleteness_Buckets(t *testing.T) {
	number := 42.0
	pages := []models.Page{
		// 1/1 filled = 100 -> fully complete
		pageWithProps("full", map[string]models.PropertyValue{
			"N": {Kind: models.KindNumber, Number: &number},
		}),
		// 1/2 filled = 50 -> partially complete
		pageWithProps("half", map[string]models.PropertyValue{
			"N": {Kind: models.KindNumber, Number: &number},
			"S": {Kind: models.KindSelect},
		}),
		// 0/1 filled = 0 -> mostly empty
		pageWithProps("empty", map[string]models.PropertyValue{
			"S": {Kind: models.KindSelect},
		}),
		// no properties at all -> mostly empty, scores 0
		pageWithProps("bare", nil),
	}

	result := Completeness(pages)

	if result.FullyComplete != 1 {
		t.Errorf("FullyComplete = %d, want 1", result.FullyComplete)
	}
	if result.PartiallyComplete != 1 {
		t.Errorf("PartiallyComplete = %d, want 1", result.PartiallyComplete)
	}
	if result.MostlyEmpty != 2 {
		t.Errorf("MostlyEmpty = %d, want 2", result.MostlyEmpty)
	}
	if !almostEqual(result.AvgCompleteness, (100+50+0+0)/4.0) {
		t.Errorf("AvgCompleteness = %v, want 37.5", result.AvgCompleteness)
	}
}

func TestCompleteness_BandBoundaries(t *testing.T) {
	// 4/5 filled = 80 lands exactly on the fully-complete boundary;
	// 3/10 filled = 30 lands exactly on the partially-complete boundary.
	number := 1.0
	filled := models.PropertyValue{Kind: models.KindNumber, Number: &number}
	empty := models.PropertyValue{Kind: models.KindSelect}

	eighty := map[string]models.PropertyValue{
		"a": filled, "b": filled, "c": filled, "d": filled, "e": empty,
	}
	thirty := map[string]models.PropertyValue{}
	for _, name := range []string{"a", "b", "c"} {
		thirty[name] = filled
	}
	for _, name := range []string{"d", "e", "f", "g", "h", "i", "j"} {
		thirty[name] = empty
	}

	result := Completeness([]models.Page{
		pageWithProps("eighty", eighty),
		pageWithProps("thirty", thirty),
	})

	if result.FullyComplete != 1 {
		t.Errorf("FullyComplete = %d, want 1 (80%% is fully complete)", result.FullyComplete)
	}
	if result.PartiallyComplete != 1 {
		t.Errorf("PartiallyComplete = %d, want 1 (30%% is partially complete)", result.PartiallyComplete)
	}
}

func TestCompleteness_UnknownKindNotFilled(t *testing.T) {
	pages := []models.Page{
		pageWithProps("a", map[string]models.PropertyValue{
			"Weird": {Kind: "status"},
		}),
	}
	result := Completeness(pages)
	if result.MostlyEmpty != 1 {
		t.Errorf("MostlyEmpty = %d, want 1 for unknown-kind-only record", result.MostlyEmpty)
	}
}

func TestCompleteness_EmptyInput(t *testing.T) {
	result := Completeness(nil)
	if result.AvgCompleteness != 0 || result.FullyComplete != 0 {
		t.Errorf("empty input: got %+v, want zeros", result)
	}
}
