package entropy

import (
	"fmt"
	"math"
	"time"

	"github.com/Complexivist-Ran/notion-entropy/models"
)

// testNow is the fixed clock all entropy tests run against.
var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func timePtr(t time.Time) *time.Time { return &t }

// pageAgedDays builds a page whose last edit was daysOld days before testNow.
func pageAgedDays(id string, daysOld int) models.Page {
	edited := testNow.AddDate(0, 0, -daysOld)
	return models.Page{
		ID:             id,
		LastEditedTime: &edited,
		Properties: map[string]models.PropertyValue{
			"Name": titleProp(fmt.Sprintf("Page %s", id)),
		},
	}
}

// pageNoTimestamp builds a page without an edit timestamp.
func pageNoTimestamp(id string) models.Page {
	return models.Page{
		ID: id,
		Properties: map[string]models.PropertyValue{
			"Name": titleProp(fmt.Sprintf("Page %s", id)),
		},
	}
}

func titleProp(text string) models.PropertyValue {
	return models.PropertyValue{
		Kind:  models.KindTitle,
		Title: []models.RichText{{Type: "text", PlainText: text}},
	}
}

func relationProp(targets ...string) models.PropertyValue {
	refs := make([]models.RelationRef, 0, len(targets))
	for _, target := range targets {
		refs = append(refs, models.RelationRef{ID: target})
	}
	return models.PropertyValue{Kind: models.KindRelation, Relation: refs}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
