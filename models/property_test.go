package models

import "testing"

func TestPropertyValueIsFilled(t *testing.T) {
	num := 3.14
	tests := []struct {
		name string
		prop PropertyValue
		want bool
	}{
		{"title with text", PropertyValue{Kind: KindTitle, Title: []RichText{{PlainText: "x"}}}, true},
		{"empty title", PropertyValue{Kind: KindTitle}, false},
		{"rich_text with spans", PropertyValue{Kind: KindRichText, RichText: []RichText{{PlainText: "x"}}}, true},
		{"empty rich_text", PropertyValue{Kind: KindRichText}, false},
		{"number set", PropertyValue{Kind: KindNumber, Number: &num}, true},
		{"number nil", PropertyValue{Kind: KindNumber}, false},
		{"select set", PropertyValue{Kind: KindSelect, Select: &SelectOption{Name: "a"}}, true},
		{"select nil", PropertyValue{Kind: KindSelect}, false},
		{"multi_select with tags", PropertyValue{Kind: KindMultiSelect, MultiSelect: []SelectOption{{Name: "a"}}}, true},
		{"multi_select empty", PropertyValue{Kind: KindMultiSelect}, false},
		{"date set", PropertyValue{Kind: KindDate, Date: &DateValue{Start: "2025-01-01"}}, true},
		{"date nil", PropertyValue{Kind: KindDate}, false},
		{"checkbox false still filled", PropertyValue{Kind: KindCheckbox, Checkbox: false}, true},
		{"url set", PropertyValue{Kind: KindURL, URL: "https://example.com"}, true},
		{"url empty", PropertyValue{Kind: KindURL}, false},
		{"email set", PropertyValue{Kind: KindEmail, Email: "a@b.c"}, true},
		{"phone empty", PropertyValue{Kind: KindPhoneNumber}, false},
		{"relation with targets", PropertyValue{Kind: KindRelation, Relation: []RelationRef{{ID: "x"}}}, true},
		{"relation empty", PropertyValue{Kind: KindRelation}, false},
		{"files attached", PropertyValue{Kind: KindFiles, Files: []FileRef{{Name: "f.pdf"}}}, true},
		{"files empty", PropertyValue{Kind: KindFiles}, false},
		{"created_time always filled", PropertyValue{Kind: KindCreatedTime}, true},
		{"last_edited_by always filled", PropertyValue{Kind: KindLastEditedBy}, true},
		{"formula always filled", PropertyValue{Kind: KindFormula}, true},
		{"rollup always filled", PropertyValue{Kind: KindRollup}, true},
		{"unknown kind never filled", PropertyValue{Kind: "status"}, false},
		{"empty kind never filled", PropertyValue{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.prop.IsFilled(); got != tt.want {
				t.Errorf("IsFilled() = %v, want %v", got, tt.want)
			}
		})
	}
}
