package models

// Property kinds returned by the Notion API. The set is closed: anything the
// API returns outside this list is treated as an unknown kind.
const (
	KindTitle          = "title"
	KindRichText       = "rich_text"
	KindNumber         = "number"
	KindSelect         = "select"
	KindMultiSelect    = "multi_select"
	KindDate           = "date"
	KindCheckbox       = "checkbox"
	KindURL            = "url"
	KindEmail          = "email"
	KindPhoneNumber    = "phone_number"
	KindRelation       = "relation"
	KindFiles          = "files"
	KindCreatedTime    = "created_time"
	KindLastEditedTime = "last_edited_time"
	KindCreatedBy      = "created_by"
	KindLastEditedBy   = "last_edited_by"
	KindFormula        = "formula"
	KindRollup         = "rollup"
)

// RichText is a single rich text span inside a title, rich_text property or
// block payload. Mention is set only for spans of type "mention".
type RichText struct {
	Type      string   `json:"type,omitempty"`
	PlainText string   `json:"plain_text,omitempty"`
	Mention   *Mention `json:"mention,omitempty"`
}

// Mention is an inline cross-reference embedded in rich text. Type is one of
// "page", "database", "user", "date", "link_preview".
type Mention struct {
	Type string `json:"type"`
}

// SelectOption is one tag of a select or multi_select property.
type SelectOption struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// DateValue is the payload of a date property.
type DateValue struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// RelationRef points at another page in the same workspace.
type RelationRef struct {
	ID string `json:"id"`
}

// FileRef is one attachment of a files property.
type FileRef struct {
	Name string `json:"name,omitempty"`
}

// PropertyValue is a tagged union over the Notion property kinds. Kind selects
// which payload field is meaningful; the API sends exactly one payload keyed
// by the type name, so plain JSON decoding leaves the others zero.
type PropertyValue struct {
	Kind        string         `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Number      *float64       `json:"number,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	Checkbox    bool           `json:"checkbox,omitempty"`
	URL         string         `json:"url,omitempty"`
	Email       string         `json:"email,omitempty"`
	PhoneNumber string         `json:"phone_number,omitempty"`
	Relation    []RelationRef  `json:"relation,omitempty"`
	Files       []FileRef      `json:"files,omitempty"`
}

// IsFilled reports whether the property holds a usable value under the
// per-kind predicate table. Checkbox, system and computed kinds always count
// as filled; unknown kinds never do.
func (v PropertyValue) IsFilled() bool {
	switch v.Kind {
	case KindTitle:
		return len(v.Title) > 0
	case KindRichText:
		return len(v.RichText) > 0
	case KindNumber:
		return v.Number != nil
	case KindSelect:
		return v.Select != nil
	case KindMultiSelect:
		return len(v.MultiSelect) > 0
	case KindDate:
		return v.Date != nil
	case KindCheckbox:
		return true
	case KindURL:
		return v.URL != ""
	case KindEmail:
		return v.Email != ""
	case KindPhoneNumber:
		return v.PhoneNumber != ""
	case KindRelation:
		return len(v.Relation) > 0
	case KindFiles:
		return len(v.Files) > 0
	case KindCreatedTime, KindLastEditedTime, KindCreatedBy, KindLastEditedBy:
		return true
	case KindFormula, KindRollup:
		return true
	default:
		return false
	}
}
