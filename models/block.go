package models

import "encoding/json"

// Block is one block-level element of a page body. The API nests the
// type-specific payload under a key named after the block type
// ({"type":"paragraph","paragraph":{"rich_text":[...]}}), so decoding pulls
// the rich text out of whichever payload the type points at.
type Block struct {
	ID       string
	Type     string
	RichText []RichText
}

type blockPayload struct {
	RichText []RichText `json:"rich_text"`
}

// UnmarshalJSON decodes a raw block object, extracting the rich text spans of
// the payload selected by the block's type. Blocks whose payload carries no
// rich text (dividers, images, ...) decode with an empty span list.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if idRaw, ok := raw["id"]; ok {
		if err := json.Unmarshal(idRaw, &b.ID); err != nil {
			return err
		}
	}
	if typeRaw, ok := raw["type"]; ok {
		if err := json.Unmarshal(typeRaw, &b.Type); err != nil {
			return err
		}
	}

	payloadRaw, ok := raw[b.Type]
	if !ok {
		return nil
	}
	var payload blockPayload
	// A malformed payload fails only this block's contribution.
	if err := json.Unmarshal(payloadRaw, &payload); err != nil {
		return nil
	}
	b.RichText = payload.RichText
	return nil
}

// CountPageMentions returns the number of rich text spans in the block that
// mention another page or database. User and date mentions are not counted.
func (b Block) CountPageMentions() int {
	count := 0
	for _, span := range b.RichText {
		if span.Type != "mention" || span.Mention == nil {
			continue
		}
		switch span.Mention.Type {
		case "page", "database":
			count++
		}
	}
	return count
}
