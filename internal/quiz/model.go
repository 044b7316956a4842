package quiz

import "encoding/json"

// BrandSelection is the per-session brand answer: up to 3 entries combined
// across catalog references and free-text names, or auto-pick with both lists
// forced empty.
type BrandSelection struct {
	FavoriteBrandIDs []string `json:"favorite_brand_ids"`
	CustomBrandNames []string `json:"custom_brand_names"`
	AutoPick         bool     `json:"auto_pick_brands"`
}

func EmptySelection() BrandSelection {
	return BrandSelection{
		FavoriteBrandIDs: []string{},
		CustomBrandNames: []string{},
	}
}

// SelectionItem is one stored selection entry: exactly one of BrandID or
// CustomName is set.
type SelectionItem struct {
	Position   int
	BrandID    string
	CustomName string
}

// Answer is one quiz wizard step answer; the payload is an opaque JSON
// document owned by the client.
type Answer struct {
	QuizID  string
	Step    string
	Payload json.RawMessage
}
