package engine

import "errors"

// ErrInvalidRating is returned for ratings outside 0..5. Out-of-range
// input is rejected, never clamped; callers must validate upstream.
var ErrInvalidRating = errors.New("red-flag rating must be an integer between 0 and 5")

// RedFlagClass is the qualitative rendering of a red-flag rating.
type RedFlagClass struct {
	Rating      int    `json:"rating"`
	Band        string `json:"band"`
	Glyph       string `json:"glyph"`
	Description string `json:"description"`
}

// Lookup table indexed by rating. Search, filtering, and detail views all
// render ratings through ClassifyRedFlag so they can never disagree.
var redFlagTable = [6]RedFlagClass{
	{Rating: 0, Band: "none", Glyph: "⚪", Description: "No documented concerns"},
	{Rating: 1, Band: "minor", Glyph: "🟢", Description: "Peripheral appearance in the record"},
	{Rating: 2, Band: "moderate", Glyph: "🟡", Description: "Repeated appearances worth review"},
	{Rating: 3, Band: "significant", Glyph: "🟠", Description: "Substantive links in the evidence"},
	{Rating: 4, Band: "major", Glyph: "🔴", Description: "Central figure across multiple sources"},
	{Rating: 5, Band: "critical", Glyph: "⚫", Description: "Gravest documented involvement"},
}

// ClassifyRedFlag maps a 0..5 rating to its band, display glyph, and
// description. It is total on that range and is the single source of truth
// for the mapping.
func ClassifyRedFlag(rating int) (RedFlagClass, error) {
	if rating < 0 || rating > len(redFlagTable)-1 {
		return RedFlagClass{}, ErrInvalidRating
	}
	return redFlagTable[rating], nil
}
