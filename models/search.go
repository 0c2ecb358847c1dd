package models

// SearchSuggestion is one row under the search box.
type SearchSuggestion struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand,omitempty"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// SuggestionsResponse echoes the caller's rev token so stale responses can
// be discarded client-side (last-token-wins).
type SuggestionsResponse struct {
	Rev         string             `json:"rev,omitempty"`
	Query       string             `json:"query"`
	Suggestions []SearchSuggestion `json:"suggestions"`
	Trending    []SearchSuggestion `json:"trending,omitempty"`
	Recent      []string           `json:"recent,omitempty"`
}

// AddRecentSearchRequest records one submitted query
type AddRecentSearchRequest struct {
	Query string `json:"query" binding:"required"`
}
