package scryfall

import "fmt"

// Card represents a Magic card as returned by the Scryfall API.
// Only the fields the legality pipeline and deck analytics consume are
// mapped; optional fields stay pointers or zero values so that a missing
// field is distinguishable from real data.
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Layout string `json:"layout"`

	TypeLine      string   `json:"type_line"`
	ManaCost      string   `json:"mana_cost,omitempty"`
	CMC           *float64 `json:"cmc,omitempty"`
	Colors        []string `json:"colors,omitempty"`
	ColorIdentity []string `json:"color_identity,omitempty"`
	ProducedMana  []string `json:"produced_mana,omitempty"`

	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
	CardFaces []CardFace `json:"card_faces,omitempty"`

	// Print details of this particular printing.
	SetCode string `json:"set"`
	SetName string `json:"set_name"`

	// PrintsSearchURI enumerates every printing of this card, paginated.
	// A named-lookup response without it is treated as malformed.
	PrintsSearchURI string `json:"prints_search_uri,omitempty"`
}

// CardFace represents one face of a multi-faced card (DFC, MDFC, split).
type CardFace struct {
	Name      string     `json:"name"`
	TypeLine  string     `json:"type_line"`
	ManaCost  string     `json:"mana_cost,omitempty"`
	Colors    []string   `json:"colors,omitempty"`
	ImageURIs *ImageURIs `json:"image_uris,omitempty"`
}

// ImageURIs contains card image URLs in the sizes Scryfall serves.
type ImageURIs struct {
	Small  string `json:"small"`
	Normal string `json:"normal"`
	Large  string `json:"large"`
	PNG    string `json:"png"`
}

// SearchResult is one page of a card search or print enumeration.
type SearchResult struct {
	Object     string `json:"object"`
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
	NextPage   string `json:"next_page,omitempty"`
	Data       []Card `json:"data"`
}

// Catalog is the response shape of the autocomplete endpoint.
type Catalog struct {
	Object string   `json:"object"`
	Data   []string `json:"data"`
}

// APIError represents an error response body from the Scryfall API.
type APIError struct {
	Object  string `json:"object"`
	Code    string `json:"code"`
	Status  int    `json:"status"`
	Details string `json:"details"`
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("scryfall API error (HTTP %d): %s", e.Status, e.Details)
	}
	return fmt.Sprintf("scryfall API error (HTTP %d): %s", e.Status, e.Code)
}

// NotFoundError represents a 404 from the API, which for the fuzzy named
// lookup means "no card matched".
type NotFoundError struct {
	URL string
}

// Error implements the error interface for NotFoundError.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resource not found: %s", e.URL)
}

// IsNotFound returns true if the error is a NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}
