// Package dto defines data transfer objects for the spot market GraphQL responses.
package dto

// PriceResponse represents the JSON response of the marketPrices query.
// Timestamps come back as RFC 3339 strings.
type PriceResponse struct {
	Data struct {
		MarketPrices []struct {
			From  string  `json:"from"`
			Till  string  `json:"till"`
			Price float64 `json:"price"`
		} `json:"marketPrices"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors,omitempty"`
}
