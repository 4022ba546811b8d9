package models

// ItemMapping is one entry of the prices API item mapping
type ItemMapping struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Examine  string `json:"examine,omitempty"`
	Members  bool   `json:"members"`
	LowAlch  *int64 `json:"lowalch,omitempty"`
	HighAlch *int64 `json:"highalch,omitempty"`
	Limit    *int   `json:"limit,omitempty"`
	Value    int64  `json:"value"`
	Icon     string `json:"icon,omitempty"`
}

// Prices is the latest instant-buy/instant-sell snapshot for an item.
// Any field may be null when the item has not traded recently.
type Prices struct {
	High     *int64 `json:"high"`
	HighTime *int64 `json:"highTime"`
	Low      *int64 `json:"low"`
	LowTime  *int64 `json:"lowTime"`
}

// PriceQuote merges a mapping entry with its latest prices
type PriceQuote struct {
	ID     int     `json:"id"`
	Name   string  `json:"name"`
	Prices *Prices `json:"prices"`
}
