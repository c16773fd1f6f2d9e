package models

import "github.com/shopspring/decimal"

// MerchantCount is one distinct raw merchant string with its row count,
// in the order the name was first encountered. Group proposals depend on
// that encounter order for their deterministic tie-breaks, which is why
// callers pass a slice rather than a map.
type MerchantCount struct {
	Raw   string `json:"raw"`
	Count int    `json:"count"`
}

// MerchantGroup is a set of raw merchant variants judged to be the same
// merchant, with the display name the group renders under. Members are
// ordered by count descending, encounter order breaking ties.
type MerchantGroup struct {
	Name    string          `json:"name"`
	Members []MerchantCount `json:"members"`
	Count   int             `json:"count"`
	Total   decimal.Decimal `json:"total"`
}

// MergeSuggestion pairs two proposed groups whose keys nearly collide.
// Suggestions are advisory; nothing applies them automatically.
type MergeSuggestion struct {
	Left     string `json:"left"`
	Right    string `json:"right"`
	Distance int    `json:"distance"`
}

// PendingEdit is one cell write queued by an edit session. Sessions keep at
// most one pending edit per (sheet, row, column); a later apply to the same
// cell replaces the earlier value.
type PendingEdit struct {
	Sheet    string `json:"sheet"`
	RowIndex int    `json:"row_index"`
	Column   int    `json:"column"`
	NewValue string `json:"new_value"`
}
