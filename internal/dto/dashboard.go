package dto

import (
	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// ListTransactionsResponse represents the response for listing transactions
// within a reporting period
type ListTransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	Period       string               `json:"period"`
	Sheet        string               `json:"sheet"`
}

// SheetListResponse lists the transaction sheets available to the dashboard
type SheetListResponse struct {
	Sheets []string `json:"sheets"`
}
