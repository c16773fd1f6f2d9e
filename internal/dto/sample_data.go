package dto

// GenerateSampleDataRequest asks for demo transaction rows to be appended
// to a sheet. Rows defaults to the service's standard batch when zero.
type GenerateSampleDataRequest struct {
	Sheet string `json:"sheet" validate:"omitempty,sheetname"`
	Rows  int    `json:"rows" validate:"omitempty,min=1,max=500"`
}

// GenerateSampleDataResponse reports how many demo rows were appended
type GenerateSampleDataResponse struct {
	Message     string `json:"message"`
	Sheet       string `json:"sheet"`
	RowsCreated int    `json:"rowsCreated"`
}
