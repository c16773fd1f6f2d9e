package dto

// ApplyGroupRequest renames every row of one raw merchant to a group name
// inside the open edit session
type ApplyGroupRequest struct {
	RawMerchant string `json:"rawMerchant" validate:"required"`
	NewGroup    string `json:"newGroup" validate:"required"`
}

// ApplyGroupResponse reports how many rows an apply rewrote and how many
// cell edits the session is still holding
type ApplyGroupResponse struct {
	Message      string `json:"message"`
	RowsUpdated  int    `json:"rowsUpdated"`
	PendingEdits int    `json:"pendingEdits"`
}

// SessionStateResponse describes the edit session for one sheet
type SessionStateResponse struct {
	Sheet        string `json:"sheet"`
	SessionOpen  bool   `json:"sessionOpen"`
	PendingEdits int    `json:"pendingEdits"`
}

// FlushSessionResponse reports the outcome of writing pending edits back
// to the spreadsheet. Degraded means the batch write failed and cells were
// retried one at a time; failed cells stay pending for the next flush.
type FlushSessionResponse struct {
	Message      string `json:"message"`
	CellsWritten int    `json:"cellsWritten"`
	CellsFailed  int    `json:"cellsFailed"`
	Degraded     bool   `json:"degraded"`
	SessionOpen  bool   `json:"sessionOpen"`
}
