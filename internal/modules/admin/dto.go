package admin

// UpdateStatusRequest changes one inquiry's status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled"`
}
