package invoice

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=unpaid paid"`
}

// ListFilter carries the dashboard filters as given on the query string.
type ListFilter struct {
	VendorID string
	Status   string
	Month    string // YYYY-MM
}
