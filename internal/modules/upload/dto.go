package upload

import "io"

// SubmitInput is one anonymous upload attempt, extracted from the multipart
// form before any business logic runs. Amount and InvoiceDate stay raw
// strings here; the service parses them and stores NULL when they are
// absent or malformed.
type SubmitInput struct {
	VendorID       string
	OrganizationID string
	Token          string
	Amount         string
	InvoiceDate    string // YYYY-MM-DD
	FileName       string
	ContentType    string
	FileSize       int64
	File           io.Reader
}

// UploadPageInfo is what the anonymous upload form needs to render.
type UploadPageInfo struct {
	VendorID         string `json:"vendor_id"`
	VendorName       string `json:"vendor_name"`
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
}
