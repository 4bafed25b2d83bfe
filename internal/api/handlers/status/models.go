package status

// StatusResponse HTTP response model
type StatusResponse struct {
	Configured bool   `json:"configured"`
	Gateway    string `json:"gateway"`
	Hint       string `json:"hint,omitempty"`
}
