package dto

// ErrorResponse is the body of every failed request. Extra fields carried by
// the error (for example "expired") are added at the top level.
// @Description Error information
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Error   string      `json:"error"`
	Status  int         `json:"status"`
	Errors  interface{} `json:"errors,omitempty"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
