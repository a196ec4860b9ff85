package limego

import "fmt"

type importResponse struct {
	ID       string `json:"id"`
	TypeName string `json:"type_name"`
}

// APIError is the error body returned by the import endpoint.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
	Code       string `json:"code"`
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("lime go error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("lime go error %d: %s", e.StatusCode, e.Message)
}
