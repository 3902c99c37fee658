package httpapi

import "github.com/google/uuid"

// RequestBody is the JSON body accepted by the Execute and health
// endpoints. Query is a pointer so a missing field can be told apart from
// an explicitly empty query string.
type RequestBody struct {
	Query   *string    `json:"query"`
	Session *uuid.UUID `json:"session"`
}

// StatusResponse is the root endpoint's body.
type StatusResponse struct {
	Status string `json:"status"`
}
