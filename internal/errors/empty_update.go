package errors

import "net/http"

var ErrEmptyUpdate = &Exception{
	Message:    "at least one of title, status, completedAt is required",
	StatusCode: http.StatusBadRequest,
}
