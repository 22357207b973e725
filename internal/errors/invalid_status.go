package errors

import "net/http"

var ErrInvalidStatus = &Exception{
	Message:    "status must be one of: active, complete",
	StatusCode: http.StatusBadRequest,
}
