package errors

import "net/http"

var ErrInvalidDateQuery = &Exception{
	Message:    "filter must be one of: today, week, month, all",
	StatusCode: http.StatusBadRequest,
}
