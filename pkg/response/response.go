package response

import (
	"time"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope for every JSON response. RequestID
// echoes the id set by the request-id middleware so clients can correlate
// a response with the server logs.
type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

func envelope[T any](ctx *gin.Context, status int, success bool, message string) APIResponse[T] {
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now().UTC(),
		RequestID: ctx.GetString("request_id"),
		Success:   success,
		Message:   message,
	}
}

// Success builds a successful envelope. Meta carries collection extras
// such as result counts and token expiries.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) APIResponse[T] {
	resp := envelope[T](ctx, status, true, message)
	resp.Data = data
	resp.Meta = meta
	return resp
}

// Error builds a failed envelope; err holds structured details such as a
// field-to-message map from validation.
func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	resp := envelope[T](ctx, status, false, message)
	resp.Error = err
	return resp
}
