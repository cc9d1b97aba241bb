// Package response provides helpers for printing consistent JSON results.
//
// Every example in the walk-through prints what it produced. Rather than
// formatting each one by hand, they all go through WriteJSON so the output
// is one JSON object per line, easy to read and easy to pipe into jq.
package response

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the envelope printed for every example.
//
// A success carries the example's name and its result:
//
//	{ "status": "ok", "example": "doubleNumbers", "data": [2, 4, 6] }
//
// A failure carries the error text instead:
//
//	{ "status": "error", "example": "fetchData", "error": "failed to fetch data" }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status  string `json:"status"`
	Example string `json:"example,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Status string constants.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON encodes data as a single line of JSON followed by a newline.
func WriteJSON(w io.Writer, data any) error {
	return json.NewEncoder(w).Encode(data)
}

// OK wraps a successful result.
func OK(example string, data any) Response {
	return Response{Status: StatusOK, Example: example, Data: data}
}

// GeneralError wraps any Go error into the standard Response shape.
func GeneralError(example string, err error) Response {
	return Response{
		Status:  StatusError,
		Example: example,
		Error:   err.Error(),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// ValidationError converts validator.ValidationErrors into one Response.
//
// The validator returns one FieldError per failing struct field. Each is
// turned into a plain English sentence and they are joined with ", ".
//
//	{ "status": "error", "error": "field Name is required, field Age must be at least 0" }
//
// ─────────────────────────────────────────────────────────────────────────────
func ValidationError(example string, errs validator.ValidationErrors) Response {
	var errMessages []string

	for _, e := range errs {
		switch e.ActualTag() {
		case "required":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is required", e.Field()))
		case "min":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at least %s", e.Field(), e.Param()))
		case "max":
			errMessages = append(errMessages,
				fmt.Sprintf("field %s must be at most %s", e.Field(), e.Param()))
		default:
			errMessages = append(errMessages,
				fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return Response{
		Status:  StatusError,
		Example: example,
		Error:   strings.Join(errMessages, ", "),
	}
}
