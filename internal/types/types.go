// Package types holds the shared data structures used across the module.
// Keeping them in one place prevents import cycles: storage, fetch and
// collections can all import types without depending on each other.
package types

import "github.com/go-playground/validator/v10"

// User is the record returned by the simulated fetch and consumed by the
// collection helpers.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  controls how the field appears when printed as JSON.
//     Hobbies is omitted entirely when the user has none.
//
//  2. validate:"..." rules checked by the go-playground/validator
//     package. Nothing in the collection helpers enforces them; call
//     Validate when a record comes from outside the program.
type User struct {
	ID      int      `json:"id"                validate:"required"`
	Name    string   `json:"name"              validate:"required"`
	Age     int      `json:"age"               validate:"min=0"`
	Hobbies []string `json:"hobbies,omitempty" validate:"omitempty,dive,required"`
}

// validate caches struct metadata, so a single instance is shared.
var validate = validator.New()

// Validate checks every validate:"..." tag on u. On failure the returned
// error is a validator.ValidationErrors.
func Validate(u User) error {
	return validate.Struct(u)
}
