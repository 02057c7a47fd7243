// internal/services/errors.go
package services

import "errors"

// Sentinel errors shared by the services. Handlers decide how much of the
// distinction to expose; the seller product endpoints deliberately collapse
// ErrProductNotFound and ErrNotOwner into one "not found or forbidden"
// response so product ids cannot be probed.
var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("not the owner of this product")
	ErrSellerNotFound  = errors.New("seller not found")
	ErrUserExists      = errors.New("an account with this email already exists")
)
