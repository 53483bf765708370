package admin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnauthorized  = errors.New("caller lacks admin privilege")
	ErrInvalidAsset  = errors.New("invalid asset")
	ErrAssetType     = fmt.Errorf("%w: please select an image file", ErrInvalidAsset)
	ErrAssetTooLarge = fmt.Errorf("%w: image is too large, max %d MB", ErrInvalidAsset, MaxAssetBytes>>20)
	ErrSlugTaken     = errors.New("a product with this slug already exists")
)

// ValidationError lists the required form fields that were missing and fields
// whose value is outside the allowed set.
type ValidationError struct {
	MissingFields []string
	InvalidFields []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.MissingFields) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.MissingFields, ", "))
	}
	if len(e.InvalidFields) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.InvalidFields, ", "))
	}
	return strings.Join(parts, "; ")
}

func unauthorized(uid string) error {
	return fmt.Errorf("%w: signed in as %s; create admins/%s with {\"active\": true} to grant access", ErrUnauthorized, uid, uid)
}
