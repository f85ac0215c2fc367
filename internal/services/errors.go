package services

import "errors"

var (
	// ErrInvalidOutfitID means the composite outfit id could not be decoded.
	// Fatal to a compose operation; surfaces to the caller as-is.
	ErrInvalidOutfitID = errors.New("invalid outfit id")

	// ErrItemsNotFound means at least one of the two referenced wardrobe
	// items does not exist on the service. Fatal to a compose operation.
	ErrItemsNotFound = errors.New("outfit items not found")
)
