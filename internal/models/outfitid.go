package models

import (
	"errors"
	"fmt"
	"strings"
)

// outfitIDSeparator joins the two item ids of an outfit pairing.
//
// Item ids are assumed to be separator-free by convention. If a top id ever
// contains '-', decoding becomes ambiguous because the split happens at the
// first occurrence. Known limitation, kept for compatibility with the ids
// the wardrobe service issues today.
const outfitIDSeparator = "-"

// ErrMalformedOutfitID is returned when a composite outfit id cannot be
// split into a top and a bottom id.
var ErrMalformedOutfitID = errors.New("malformed outfit id")

// OutfitID identifies an outfit as a pair of wardrobe item ids.
type OutfitID struct {
	TopID    string
	BottomID string
}

// String encodes the pair as "topId-bottomId".
func (id OutfitID) String() string {
	return id.TopID + outfitIDSeparator + id.BottomID
}

// DecodeOutfitID parses a composite outfit id, splitting at the first
// separator. Inputs without a separator fail with ErrMalformedOutfitID.
func DecodeOutfitID(s string) (OutfitID, error) {
	i := strings.Index(s, outfitIDSeparator)
	if i < 0 {
		return OutfitID{}, fmt.Errorf("%w: %q", ErrMalformedOutfitID, s)
	}
	return OutfitID{TopID: s[:i], BottomID: s[i+1:]}, nil
}
