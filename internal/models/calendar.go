package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar key format (ISO date, sorts lexicographically).
const DateLayout = "2006-01-02"

// ParseDate validates a calendar date key.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t, nil
}

// CalendarAssignment is the outfit scheduled for one calendar date. It is a
// snapshot taken at save time: later changes to the wardrobe do not affect
// it. Assignments never expire; they are removed explicitly by the user.
type CalendarAssignment struct {
	OutfitID         string       `json:"outfit_id"`
	Top              WardrobeItem `json:"top"`
	Bottom           WardrobeItem `json:"bottom"`
	Score            float64      `json:"score"`
	StyleDescription string       `json:"style_description,omitempty"`
	SavedAt          time.Time    `json:"saved_at"`
}

// Snapshot builds the persistent calendar record for an outfit detail.
func Snapshot(d OutfitDetail, savedAt time.Time) CalendarAssignment {
	return CalendarAssignment{
		OutfitID:         d.ID.String(),
		Top:              d.Top,
		Bottom:           d.Bottom,
		Score:            d.Score,
		StyleDescription: d.StyleLabel(),
		SavedAt:          savedAt,
	}
}
