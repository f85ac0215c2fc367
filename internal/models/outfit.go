package models

// OutfitRecommendation is one top/bottom pairing produced by the remote
// recommendation service. Score is in [0,1].
type OutfitRecommendation struct {
	Top              WardrobeItem `json:"top"`
	Bottom           WardrobeItem `json:"bottom"`
	Score            float64      `json:"score"`
	Reasons          []string     `json:"reasons,omitempty"`
	Reasoning        string       `json:"reasoning,omitempty"`
	StyleDescription string       `json:"style_description,omitempty"`
}

// ID returns the composite identifier for the pairing.
func (r OutfitRecommendation) ID() OutfitID {
	return OutfitID{TopID: r.Top.ID, BottomID: r.Bottom.ID}
}

// OutfitScore is the compatibility result for a specific pairing.
type OutfitScore struct {
	Score        float64  `json:"score"`
	ScorePercent int      `json:"score_percent"`
	Reasons      []string `json:"reasons,omitempty"`
}

// OutfitDetail is the fully composed view of one outfit: both items plus
// the enrichment results (score, reasoning, style description). It is built
// transiently and only ever persisted as a CalendarAssignment snapshot.
type OutfitDetail struct {
	ID               OutfitID
	Top              WardrobeItem
	Bottom           WardrobeItem
	Score            float64
	Reasoning        string
	Reasons          []string
	StyleDescription string
}

// StyleLabel returns the style description, or a label derived from the
// items' sub-categories when the description enrichment was unavailable.
func (d OutfitDetail) StyleLabel() string {
	if d.StyleDescription != "" {
		return d.StyleDescription
	}
	top := d.Top.Attributes.Category.Sub
	if top == "" {
		top = "Top"
	}
	bottom := d.Bottom.Attributes.Category.Sub
	if bottom == "" {
		bottom = "Bottom"
	}
	return top + " & " + bottom
}
