// Package models defines client-side data models for the stylist CLI:
// wardrobe items, outfit recommendations and the calendar records persisted
// on the device.
package models

// Category classifies a wardrobe item (main: "top"/"bottom", sub: e.g.
// "t-shirt", "jeans").
type Category struct {
	Main       string  `json:"main"`
	Sub        string  `json:"sub"`
	Confidence float64 `json:"confidence,omitempty"`
}

// Color describes the dominant colors of an item.
type Color struct {
	Primary   string   `json:"primary"`
	Secondary []string `json:"secondary,omitempty"`
	Tone      string   `json:"tone,omitempty"`
}

// Scores holds the 0..1 styling scores the attribute extractor assigns.
type Scores struct {
	Formality   float64  `json:"formality,omitempty"`
	Warmth      float64  `json:"warmth,omitempty"`
	Versatility float64  `json:"versatility,omitempty"`
	Season      []string `json:"season,omitempty"`
}

// ItemAttributes is the attribute bag extracted from an item photo.
// Fields the client never interprets stay in Meta as-is.
type ItemAttributes struct {
	Category  Category       `json:"category"`
	Color     Color          `json:"color"`
	StyleTags []string       `json:"style_tags,omitempty"`
	Scores    Scores         `json:"scores,omitempty"`
	Meta      map[string]any `json:"meta,omitempty"`
}

// WardrobeItem is a single piece of clothing owned by the remote wardrobe
// service. The client only reads transient copies; it never mutates items.
type WardrobeItem struct {
	ID         string         `json:"id"`
	Filename   string         `json:"filename,omitempty"`
	Attributes ItemAttributes `json:"attributes"`

	// ImageURL is a path relative to the API base URL. The client passes it
	// through without interpreting its content.
	ImageURL string `json:"image_url,omitempty"`
}
