package models

type HighlightType string

const (
	HighlightVideo       HighlightType = "video"
	HighlightDescription HighlightType = "description"
)

// DestinationHighlight is one document in the destination-highlights
// collection. Only the field set selected by Type is populated.
type DestinationHighlight struct {
	ID          string        `firestore:"-" json:"id"`
	Type        HighlightType `firestore:"type" json:"type"`
	VideoURL    string        `firestore:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	Thumbnail   string        `firestore:"thumbnail,omitempty" json:"thumbnail,omitempty"`
	Title       string        `firestore:"title,omitempty" json:"title,omitempty"`
	Description string        `firestore:"description,omitempty" json:"description,omitempty"`
	Background  string        `firestore:"background,omitempty" json:"background,omitempty"`
}
