package models

// Testimonial is one document in the testimonials collection.
type Testimonial struct {
	ID       string `firestore:"-" json:"id"`
	Name     string `firestore:"name" json:"name"`
	Role     string `firestore:"role,omitempty" json:"role,omitempty"`
	ImageURL string `firestore:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Rating   int    `firestore:"rating" json:"rating"`
	Message  string `firestore:"message" json:"message"`
}
