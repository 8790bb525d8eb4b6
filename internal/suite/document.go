package suite

import "time"

// Document holds metadata and cached extracted text for a suite document.
type Document struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Text        string    `json:"text"`
	AddedAt     time.Time `json:"added_at"`
}
