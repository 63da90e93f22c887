package courses

import "time"

// Course is one recommended learning resource for a skill.
type Course struct {
	ID        string    `json:"id,omitempty"`
	Skill     string    `json:"skill"`
	Title     string    `json:"title,omitempty"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"-"`
}

// Recommendation pairs a missing skill with a course and its QR code
// artifact, when one could be produced.
type Recommendation struct {
	Skill  string `json:"skill"`
	Title  string `json:"title,omitempty"`
	URL    string `json:"url"`
	QRName string `json:"qrName,omitempty"`
}
