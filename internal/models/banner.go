package models

// Banner represents a promotional banner shown on the landing page
type Banner struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	Active   bool   `json:"active"`
}
