package models

import "time"

// Repo represents a public GitHub repository
type Repo struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	HTMLURL     string    `json:"html_url"`
	UpdatedAt   time.Time `json:"updated_at"`
	Homepage    *string   `json:"homepage"`
}
