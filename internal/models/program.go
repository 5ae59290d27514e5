package models

import "time"

type Instructor struct {
	Name           string   `json:"name"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications,omitempty"`
}

type ScheduleSlot struct {
	Day   string `json:"day"`
	Time  string `json:"time"`
	Spots int    `json:"spots"`
	Focus string `json:"focus"`
}

// Program is a catalog entry. The catalog is seeded by migration and is
// read-only through the API.
type Program struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Duration    string         `json:"duration"`
	Level       string         `json:"level"`
	Price       float64        `json:"price"`
	Instructor  Instructor     `json:"instructor"`
	Schedule    []ScheduleSlot `json:"schedule"`
	Benefits    []string       `json:"benefits"`
	Equipment   []string       `json:"equipment"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}
