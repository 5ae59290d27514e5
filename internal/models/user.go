package models

import "time"

// Profile is the optional fitness sub-record attached to a user. It is
// stored as a single jsonb document on the users row.
type Profile struct {
	Age               *int     `json:"age,omitempty"`
	Height            *float64 `json:"height,omitempty"`
	Weight            *float64 `json:"weight,omitempty"`
	FitnessGoals      []string `json:"fitnessGoals,omitempty"`
	MedicalConditions []string `json:"medicalConditions,omitempty"`
}

type User struct {
	ID                int64     `json:"id"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"-"`
	Phone             *string   `json:"phone,omitempty"`
	MembershipType    string    `json:"membershipType"`
	JoinDate          time.Time `json:"joinDate"`
	IsActive          bool      `json:"isActive"`
	PurchasedPrograms []string  `json:"purchasedPrograms"`
	Profile           *Profile  `json:"profile,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
