package models

import "time"

type Membership struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	PlanType      string    `json:"planType"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	IsActive      bool      `json:"isActive"`
	PaymentStatus string    `json:"paymentStatus"`
	Amount        float64   `json:"amount"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
