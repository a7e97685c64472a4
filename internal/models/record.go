package models

import "time"

// Expenditure is a single spending record owned by one user.
type Expenditure struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Category        string    `json:"category"`
	NameOfItem      string    `json:"name_of_item"`
	EstimatedAmount int64     `json:"estimated_amount"`
	CreatedAt       time.Time `json:"created_at"`
	ModifiedAt      time.Time `json:"modified_at"`
}

// Income is a single revenue record owned by one user.
type Income struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	NameOfRevenue string    `json:"name_of_revenue"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}
