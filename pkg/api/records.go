package api

import "time"

// ExpenditureRequest представляет payload создания/обновления записи расхода.
// Поля объявлены указателями, чтобы отличать отсутствующее поле от нулевого:
// PUT требует все поля, PATCH принимает любое подмножество.
type ExpenditureRequest struct {
	Category        *string `json:"category"`
	NameOfItem      *string `json:"name_of_item"`
	EstimatedAmount *int64  `json:"estimated_amount"`
}

// ExpenditureResponse представляет запись расхода в ответах API
type ExpenditureResponse struct {
	ID              string    `json:"id"`
	Category        string    `json:"category"`
	NameOfItem      string    `json:"name_of_item"`
	EstimatedAmount int64     `json:"estimated_amount"`
	CreatedAt       time.Time `json:"created_at"`
	ModifiedAt      time.Time `json:"modified_at"`
}

// IncomeRequest представляет payload создания/обновления записи дохода
type IncomeRequest struct {
	NameOfRevenue *string `json:"name_of_revenue"`
	Amount        *int64  `json:"amount"`
}

// IncomeResponse представляет запись дохода в ответах API
type IncomeResponse struct {
	ID            string    `json:"id"`
	NameOfRevenue string    `json:"name_of_revenue"`
	Amount        int64     `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
	ModifiedAt    time.Time `json:"modified_at"`
}
