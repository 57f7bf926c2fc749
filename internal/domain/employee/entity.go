package employee

import "time"

type Employee struct {
	ID           string
	CompanyID    string
	Code         string
	FullName     string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
