package auth

import "context"

// Service authenticates employees and issues access tokens carrying the
// employee_id and company_id claims the rest of the API relies on.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
