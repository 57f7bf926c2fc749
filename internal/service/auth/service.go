package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/workpulse-hr/attendance-backend-go/internal/domain/auth"
	"github.com/workpulse-hr/attendance-backend-go/internal/domain/employee"
	"github.com/workpulse-hr/attendance-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	employees employee.Repository
	jwt       jwt.Service
}

func NewAuthService(employees employee.Repository, jwtService jwt.Service) *AuthServiceImpl {
	return &AuthServiceImpl{
		employees: employees,
		jwt:       jwtService,
	}
}

// Login implements auth.Service. An unknown code and a wrong password both
// come back as ErrInvalidCredentials so the response does not leak which
// codes exist.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employees.GetByCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	if !emp.IsActive {
		return auth.LoginResponse{}, employee.ErrEmployeeInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(emp.ID, emp.CompanyID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.ID,
		CompanyID:   emp.CompanyID,
	}, nil
}
