package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (string, *models.User, error)
	// ResetPassword replaces the hash for the account registered under email.
	// There is no possession-of-email proof step; see the known-gaps notes.
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	// ListUsers returns the public user directory (summaries only).
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
	GenerateJWT(user *models.User) (string, error)
}
