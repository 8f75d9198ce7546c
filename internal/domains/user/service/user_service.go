package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"perkpal-backend/internal/domains/user/model"
	"perkpal-backend/internal/domains/user/repository"
	"perkpal-backend/pkg/jwt"
)

type ServiceInterface interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
}

type UserService struct {
	repo repository.UserRepository
	jwt  *jwt.Manager
}

func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager) ServiceInterface {
	return &UserService{repo: repo, jwt: jwtManager}
}

// Register creates a regular account. Elevated roles are assigned out of
// band, never through this endpoint.
func (s *UserService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	u := &model.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         model.RoleUser,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return s.issueTokens(u)
}

func (s *UserService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	u, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, model.ErrAccountDisabled
	}

	return s.issueTokens(u)
}

func (s *UserService) Refresh(ctx context.Context, req model.RefreshRequest) (*model.AuthResponse, error) {
	claims, err := s.jwt.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, model.ErrInvalidCredentials
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.IsActive {
		return nil, model.ErrAccountDisabled
	}

	return s.issueTokens(u)
}

func (s *UserService) Me(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := model.ToUserResponse(u)
	return &resp, nil
}

func (s *UserService) issueTokens(u *model.User) (*model.AuthResponse, error) {
	access, err := s.jwt.GenerateAccessToken(u.ID.String(), u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.jwt.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &model.AuthResponse{
		User:         model.ToUserResponse(u),
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}
