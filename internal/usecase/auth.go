package usecase

import (
	"context"
	"errors"
	"log/slog"

	"space-booking-api/internal/domain/user"
	"space-booking-api/internal/pkg/errs"
	"space-booking-api/internal/pkg/jwt"
	"space-booking-api/internal/pkg/password"
	"space-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserInactive         = errors.New("user account is inactive")
	ErrAuthenticationFailed = errors.New("authentication failed")
	ErrTokenGeneration      = errors.New("token generation failed")
	ErrTokenValidation      = errors.New("token validation failed")
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*readmodel.AuthorizedUserRM, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
	ValidateToken(tokenString string) (uuid.UUID, user.Role, error)
}

type authUseCaseImpl struct {
	userRepo   UserRepository
	jwtService *jwt.Service
}

func NewAuthUseCase(userRepo UserRepository, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*TokenPair, *readmodel.AuthorizedUserRM, error) {
	userReadModel, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, nil, err
	}

	role, err := user.NewRole(userReadModel.Role)
	if err != nil {
		return nil, nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	tokenPair, err := a.issueTokens(userReadModel.ID, role)
	if err != nil {
		return nil, nil, err
	}

	if err := a.userRepo.UpdateLastLogin(ctx, userReadModel.ID); err != nil {
		slog.Warn("failed to update last login", "user_id", userReadModel.ID, "error", err.Error())
		// Not critical - login itself succeeded
	}

	return tokenPair, userReadModel, nil
}

func (a *authUseCaseImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	// Validate user still exists and is active
	userReadModel, err := a.userRepo.FindByID(ctx, claims.UserID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return a.issueTokens(claims.UserID, role)
}

func (a *authUseCaseImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthorizedUserRM, error) {
	userReadModel, hashedPassword, err := a.userRepo.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	err = password.ComparePassword(hashedPassword, credentials.Password().Value())
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return userReadModel, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	userReadModel, err := a.userRepo.FindByID(ctx, userID)
	if err != nil || userReadModel == nil {
		return nil, ErrUserNotFound
	}

	if !userReadModel.IsActive {
		return nil, ErrUserInactive
	}

	return userReadModel, nil
}

func (a *authUseCaseImpl) ValidateToken(tokenString string) (uuid.UUID, user.Role, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	if claims.TokenType != jwt.TokenTypeAccess {
		return uuid.Nil, "", ErrTokenValidation
	}

	role, err := user.NewRole(claims.Role)
	if err != nil {
		return uuid.Nil, "", ErrTokenValidation
	}

	return claims.UserID, role, nil
}
