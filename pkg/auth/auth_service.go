package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"baratie/domain"
	"baratie/entities"
	"baratie/internal/utils"
	"baratie/pkg/jwt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const passwordCost = 10

type (
	AuthService interface {
		Signup(ctx context.Context, req domain.SignupRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error)
	}

	authService struct {
		authRepository AuthRepository
		jwtService     jwt.JWTService
		logger         zerolog.Logger
	}
)

func NewAuthService(authRepository AuthRepository, jwtService jwt.JWTService) AuthService {
	return &authService{
		authRepository: authRepository,
		jwtService:     jwtService,
		logger:         utils.NewLogger("auth"),
	}
}

func toUserResponse(user entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:        user.ID.String(),
		Name:      user.Name,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *authService) Signup(ctx context.Context, req domain.SignupRequest) (domain.UserResponse, error) {
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" || req.Role == "" {
		return domain.UserResponse{}, domain.ErrMissingSignupFields
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return domain.UserResponse{}, err
	}
	email := normalizeEmail(req.Email)

	_, err = s.authRepository.GetUserByEmail(ctx, role, email)
	if err == nil {
		return domain.UserResponse{}, domain.ErrUserAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, fmt.Errorf("look up %s: %w", role.Table(), err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), passwordCost)
	if err != nil {
		return domain.UserResponse{}, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &entities.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hash),
		Role:     role,
		Timestamp: entities.Timestamp{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.authRepository.CreateUser(ctx, role, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrUserAlreadyExists
		}
		return domain.UserResponse{}, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.String()).Str("role", string(role)).Msg("user signed up")
	return toUserResponse(*user), nil
}

func (s *authService) Login(ctx context.Context, req domain.LoginRequest) (domain.LoginResponse, error) {
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	user, err := s.authRepository.GetUserByEmail(ctx, role, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, fmt.Errorf("look up %s: %w", role.Table(), err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID.String(), role)
	if err != nil {
		return domain.LoginResponse{}, err
	}
	return domain.LoginResponse{
		User:  toUserResponse(*user),
		Token: token,
	}, nil
}
