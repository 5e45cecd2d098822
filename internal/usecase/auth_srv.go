package usecase

import (
	"context"
	"errors"
	"fmt"

	"letterhead-service/internal/data/entity"
	"letterhead-service/internal/data/repository"
	"letterhead-service/internal/dto/request"
	"letterhead-service/internal/dto/response"
	"letterhead-service/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserSummary, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
}

type authService struct {
	users  repository.UserRepository
	tokens utils.TokenIssuer
	log    *zap.Logger
}

func NewAuthService(
	users repository.UserRepository,
	tokens utils.TokenIssuer,
	log *zap.Logger,
) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserSummary, error) {
	// 1. Email must be unused
	existingUser, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrEmailRegistered
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Save user
	name := req.Name
	user := &entity.User{
		Name:         &name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Mobile:       req.Mobile,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User registered",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	summary := response.UserToSummary(user)
	return &summary, nil
}

// Login checks the account status before the password, and reports unknown
// email and wrong password with the same error.
func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive() {
		s.log.Warn("Disabled user tried to login", zap.Int64("user_id", user.ID))
		return nil, ErrAccountDisabled
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info("User logged in", zap.Int64("user_id", user.ID))

	return &response.LoginResponse{
		Token: token,
		User:  response.UserToSummary(user),
	}, nil
}
