package user

import (
	"SaveBite/domain"
	"SaveBite/entities"
	"SaveBite/pkg/jwt"
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const loginLogLimit = 200

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error)
		Login(ctx context.Context, req domain.LoginRequest, ipAddress string) (domain.LoginResponse, error)
		Me(ctx context.Context, auth domain.AuthContext) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		DeleteUser(ctx context.Context, auth domain.AuthContext, id uint) error
		PromoteUser(ctx context.Context, req domain.PromoteUserRequest) (domain.UserResponse, error)
		GetLoginLogs(ctx context.Context) ([]domain.LoginLogResponse, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		now            func() time.Time
		logger         *zap.Logger
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, logger *zap.Logger) UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if _, err := s.userRepository.GetUserByUsername(ctx, username); err == nil {
		return domain.UserResponse{}, domain.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	if _, err := s.userRepository.GetUserByEmail(ctx, email); err == nil {
		return domain.UserResponse{}, domain.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     domain.RoleUser,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest, ipAddress string) (domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.LoginResponse{}, domain.ErrInvalidCredentials
		}
		return domain.LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.LoginResponse{}, domain.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateTokenUser(user.ID, user.Role)
	if err != nil {
		return domain.LoginResponse{}, err
	}

	loginLog := &entities.LoginLog{
		UserID:    user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		LoginTime: s.now(),
		IPAddress: ipAddress,
	}
	if err := s.userRepository.CreateLoginLog(ctx, loginLog); err != nil {
		s.logger.Warn("failed to record login", zap.Uint("user_id", user.ID), zap.Error(err))
	}

	return domain.LoginResponse{Token: token, Role: user.Role}, nil
}

func (s *userService) Me(ctx context.Context, auth domain.AuthContext) (domain.UserResponse, error) {
	user, err := s.findUser(ctx, auth.UserID)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, toUserResponse(u))
	}
	return response, nil
}

func (s *userService) DeleteUser(ctx context.Context, auth domain.AuthContext, id uint) error {
	if auth.UserID == id {
		return domain.ErrCannotDeleteSelf
	}
	if _, err := s.findUser(ctx, id); err != nil {
		return err
	}
	return s.userRepository.DeleteUser(ctx, id)
}

func (s *userService) PromoteUser(ctx context.Context, req domain.PromoteUserRequest) (domain.UserResponse, error) {
	if !domain.IsValidRole(req.Role) {
		return domain.UserResponse{}, domain.ErrInvalidRole
	}

	user, err := s.findUser(ctx, req.UserID)
	if err != nil {
		return domain.UserResponse{}, err
	}

	if err := s.userRepository.UpdateRole(ctx, user.ID, req.Role); err != nil {
		return domain.UserResponse{}, err
	}
	user.Role = req.Role
	return toUserResponse(user), nil
}

func (s *userService) GetLoginLogs(ctx context.Context) ([]domain.LoginLogResponse, error) {
	logs, err := s.userRepository.GetLoginLogs(ctx, loginLogLimit)
	if err != nil {
		return nil, err
	}

	response := make([]domain.LoginLogResponse, 0, len(logs))
	for _, l := range logs {
		response = append(response, domain.LoginLogResponse{
			ID:        l.ID,
			Username:  l.Username,
			Email:     l.Email,
			Role:      l.Role,
			LoginTime: l.LoginTime,
			IPAddress: l.IPAddress,
		})
	}
	return response, nil
}

func (s *userService) findUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := s.userRepository.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func toUserResponse(u *entities.User) domain.UserResponse {
	return domain.UserResponse{
		ID:                   u.ID,
		Username:             u.Username,
		Email:                u.Email,
		Role:                 u.Role,
		NotificationsEnabled: u.NotificationsEnabled,
	}
}
