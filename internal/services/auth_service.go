package services

import (
	"foodshare_backend/internal/auth"
	"foodshare_backend/internal/dto"
	"foodshare_backend/internal/models"
	"foodshare_backend/internal/repositories"
	"foodshare_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	Signup(db *gorm.DB, req *dto.SignupRequest) (*models.User, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error)
	GetUser(db *gorm.DB, userID string) (*models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Signup(db *gorm.DB, req *dto.SignupRequest) (*models.User, error) {
	role := models.UserRole(req.Role)
	if !auth.ValidateRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			// Same error for unknown email and wrong password: do not leak
			// which emails are registered.
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		Message:     "Login successful",
		AccessToken: token,
		User:        dto.NewUserResponse(user),
	}, nil
}

func (s *authService) GetUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
