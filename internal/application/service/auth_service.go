package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/wangari/glowdesk-api/internal/domain/entity"
	"github.com/wangari/glowdesk-api/internal/domain/repository"
	"github.com/wangari/glowdesk-api/pkg/apperror"
	"github.com/wangari/glowdesk-api/pkg/utils"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo   repository.UserRepository
	roleRepo   repository.RoleRepository
	jwtManager *utils.JWTManager
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	roleRepo repository.RoleRepository,
	jwtManager *utils.JWTManager,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtManager: jwtManager,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// issueTokens signs an access and refresh token pair for the user. The
// user must have been loaded with roles so the claims are complete.
func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	roles := make([]string, 0, len(user.Roles))
	for _, role := range user.Roles {
		roles = append(roles, role.Name)
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, roles, user.GetPermissions())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Login verifies the credentials and returns a signed token pair.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	user, err = s.userRepo.GetWithRoles(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(user)
}

// RegisterInput represents the registration input
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// Register creates an account and grants it the default owner role.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	// Default username is the local part of the email
	username, _, found := strings.Cut(input.Email, "@")
	if !found || username == "" {
		username = input.Email
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Username:  username,
		Email:     input.Email,
		Password:  hashedPassword,
	}
	if input.Phone != "" {
		user.Phone = &input.Phone
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// Role assignment is best effort; the account is usable without it
	defaultRole, err := s.roleRepo.GetByName(ctx, "user")
	if err == nil && defaultRole != nil {
		_ = s.userRepo.AssignRole(ctx, user.ID, defaultRole.ID)
	}

	return user, nil
}

// RefreshToken exchanges a valid refresh token for a fresh pair.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the authenticated user with roles loaded.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetWithRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

// ChangePasswordInput represents the change password input
type ChangePasswordInput struct {
	UserID          uuid.UUID
	CurrentPassword string
	NewPassword     string
}

// ChangePassword verifies the current password and stores the new one.
func (s *AuthService) ChangePassword(ctx context.Context, input *ChangePasswordInput) error {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.ErrNotFound
	}

	if !utils.CheckPasswordHash(input.CurrentPassword, user.Password) {
		return apperror.NewBadRequestError("Current password is incorrect")
	}

	hashedPassword, err := utils.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return s.userRepo.Update(ctx, user)
}

// UpdateProfileInput represents the update profile input
type UpdateProfileInput struct {
	UserID    uuid.UUID
	FirstName string
	LastName  string
	Username  string
	Phone     string
	Photo     *string
}

// UpdateProfile applies the non-empty fields to the user's profile.
func (s *AuthService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if input.Username != "" && input.Username != user.Username {
		existing, err := s.userRepo.GetByUsername(ctx, input.Username)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, apperror.NewConflictError("Username already taken")
		}
		user.Username = input.Username
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Phone != "" {
		user.Phone = &input.Phone
	}
	if input.Photo != nil {
		user.Photo = input.Photo
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
