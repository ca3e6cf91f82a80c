package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/kas_kelas_app/internal/apperrors"
	"github.com/SscSPs/kas_kelas_app/internal/core/domain"
	portsrepo "github.com/SscSPs/kas_kelas_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/kas_kelas_app/internal/core/ports/services"
	"github.com/SscSPs/kas_kelas_app/internal/dto"
	"github.com/SscSPs/kas_kelas_app/internal/utils"
	"github.com/google/uuid"
)

// userService provides user management and credential verification.
type userService struct {
	BaseService
	userRepo    portsrepo.UserRepository
	expenseRepo portsrepo.ExpenseRepository
	activity    portssvc.ActivityRecorderSvc
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepository, expenseRepo portsrepo.ExpenseRepository, activity portssvc.ActivityRecorderSvc) portssvc.UserSvcFacade {
	return &userService{
		userRepo:    userRepo,
		expenseRepo: expenseRepo,
		activity:    activity,
	}
}

// newUserFromRequest builds a domain user from a create request, hashing the
// password. Shared by single and bulk creation.
func (s *userService) newUserFromRequest(req dto.CreateUserRequest, creatorUserID string, now time.Time) (domain.User, error) {
	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return domain.User{}, fmt.Errorf("%w: invalid role %q", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	return domain.User{
		UserID:       uuid.NewString(),
		FullName:     req.FullName,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: hash,
		Role:         role,
		ClassID:      req.ClassID,
		ParentID:     req.ParentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	if _, err := s.userRepo.FindUserByUsername(ctx, req.Username); err == nil {
		return nil, fmt.Errorf("%w: username %s is already taken", apperrors.ErrDuplicate, req.Username)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username %s: %w", req.Username, err)
	}

	user, err := s.newUserFromRequest(req, creatorUserID, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.activity.RecordActivity(ctx, &creatorUserID, "user_created",
		fmt.Sprintf("User %s (%s) created", user.Username, user.Role))
	return &user, nil
}

func (s *userService) CreateUsers(ctx context.Context, reqs []dto.CreateUserRequest, creatorUserID string) ([]domain.User, error) {
	if len(reqs) == 0 {
		return nil, fmt.Errorf("%w: empty user list", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	seen := make(map[string]struct{}, len(reqs))
	users := make([]domain.User, 0, len(reqs))
	for _, req := range reqs {
		if _, dup := seen[req.Username]; dup {
			return nil, fmt.Errorf("%w: username %s appears twice in the batch", apperrors.ErrDuplicate, req.Username)
		}
		seen[req.Username] = struct{}{}

		user, err := s.newUserFromRequest(req, creatorUserID, now)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	if err := s.userRepo.SaveUsers(ctx, users); err != nil {
		return nil, fmt.Errorf("failed to save users: %w", err)
	}

	s.activity.RecordActivity(ctx, &creatorUserID, "users_imported",
		fmt.Sprintf("%d users imported", len(users)))
	return users, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.userRepo.FindUserByEmail(ctx, email)
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.userRepo.FindUsers(ctx, limit, offset)
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Role != nil {
		role := domain.UserRole(*req.Role)
		if !role.IsValid() {
			return nil, fmt.Errorf("%w: invalid role %q", apperrors.ErrValidation, *req.Role)
		}
		user.Role = role
	}
	if req.ClassID != nil {
		user.ClassID = req.ClassID
	}
	if req.ParentID != nil {
		user.ParentID = req.ParentID
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID string, req dto.ChangePasswordRequest, requestingUserID string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if req.OldPassword != "" && !utils.CheckPasswordHash(req.OldPassword, user.PasswordHash) {
		return fmt.Errorf("%w: old password does not match", apperrors.ErrUnauthorized)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	user.LastUpdatedAt = time.Now().UTC()
	user.LastUpdatedBy = requestingUserID

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		return fmt.Errorf("failed to change password for user %s: %w", userID, err)
	}

	s.activity.RecordActivity(ctx, &requestingUserID, "password_changed",
		fmt.Sprintf("Password changed for user %s", userID))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	if _, err := s.userRepo.FindUserByID(ctx, userID); err != nil {
		return err
	}

	// Users that recorded expenses stay on the books so the expense
	// history keeps a valid creator reference.
	hasExpenses, err := s.expenseRepo.ExistsByCreator(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check expenses for user %s: %w", userID, err)
	}
	if hasExpenses {
		return fmt.Errorf("%w: user %s has expense records and cannot be deleted", apperrors.ErrConflict, userID)
	}

	if err := s.userRepo.MarkUserDeleted(ctx, userID, time.Now().UTC(), requestingUserID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}

	s.activity.RecordActivity(ctx, &requestingUserID, "user_deleted",
		fmt.Sprintf("User %s deleted", userID))
	return nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
		}
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}
	return user, nil
}
