package service

import (
	"context"
	"fmt"

	"github.com/oguzkaya/canteen-server/internal/models"
	"go.uber.org/zap"
)

func (s *DefaultService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting users: %w", err)
	}

	return users, nil
}

func (s *DefaultService) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

func (s *DefaultService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

func (s *DefaultService) GetUserByDisplayID(ctx context.Context, displayID string) (*models.User, error) {
	user, err := s.repo.GetUserByDisplayID(ctx, displayID)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	return user, nil
}

func (s *DefaultService) SearchUsersByName(ctx context.Context, name string) ([]models.User, error) {
	users, err := s.repo.SearchUsersByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error searching users: %w", err)
	}

	return users, nil
}

// checkUserEmailFree reports a conflict when another user (excluding excludeID)
// already holds the candidate email. The sibling checks below do the same for
// display id and name.
func (s *DefaultService) checkUserEmailFree(ctx context.Context, email string, excludeID int) error {
	other, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("error checking user existence: %w", err)
	}
	if other != nil && other.ID != excludeID {
		return conflict("user with this email already exists")
	}
	return nil
}

func (s *DefaultService) checkUserDisplayIDFree(ctx context.Context, displayID string, excludeID int) error {
	other, err := s.repo.GetUserByDisplayID(ctx, displayID)
	if err != nil {
		return fmt.Errorf("error checking user existence: %w", err)
	}
	if other != nil && other.ID != excludeID {
		return conflict("user with this display id already exists")
	}
	return nil
}

func (s *DefaultService) checkUserNameFree(ctx context.Context, name string, excludeID int) error {
	other, err := s.repo.GetUserByName(ctx, name)
	if err != nil {
		return fmt.Errorf("error checking user existence: %w", err)
	}
	if other != nil && other.ID != excludeID {
		return conflict("user with this name already exists")
	}
	return nil
}

func (s *DefaultService) checkRoleExists(ctx context.Context, roleID int) error {
	role, err := s.repo.GetRoleByID(ctx, roleID)
	if err != nil {
		return fmt.Errorf("error checking role existence: %w", err)
	}
	if role == nil {
		return referenceNotFound("role")
	}
	return nil
}

func (s *DefaultService) checkGroupExists(ctx context.Context, groupID int) error {
	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return fmt.Errorf("error checking group existence: %w", err)
	}
	if group == nil {
		return referenceNotFound("group")
	}
	return nil
}

// CreateUser validates every uniqueness and reference rule before inserting.
// Checks run sequentially and the first violation aborts the whole call.
func (s *DefaultService) CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	if err := s.checkUserEmailFree(ctx, req.Email, 0); err != nil {
		return nil, err
	}
	if err := s.checkUserDisplayIDFree(ctx, req.UserDisplayID, 0); err != nil {
		return nil, err
	}
	if err := s.checkUserNameFree(ctx, req.Name, 0); err != nil {
		return nil, err
	}
	if err := s.checkRoleExists(ctx, req.RoleID); err != nil {
		return nil, err
	}
	if err := s.checkGroupExists(ctx, req.GroupID); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           req.Name,
		Password:       req.Password,
		Email:          req.Email,
		EmailConfirmed: req.EmailConfirmed,
		UserDisplayID:  req.UserDisplayID,
		Balance:        req.Balance,
		IsActive:       req.IsActive,
		RoleID:         req.RoleID,
		GroupID:        req.GroupID,
		CreatedDate:    s.now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, mapWriteError(err, "user already exists", "error creating user")
	}

	return user, nil
}

// UpdateUser overlays only the supplied fields onto the current row. Each
// changed field is re-validated; a field set to its current value is not
// checked, so no-op updates never trip a uniqueness rule. Returns nil, nil
// when the id does not exist.
func (s *DefaultService) UpdateUser(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	if user == nil {
		return nil, nil // Nothing to update
	}

	if req.Email != nil && *req.Email != user.Email {
		if err := s.checkUserEmailFree(ctx, *req.Email, id); err != nil {
			return nil, err
		}
		user.Email = *req.Email
	}

	if req.UserDisplayID != nil && *req.UserDisplayID != user.UserDisplayID {
		if err := s.checkUserDisplayIDFree(ctx, *req.UserDisplayID, id); err != nil {
			return nil, err
		}
		user.UserDisplayID = *req.UserDisplayID
	}

	if req.Name != nil && *req.Name != user.Name {
		if err := s.checkUserNameFree(ctx, *req.Name, id); err != nil {
			return nil, err
		}
		user.Name = *req.Name
	}

	if req.RoleID != nil && *req.RoleID != user.RoleID {
		if err := s.checkRoleExists(ctx, *req.RoleID); err != nil {
			return nil, err
		}
		user.RoleID = *req.RoleID
	}

	if req.GroupID != nil && *req.GroupID != user.GroupID {
		if err := s.checkGroupExists(ctx, *req.GroupID); err != nil {
			return nil, err
		}
		user.GroupID = *req.GroupID
	}

	if req.Password != nil {
		user.Password = *req.Password
	}
	if req.EmailConfirmed != nil {
		user.EmailConfirmed = *req.EmailConfirmed
	}
	if req.Balance != nil {
		user.Balance = *req.Balance
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, mapWriteError(err, "user already exists", "error updating user")
	}

	return user, nil
}

// DeleteUser hard-deletes a user and records the removal in the system log.
func (s *DefaultService) DeleteUser(ctx context.Context, id int) (bool, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error getting user: %w", err)
	}

	if user == nil {
		return false, nil
	}

	deleted, err := s.repo.DeleteUser(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error deleting user: %w", err)
	}

	if deleted {
		entry := &models.SystemLog{
			TransactionType: "user_delete",
			Description:     fmt.Sprintf("user %d (%s) deleted", user.ID, user.Name),
			Date:            s.now().UTC(),
			UserID:          user.ID,
			GroupID:         user.GroupID,
		}
		if err := s.repo.CreateSystemLog(ctx, entry); err != nil {
			// The delete already happened; losing the audit row is not
			// a reason to report failure to the caller.
			s.log.Error("failed to write system log", zap.Int("userId", id), zap.Error(err))
		}
	}

	return deleted, nil
}

func (s *DefaultService) GetUsersInDebt(ctx context.Context, groupID int) ([]models.UserBalance, error) {
	users, err := s.repo.GetUsersInDebt(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error getting users in debt: %w", err)
	}

	return users, nil
}
