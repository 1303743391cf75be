package service

import (
	"context"
	"fmt"

	"github.com/oguzkaya/canteen-server/internal/models"
)

func (s *DefaultService) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.repo.GetAllRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting roles: %w", err)
	}

	return roles, nil
}

func (s *DefaultService) GetRoleByID(ctx context.Context, id int) (*models.Role, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting role: %w", err)
	}

	return role, nil
}

func (s *DefaultService) SearchRolesByName(ctx context.Context, name string) ([]models.Role, error) {
	roles, err := s.repo.SearchRolesByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("error searching roles: %w", err)
	}

	return roles, nil
}

func (s *DefaultService) CreateRole(ctx context.Context, req models.CreateRoleRequest) (*models.Role, error) {
	// Check for duplication before writing
	existing, err := s.repo.GetRoleByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("error checking role existence: %w", err)
	}

	if existing != nil {
		return nil, conflict("role with this name already exists")
	}

	role := &models.Role{
		Name: req.Name,
	}

	if err := s.repo.CreateRole(ctx, role); err != nil {
		return nil, mapWriteError(err, "role with this name already exists", "error creating role")
	}

	return role, nil
}

// UpdateRole patches an existing role. A nil result with a nil error means the
// role id does not exist, so callers can distinguish that from real failures.
func (s *DefaultService) UpdateRole(ctx context.Context, id int, req models.UpdateRoleRequest) (*models.Role, error) {
	role, err := s.repo.GetRoleByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting role: %w", err)
	}

	if role == nil {
		return nil, nil // Nothing to update
	}

	if req.Name != nil && *req.Name != role.Name {
		other, err := s.repo.GetRoleByName(ctx, *req.Name)
		if err != nil {
			return nil, fmt.Errorf("error checking role existence: %w", err)
		}

		if other != nil && other.ID != id {
			return nil, conflict("role with this name already exists")
		}

		role.Name = *req.Name
	}

	if err := s.repo.UpdateRole(ctx, role); err != nil {
		return nil, mapWriteError(err, "role with this name already exists", "error updating role")
	}

	return role, nil
}
