package service

import (
	"context"
	"fmt"

	"github.com/oguzkaya/canteen-server/internal/models"
)

// Group operations
func (s *DefaultService) GetAllGroups(ctx context.Context) ([]models.Group, error) {
	groups, err := s.repo.GetAllGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting groups: %w", err)
	}

	return groups, nil
}

func (s *DefaultService) GetGroupByID(ctx context.Context, id int) (*models.Group, error) {
	group, err := s.repo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting group: %w", err)
	}

	return group, nil
}

func (s *DefaultService) CreateGroup(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error) {
	group := &models.Group{
		Name:     req.Name,
		IsPublic: req.IsPublic,
	}

	if err := s.repo.CreateGroup(ctx, group); err != nil {
		return nil, fmt.Errorf("error creating group: %w", err)
	}

	return group, nil
}

// Product operations
func (s *DefaultService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	products, err := s.repo.GetAllProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting products: %w", err)
	}

	return products, nil
}

func (s *DefaultService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting product: %w", err)
	}

	return product, nil
}

func (s *DefaultService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	if err := s.checkGroupExists(ctx, req.GroupID); err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:    req.Name,
		GroupID: req.GroupID,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	return product, nil
}

// Supplier operations
func (s *DefaultService) GetSupplierByID(ctx context.Context, id int) (*models.Supplier, error) {
	supplier, err := s.repo.GetSupplierByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting supplier: %w", err)
	}

	return supplier, nil
}

func (s *DefaultService) CreateSupplier(ctx context.Context, req models.CreateSupplierRequest) (*models.Supplier, error) {
	user, err := s.repo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("error checking user existence: %w", err)
	}
	if user == nil {
		return nil, referenceNotFound("user")
	}

	supplier := &models.Supplier{
		Balance: req.Balance,
		UserID:  req.UserID,
	}

	if err := s.repo.CreateSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("error creating supplier: %w", err)
	}

	return supplier, nil
}
