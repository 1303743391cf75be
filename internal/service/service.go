package service

import (
	"context"
	"time"

	"github.com/oguzkaya/canteen-server/internal/models"
	"github.com/oguzkaya/canteen-server/internal/repository"
	"go.uber.org/zap"
)

// Service defines all the business logic operations
type Service interface {
	// Role operations
	GetAllRoles(ctx context.Context) ([]models.Role, error)
	GetRoleByID(ctx context.Context, id int) (*models.Role, error)
	SearchRolesByName(ctx context.Context, name string) ([]models.Role, error)
	CreateRole(ctx context.Context, req models.CreateRoleRequest) (*models.Role, error)
	UpdateRole(ctx context.Context, id int, req models.UpdateRoleRequest) (*models.Role, error)

	// Group operations
	GetAllGroups(ctx context.Context) ([]models.Group, error)
	GetGroupByID(ctx context.Context, id int) (*models.Group, error)
	CreateGroup(ctx context.Context, req models.CreateGroupRequest) (*models.Group, error)

	// User operations
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByDisplayID(ctx context.Context, displayID string) (*models.User, error)
	SearchUsersByName(ctx context.Context, name string) ([]models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (*models.User, error)
	UpdateUser(ctx context.Context, id int, req models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id int) (bool, error)

	// Product operations
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)

	// Supplier operations
	GetSupplierByID(ctx context.Context, id int) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, req models.CreateSupplierRequest) (*models.Supplier, error)

	// Meal operations
	GetAllMeals(ctx context.Context) ([]models.MealResponse, error)
	GetMealByID(ctx context.Context, mealGroupID int) (*models.MealResponse, error)
	GetMealsByProductID(ctx context.Context, productID int) ([]models.Meal, error)
	CreateMeal(ctx context.Context, req models.CreateMealRequest) (*models.MealResponse, error)
	DeleteMeal(ctx context.Context, mealGroupID int) (bool, error)

	// Invoice operations
	CreateInvoice(ctx context.Context, req models.CreateInvoiceRequest) (*models.Invoice, error)
	AddInvoiceDetails(ctx context.Context, req models.CreateInvoiceDetailsRequest) ([]models.InvoiceDetails, error)
	GetInvoicesByGroup(ctx context.Context, groupID int) ([]models.Invoice, error)
	SoftDeleteInvoice(ctx context.Context, id, deletedBy int) (bool, error)

	// Reports
	GetInvoiceReport(ctx context.Context, groupID int, startDate, endDate string) ([]models.InvoiceReport, error)
	GetWeeklyInvoices(ctx context.Context, groupID int) ([]models.WeeklyInvoiceDigest, error)
	GetUsersInDebt(ctx context.Context, groupID int) ([]models.UserBalance, error)
}

// DefaultService implements the Service interface
type DefaultService struct {
	repo repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

// NewDefaultService creates a new DefaultService
func NewDefaultService(repo repository.Repository, log *zap.Logger) *DefaultService {
	return &DefaultService{
		repo: repo,
		log:  log,
		now:  time.Now,
	}
}
