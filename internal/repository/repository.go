package repository

import (
	"context"
	"errors"
	"time"

	"github.com/oguzkaya/canteen-server/internal/models"
)

// ErrDuplicate is returned when an insert or update violates a unique
// constraint at the database level. The service layer pre-checks uniqueness,
// but the constraint is the authoritative guard under concurrent writes.
var ErrDuplicate = errors.New("duplicate value")

// Repository interface defines the methods that any repository implementation must satisfy
type Repository interface {
	// Role operations
	GetAllRoles(ctx context.Context) ([]models.Role, error)
	GetRoleByID(ctx context.Context, id int) (*models.Role, error)
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
	SearchRolesByName(ctx context.Context, name string) ([]models.Role, error)
	CreateRole(ctx context.Context, role *models.Role) error
	UpdateRole(ctx context.Context, role *models.Role) error

	// Group operations
	GetAllGroups(ctx context.Context) ([]models.Group, error)
	GetGroupByID(ctx context.Context, id int) (*models.Group, error)
	CreateGroup(ctx context.Context, group *models.Group) error

	// User operations
	GetAllUsers(ctx context.Context) ([]models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByDisplayID(ctx context.Context, displayID string) (*models.User, error)
	GetUserByName(ctx context.Context, name string) (*models.User, error)
	SearchUsersByName(ctx context.Context, name string) ([]models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int) (bool, error)
	GetUsersInDebt(ctx context.Context, groupID int) ([]models.UserBalance, error)

	// Supplier operations
	GetSupplierByID(ctx context.Context, id int) (*models.Supplier, error)
	CreateSupplier(ctx context.Context, supplier *models.Supplier) error

	// Product operations
	GetAllProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error

	// Meal operations. A meal is the set of rows sharing a meal group id.
	GetAllMeals(ctx context.Context) ([]models.Meal, error)
	GetMealsByGroupID(ctx context.Context, mealGroupID int) ([]models.Meal, error)
	GetMealsByProductID(ctx context.Context, productID int) ([]models.Meal, error)
	GetMealsByProductIDs(ctx context.Context, productIDs []int) ([]models.Meal, error)
	CreateMealGroup(ctx context.Context, productIDs []int) (int, error)
	DeleteMealGroup(ctx context.Context, mealGroupID int) (bool, error)

	// Invoice operations
	CreateInvoice(ctx context.Context, invoice *models.Invoice, newMealProductIDs []int) error
	GetInvoiceByID(ctx context.Context, id int) (*models.Invoice, error)
	GetInvoicesByGroup(ctx context.Context, groupID int) ([]models.Invoice, error)
	SoftDeleteInvoice(ctx context.Context, id, deletedBy int, when time.Time) (bool, error)
	CreateInvoiceDetails(ctx context.Context, invoiceID int, productIDs []int) ([]models.InvoiceDetails, error)

	// Reporting queries
	GetInvoiceReportRows(ctx context.Context, groupID int, startDate, endDate string) ([]models.InvoiceReportRow, error)
	GetWeeklyInvoiceRows(ctx context.Context, groupID int, from, to time.Time) ([]models.WeeklyInvoiceRow, error)

	// System log operations
	CreateSystemLog(ctx context.Context, entry *models.SystemLog) error
}
