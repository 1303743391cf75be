package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/oguzkaya/canteen-server/internal/models"
	"go.uber.org/zap"
)

// fakeRepo is an in-memory Repository used by the service tests. It mirrors
// the lookup semantics of the postgres implementation: missing rows come back
// as nil, nil and GetMealsByProductIDs returns complete meal groups.
type fakeRepo struct {
	roles     map[int]models.Role
	groups    map[int]models.Group
	users     map[int]models.User
	suppliers map[int]models.Supplier
	products  map[int]models.Product
	meals     []models.Meal
	invoices  map[int]models.Invoice
	details   []models.InvoiceDetails
	logs      []models.SystemLog

	reportRows []models.InvoiceReportRow

	nextID          int
	nextMealGroupID int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		roles:     make(map[int]models.Role),
		groups:    make(map[int]models.Group),
		users:     make(map[int]models.User),
		suppliers: make(map[int]models.Supplier),
		products:  make(map[int]models.Product),
		invoices:  make(map[int]models.Invoice),
	}
}

func (f *fakeRepo) id() int {
	f.nextID++
	return f.nextID
}

// newTestService wires a DefaultService to a fresh fakeRepo with a fixed clock
func newTestService(now time.Time) (*DefaultService, *fakeRepo) {
	repo := newFakeRepo()
	svc := NewDefaultService(repo, zap.NewNop())
	svc.now = func() time.Time { return now }
	return svc, repo
}

// Role methods
func (f *fakeRepo) GetAllRoles(_ context.Context) ([]models.Role, error) {
	roles := make([]models.Role, 0, len(f.roles))
	for _, role := range f.roles {
		roles = append(roles, role)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}

func (f *fakeRepo) GetRoleByID(_ context.Context, id int) (*models.Role, error) {
	if role, ok := f.roles[id]; ok {
		return &role, nil
	}
	return nil, nil
}

func (f *fakeRepo) GetRoleByName(_ context.Context, name string) (*models.Role, error) {
	for _, role := range f.roles {
		if role.Name == name {
			r := role
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) SearchRolesByName(_ context.Context, name string) ([]models.Role, error) {
	var roles []models.Role
	for _, role := range f.roles {
		if strings.Contains(strings.ToLower(role.Name), strings.ToLower(name)) {
			roles = append(roles, role)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}

func (f *fakeRepo) CreateRole(_ context.Context, role *models.Role) error {
	role.ID = f.id()
	f.roles[role.ID] = *role
	return nil
}

func (f *fakeRepo) UpdateRole(_ context.Context, role *models.Role) error {
	f.roles[role.ID] = *role
	return nil
}

// Group methods
func (f *fakeRepo) GetAllGroups(_ context.Context) ([]models.Group, error) {
	groups := make([]models.Group, 0, len(f.groups))
	for _, group := range f.groups {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups, nil
}

func (f *fakeRepo) GetGroupByID(_ context.Context, id int) (*models.Group, error) {
	if group, ok := f.groups[id]; ok {
		return &group, nil
	}
	return nil, nil
}

func (f *fakeRepo) CreateGroup(_ context.Context, group *models.Group) error {
	group.ID = f.id()
	f.groups[group.ID] = *group
	return nil
}

// User methods
func (f *fakeRepo) GetAllUsers(_ context.Context) ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id int) (*models.User, error) {
	if user, ok := f.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetUserByDisplayID(_ context.Context, displayID string) (*models.User, error) {
	for _, user := range f.users {
		if user.UserDisplayID == displayID {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) GetUserByName(_ context.Context, name string) (*models.User, error) {
	for _, user := range f.users {
		if user.Name == name {
			u := user
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) SearchUsersByName(_ context.Context, name string) ([]models.User, error) {
	var users []models.User
	for _, user := range f.users {
		if strings.Contains(strings.ToLower(user.Name), strings.ToLower(name)) {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (f *fakeRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = f.id()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeRepo) UpdateUser(_ context.Context, user *models.User) error {
	f.users[user.ID] = *user
	return nil
}

func (f *fakeRepo) DeleteUser(_ context.Context, id int) (bool, error) {
	if _, ok := f.users[id]; !ok {
		return false, nil
	}
	delete(f.users, id)
	return true, nil
}

func (f *fakeRepo) GetUsersInDebt(_ context.Context, groupID int) ([]models.UserBalance, error) {
	var users []models.UserBalance
	for _, user := range f.users {
		if user.GroupID == groupID && user.IsActive {
			users = append(users, models.UserBalance{ID: user.ID, Name: user.Name, Balance: user.Balance})
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Balance < users[j].Balance })
	return users, nil
}

// Supplier methods
func (f *fakeRepo) GetSupplierByID(_ context.Context, id int) (*models.Supplier, error) {
	if supplier, ok := f.suppliers[id]; ok {
		return &supplier, nil
	}
	return nil, nil
}

func (f *fakeRepo) CreateSupplier(_ context.Context, supplier *models.Supplier) error {
	supplier.ID = f.id()
	f.suppliers[supplier.ID] = *supplier
	return nil
}

// Product methods
func (f *fakeRepo) GetAllProducts(_ context.Context) ([]models.Product, error) {
	products := make([]models.Product, 0, len(f.products))
	for _, product := range f.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (f *fakeRepo) GetProductByID(_ context.Context, id int) (*models.Product, error) {
	if product, ok := f.products[id]; ok {
		return &product, nil
	}
	return nil, nil
}

func (f *fakeRepo) CreateProduct(_ context.Context, product *models.Product) error {
	product.ID = f.id()
	f.products[product.ID] = *product
	return nil
}

// Meal methods
func (f *fakeRepo) GetAllMeals(_ context.Context) ([]models.Meal, error) {
	return append([]models.Meal(nil), f.meals...), nil
}

func (f *fakeRepo) GetMealsByGroupID(_ context.Context, mealGroupID int) ([]models.Meal, error) {
	var meals []models.Meal
	for _, meal := range f.meals {
		if meal.MealGroupID == mealGroupID {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

func (f *fakeRepo) GetMealsByProductID(_ context.Context, productID int) ([]models.Meal, error) {
	var meals []models.Meal
	for _, meal := range f.meals {
		if meal.ProductID == productID {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

func (f *fakeRepo) GetMealsByProductIDs(_ context.Context, productIDs []int) ([]models.Meal, error) {
	wanted := make(map[int]bool, len(productIDs))
	for _, id := range productIDs {
		wanted[id] = true
	}

	touched := make(map[int]bool)
	for _, meal := range f.meals {
		if wanted[meal.ProductID] {
			touched[meal.MealGroupID] = true
		}
	}

	var meals []models.Meal
	for _, meal := range f.meals {
		if touched[meal.MealGroupID] {
			meals = append(meals, meal)
		}
	}
	return meals, nil
}

func (f *fakeRepo) createMealGroup(productIDs []int) int {
	f.nextMealGroupID++
	groupID := f.nextMealGroupID
	for _, productID := range productIDs {
		f.meals = append(f.meals, models.Meal{
			ID:          f.id(),
			MealGroupID: groupID,
			ProductID:   productID,
		})
	}
	return groupID
}

func (f *fakeRepo) CreateMealGroup(_ context.Context, productIDs []int) (int, error) {
	return f.createMealGroup(productIDs), nil
}

func (f *fakeRepo) DeleteMealGroup(_ context.Context, mealGroupID int) (bool, error) {
	var kept []models.Meal
	deleted := false
	for _, meal := range f.meals {
		if meal.MealGroupID == mealGroupID {
			deleted = true
			continue
		}
		kept = append(kept, meal)
	}
	f.meals = kept
	return deleted, nil
}

// Invoice methods
func (f *fakeRepo) CreateInvoice(_ context.Context, invoice *models.Invoice, newMealProductIDs []int) error {
	if invoice.MealID == 0 {
		invoice.MealID = f.createMealGroup(newMealProductIDs)
	}
	invoice.ID = f.id()
	f.invoices[invoice.ID] = *invoice
	return nil
}

func (f *fakeRepo) GetInvoiceByID(_ context.Context, id int) (*models.Invoice, error) {
	if invoice, ok := f.invoices[id]; ok {
		return &invoice, nil
	}
	return nil, nil
}

func (f *fakeRepo) GetInvoicesByGroup(_ context.Context, groupID int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	for _, invoice := range f.invoices {
		if invoice.GroupID == groupID && !invoice.IsDeleted {
			invoices = append(invoices, invoice)
		}
	}
	sort.Slice(invoices, func(i, j int) bool { return invoices[i].ID < invoices[j].ID })
	return invoices, nil
}

func (f *fakeRepo) SoftDeleteInvoice(_ context.Context, id, deletedBy int, when time.Time) (bool, error) {
	invoice, ok := f.invoices[id]
	if !ok || invoice.IsDeleted {
		return false, nil
	}
	invoice.IsDeleted = true
	invoice.DeletedBy = deletedBy
	invoice.LastModificationDate = when
	f.invoices[id] = invoice
	return true, nil
}

func (f *fakeRepo) CreateInvoiceDetails(_ context.Context, invoiceID int, productIDs []int) ([]models.InvoiceDetails, error) {
	details := make([]models.InvoiceDetails, 0, len(productIDs))
	for range productIDs {
		detail := models.InvoiceDetails{
			ID:        f.id(),
			InvoiceID: invoiceID,
			StockID:   f.id(),
		}
		f.details = append(f.details, detail)
		details = append(details, detail)
	}
	return details, nil
}

func (f *fakeRepo) GetInvoiceReportRows(_ context.Context, _ int, _, _ string) ([]models.InvoiceReportRow, error) {
	return f.reportRows, nil
}

func (f *fakeRepo) GetWeeklyInvoiceRows(_ context.Context, groupID int, from, to time.Time) ([]models.WeeklyInvoiceRow, error) {
	var rows []models.WeeklyInvoiceRow
	for _, invoice := range f.invoices {
		if invoice.GroupID != groupID || invoice.IsDeleted {
			continue
		}
		if invoice.CreatedDate.Before(from) || invoice.CreatedDate.After(to) {
			continue
		}
		rows = append(rows, models.WeeklyInvoiceRow{
			ID:          invoice.ID,
			Meal:        "Meal",
			CreatedDate: invoice.CreatedDate,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// System log methods
func (f *fakeRepo) CreateSystemLog(_ context.Context, entry *models.SystemLog) error {
	entry.ID = f.id()
	f.logs = append(f.logs, *entry)
	return nil
}
