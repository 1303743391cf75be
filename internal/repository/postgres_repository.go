package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/oguzkaya/canteen-server/internal/models"
)

// PostgresRepository implements the Repository interface using PostgreSQL
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *sqlx.DB) *PostgresRepository {
	return &PostgresRepository{
		db: db,
	}
}

// GetDB returns the underlying database connection
func (r *PostgresRepository) GetDB() *sqlx.DB {
	return r.db
}

// wrapWriteError translates a postgres unique_violation into ErrDuplicate so
// the service layer can report it as a conflict instead of a store failure.
func wrapWriteError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return fmt.Errorf("%s: %w", pqErr.Message, ErrDuplicate)
	}
	return err
}

// Role repository methods
func (r *PostgresRepository) GetAllRoles(ctx context.Context) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.SelectContext(ctx, &roles, `SELECT * FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}

	return roles, nil
}

func (r *PostgresRepository) GetRoleByID(ctx context.Context, id int) (*models.Role, error) {
	var role models.Role
	err := r.db.GetContext(ctx, &role, `SELECT * FROM roles WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Role not found
		}
		return nil, err
	}

	return &role, nil
}

func (r *PostgresRepository) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.GetContext(ctx, &role, `SELECT * FROM roles WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &role, nil
}

func (r *PostgresRepository) SearchRolesByName(ctx context.Context, name string) ([]models.Role, error) {
	var roles []models.Role
	err := r.db.SelectContext(ctx, &roles,
		`SELECT * FROM roles WHERE name ILIKE '%' || $1 || '%' ORDER BY id`, name)
	if err != nil {
		return nil, err
	}

	return roles, nil
}

func (r *PostgresRepository) CreateRole(ctx context.Context, role *models.Role) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO roles (name) VALUES ($1) RETURNING id`,
		role.Name).Scan(&role.ID)

	return wrapWriteError(err)
}

func (r *PostgresRepository) UpdateRole(ctx context.Context, role *models.Role) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE roles SET name = $1 WHERE id = $2`,
		role.Name, role.ID)

	return wrapWriteError(err)
}

// Group repository methods
func (r *PostgresRepository) GetAllGroups(ctx context.Context) ([]models.Group, error) {
	var groups []models.Group
	err := r.db.SelectContext(ctx, &groups, `SELECT * FROM groups ORDER BY id`)
	if err != nil {
		return nil, err
	}

	return groups, nil
}

func (r *PostgresRepository) GetGroupByID(ctx context.Context, id int) (*models.Group, error) {
	var group models.Group
	err := r.db.GetContext(ctx, &group, `SELECT * FROM groups WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &group, nil
}

func (r *PostgresRepository) CreateGroup(ctx context.Context, group *models.Group) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO groups (name, is_public) VALUES ($1, $2) RETURNING id`,
		group.Name, group.IsPublic).Scan(&group.ID)

	return wrapWriteError(err)
}

// User repository methods
func (r *PostgresRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users, `SELECT * FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // User not found
		}
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) GetUserByDisplayID(ctx context.Context, displayID string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE user_display_id = $1`, displayID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) GetUserByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE name = $1`, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &user, nil
}

func (r *PostgresRepository) SearchUsersByName(ctx context.Context, name string) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users,
		`SELECT * FROM users WHERE name ILIKE '%' || $1 || '%' ORDER BY id`, name)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (r *PostgresRepository) CreateUser(ctx context.Context, user *models.User) error {
	if user.CreatedDate.IsZero() {
		user.CreatedDate = time.Now().UTC()
	}

	query := `
		INSERT INTO users (name, password, email, email_confirmed, user_display_id,
			balance, is_active, role_id, group_id, created_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		user.Name, user.Password, user.Email, user.EmailConfirmed, user.UserDisplayID,
		user.Balance, user.IsActive, user.RoleID, user.GroupID, user.CreatedDate).Scan(&user.ID)

	return wrapWriteError(err)
}

func (r *PostgresRepository) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, password = $2, email = $3, email_confirmed = $4,
			user_display_id = $5, balance = $6, is_active = $7, role_id = $8, group_id = $9
		WHERE id = $10
	`

	_, err := r.db.ExecContext(ctx, query,
		user.Name, user.Password, user.Email, user.EmailConfirmed, user.UserDisplayID,
		user.Balance, user.IsActive, user.RoleID, user.GroupID, user.ID)

	return wrapWriteError(err)
}

func (r *PostgresRepository) DeleteUser(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *PostgresRepository) GetUsersInDebt(ctx context.Context, groupID int) ([]models.UserBalance, error) {
	query := `
		SELECT id, name, balance FROM users
		WHERE group_id = $1 AND is_active = true
		ORDER BY balance ASC
	`

	var users []models.UserBalance
	err := r.db.SelectContext(ctx, &users, query, groupID)
	if err != nil {
		return nil, err
	}

	return users, nil
}

// Supplier repository methods
func (r *PostgresRepository) GetSupplierByID(ctx context.Context, id int) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.GetContext(ctx, &supplier, `SELECT * FROM suppliers WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &supplier, nil
}

func (r *PostgresRepository) CreateSupplier(ctx context.Context, supplier *models.Supplier) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO suppliers (balance, user_id) VALUES ($1, $2) RETURNING id`,
		supplier.Balance, supplier.UserID).Scan(&supplier.ID)

	return wrapWriteError(err)
}

// Product repository methods
func (r *PostgresRepository) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.SelectContext(ctx, &products, `SELECT * FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}

	return products, nil
}

func (r *PostgresRepository) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := r.db.GetContext(ctx, &product, `SELECT * FROM products WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &product, nil
}

func (r *PostgresRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (name, group_id) VALUES ($1, $2) RETURNING id`,
		product.Name, product.GroupID).Scan(&product.ID)

	return wrapWriteError(err)
}

// System log repository methods
func (r *PostgresRepository) CreateSystemLog(ctx context.Context, entry *models.SystemLog) error {
	if entry.Date.IsZero() {
		entry.Date = time.Now().UTC()
	}

	query := `
		INSERT INTO system_logs (transaction_type, description, date, user_id, group_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.db.QueryRowContext(ctx, query,
		entry.TransactionType, entry.Description, entry.Date, entry.UserID, entry.GroupID).Scan(&entry.ID)
}
