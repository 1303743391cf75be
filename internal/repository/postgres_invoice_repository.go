package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/oguzkaya/canteen-server/internal/models"
)

// Meal repository methods
func (r *PostgresRepository) GetAllMeals(ctx context.Context) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.SelectContext(ctx, &meals, `SELECT * FROM meals ORDER BY meal_group_id, product_id`)
	if err != nil {
		return nil, err
	}

	return meals, nil
}

func (r *PostgresRepository) GetMealsByGroupID(ctx context.Context, mealGroupID int) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.SelectContext(ctx, &meals,
		`SELECT * FROM meals WHERE meal_group_id = $1 ORDER BY product_id`, mealGroupID)
	if err != nil {
		return nil, err
	}

	return meals, nil
}

func (r *PostgresRepository) GetMealsByProductID(ctx context.Context, productID int) ([]models.Meal, error) {
	var meals []models.Meal
	err := r.db.SelectContext(ctx, &meals,
		`SELECT * FROM meals WHERE product_id = $1 ORDER BY meal_group_id`, productID)
	if err != nil {
		return nil, err
	}

	return meals, nil
}

func (r *PostgresRepository) GetMealsByProductIDs(ctx context.Context, productIDs []int) ([]models.Meal, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	// Fetch every row of any group touching the input set, not just the
	// matching rows. Group comparison needs complete groups so that a meal
	// containing extra products is never mistaken for an exact match.
	query, args, err := sqlx.In(`
		SELECT * FROM meals
		WHERE meal_group_id IN (SELECT DISTINCT meal_group_id FROM meals WHERE product_id IN (?))`,
		productIDs)
	if err != nil {
		return nil, err
	}
	query = r.db.Rebind(query)

	var meals []models.Meal
	err = r.db.SelectContext(ctx, &meals, query, args...)
	if err != nil {
		return nil, err
	}

	return meals, nil
}

// createMealGroupTx inserts one meals row per product id, all sharing a fresh
// group id from meal_group_seq, within the caller's transaction.
func (r *PostgresRepository) createMealGroupTx(ctx context.Context, tx *sql.Tx, productIDs []int) (int, error) {
	var groupID int
	err := tx.QueryRowContext(ctx, `SELECT nextval('meal_group_seq')`).Scan(&groupID)
	if err != nil {
		return 0, err
	}

	for _, productID := range productIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO meals (meal_group_id, product_id) VALUES ($1, $2)`,
			groupID, productID)
		if err != nil {
			return 0, err
		}
	}

	return groupID, nil
}

func (r *PostgresRepository) CreateMealGroup(ctx context.Context, productIDs []int) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	groupID, err := r.createMealGroupTx(ctx, tx, productIDs)
	if err != nil {
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}

	return groupID, nil
}

func (r *PostgresRepository) DeleteMealGroup(ctx context.Context, mealGroupID int) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM meals WHERE meal_group_id = $1`, mealGroupID)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// Invoice repository methods

// CreateInvoice inserts the invoice row and, when invoice.MealID is zero,
// creates a new meal group from newMealProductIDs in the same transaction so a
// failed invoice insert never leaves orphaned meal rows behind.
func (r *PostgresRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice, newMealProductIDs []int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	if invoice.MealID == 0 {
		var groupID int
		groupID, err = r.createMealGroupTx(ctx, tx, newMealProductIDs)
		if err != nil {
			return err
		}
		invoice.MealID = groupID
	}

	query := `
		INSERT INTO invoices (price, is_deleted, deleted_by, created_date,
			last_modification_date, meal_id, group_id, supplier_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query,
		invoice.Price, invoice.IsDeleted, invoice.DeletedBy, invoice.CreatedDate,
		invoice.LastModificationDate, invoice.MealID, invoice.GroupID, invoice.SupplierID).Scan(&invoice.ID)
	if err != nil {
		err = wrapWriteError(err)
		return err
	}

	return tx.Commit()
}

func (r *PostgresRepository) GetInvoiceByID(ctx context.Context, id int) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.GetContext(ctx, &invoice, `SELECT * FROM invoices WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Invoice not found
		}
		return nil, err
	}

	return &invoice, nil
}

func (r *PostgresRepository) GetInvoicesByGroup(ctx context.Context, groupID int) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.SelectContext(ctx, &invoices,
		`SELECT * FROM invoices WHERE group_id = $1 AND is_deleted = false ORDER BY created_date`, groupID)
	if err != nil {
		return nil, err
	}

	return invoices, nil
}

func (r *PostgresRepository) SoftDeleteInvoice(ctx context.Context, id, deletedBy int, when time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE invoices SET is_deleted = true, deleted_by = $2, last_modification_date = $3
		 WHERE id = $1 AND is_deleted = false`,
		id, deletedBy, when)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

// CreateInvoiceDetails creates one zero-priced stock row and one linking
// invoice_details row per product, all in a single transaction.
func (r *PostgresRepository) CreateInvoiceDetails(ctx context.Context, invoiceID int, productIDs []int) ([]models.InvoiceDetails, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			tx.Rollback()
			return
		}
	}()

	details := make([]models.InvoiceDetails, 0, len(productIDs))
	for _, productID := range productIDs {
		var stockID int
		err = tx.QueryRowContext(ctx,
			`INSERT INTO stock (price, consumed, product_id) VALUES (0, false, $1) RETURNING id`,
			productID).Scan(&stockID)
		if err != nil {
			return nil, err
		}

		detail := models.InvoiceDetails{
			InvoiceID: invoiceID,
			StockID:   stockID,
		}
		err = tx.QueryRowContext(ctx,
			`INSERT INTO invoice_details (invoice_id, stock_id) VALUES ($1, $2) RETURNING id`,
			invoiceID, stockID).Scan(&detail.ID)
		if err != nil {
			return nil, err
		}

		details = append(details, detail)
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	return details, nil
}

// Reporting queries

func (r *PostgresRepository) GetInvoiceReportRows(ctx context.Context, groupID int, startDate, endDate string) ([]models.InvoiceReportRow, error) {
	query := `
		SELECT i.id, i.price, i.created_date,
			u.id AS supplier_id, u.name AS supplier_name,
			string_agg(DISTINCT p.name, ', ' ORDER BY p.name) AS meal
		FROM invoices i
		JOIN invoice_details ind ON ind.invoice_id = i.id
		JOIN meals m ON m.meal_group_id = i.meal_id
		JOIN products p ON p.id = m.product_id
		JOIN suppliers s ON s.id = i.supplier_id
		JOIN users u ON u.id = s.user_id
		WHERE i.group_id = $1 AND i.is_deleted = false
			AND i.created_date::date BETWEEN $2 AND $3
		GROUP BY i.id, i.price, i.created_date, u.id, u.name
		ORDER BY i.created_date
	`

	var rows []models.InvoiceReportRow
	err := r.db.SelectContext(ctx, &rows, query, groupID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (r *PostgresRepository) GetWeeklyInvoiceRows(ctx context.Context, groupID int, from, to time.Time) ([]models.WeeklyInvoiceRow, error) {
	query := `
		SELECT i.id, i.created_date,
			string_agg(DISTINCT p.name, ', ' ORDER BY p.name) AS meal
		FROM invoices i
		JOIN meals m ON m.meal_group_id = i.meal_id
		JOIN products p ON p.id = m.product_id
		WHERE i.group_id = $1 AND i.is_deleted = false
			AND i.created_date >= $2 AND i.created_date <= $3
		GROUP BY i.id, i.created_date
		ORDER BY i.created_date
	`

	var rows []models.WeeklyInvoiceRow
	err := r.db.SelectContext(ctx, &rows, query, groupID, from, to)
	if err != nil {
		return nil, err
	}

	return rows, nil
}
