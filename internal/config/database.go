package config

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// SetupDatabase initializes the database connection
func SetupDatabase(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	// Create tables if they don't exist
	if err := createTables(db); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// createTables creates the necessary tables in the database. The unique
// indexes on users and roles are the authoritative uniqueness guard; the
// service-level pre-checks only exist for friendlier error messages.
func createTables(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS roles (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS groups (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			is_public BOOLEAN NOT NULL DEFAULT false
		)`,
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			email_confirmed BOOLEAN NOT NULL DEFAULT false,
			user_display_id VARCHAR(64) UNIQUE NOT NULL,
			balance INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT true,
			role_id INTEGER NOT NULL REFERENCES roles(id),
			group_id INTEGER NOT NULL REFERENCES groups(id),
			created_date TIMESTAMP NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS suppliers (
			id SERIAL PRIMARY KEY,
			balance INTEGER NOT NULL DEFAULT 0,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			balance INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			group_id INTEGER NOT NULL REFERENCES groups(id)
		)`,
		`CREATE TABLE IF NOT EXISTS stock (
			id SERIAL PRIMARY KEY,
			price BIGINT NOT NULL DEFAULT 0,
			consumed BOOLEAN NOT NULL DEFAULT false,
			product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE
		)`,
		`CREATE SEQUENCE IF NOT EXISTS meal_group_seq`,
		`CREATE TABLE IF NOT EXISTS meals (
			id SERIAL PRIMARY KEY,
			meal_group_id INTEGER NOT NULL,
			product_id INTEGER NOT NULL REFERENCES products(id)
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id SERIAL PRIMARY KEY,
			price BIGINT NOT NULL,
			is_deleted BOOLEAN NOT NULL DEFAULT false,
			deleted_by INTEGER NOT NULL DEFAULT 0,
			created_date TIMESTAMP NOT NULL,
			last_modification_date TIMESTAMP NOT NULL,
			meal_id INTEGER NOT NULL,
			group_id INTEGER NOT NULL REFERENCES groups(id),
			supplier_id INTEGER NOT NULL REFERENCES suppliers(id)
		)`,
		`CREATE TABLE IF NOT EXISTS invoice_details (
			id SERIAL PRIMARY KEY,
			invoice_id INTEGER NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
			stock_id INTEGER NOT NULL REFERENCES stock(id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			is_deleted BOOLEAN NOT NULL DEFAULT false,
			deleted_by INTEGER NOT NULL DEFAULT 0,
			created_date TIMESTAMP NOT NULL,
			last_modification_date TIMESTAMP NOT NULL,
			group_id INTEGER NOT NULL REFERENCES groups(id)
		)`,
		`CREATE TABLE IF NOT EXISTS order_details (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			stock_id INTEGER NOT NULL REFERENCES stock(id)
		)`,
		`CREATE TABLE IF NOT EXISTS order_customers (
			order_id INTEGER NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			customer_id INTEGER NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
			PRIMARY KEY (order_id, customer_id)
		)`,
		`CREATE TABLE IF NOT EXISTS system_logs (
			id SERIAL PRIMARY KEY,
			transaction_type VARCHAR(64) NOT NULL,
			description TEXT NOT NULL,
			date TIMESTAMP NOT NULL,
			user_id INTEGER NOT NULL,
			group_id INTEGER NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	// Create indexes for better performance
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_meals_meal_group_id ON meals(meal_group_id)",
		"CREATE INDEX IF NOT EXISTS idx_meals_product_id ON meals(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_invoices_group_created ON invoices(group_id, created_date)",
		"CREATE INDEX IF NOT EXISTS idx_invoice_details_invoice_id ON invoice_details(invoice_id)",
		"CREATE INDEX IF NOT EXISTS idx_users_group_id ON users(group_id)",
	}

	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			log.Printf("Warning: Failed to create index: %v", err)
			// Don't return error here, indexes are not critical
		}
	}

	return nil
}
