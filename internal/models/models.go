package models

import (
	"time"
)

// Role represents a user role
type Role struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Group is the organizational unit that scopes users, products, invoices and orders
type Group struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	IsPublic bool   `db:"is_public" json:"isPublic"`
}

// User represents a user in the system
type User struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Password       string    `db:"password" json:"-"` // Not returned in JSON
	Email          string    `db:"email" json:"email"`
	EmailConfirmed bool      `db:"email_confirmed" json:"emailConfirmed"`
	UserDisplayID  string    `db:"user_display_id" json:"userDisplayId"`
	Balance        int       `db:"balance" json:"balance"`
	IsActive       bool      `db:"is_active" json:"isActive"`
	RoleID         int       `db:"role_id" json:"roleId"`
	GroupID        int       `db:"group_id" json:"groupId"`
	CreatedDate    time.Time `db:"created_date" json:"createdDate"`
}

// Supplier represents a supplier account backed by a user
type Supplier struct {
	ID      int `db:"id" json:"id"`
	Balance int `db:"balance" json:"balance"`
	UserID  int `db:"user_id" json:"userId"`
}

// Customer represents a customer account backed by a user
type Customer struct {
	ID      int `db:"id" json:"id"`
	UserID  int `db:"user_id" json:"userId"`
	Balance int `db:"balance" json:"balance"`
}

// Product represents a purchasable product belonging to a group
type Product struct {
	ID      int    `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	GroupID int    `db:"group_id" json:"groupId"`
}

// Stock is a single priced, consumable unit of a product
type Stock struct {
	ID        int   `db:"id" json:"id"`
	Price     int64 `db:"price" json:"price"`
	Consumed  bool  `db:"consumed" json:"consumed"`
	ProductID int   `db:"product_id" json:"productId"`
}

// Meal is one row of a meal group. All rows sharing a MealGroupID form one
// logical meal: the unordered set of products consumed together. Invoices
// reference the group id, not individual rows.
type Meal struct {
	ID          int `db:"id" json:"id"`
	MealGroupID int `db:"meal_group_id" json:"mealGroupId"`
	ProductID   int `db:"product_id" json:"productId"`
}

// Invoice represents a supplier invoice for a meal within a group
type Invoice struct {
	ID                   int       `db:"id" json:"id"`
	Price                int64     `db:"price" json:"price"`
	IsDeleted            bool      `db:"is_deleted" json:"isDeleted"`
	DeletedBy            int       `db:"deleted_by" json:"deletedBy"`
	CreatedDate          time.Time `db:"created_date" json:"createdDate"`
	LastModificationDate time.Time `db:"last_modification_date" json:"lastModificationDate"`
	MealID               int       `db:"meal_id" json:"mealId"`
	GroupID              int       `db:"group_id" json:"groupId"`
	SupplierID           int       `db:"supplier_id" json:"supplierId"`
}

// InvoiceDetails links an invoice to one consumed stock unit
type InvoiceDetails struct {
	ID        int `db:"id" json:"id"`
	InvoiceID int `db:"invoice_id" json:"invoiceId"`
	StockID   int `db:"stock_id" json:"stockId"`
}

// Order represents a customer order within a group
type Order struct {
	ID                   int       `db:"id" json:"id"`
	IsDeleted            bool      `db:"is_deleted" json:"isDeleted"`
	DeletedBy            int       `db:"deleted_by" json:"deletedBy"`
	CreatedDate          time.Time `db:"created_date" json:"createdDate"`
	LastModificationDate time.Time `db:"last_modification_date" json:"lastModificationDate"`
	GroupID              int       `db:"group_id" json:"groupId"`
}

// OrderDetails links an order to one stock unit
type OrderDetails struct {
	ID      int `db:"id" json:"id"`
	OrderID int `db:"order_id" json:"orderId"`
	StockID int `db:"stock_id" json:"stockId"`
}

// OrderCustomer is the many-to-many link between orders and customers
type OrderCustomer struct {
	OrderID    int `db:"order_id" json:"orderId"`
	CustomerID int `db:"customer_id" json:"customerId"`
}

// SystemLog records destructive operations for auditing
type SystemLog struct {
	ID              int       `db:"id" json:"id"`
	TransactionType string    `db:"transaction_type" json:"transactionType"`
	Description     string    `db:"description" json:"description"`
	Date            time.Time `db:"date" json:"date"`
	UserID          int       `db:"user_id" json:"userId"`
	GroupID         int       `db:"group_id" json:"groupId"`
}
