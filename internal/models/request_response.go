package models

import "time"

// Request models
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateRoleRequest struct {
	Name *string `json:"name"`
}

type CreateGroupRequest struct {
	Name     string `json:"name" binding:"required"`
	IsPublic bool   `json:"isPublic"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	EmailConfirmed bool   `json:"emailConfirmed"`
	UserDisplayID  string `json:"userDisplayId" binding:"required"`
	Balance        int    `json:"balance"`
	IsActive       bool   `json:"isActive"`
	RoleID         int    `json:"roleId" binding:"required"`
	GroupID        int    `json:"groupId" binding:"required"`
}

// UpdateUserRequest patches only the supplied fields
type UpdateUserRequest struct {
	Name           *string `json:"name"`
	Password       *string `json:"password"`
	Email          *string `json:"email" binding:"omitempty,email"`
	EmailConfirmed *bool   `json:"emailConfirmed"`
	UserDisplayID  *string `json:"userDisplayId"`
	Balance        *int    `json:"balance"`
	IsActive       *bool   `json:"isActive"`
	RoleID         *int    `json:"roleId"`
	GroupID        *int    `json:"groupId"`
}

type CreateProductRequest struct {
	Name    string `json:"name" binding:"required"`
	GroupID int    `json:"groupId" binding:"required"`
}

type CreateSupplierRequest struct {
	Balance int `json:"balance"`
	UserID  int `json:"userId" binding:"required"`
}

type CreateMealRequest struct {
	ProductIDs []int `json:"productIds" binding:"required,min=1"`
}

type CreateInvoiceRequest struct {
	Price      int64 `json:"price" binding:"required"`
	GroupID    int   `json:"groupId" binding:"required"`
	SupplierID int   `json:"supplierId" binding:"required"`
	ProductIDs []int `json:"productIds" binding:"required,min=1"`
}

type CreateInvoiceDetailsRequest struct {
	InvoiceID  int   `json:"invoiceId" binding:"required"`
	ProductIDs []int `json:"productIds" binding:"required,min=1"`
}

type DeleteInvoiceRequest struct {
	DeletedBy int `json:"deletedBy" binding:"required"`
}

// Response models

// APIResponse is the JSON envelope every endpoint returns
type APIResponse struct {
	Status       int         `json:"status"`
	Data         interface{} `json:"data"`
	ErrorMessage string      `json:"error_message"`
}

// MealResponse is the grouped view of a meal: one record per meal group
type MealResponse struct {
	ID         int   `json:"id"`
	ProductIDs []int `json:"productIds"`
}

// UserBalance is one row of the users-in-debt report
type UserBalance struct {
	ID      int    `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Balance int    `db:"balance" json:"balance"`
}

// InvoiceReportRow is one flat row of the invoice report join. Meal is the
// comma-joined, de-duplicated, alphabetically sorted product names.
type InvoiceReportRow struct {
	ID           int       `db:"id" json:"id"`
	Price        int64     `db:"price" json:"price"`
	CreatedDate  time.Time `db:"created_date" json:"createdDate"`
	SupplierID   int       `db:"supplier_id" json:"supplierId"`
	SupplierName string    `db:"supplier_name" json:"supplierName"`
	Meal         string    `db:"meal" json:"meal"`
}

// InvoiceReport is one calendar-day bucket of the invoice report
type InvoiceReport struct {
	Date     string             `json:"date"`
	Invoices []InvoiceReportRow `json:"invoices"`
}

// WeeklyInvoiceRow is one flat row of the weekly invoice query
type WeeklyInvoiceRow struct {
	ID          int       `db:"id" json:"id"`
	Meal        string    `db:"meal" json:"meal"`
	CreatedDate time.Time `db:"created_date" json:"createdDate"`
}

// WeeklyInvoiceDigest is one record of the trailing-week digest
type WeeklyInvoiceDigest struct {
	ID          int       `json:"id"`
	Weekday     string    `json:"weekday"`
	Meal        string    `json:"meal"`
	CreatedDate time.Time `json:"createdDate"`
}
