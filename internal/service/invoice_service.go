package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/oguzkaya/canteen-server/internal/models"
	"go.uber.org/zap"
)

// CreateInvoice runs the composite invoice-creation workflow: verify the
// group and supplier, resolve or create the meal for the product set, then
// insert the invoice. Meal creation and the invoice insert share one
// transaction at the storage boundary, so a failed insert leaves no meal rows.
func (s *DefaultService) CreateInvoice(ctx context.Context, req models.CreateInvoiceRequest) (*models.Invoice, error) {
	if err := s.checkGroupExists(ctx, req.GroupID); err != nil {
		return nil, err
	}

	supplier, err := s.repo.GetSupplierByID(ctx, req.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("error checking supplier existence: %w", err)
	}
	if supplier == nil {
		return nil, referenceNotFound("supplier")
	}

	candidates, err := s.repo.GetMealsByProductIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("error matching meal: %w", err)
	}

	now := s.now().UTC()
	invoice := &models.Invoice{
		Price:                req.Price,
		IsDeleted:            false,
		DeletedBy:            0,
		CreatedDate:          now,
		LastModificationDate: now,
		GroupID:              req.GroupID,
		SupplierID:           req.SupplierID,
	}

	var newMealProducts []int
	if mealID, ok := matchMealGroup(candidates, req.ProductIDs); ok {
		invoice.MealID = mealID
	} else {
		newMealProducts = req.ProductIDs
	}

	if err := s.repo.CreateInvoice(ctx, invoice, newMealProducts); err != nil {
		return nil, fmt.Errorf("error creating invoice: %w", err)
	}

	s.log.Info("invoice created",
		zap.Int("invoiceId", invoice.ID),
		zap.Int("groupId", invoice.GroupID),
		zap.Int("mealId", invoice.MealID))

	return invoice, nil
}

// AddInvoiceDetails creates one zero-priced stock unit plus one detail row per
// product, linked to the invoice, in a single transaction.
func (s *DefaultService) AddInvoiceDetails(ctx context.Context, req models.CreateInvoiceDetailsRequest) ([]models.InvoiceDetails, error) {
	invoice, err := s.repo.GetInvoiceByID(ctx, req.InvoiceID)
	if err != nil {
		return nil, fmt.Errorf("error checking invoice existence: %w", err)
	}
	if invoice == nil {
		return nil, referenceNotFound("invoice")
	}

	details, err := s.repo.CreateInvoiceDetails(ctx, req.InvoiceID, req.ProductIDs)
	if err != nil {
		return nil, fmt.Errorf("error creating invoice details: %w", err)
	}

	return details, nil
}

func (s *DefaultService) GetInvoicesByGroup(ctx context.Context, groupID int) ([]models.Invoice, error) {
	invoices, err := s.repo.GetInvoicesByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("error getting invoices: %w", err)
	}

	return invoices, nil
}

// SoftDeleteInvoice marks the invoice deleted instead of removing the row.
// Returns false, nil when the invoice does not exist or is already deleted.
func (s *DefaultService) SoftDeleteInvoice(ctx context.Context, id, deletedBy int) (bool, error) {
	invoice, err := s.repo.GetInvoiceByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error getting invoice: %w", err)
	}

	if invoice == nil || invoice.IsDeleted {
		return false, nil
	}

	deleted, err := s.repo.SoftDeleteInvoice(ctx, id, deletedBy, s.now().UTC())
	if err != nil {
		return false, fmt.Errorf("error deleting invoice: %w", err)
	}

	if deleted {
		entry := &models.SystemLog{
			TransactionType: "invoice_delete",
			Description:     fmt.Sprintf("invoice %d deleted", id),
			Date:            s.now().UTC(),
			UserID:          deletedBy,
			GroupID:         invoice.GroupID,
		}
		if err := s.repo.CreateSystemLog(ctx, entry); err != nil {
			s.log.Error("failed to write system log", zap.Int("invoiceId", id), zap.Error(err))
		}
	}

	return deleted, nil
}

// groupInvoicesByDate buckets flat report rows by the calendar day of their
// created date. Buckets come back sorted ascending by date string.
func groupInvoicesByDate(rows []models.InvoiceReportRow) []models.InvoiceReport {
	buckets := make(map[string][]models.InvoiceReportRow)
	for _, row := range rows {
		day := row.CreatedDate.Format("2006-01-02")
		buckets[day] = append(buckets[day], row)
	}

	dates := make([]string, 0, len(buckets))
	for day := range buckets {
		dates = append(dates, day)
	}
	sort.Strings(dates)

	report := make([]models.InvoiceReport, 0, len(dates))
	for _, day := range dates {
		report = append(report, models.InvoiceReport{
			Date:     day,
			Invoices: buckets[day],
		})
	}

	return report
}

// GetInvoiceReport returns the invoices of a group between two dates
// (inclusive, date portion only), bucketed per calendar day.
func (s *DefaultService) GetInvoiceReport(ctx context.Context, groupID int, startDate, endDate string) ([]models.InvoiceReport, error) {
	rows, err := s.repo.GetInvoiceReportRows(ctx, groupID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("error getting invoice report: %w", err)
	}

	return groupInvoicesByDate(rows), nil
}

// GetWeeklyInvoices returns one digest per invoice created within the trailing
// 7-day window, both boundaries inclusive.
func (s *DefaultService) GetWeeklyInvoices(ctx context.Context, groupID int) ([]models.WeeklyInvoiceDigest, error) {
	to := s.now().UTC()
	from := to.AddDate(0, 0, -7)

	rows, err := s.repo.GetWeeklyInvoiceRows(ctx, groupID, from, to)
	if err != nil {
		return nil, fmt.Errorf("error getting weekly invoices: %w", err)
	}

	digests := make([]models.WeeklyInvoiceDigest, 0, len(rows))
	for _, row := range rows {
		digests = append(digests, models.WeeklyInvoiceDigest{
			ID:          row.ID,
			Weekday:     row.CreatedDate.Weekday().String(),
			Meal:        row.Meal,
			CreatedDate: row.CreatedDate,
		})
	}

	return digests, nil
}
