package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/oguzkaya/canteen-server/internal/models"
)

// Meal handlers

func (h *Handler) GetAllMeals(c *gin.Context) {
	meals, err := h.svc.GetAllMeals(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, meals)
}

func (h *Handler) GetMealByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	meal, err := h.svc.GetMealByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if meal == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, meal)
}

func (h *Handler) GetMealsByProductID(c *gin.Context) {
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	meals, err := h.svc.GetMealsByProductID(c.Request.Context(), productID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, meals)
}

func (h *Handler) CreateMeal(c *gin.Context) {
	var req models.CreateMealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	meal, err := h.svc.CreateMeal(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, meal)
}

func (h *Handler) DeleteMeal(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.svc.DeleteMeal(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if !deleted {
		respondMissing(c)
		return
	}

	respond(c, http.StatusOK, []interface{}{})
}

// Invoice handlers

func (h *Handler) CreateInvoice(c *gin.Context) {
	var req models.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	invoice, err := h.svc.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, invoice)
}

func (h *Handler) DeleteInvoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.DeleteInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	deleted, err := h.svc.SoftDeleteInvoice(c.Request.Context(), id, req.DeletedBy)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if !deleted {
		respondMissing(c)
		return
	}

	respond(c, http.StatusOK, []interface{}{})
}

func (h *Handler) CreateInvoiceDetailsBatch(c *gin.Context) {
	var req models.CreateInvoiceDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	details, err := h.svc.AddInvoiceDetails(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, details)
}

// Report handlers

func (h *Handler) GetInvoicesByGroup(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	invoices, err := h.svc.GetInvoicesByGroup(c.Request.Context(), groupID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, invoices)
}

func (h *Handler) GetInvoiceReport(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if _, err := time.Parse("2006-01-02", startDate); err != nil {
		respondBadRequest(c, "invalid start_date, expected YYYY-MM-DD")
		return
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		respondBadRequest(c, "invalid end_date, expected YYYY-MM-DD")
		return
	}

	report, err := h.svc.GetInvoiceReport(c.Request.Context(), groupID, startDate, endDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, report)
}

func (h *Handler) GetWeeklyInvoices(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	digests, err := h.svc.GetWeeklyInvoices(c.Request.Context(), groupID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, digests)
}

func (h *Handler) GetUsersInDebt(c *gin.Context) {
	groupID, ok := pathID(c, "id")
	if !ok {
		return
	}

	users, err := h.svc.GetUsersInDebt(c.Request.Context(), groupID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, users)
}
