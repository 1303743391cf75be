package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/oguzkaya/canteen-server/internal/models"
	"github.com/oguzkaya/canteen-server/internal/service"
	"go.uber.org/zap"
)

// Handler holds the HTTP handlers for all API routes
type Handler struct {
	svc service.Service
	log *zap.Logger
}

// NewHandler creates a new API handler
func NewHandler(svc service.Service, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
	}
}

// SetupRoutes registers all API routes on the router
func (h *Handler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/roles", h.GetAllRoles)
		api.GET("/roles/:id", h.GetRoleByID)
		api.GET("/roles/search/:name", h.SearchRolesByName)
		api.POST("/roles", h.CreateRole)
		api.PUT("/roles/:id", h.UpdateRole)

		api.GET("/groups", h.GetAllGroups)
		api.GET("/groups/:id", h.GetGroupByID)
		api.POST("/groups", h.CreateGroup)
		api.GET("/groups/:id/users-in-debt", h.GetUsersInDebt)
		api.GET("/groups/:id/invoices", h.GetInvoicesByGroup)
		api.GET("/groups/:id/invoices/report", h.GetInvoiceReport)
		api.GET("/groups/:id/invoices/weekly", h.GetWeeklyInvoices)

		api.GET("/users", h.GetAllUsers)
		api.GET("/users/:id", h.GetUserByID)
		api.GET("/users/email/:email", h.GetUserByEmail)
		api.GET("/users/display/:displayId", h.GetUserByDisplayID)
		api.GET("/users/search/:name", h.SearchUsersByName)
		api.POST("/users", h.CreateUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		api.GET("/products", h.GetAllProducts)
		api.GET("/products/:id", h.GetProductByID)
		api.POST("/products", h.CreateProduct)

		api.GET("/suppliers/:id", h.GetSupplierByID)
		api.POST("/suppliers", h.CreateSupplier)

		api.GET("/meals", h.GetAllMeals)
		api.GET("/meals/:id", h.GetMealByID)
		api.GET("/meals/product/:productId", h.GetMealsByProductID)
		api.POST("/meals", h.CreateMeal)
		api.DELETE("/meals/:id", h.DeleteMeal)

		api.POST("/invoices", h.CreateInvoice)
		api.DELETE("/invoices/:id", h.DeleteInvoice)
		api.POST("/invoice-details/batch", h.CreateInvoiceDetailsBatch)
	}
}

// respond writes the standard JSON envelope
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.APIResponse{
		Status:       status,
		Data:         data,
		ErrorMessage: "",
	})
}

// respondNotFound is for get-by-id misses
func respondNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.APIResponse{
		Status:       http.StatusNotFound,
		Data:         []interface{}{},
		ErrorMessage: "Not found",
	})
}

// respondMissing is for update/delete paths where a missing id is an empty
// result rather than a failure
func respondMissing(c *gin.Context) {
	c.JSON(http.StatusOK, models.APIResponse{
		Status:       http.StatusOK,
		Data:         []interface{}{},
		ErrorMessage: "Not found",
	})
}

func respondBadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:       http.StatusBadRequest,
		Data:         []interface{}{},
		ErrorMessage: msg,
	})
}

// respondError translates the service error taxonomy into HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrReferenceNotFound):
		status = http.StatusUnprocessableEntity
	default:
		h.log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	c.JSON(status, models.APIResponse{
		Status:       status,
		Data:         []interface{}{},
		ErrorMessage: err.Error(),
	})
}

// pathID parses an integer path parameter
func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		respondBadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
