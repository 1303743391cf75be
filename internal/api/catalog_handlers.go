package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzkaya/canteen-server/internal/models"
)

// Group handlers

func (h *Handler) GetAllGroups(c *gin.Context) {
	groups, err := h.svc.GetAllGroups(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, groups)
}

func (h *Handler) GetGroupByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	group, err := h.svc.GetGroupByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if group == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, group)
}

func (h *Handler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	group, err := h.svc.CreateGroup(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, group)
}

// Product handlers

func (h *Handler) GetAllProducts(c *gin.Context) {
	products, err := h.svc.GetAllProducts(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, products)
}

func (h *Handler) GetProductByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	product, err := h.svc.GetProductByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if product == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, product)
}

func (h *Handler) CreateProduct(c *gin.Context) {
	var req models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	product, err := h.svc.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, product)
}

// Supplier handlers

func (h *Handler) GetSupplierByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	supplier, err := h.svc.GetSupplierByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if supplier == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, supplier)
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var req models.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	supplier, err := h.svc.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, supplier)
}
