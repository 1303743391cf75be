package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oguzkaya/canteen-server/internal/models"
)

// Role handlers

func (h *Handler) GetAllRoles(c *gin.Context) {
	roles, err := h.svc.GetAllRoles(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, roles)
}

func (h *Handler) GetRoleByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	role, err := h.svc.GetRoleByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if role == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, role)
}

func (h *Handler) SearchRolesByName(c *gin.Context) {
	roles, err := h.svc.SearchRolesByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, roles)
}

func (h *Handler) CreateRole(c *gin.Context) {
	var req models.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	role, err := h.svc.CreateRole(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, role)
}

func (h *Handler) UpdateRole(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	role, err := h.svc.UpdateRole(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if role == nil {
		respondMissing(c)
		return
	}

	respond(c, http.StatusOK, role)
}

// User handlers

func (h *Handler) GetAllUsers(c *gin.Context) {
	users, err := h.svc.GetAllUsers(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, users)
}

func (h *Handler) GetUserByID(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.svc.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if user == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, user)
}

func (h *Handler) GetUserByEmail(c *gin.Context) {
	user, err := h.svc.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if user == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, user)
}

func (h *Handler) GetUserByDisplayID(c *gin.Context) {
	user, err := h.svc.GetUserByDisplayID(c.Request.Context(), c.Param("displayId"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	if user == nil {
		respondNotFound(c)
		return
	}

	respond(c, http.StatusOK, user)
}

func (h *Handler) SearchUsersByName(c *gin.Context) {
	users, err := h.svc.SearchUsersByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusOK, users)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.svc.CreateUser(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	user, err := h.svc.UpdateUser(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	if user == nil {
		respondMissing(c)
		return
	}

	respond(c, http.StatusOK, user)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	deleted, err := h.svc.DeleteUser(c.Request.Context(), id)
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
