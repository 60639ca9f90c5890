package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/realtyhub/marketplace-api/internal/api/metrics"
	"github.com/realtyhub/marketplace-api/internal/core/domain"
	"github.com/realtyhub/marketplace-api/internal/core/ports"
)

// RoleHandler exposes the role lifecycle manager over HTTP. Routes are wired
// behind the auth middleware plus a tier or permission guard; the handler
// passes the acting principal down so the service can enforce the
// superadmin-only rules on system roles.
type RoleHandler struct {
	roleService ports.RoleService
}

func NewRoleHandler(roleService ports.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

// List returns the full role catalog.
//
// @Summary      List roles
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   roleResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/roles [get]
func (h *RoleHandler) List(c echo.Context) error {
	roles, err := h.roleService.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]roleResponse, 0, len(roles))
	for i := range roles {
		resp = append(resp, toRoleResponse(&roles[i]))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns a single role by id.
//
// @Summary      Get a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/roles/{id} [get]
func (h *RoleHandler) Get(c echo.Context) error {
	role, err := h.roleService.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Create adds a new custom role.
//
// @Summary      Create a custom role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRoleRequest  true  "Role definition"
// @Success      201   {object}  roleResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /v1/roles [post]
func (h *RoleHandler) Create(c echo.Context) error {
	p, err := principalOrError(c)
	if err != nil {
		return err
	}

	var req createRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Create(c.Request().Context(), p, ports.CreateRoleInput{
		Name:        req.Name,
		Description: req.Description,
		Level:       req.Level,
		Permissions: req.Permissions,
		Pages:       req.Pages,
	})
	if err != nil {
		return err
	}

	metrics.RoleMutationsTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, toRoleResponse(role))
}

// Update patches a role's description, level, permissions, or pages.
//
// @Summary      Update a role
// @Tags         roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Role id"
// @Param        body  body      updateRoleRequest  true  "Fields to change"
// @Success      200   {object}  roleResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/roles/{id} [put]
func (h *RoleHandler) Update(c echo.Context) error {
	p, err := principalOrError(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	role, err := h.roleService.Update(c.Request().Context(), p, c.Param("id"), ports.UpdateRoleInput{
		Description: req.Description,
		Level:       req.Level,
		Permissions: req.Permissions,
		Pages:       req.Pages,
	})
	if err != nil {
		return err
	}

	metrics.RoleMutationsTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// ToggleActive flips a role's active flag.
//
// @Summary      Activate or deactivate a role
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  roleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/roles/{id}/toggle [patch]
func (h *RoleHandler) ToggleActive(c echo.Context) error {
	p, err := principalOrError(c)
	if err != nil {
		return err
	}

	role, err := h.roleService.ToggleActive(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.RoleMutationsTotal.WithLabelValues("toggle").Inc()
	return c.JSON(http.StatusOK, toRoleResponse(role))
}

// Delete removes a custom role AND every user account holding it. This is a
// destructive, irreversible cascade; the response reports how many accounts
// were removed.
//
// @Summary      Delete a role and cascade-delete its users
// @Tags         roles
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Role id"
// @Success      200  {object}  deleteRoleResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/roles/{id} [delete]
func (h *RoleHandler) Delete(c echo.Context) error {
	p, err := principalOrError(c)
	if err != nil {
		return err
	}

	result, err := h.roleService.Delete(c.Request().Context(), p, c.Param("id"))
	if err != nil {
		return err
	}

	metrics.RoleMutationsTotal.WithLabelValues("delete").Inc()
	metrics.CascadeDeletedUsers.Add(float64(result.UsersDeleted))
	return c.JSON(http.StatusOK, deleteRoleResponse{
		Role:         result.RoleName,
		UsersDeleted: result.UsersDeleted,
		Message:      "role and dependent users permanently deleted",
	})
}

func toRoleResponse(r *domain.Role) roleResponse {
	return roleResponse{
		ID:           r.ID,
		Name:         r.Name,
		Description:  r.Description,
		Level:        r.Level,
		Permissions:  r.Permissions,
		Pages:        r.Pages,
		IsSystemRole: r.IsSystemRole,
		IsActive:     r.IsActive,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
