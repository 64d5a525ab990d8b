package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/nexus-admin/internal/application/export"
	userapp "github.com/oksasatya/nexus-admin/internal/application/user"
	"github.com/oksasatya/nexus-admin/internal/domain/entity"
	"github.com/oksasatya/nexus-admin/pkg/response"
	"github.com/oksasatya/nexus-admin/pkg/validation"
)

type UserHandler struct {
	UC     *userapp.UseCases
	Search *userapp.SearchUsers
	Export *export.ExportUsers
	Logger *logrus.Logger
}

func NewUserHandler(uc *userapp.UseCases, search *userapp.SearchUsers, exp *export.ExportUsers, logger *logrus.Logger) *UserHandler {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &UserHandler{UC: uc, Search: search, Export: exp, Logger: logger}
}

type createUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role"`
}

type updateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

type searchUsersRequest struct {
	Q    string `form:"q" binding:"required"`
	Size int    `form:"size" binding:"page"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.UC.Create.Execute(c.Request.Context(), userapp.CreateUserRequest{
		Email: req.Email,
		Name:  req.Name,
		Role:  entity.RoleFromString(req.Role),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	h.Logger.WithField("user_id", res.ID).Info("user created")
	response.Success(c, http.StatusCreated, res, "user created successfully", nil)
}

func (h *UserHandler) Get(c *gin.Context) {
	res, err := h.UC.Get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "user", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	res, err := h.UC.List.Execute(c.Request.Context(), userapp.ListUsersRequest{
		Page:     queryInt(c, "page"),
		PageSize: queryInt(c, "pageSize"),
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "users", map[string]any{
		"page":       res.Page,
		"pageSize":   res.PageSize,
		"totalCount": res.TotalCount,
		"totalPages": res.TotalPages,
	})
}

func (h *UserHandler) Update(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	in := userapp.UpdateUserRequest{Name: req.Name}
	if req.Role != nil {
		if role, ok := entity.ParseRole(*req.Role); ok {
			in.Role = &role
		}
	}
	res, err := h.UC.Update.Execute(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "user updated successfully", nil)
}

func (h *UserHandler) Activate(c *gin.Context) {
	res, err := h.UC.Activate.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "user activated successfully", nil)
}

func (h *UserHandler) Deactivate(c *gin.Context) {
	res, err := h.UC.Deactivate.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "user deactivated successfully", nil)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.UC.Delete.Execute(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	h.Logger.WithField("user_id", id).Info("user deleted")
	response.Success[any](c, http.StatusOK, nil, "user deleted successfully", nil)
}

// ResendWelcome queues the welcome email again for an existing user.
func (h *UserHandler) ResendWelcome(c *gin.Context) {
	if err := h.UC.Welcome.Execute(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Success[any](c, http.StatusAccepted, gin.H{"queued": true}, "welcome email queued", nil)
}

// SearchUsers handles GET /api/users/search?q=...&size=...
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var req searchUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid query", validation.ToDetails(err))
		return
	}
	hits, err := h.Search.Execute(c.Request.Context(), req.Q, req.Size)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

func (h *UserHandler) ExportUsers(c *gin.Context) {
	res, err := h.Export.Execute(c.Request.Context())
	if errors.Is(err, export.ErrUploaderNotConfigured) {
		response.Error[any](c, http.StatusServiceUnavailable, "export storage not configured", nil)
		return
	}
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, res, "users exported", nil)
}

// fail maps domain error kinds to HTTP statuses.
func (h *UserHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, entity.ErrInvalidValue), errors.Is(err, entity.ErrNoOpTransition):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, entity.ErrAlreadyExists):
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, entity.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.FullPath(),
			"request_id": c.GetString("request_id"),
		}).Error("request failed")
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// queryInt reads an integer query parameter; missing or malformed values read as 0.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
