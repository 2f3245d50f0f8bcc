package employee

import (
	"net/http"
	"slices"
	"strings"

	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), c.GetString("company_id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	var req ListEmployeesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Validation(c, err)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp = matching(resp, req.Search, func(e EmployeeResponse) []string {
		return []string{e.FullName, e.Email, e.EmployeeNumber}
	})
	sortEmployees(resp, req.SortBy, req.SortDir == "desc")

	page, meta := response.Paginate(resp, req.Page, req.PageSize)
	response.Success(c, http.StatusOK, page, &meta)
}

// GetOptions serves the cached id/name list used by pickers.
func (h *Handler) GetOptions(c *gin.Context) {
	resp, err := h.service.GetOptions(c.Request.Context(), c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp = matching(resp, c.Query("q"), func(e EmployeeResponse) []string {
		return []string{e.FullName, e.EmployeeNumber}
	})
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.GetString("company_id"), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Validation(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), c.GetString("company_id"), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.GetString("company_id"), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

// matching keeps the employees where any of fields contains q, case-insensitively.
func matching(list []EmployeeResponse, q string, fields func(EmployeeResponse) []string) []EmployeeResponse {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return list
	}

	out := make([]EmployeeResponse, 0, len(list))
	for _, e := range list {
		if slices.ContainsFunc(fields(e), func(f string) bool {
			return strings.Contains(strings.ToLower(f), q)
		}) {
			out = append(out, e)
		}
	}
	return out
}

func sortEmployees(list []EmployeeResponse, by string, desc bool) {
	key := func(e EmployeeResponse) string {
		switch by {
		case "email":
			return strings.ToLower(e.Email)
		case "employee_number":
			return e.EmployeeNumber
		case "department":
			return strings.ToLower(e.Department)
		case "join_date":
			return e.JoinDate
		default:
			return strings.ToLower(e.FullName)
		}
	}

	slices.SortStableFunc(list, func(a, b EmployeeResponse) int {
		cmp := strings.Compare(key(a), key(b))
		if desc {
			return -cmp
		}
		return cmp
	})
}
