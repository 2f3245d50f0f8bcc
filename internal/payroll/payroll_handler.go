package payroll

import (
	"net/http"
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
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// GetSalaries refreshes salary records and returns one page of the salary
// view. The sync summary is returned alongside the page.
func (h *Handler) GetSalaries(c *gin.Context) {
	companyID := c.GetString("company_id")

	var filter GetSalariesFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Validation(c, err)
		return
	}

	overview, err := h.service.Refresh(c.Request.Context(), companyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	rows, meta := response.Paginate(filterSummaries(overview.Employees, filter), filter.Page, filter.PageSize)
	overview.Employees = rows
	response.Success(c, http.StatusOK, overview, &meta)
}

func filterSummaries(rows []SalarySummary, filter GetSalariesFilterRequest) []SalarySummary {
	if filter.Status == "" && filter.Search == "" {
		return rows
	}

	q := strings.ToLower(strings.TrimSpace(filter.Search))
	out := make([]SalarySummary, 0, len(rows))
	for _, r := range rows {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Department), q) &&
			!strings.Contains(strings.ToLower(r.Position), q) {
			continue
		}
		out = append(out, r)
	}
	return out
}
