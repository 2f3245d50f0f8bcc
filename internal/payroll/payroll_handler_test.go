package payroll_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	payrollMock "go-payroll/internal/payroll/mock"
	"go-payroll/internal/salary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type salariesBody struct {
	Data struct {
		Employees []payroll.SalarySummary `json:"employees"`
		Sync      salary.SyncResult       `json:"sync"`
	} `json:"data"`
	Meta struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func setupRouter(companyID string, h *payroll.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	r.GET("/payroll/salaries", h.GetSalaries)
	return r
}

func sampleOverview() payroll.Overview {
	return payroll.Overview{
		Year:  2024,
		Month: 3,
		Employees: []payroll.SalarySummary{
			{EmployeeID: "e-1", Name: "Asha Rao", Department: "Platform", Status: payroll.StatusPaid},
			{EmployeeID: "e-2", Name: "Vikram Shah", Department: "Finance", Status: payroll.StatusPending},
			{EmployeeID: "e-3", Name: "Meera Iyer", Department: "Platform", Status: payroll.StatusPending},
		},
		Sync: salary.SyncResult{Unchanged: 3},
	}
}

func TestPayrollHandler_GetSalaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	companyID := uuid.New().String()

	t.Run("returns refreshed view", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().Refresh(gomock.Any(), companyID).Return(sampleOverview(), nil)

		w := httptest.NewRecorder()
		setupRouter(companyID, payroll.NewHandler(svc)).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payroll/salaries", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body salariesBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data.Employees, 3)
		assert.Equal(t, 3, body.Data.Sync.Unchanged)
		assert.Equal(t, int64(3), body.Meta.Total)
	})

	t.Run("filters by status and search", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().Refresh(gomock.Any(), companyID).Return(sampleOverview(), nil)

		w := httptest.NewRecorder()
		setupRouter(companyID, payroll.NewHandler(svc)).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payroll/salaries?status=Pending&q=platform", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var body salariesBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data.Employees, 1)
		assert.Equal(t, "e-3", body.Data.Employees[0].EmployeeID)
	})

	t.Run("paginates", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().Refresh(gomock.Any(), companyID).Return(sampleOverview(), nil)

		w := httptest.NewRecorder()
		setupRouter(companyID, payroll.NewHandler(svc)).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payroll/salaries?page=2&page_size=2", nil))

		var body salariesBody
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body.Data.Employees, 1)
		assert.Equal(t, "e-3", body.Data.Employees[0].EmployeeID)
		assert.Equal(t, int64(3), body.Meta.Total)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)

		w := httptest.NewRecorder()
		setupRouter(companyID, payroll.NewHandler(svc)).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payroll/salaries?status=Late", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("aborted refresh", func(t *testing.T) {
		svc := payrollMock.NewMockService(ctrl)
		svc.EXPECT().Refresh(gomock.Any(), companyID).Return(payroll.Overview{}, payrollerrors.ErrRefreshAborted)

		w := httptest.NewRecorder()
		setupRouter(companyID, payroll.NewHandler(svc)).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payroll/salaries", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
