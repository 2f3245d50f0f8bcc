package employee_test

import (
	"context"
	"errors"
	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeEmployeeService struct {
	CreateFn     func(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetAllFn     func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	GetOptionsFn func(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error)
	GetByIDFn    func(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error)
	UpdateFn     func(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	DeleteFn     func(ctx context.Context, companyID, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.GetAllFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context, companyID string) ([]employee.EmployeeResponse, error) {
	return f.GetOptionsFn(ctx, companyID)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, companyID, id string) (employee.EmployeeResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakeEmployeeService) Update(ctx context.Context, companyID, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func withCompany(companyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	}
}

func newJSONContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestEmployeeHandler_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, "John", req.FirstName)
				assert.Equal(t, "50000", req.MonthlySalary.String())
				return employee.EmployeeResponse{
					ID:        uuid.New().String(),
					FullName:  "John Doe",
					Email:     req.Email,
					CompanyID: cid,
				}, nil
			},
		}

		h := employee.NewHandler(svc)
		body := `{"first_name":"John","last_name":"Doe","email":"john@example.com","monthly_salary":"50000","join_date":"2026-01-01"}`
		c, w := newJSONContext(http.MethodPost, "/api/v1/employees", body)
		c.Set("company_id", companyID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "John Doe")
	})

	t.Run("validation error names the missing field", func(t *testing.T) {
		apperror.Init()
		h := employee.NewHandler(&fakeEmployeeService{})
		c, w := newJSONContext(http.MethodPost, "/employees", `{"email":"x@example.com","join_date":"2026-01-01"}`)
		c.Set("company_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, w.Body.String(), "First Name is required")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, errors.New("database connection failed")
			},
		}

		h := employee.NewHandler(svc)
		body := `{"first_name":"HR","email":"hr@company.com","join_date":"2026-01-02"}`
		c, w := newJSONContext(http.MethodPost, "/employees", body)
		c.Set("company_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), apperror.ErrInternal.Message)
		assert.NotContains(t, w.Body.String(), "database connection failed")
	})

	t.Run("duplicate employee number returns conflict", func(t *testing.T) {
		svc := &fakeEmployeeService{
			CreateFn: func(ctx context.Context, cid string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNumberAlreadyExists
			},
		}

		h := employee.NewHandler(svc)
		body := `{"first_name":"John","email":"john2@example.com","employee_number":"EMP-000900","join_date":"2026-01-01"}`
		c, w := newJSONContext(http.MethodPost, "/api/v1/employees", body)
		c.Set("company_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeConflict)
		assert.Contains(t, w.Body.String(), "Employee number is already taken")
	})
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	list := []employee.EmployeeResponse{
		{ID: "1", FullName: "John Doe", Email: "john@example.com", EmployeeNumber: "EMP-000002"},
		{ID: "2", FullName: "Jane Doe", Email: "jane@example.com", EmployeeNumber: "EMP-000001"},
		{ID: "3", FullName: "Ali Khan", Email: "ali@example.com", EmployeeNumber: "EMP-000003"},
	}

	t.Run("success with pagination meta", func(t *testing.T) {
		companyID := uuid.New().String()
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				return append([]employee.EmployeeResponse(nil), list...), nil
			},
		}

		h := employee.NewHandler(svc)
		c, w := newJSONContext(http.MethodGet, "/employees?page=1&page_size=2", "")
		c.Set("company_id", companyID)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ali Khan")
		assert.Contains(t, w.Body.String(), "Jane Doe")
		assert.NotContains(t, w.Body.String(), "John Doe")
		assert.Contains(t, w.Body.String(), `"totalPages":2`)
	})

	t.Run("search by employee number", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
				return append([]employee.EmployeeResponse(nil), list...), nil
			},
		}

		h := employee.NewHandler(svc)
		c, w := newJSONContext(http.MethodGet, "/employees?q=emp-000003", "")
		c.Set("company_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ali Khan")
		assert.NotContains(t, w.Body.String(), "Jane Doe")
	})

	t.Run("sorted by employee number descending", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
				return append([]employee.EmployeeResponse(nil), list...), nil
			},
		}

		h := employee.NewHandler(svc)
		c, w := newJSONContext(http.MethodGet, "/employees?sort_by=employee_number&sort_dir=desc&page_size=1", "")
		c.Set("company_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Ali Khan")
		assert.NotContains(t, w.Body.String(), "John Doe")
	})

	t.Run("unknown sort field is rejected", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		c, w := newJSONContext(http.MethodGet, "/employees?sort_by=salary", "")
		c.Set("company_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperror.CodeValidation)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetAllFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("database error")
			},
		}

		h := employee.NewHandler(svc)
		c, w := newJSONContext(http.MethodGet, "/employees", "")
		c.Set("company_id", uuid.New().String())

		h.GetAll(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeHandler_GetOptions(t *testing.T) {
	options := []employee.EmployeeResponse{
		{ID: "1", FullName: "Alice Smith", EmployeeNumber: "EMP001"},
		{ID: "2", FullName: "Bob Wilson", EmployeeNumber: "EMP002"},
	}

	t.Run("success - return all options", func(t *testing.T) {
		companyID := uuid.New().String()
		svc := &fakeEmployeeService{
			GetOptionsFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				return options, nil
			},
		}

		h := employee.NewHandler(svc)
		c, w := newJSONContext(http.MethodGet, "/employees/options", "")
		c.Set("company_id", companyID)

		h.GetOptions(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alice Smith")
		assert.Contains(t, w.Body.String(), "EMP002")
	})

	t.Run("success - filter by query q", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetOptionsFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
				return options, nil
			},
		}

		h := employee.NewHandler(svc)
		c, w := newJSONContext(http.MethodGet, "/employees/options?q=alice", "")
		c.Set("company_id", uuid.New().String())

		h.GetOptions(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Alice Smith")
		assert.NotContains(t, w.Body.String(), "Bob Wilson")
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetOptionsFn: func(ctx context.Context, cid string) ([]employee.EmployeeResponse, error) {
				return nil, errors.New("redis connection failed")
			},
		}

		h := employee.NewHandler(svc)
		c, w := newJSONContext(http.MethodGet, "/employees/options", "")
		c.Set("company_id", uuid.New().String())

		h.GetOptions(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		targetID := uuid.New().String()
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, cid, id string) (employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, targetID, id)
				return employee.EmployeeResponse{ID: id, FullName: "John Doe"}, nil
			},
		}

		r := setupRouter()
		r.Use(withCompany(companyID))
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetById)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+targetID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), targetID)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeEmployeeService{
			GetByIDFn: func(ctx context.Context, cid, id string) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
			},
		}

		r := setupRouter()
		r.Use(withCompany(uuid.New().String()))
		h := employee.NewHandler(svc)
		r.GET("/employees/:id", h.GetById)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employees/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Employee not found")
	})
}

func TestEmployeeHandler_Update(t *testing.T) {
	body := `{"employee_number":"EMP-000001","first_name":"John","email":"john@example.com","employment_status":"active","employment_type":"full_time","monthly_salary":"60000","join_date":"2026-01-01"}`

	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		targetID := uuid.New().String()
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, cid, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, targetID, id)
				assert.Equal(t, "60000", req.MonthlySalary.String())
				return employee.EmployeeResponse{ID: id, FullName: "John"}, nil
			},
		}

		r := setupRouter()
		r.Use(withCompany(companyID))
		h := employee.NewHandler(svc)
		r.PUT("/employees/:id", h.Update)

		req := httptest.NewRequest(http.MethodPut, "/employees/"+targetID, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid employment status", func(t *testing.T) {
		r := setupRouter()
		r.Use(withCompany(uuid.New().String()))
		h := employee.NewHandler(&fakeEmployeeService{})
		r.PUT("/employees/:id", h.Update)

		bad := strings.Replace(body, `"active"`, `"retired"`, 1)
		req := httptest.NewRequest(http.MethodPut, "/employees/"+uuid.New().String(), strings.NewReader(bad))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative salary", func(t *testing.T) {
		svc := &fakeEmployeeService{
			UpdateFn: func(ctx context.Context, cid, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
				return employee.EmployeeResponse{}, employeeerrors.ErrNegativeSalary
			},
		}

		r := setupRouter()
		r.Use(withCompany(uuid.New().String()))
		h := employee.NewHandler(svc)
		r.PUT("/employees/:id", h.Update)

		neg := strings.Replace(body, `"60000"`, `"-5"`, 1)
		req := httptest.NewRequest(http.MethodPut, "/employees/"+uuid.New().String(), strings.NewReader(neg))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "cannot be negative")
	})
}

func TestDeleteEmployeeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()
		targetID := uuid.New().String()

		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, cid, id string) error {
				assert.Equal(t, companyID, cid)
				assert.Equal(t, targetID, id)
				return nil
			},
		}

		r := setupRouter()
		r.Use(withCompany(companyID))
		h := employee.NewHandler(svc)
		r.DELETE("/employees/:id", h.Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+targetID, nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("service error", func(t *testing.T) {
		svc := &fakeEmployeeService{
			DeleteFn: func(ctx context.Context, cid, id string) error {
				return errors.New("failed")
			},
		}

		r := setupRouter()
		r.Use(withCompany(uuid.New().String()))
		h := employee.NewHandler(svc)
		r.DELETE("/employees/:id", h.Delete)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employees/"+uuid.New().String(), nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
