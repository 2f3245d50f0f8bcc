package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/contextutil"

	employeeMock "go-payroll/internal/employee/mock"
	"go-payroll/internal/messaging/kafka"
	kafkaMock "go-payroll/internal/messaging/kafka/mock"
	counterMock "go-payroll/internal/shared/counter/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
	outbox    *kafkaMock.MockOutboxRepository
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)
	outboxRepo := kafkaMock.NewMockOutboxRepository(ctrl)

	svc := employee.NewServiceWithOutbox(db, repo, counterRepo, outboxRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		outbox:    outboxRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func salary(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success - auto generate employee number", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		companyID := uuid.New().String()
		emplID := uuid.New()
		req := employee.CreateEmployeeRequest{
			FirstName: "Asha",
			LastName:  "Rao",
			Email:     "asha@example.com",
			JoinDate:  "2026-01-01",
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().
			GetNextValue(ctx, companyID, "employee_number").
			Return(int64(123), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "Asha", e.FirstName)
				assert.Equal(t, "EMP-000123", e.EmployeeNumber)
				assert.Equal(t, companyID, e.CompanyID.String())
				assert.Equal(t, employee.StatusActive, e.EmploymentStatus)
				assert.Equal(t, employee.TypeFullTime, e.EmploymentType)
				assert.False(t, e.MonthlySalary.Valid)
				e.ID = emplID
				return nil
			})
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, emplID.String(), resp.ID)
		assert.Equal(t, "EMP-000123", resp.EmployeeNumber)
		assert.Equal(t, "Asha Rao", resp.FullName)
		assert.Nil(t, resp.MonthlySalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success - salary queues outbox event with request id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		rid := "REQ-123-ABC"
		ctx := contextutil.WithRequestID(context.Background(), rid)
		companyID := uuid.New().String()
		req := employee.CreateEmployeeRequest{
			EmployeeNumber: "EMP-000010",
			FirstName:      "John",
			LastName:       "Doe",
			Email:          "john@example.com",
			MonthlySalary:  salary("50000"),
			JoinDate:       "2026-01-01",
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), MatchOutboxWithRID(rid)).
			Return(nil).
			Times(1)
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, "50000", resp.MonthlySalary.String())
	})

	t.Run("negative salary is rejected before any write", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{
			FirstName:     "Neg",
			Email:         "neg@example.com",
			MonthlySalary: salary("-1"),
			JoinDate:      "2026-01-01",
		}

		_, err := deps.service.Create(ctx, uuid.New().String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrNegativeSalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid join date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{FirstName: "A", Email: "a@example.com", JoinDate: "01/01/2026"}

		_, err := deps.service.Create(ctx, uuid.New().String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoinDate)
	})

	t.Run("invalid company id", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := employee.CreateEmployeeRequest{FirstName: "A", Email: "a@example.com", JoinDate: "2026-01-01"}

		_, err := deps.service.Create(ctx, "not-a-uuid", req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidCompanyID)
	})

	t.Run("repo error -> rollback", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		companyID := uuid.New().String()
		req := employee.CreateEmployeeRequest{FirstName: "HR", Email: "hr@example.com", EmployeeNumber: "EMP-101", JoinDate: "2026-01-02"}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("db error"))

		_, err := deps.service.Create(ctx, companyID, req)

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeStoreError, appErr.Code)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee number -> conflict error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		companyID := uuid.New().String()
		req := employee.CreateEmployeeRequest{FirstName: "HR", Email: "hr@example.com", EmployeeNumber: "EMP-100", JoinDate: "2026-01-01"}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_number"})

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNumberAlreadyExists)
	})

	t.Run("outbox failure rolls back the employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		companyID := uuid.New().String()
		req := employee.CreateEmployeeRequest{
			FirstName:      "Out",
			Email:          "out@example.com",
			EmployeeNumber: "EMP-200",
			MonthlySalary:  salary("1000"),
			JoinDate:       "2026-01-01",
		}

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("outbox down"))

		_, err := deps.service.Create(ctx, companyID, req)

		assert.EqualError(t, err, "outbox down")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return([]employee.Employee{
				{ID: uuid.New(), FirstName: "Asha", LastName: "Rao"},
				{ID: uuid.New(), FirstName: "Ben", MonthlySalary: decimal.NewNullDecimal(decimal.NewFromInt(100))},
			}, nil)

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Asha Rao", resp[0].FullName)
		assert.Nil(t, resp[0].MonthlySalary)
		assert.Equal(t, "100", resp[1].MonthlySalary.String())
	})

	t.Run("repo error", func(t *testing.T) {
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID).
			Return(nil, errors.New("db error"))

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()

	t.Run("cache hit reads from redis", func(t *testing.T) {
		companyID := uuid.New().String()
		cacheKey := employee.GetEmployeeOptionsKey(companyID)
		expectedResp := []employee.EmployeeResponse{
			{ID: uuid.New().String(), FullName: "Caca", EmployeeNumber: "EMP001"},
		}
		jsonResp, _ := json.Marshal(expectedResp)

		deps.redismock.ExpectGet(cacheKey).SetVal(string(jsonResp))
		deps.repo.EXPECT().FindOptionsByCompany(gomock.Any(), gomock.Any()).Times(0)

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Caca", resp[0].FullName)
	})

	t.Run("cache miss loads from db and fills redis", func(t *testing.T) {
		companyID := uuid.New().String()
		cacheKey := employee.GetEmployeeOptionsKey(companyID)

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(gomock.Any(), companyID).
			Return([]employee.Employee{{ID: uuid.New(), FirstName: "Deni", EmployeeNumber: "EMP002"}}, nil).
			Times(1)
		deps.redismock.Regexp().ExpectSet(cacheKey, `.*`, 1*time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, "Deni", resp[0].FullName)
	})

	t.Run("database error", func(t *testing.T) {
		companyID := uuid.New().String()
		cacheKey := employee.GetEmployeeOptionsKey(companyID)

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(gomock.Any(), companyID).
			Return(nil, errors.New("database connection lost")).
			Times(1)

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.Error(t, err)
		assert.Nil(t, resp)
		assert.Contains(t, err.Error(), "database connection lost")
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID).
			Return(&employee.Employee{
				ID:        uuid.MustParse(targetID),
				FirstName: "HR",
				JoinDate:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			}, nil).
			Times(1)

		resp, err := deps.service.GetByID(ctx, companyID, targetID)

		assert.NoError(t, err)
		assert.Equal(t, targetID, resp.ID)
		assert.Equal(t, "2024-03-01", resp.JoinDate)
	})

	t.Run("not found", func(t *testing.T) {
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, targetID).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.GetByID(ctx, companyID, targetID)

		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	targetID := uuid.New()
	companyID := uuid.New()

	baseReq := func() employee.UpdateEmployeeRequest {
		return employee.UpdateEmployeeRequest{
			EmployeeNumber:   "EMP-000102",
			FirstName:        "HR",
			LastName:         "Updated",
			Email:            "hr.updated@example.com",
			EmploymentStatus: employee.StatusActive,
			EmploymentType:   employee.TypeFullTime,
			MonthlySalary:    salary("50000"),
			JoinDate:         "2026-01-03",
		}
	}

	t.Run("salary change queues outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := baseReq()
		existing := &employee.Employee{
			ID:            targetID,
			CompanyID:     companyID,
			FirstName:     "Old",
			MonthlySalary: decimal.NewNullDecimal(decimal.NewFromInt(40000)),
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID.String(), targetID.String()).
			Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "HR", e.FirstName)
				assert.True(t, e.MonthlySalary.Decimal.Equal(decimal.NewFromInt(50000)))
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.EmployeeSalaryChangedTopic, ev.Topic)
				assert.Equal(t, targetID.String(), ev.AggregateID)

				var payload events.EmployeeSalaryChangedEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, "50000.00", payload.MonthlySalary)
				return nil
			})
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID.String())).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID.String(), targetID.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, "HR Updated", resp.FullName)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("clearing the salary queues an event without amount", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := baseReq()
		req.MonthlySalary = nil
		existing := &employee.Employee{
			ID:            targetID,
			CompanyID:     companyID,
			MonthlySalary: decimal.NewNullDecimal(decimal.NewFromInt(40000)),
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID.String(), targetID.String()).Return(existing, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.False(t, e.HasSalary())
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, ev kafka.OutboxEvent) error {
				var payload events.EmployeeSalaryChangedEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, targetID.String(), payload.EmployeeID)
				assert.Empty(t, payload.MonthlySalary)
				assert.NotContains(t, string(ev.Payload), "monthly_salary")
				return nil
			})
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID.String())).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID.String(), targetID.String(), req)

		assert.NoError(t, err)
		assert.Nil(t, resp.MonthlySalary)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unchanged salary does not touch the outbox", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		existing := &employee.Employee{
			ID:            targetID,
			CompanyID:     companyID,
			MonthlySalary: decimal.NewNullDecimal(decimal.RequireFromString("50000.00")),
		}

		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByIDAndCompany(ctx, companyID.String(), targetID.String()).Return(existing, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID.String())).SetVal(1)

		_, err := deps.service.Update(ctx, companyID.String(), targetID.String(), baseReq())

		assert.NoError(t, err)
	})

	t.Run("employee not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID.String(), targetID.String()).
			Return(nil, gorm.ErrRecordNotFound)

		resp, err := deps.service.Update(ctx, companyID.String(), targetID.String(), baseReq())

		assert.Empty(t, resp.ID)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("update failed", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID.String(), targetID.String()).
			Return(&employee.Employee{ID: targetID, CompanyID: companyID}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Update(ctx, companyID.String(), targetID.String(), baseReq())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, targetID).Return(nil)
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		err := deps.service.Delete(ctx, companyID, targetID)

		assert.NoError(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("failure - not found", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, targetID).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, companyID, targetID)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

type outboxRequestIDMatcher struct {
	expectedRID string
}

func (m outboxRequestIDMatcher) Matches(x any) bool {
	event, ok := x.(kafka.OutboxEvent)
	if !ok {
		return false
	}
	if event.RequestID != m.expectedRID {
		return false
	}

	var payload events.EmployeeSalaryChangedEvent
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		return false
	}

	return payload.RequestID == m.expectedRID
}

func (m outboxRequestIDMatcher) String() string {
	return "matches outbox event with request_id " + m.expectedRID
}

func MatchOutboxWithRID(rid string) gomock.Matcher {
	return outboxRequestIDMatcher{expectedRID: rid}
}
