package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka/consumer"
	"go-payroll/internal/payslip"
	paysliperrors "go-payroll/internal/payslip/errors"
	"go-payroll/internal/salary"
	salaryerrors "go-payroll/internal/salary/errors"
	salaryMock "go-payroll/internal/salary/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader hands out queued messages, then blocks until ctx is done.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []int64
	drained   chan struct{}
}

func newFakeReader(values ...[]byte) *fakeReader {
	r := &fakeReader{drained: make(chan struct{})}
	for i, v := range values {
		r.queue = append(r.queue, kafkago.Message{Offset: int64(i), Value: v})
	}
	return r
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		msg := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return msg, nil
	}
	r.mu.Unlock()

	select {
	case <-r.drained:
	default:
		close(r.drained)
	}
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) commits() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.committed...)
}

// consume runs fn until the reader has handed out every message.
func consume(t *testing.T, r *fakeReader, fn func(ctx context.Context)) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(ctx)
	}()

	select {
	case <-r.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not drain messages")
	}
	cancel()
	<-done
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	return b
}

func TestConsumeSalaryChanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := salaryMock.NewMockService(ctrl)

	ok := events.EmployeeSalaryChangedEvent{EmployeeID: "e-1", CompanyID: "c-1"}
	gone := events.EmployeeSalaryChangedEvent{EmployeeID: "e-2", CompanyID: "c-1"}
	flaky := events.EmployeeSalaryChangedEvent{EmployeeID: "e-3", CompanyID: "c-1"}
	partial := events.EmployeeSalaryChangedEvent{EmployeeID: "e-4", CompanyID: "c-1"}
	cleared := events.EmployeeSalaryChangedEvent{EmployeeID: "e-5", CompanyID: "c-1"}

	svc.EXPECT().SyncEmployee(gomock.Any(), "c-1", "e-1").Return(salary.SyncResult{Updated: 1}, nil)
	svc.EXPECT().SyncEmployee(gomock.Any(), "c-1", "e-2").Return(salary.SyncResult{}, salaryerrors.ErrEmployeeNotFound)
	svc.EXPECT().SyncEmployee(gomock.Any(), "c-1", "e-3").Return(salary.SyncResult{}, errors.New("db down"))
	svc.EXPECT().SyncEmployee(gomock.Any(), "c-1", "e-4").Return(salary.SyncResult{
		Failed:   1,
		Failures: []salary.SyncFailure{{EmployeeID: "e-4", Operation: "update"}},
	}, nil)
	svc.EXPECT().SyncEmployee(gomock.Any(), "c-1", "e-5").Return(salary.SyncResult{Removed: 1}, nil)

	reader := newFakeReader(
		mustJSON(t, ok),
		[]byte("{not json"),
		mustJSON(t, gone),
		mustJSON(t, flaky),
		mustJSON(t, partial),
		mustJSON(t, cleared),
	)

	consume(t, reader, func(ctx context.Context) {
		consumer.ConsumeSalaryChanged(ctx, reader, svc, zap.NewNop())
	})

	// malformed and unknown-employee messages are committed, transient
	// failures are not, yet the later commit at offset 5 moves past them
	assert.Equal(t, []int64{0, 1, 2, 5}, reader.commits())
	assert.NotContains(t, reader.commits(), int64(3))
	assert.NotContains(t, reader.commits(), int64(4))
}

type fakeIssuer struct {
	mu    sync.Mutex
	reqs  []payslip.IssuePayslipRequest
	actor []string
	errs  map[string]error
}

func (f *fakeIssuer) Issue(ctx context.Context, companyID, actorID string, req payslip.IssuePayslipRequest) (payslip.PayslipResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	f.actor = append(f.actor, actorID)
	if err := f.errs[req.EmployeeID]; err != nil {
		return payslip.PayslipResponse{}, err
	}
	return payslip.PayslipResponse{ID: "p-" + req.EmployeeID}, nil
}

func TestConsumePayslipRequested(t *testing.T) {
	issuer := &fakeIssuer{errs: map[string]error{
		"e-2": paysliperrors.ErrSalaryRecordMissing,
		"e-3": errors.New("connection refused"),
	}}

	request := func(employeeID string) []byte {
		return mustJSON(t, events.PayslipIssueRequestedEvent{
			EventType:   events.PayslipIssueRequestedType,
			CompanyID:   "c-1",
			EmployeeID:  employeeID,
			Year:        2024,
			Month:       2,
			RequestedBy: "u-1",
		})
	}

	reader := newFakeReader(request("e-1"), request("e-2"), request("e-3"))

	consume(t, reader, func(ctx context.Context) {
		consumer.ConsumePayslipRequested(ctx, reader, issuer, zap.NewNop())
	})

	assert.Len(t, issuer.reqs, 3)
	assert.Equal(t, 2024, *issuer.reqs[0].Year)
	assert.Equal(t, 2, *issuer.reqs[0].Month)
	assert.Equal(t, "u-1", issuer.actor[0])
	assert.Equal(t, []int64{0, 1}, reader.commits())
}
