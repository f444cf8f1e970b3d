package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Cjblack21/ckcm-payroll-sub001/internal/employee"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/events"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/loan"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/messaging/kafka"
	payrollerrors "github.com/Cjblack21/ckcm-payroll-sub001/internal/payroll/errors"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/period"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/settings"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/contextutil"
	"github.com/Cjblack21/ckcm-payroll-sub001/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

//go:generate mockgen -source=release.go -destination=mock/release_mock.go -package=mock
type Releaser interface {
	Release(ctx context.Context, actorID string, req ReleaseRequest) (ReleaseResponse, error)
}

// ReleaseOrchestrator freezes one period's payroll for a batch of
// employees. The whole batch runs in a single transaction: snapshots,
// loan balance updates, and outbox events either all commit or none do.
type ReleaseOrchestrator struct {
	db           *sql.DB
	repo         Repository
	engine       *Engine
	employeeRepo employee.Repository
	loanRepo     loan.Repository
	settings     settings.Service
	outbox       kafka.OutboxRepository
	counter      counter.Repository
	policy       period.Policy
	now          func() time.Time
}

func NewReleaseOrchestrator(
	db *sql.DB,
	repo Repository,
	engine *Engine,
	employeeRepo employee.Repository,
	loanRepo loan.Repository,
	settingsService settings.Service,
	outbox kafka.OutboxRepository,
	counterRepo counter.Repository,
	policy period.Policy,
) *ReleaseOrchestrator {
	return &ReleaseOrchestrator{
		db:           db,
		repo:         repo,
		engine:       engine,
		employeeRepo: employeeRepo,
		loanRepo:     loanRepo,
		settings:     settingsService,
		outbox:       outbox,
		counter:      counterRepo,
		policy:       policy,
		now:          time.Now,
	}
}

// WithClock pins the clock for tests.
func (o *ReleaseOrchestrator) WithClock(now func() time.Time) *ReleaseOrchestrator {
	o.now = now
	return o
}

func (o *ReleaseOrchestrator) Release(ctx context.Context, actorID string, req ReleaseRequest) (ReleaseResponse, error) {
	span, err := resolveSpan(o.policy, o.now(), req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return ReleaseResponse{}, err
	}
	if len(req.EmployeeIDs) == 0 {
		return ReleaseResponse{}, payrollerrors.ErrNoEmployees
	}
	for _, id := range req.EmployeeIDs {
		if _, err := uuid.Parse(id); err != nil {
			return ReleaseResponse{}, payrollerrors.ErrInvalidEmployeeID
		}
	}

	cfg, err := o.settings.Current(ctx)
	if err != nil {
		return ReleaseResponse{}, err
	}

	// A release pays real money: every employee must have a resolvable
	// salary basis or the whole batch is refused.
	bases, missing, err := o.employeeRepo.FindSalaryBasis(ctx, req.EmployeeIDs)
	if err != nil {
		return ReleaseResponse{}, err
	}
	if len(missing) > 0 {
		return ReleaseResponse{}, payrollerrors.ErrMissingSalaryBasis.WithDetails(map[string]any{
			"employee_ids": missing,
		})
	}

	tx, err := o.db.BeginTx(ctx, nil)
	if err != nil {
		return ReleaseResponse{}, err
	}
	defer tx.Rollback()

	qtx := o.repo.WithTx(tx)
	loanTx := o.loanRepo.WithTx(tx)
	outboxTx := o.outbox.WithTx(tx)

	releasedAt := o.now()
	released := make([]PayrollResponse, 0, len(req.EmployeeIDs))

	for _, employeeID := range req.EmployeeIDs {
		overlap, err := qtx.HasReleasedOverlapping(ctx, employeeID, span.Start, span.End)
		if err != nil {
			return ReleaseResponse{}, err
		}
		if overlap {
			return ReleaseResponse{}, payrollerrors.ErrPeriodAlreadyReleased.WithDetails(map[string]any{
				"employee_id": employeeID,
			})
		}

		breakdown, err := o.engine.Compute(ctx, bases[employeeID], span, cfg)
		if err != nil {
			return ReleaseResponse{}, err
		}

		entry, err := o.freezeEntry(ctx, qtx, employeeID, span, breakdown, releasedAt)
		if err != nil {
			return ReleaseResponse{}, err
		}

		if err := o.settleLoans(ctx, loanTx, employeeID, span); err != nil {
			return ReleaseResponse{}, err
		}

		if err := o.stageReleasedEvent(ctx, outboxTx, entry, actorID, releasedAt); err != nil {
			return ReleaseResponse{}, err
		}

		released = append(released, mapToResponse(*entry))
	}

	if err := tx.Commit(); err != nil {
		return ReleaseResponse{}, err
	}

	return ReleaseResponse{
		PeriodStart: span.Start.Format("2006-01-02"),
		PeriodEnd:   span.End.Format("2006-01-02"),
		Released:    released,
	}, nil
}

// freezeEntry serializes the breakdown and upserts the payroll row. An
// existing PENDING row for the same employee and period is promoted;
// otherwise a fresh RELEASED row is created.
func (o *ReleaseOrchestrator) freezeEntry(
	ctx context.Context,
	qtx Repository,
	employeeID string,
	span period.Span,
	breakdown Breakdown,
	releasedAt time.Time,
) (*PayrollEntry, error) {
	snapshot, err := json.Marshal(breakdown)
	if err != nil {
		return nil, err
	}

	refNo, err := o.nextRefNo(ctx, releasedAt)
	if err != nil {
		return nil, err
	}

	overloadPay := breakdown.GrossPay.Sub(breakdown.BasicSalary)

	entry, err := qtx.FindPendingByEmployeeAndPeriod(ctx, employeeID, span.Start, span.End)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		entry = &PayrollEntry{
			ID:          uuid.New(),
			EmployeeID:  uuid.MustParse(employeeID),
			PeriodStart: span.Start,
			PeriodEnd:   span.End,
		}
		entry.RefNo = &refNo
		applyBreakdown(entry, breakdown, snapshot, overloadPay, releasedAt)
		if err := qtx.Create(ctx, entry); err != nil {
			return nil, err
		}
		return entry, nil
	}
	if err != nil {
		return nil, err
	}

	entry.RefNo = &refNo
	applyBreakdown(entry, breakdown, snapshot, overloadPay, releasedAt)
	if err := qtx.Update(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func applyBreakdown(entry *PayrollEntry, b Breakdown, snapshot []byte, overloadPay decimal.Decimal, releasedAt time.Time) {
	entry.BasicSalary = b.BasicSalary
	entry.OverloadPay = overloadPay
	entry.TotalDeductions = b.TotalDeductions
	entry.NetPay = b.NetPay
	entry.Snapshot = snapshot
	entry.Status = StatusReleased
	entry.ProcessedAt = &releasedAt
	entry.ReleasedAt = &releasedAt
}

// settleLoans applies this period's payment to each active loan,
// mirroring the amounts the frozen breakdown shows.
func (o *ReleaseOrchestrator) settleLoans(ctx context.Context, loanTx loan.Repository, employeeID string, span period.Span) error {
	activeLoans, err := loanTx.FindActiveOverlapping(ctx, employeeID, span.Start, span.End)
	if err != nil {
		return err
	}

	for _, l := range activeLoans {
		payment := loan.PaymentForPeriod(l, span.Days(), o.engine.strategy)
		if payment.IsZero() {
			continue
		}
		balance, status := loan.Apply(l, payment)
		l.Balance = balance
		l.Status = status
		if err := loanTx.Update(ctx, &l); err != nil {
			return err
		}
	}
	return nil
}

func (o *ReleaseOrchestrator) stageReleasedEvent(
	ctx context.Context,
	outboxTx kafka.OutboxRepository,
	entry *PayrollEntry,
	actorID string,
	releasedAt time.Time,
) error {
	refNo := ""
	if entry.RefNo != nil {
		refNo = *entry.RefNo
	}

	payload, err := json.Marshal(events.PayrollReleasedEvent{
		EventType:   events.EventTypePayrollReleased,
		PayrollID:   entry.ID.String(),
		EmployeeID:  entry.EmployeeID.String(),
		RefNo:       refNo,
		PeriodStart: entry.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   entry.PeriodEnd.Format("2006-01-02"),
		NetPay:      entry.NetPay.StringFixed(2),
		ReleasedBy:  actorID,
		OccurredAt:  releasedAt,
	})
	if err != nil {
		return err
	}

	return outboxTx.Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payroll_entry",
		AggregateID:   entry.ID.String(),
		EventType:     events.EventTypePayrollReleased,
		Topic:         events.PayrollReleasedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

// nextRefNo issues the next payslip reference number, PR-<year>-<seq>.
func (o *ReleaseOrchestrator) nextRefNo(ctx context.Context, at time.Time) (string, error) {
	seq, err := o.counter.GetNextValue(ctx, counter.CounterTypePayrollRef)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("PR-%d-%04d", at.Year(), seq), nil
}
