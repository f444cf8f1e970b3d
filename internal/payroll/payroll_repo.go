package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *PayrollEntry) error
	Update(ctx context.Context, e *PayrollEntry) error
	FindByID(ctx context.Context, id string) (*PayrollEntry, error)
	FindAll(ctx context.Context, status string) ([]PayrollEntry, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]PayrollEntry, error)
	// HasReleasedOverlapping reports whether a RELEASED entry for the
	// employee intersects [start, end]. Archived rows do not count.
	HasReleasedOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error)
	FindPendingByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) (*PayrollEntry, error)
	FindOverloadItems(ctx context.Context, employeeID string, start, end time.Time) ([]OverloadItemRecord, error)
	Archive(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx rebinds the repository's queries to tx. The session clone keeps
// the pooled handle untouched.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{Context: r.db.Statement.Context, NewDB: true})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, e *PayrollEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) Update(ctx context.Context, e *PayrollEntry) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*PayrollEntry, error) {
	var e PayrollEntry
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context, status string) ([]PayrollEntry, error) {
	q := r.db.WithContext(ctx).Preload("Employee")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []PayrollEntry
	err := q.Order("period_start DESC, created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]PayrollEntry, error) {
	var rows []PayrollEntry
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("period_start DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) HasReleasedOverlapping(ctx context.Context, employeeID string, start, end time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&PayrollEntry{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusReleased).
		Where("period_start <= ?", end.Format("2006-01-02")).
		Where("period_end >= ?", start.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindPendingByEmployeeAndPeriod(ctx context.Context, employeeID string, start, end time.Time) (*PayrollEntry, error) {
	var e PayrollEntry
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusPending).
		Where("period_start = ?", start.Format("2006-01-02")).
		Where("period_end = ?", end.Format("2006-01-02")).
		First(&e).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindOverloadItems(ctx context.Context, employeeID string, start, end time.Time) ([]OverloadItemRecord, error) {
	var rows []OverloadItemRecord
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("granted_at >= ? AND granted_at <= ?", start, end).
		Order("granted_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Archive(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&PayrollEntry{}).
		Where("id = ?", id).
		Update("status", StatusArchived).Error
}
