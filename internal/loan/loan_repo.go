package loan

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=loan_repo.go -destination=mock/loan_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Loan) error
	FindByID(ctx context.Context, id string) (*Loan, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Loan, error)
	// FindActiveOverlapping returns ACTIVE loans whose date range
	// intersects [start, end].
	FindActiveOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Loan, error)
	Update(ctx context.Context, l *Loan) error
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

func (r *repository) Create(ctx context.Context, l *Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Loan, error) {
	var l Loan
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Loan, error) {
	var rows []Loan
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindActiveOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Loan, error) {
	var rows []Loan
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusActive).
		Where("start_date <= ?", end.Format("2006-01-02")).
		Where("end_date IS NULL OR end_date >= ?", start.Format("2006-01-02")).
		Order("start_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}
