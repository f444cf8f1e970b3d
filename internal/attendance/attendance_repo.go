package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error)
	FindAllByRange(ctx context.Context, start, end time.Time) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("attendance_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("attendance_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByRange(ctx context.Context, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Where("attendance_date BETWEEN ? AND ?", start.Format("2006-01-02"), end.Format("2006-01-02")).
		Order("attendance_date DESC, time_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}
