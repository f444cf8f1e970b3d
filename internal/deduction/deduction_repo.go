package deduction

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=deduction_repo.go -destination=mock/deduction_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateType(ctx context.Context, t *DeductionType) error
	FindTypeByID(ctx context.Context, id string) (*DeductionType, error)
	FindTypeByName(ctx context.Context, name string) (*DeductionType, error)
	FindActiveTypes(ctx context.Context) ([]DeductionType, error)
	UpdateType(ctx context.Context, t *DeductionType) error

	CreateRecord(ctx context.Context, r *DeductionRecord) error
	FindRecordsByEmployee(ctx context.Context, employeeID string) ([]DeductionRecord, error)
	// HasRecordForDay guards the absence job: one ABSENT deduction per
	// employee per day, no matter how often the job reruns.
	HasRecordForDay(ctx context.Context, employeeID, typeID string, day time.Time) (bool, error)
	ArchiveRecord(ctx context.Context, id string) error
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

func (r *repository) CreateType(ctx context.Context, t *DeductionType) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *repository) FindTypeByID(ctx context.Context, id string) (*DeductionType, error) {
	var t DeductionType
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindTypeByName(ctx context.Context, name string) (*DeductionType, error) {
	var t DeductionType
	err := r.db.WithContext(ctx).First(&t, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *repository) FindActiveTypes(ctx context.Context) ([]DeductionType, error) {
	var rows []DeductionType
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateType(ctx context.Context, t *DeductionType) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *repository) CreateRecord(ctx context.Context, rec *DeductionRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindRecordsByEmployee(ctx context.Context, employeeID string) ([]DeductionRecord, error) {
	var rows []DeductionRecord
	err := r.db.WithContext(ctx).
		Preload("Type").
		Where("employee_id = ?", employeeID).
		Order("applied_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) HasRecordForDay(ctx context.Context, employeeID, typeID string, day time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&DeductionRecord{}).
		Where("employee_id = ?", employeeID).
		Where("deduction_type_id = ?", typeID).
		Where("applied_at::date = ?", day.Format("2006-01-02")).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ArchiveRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DeductionRecord{}, "id = ?", id).Error
}
