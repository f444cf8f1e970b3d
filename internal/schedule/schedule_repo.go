package schedule

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=schedule_repo.go -destination=mock/schedule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, s *ReleaseSchedule) error
	FindActive(ctx context.Context) (*ReleaseSchedule, error)
	DeactivateAll(ctx context.Context) error
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

func (r *repository) Create(ctx context.Context, s *ReleaseSchedule) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) FindActive(ctx context.Context) (*ReleaseSchedule, error) {
	var s ReleaseSchedule
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) DeactivateAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&ReleaseSchedule{}).
		Where("is_active = ?", true).
		Update("is_active", false).Error
}
