package settings

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Get(ctx context.Context) (*AttendanceSettings, error)
	Save(ctx context.Context, s *AttendanceSettings) error
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

// Get returns the singleton settings row, or schema defaults when the
// row has not been created yet.
func (r *repository) Get(ctx context.Context) (*AttendanceSettings, error) {
	var s AttendanceSettings
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		def := Defaults()
		return &def, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Save(ctx context.Context, s *AttendanceSettings) error {
	return r.db.WithContext(ctx).Save(s).Error
}
