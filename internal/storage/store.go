package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/vanshajvr/FinTrack/models"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the transactions table. Callers open one Store per process and
// pass it to whatever needs it.
type Store struct {
	db              *gorm.DB
	now             func() time.Time
	defaultCurrency string
}

type Options struct {
	Logger          logger.Interface
	Now             func() time.Time
	DefaultCurrency string
	// MaxOpenConns caps the pool. SQLite is always pinned to one connection.
	MaxOpenConns int
}

func Open(dialector gorm.Dialector, opts Options) (*Store, error) {
	cfg := &gorm.Config{}
	if opts.Logger != nil {
		cfg.Logger = opts.Logger
	} else {
		cfg.Logger = logger.Discard
	}
	db, err := gorm.Open(dialector, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql db: %w", err)
	}
	switch {
	case dialector.Name() == "sqlite":
		sqlDB.SetMaxOpenConns(1)
	case opts.MaxOpenConns > 0:
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	s := &Store{db: db, now: opts.Now, defaultCurrency: opts.DefaultCurrency}
	if s.now == nil {
		s.now = time.Now
	}
	if s.defaultCurrency == "" {
		s.defaultCurrency = DefaultCurrency
	}
	return s, nil
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Transaction{})
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
