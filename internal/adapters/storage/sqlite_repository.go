package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/umlstudio/umlstudio/internal/domain"
	"github.com/umlstudio/umlstudio/internal/logging"
	"github.com/umlstudio/umlstudio/internal/ports"
)

const maxRetries = 3

// SQLiteRepository implements ports.ArchiveRepository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.ArchiveRepository = (*SQLiteRepository)(nil)

// gormLogger wraps the umlstudio logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logging.Logger.Error("gorm query error",
			"error", err,
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else if elapsed > 200*time.Millisecond {
		logging.Logger.Warn("slow query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	} else {
		logging.Logger.Debug("gorm query",
			"duration", elapsed,
			"sql", sql,
			"rows", rows,
		)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("UMLSTUDIO_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (or creates) the archive database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	// Expand home directory if present
	if len(dbPath) > 0 && dbPath[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(homeDir, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for concurrent access from several sessions
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&DiagramModel{}); err != nil {
		if !strings.Contains(err.Error(), "already exists") {
			return nil, fmt.Errorf("failed to migrate diagram schema: %w", err)
		}
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Archive database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get implements ArchiveReader.Get
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*domain.ArchivedDiagram, error) {
	var model DiagramModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, maxRetries)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("diagram %s: %w", id, domain.ErrDiagramNotFound)
		}
		return nil, err
	}

	result := diagramModelToDomain(model)
	return &result, nil
}

// List implements ArchiveReader.List. Results are newest first.
func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]domain.ArchivedDiagram, error) {
	var models []DiagramModel

	err := withRetry(func() error {
		query := r.db.WithContext(ctx).Order("created_at DESC").Order("id")
		if limit > 0 {
			query = query.Limit(limit)
		}
		return query.Find(&models).Error
	}, maxRetries)
	if err != nil {
		return nil, err
	}

	result := make([]domain.ArchivedDiagram, 0, len(models))
	for _, m := range models {
		result = append(result, diagramModelToDomain(m))
	}
	return result, nil
}

// Save implements ArchiveWriter.Save. A missing ID or timestamp is filled in.
func (r *SQLiteRepository) Save(ctx context.Context, diagram domain.ArchivedDiagram) error {
	if diagram.ID == "" {
		diagram.ID = uuid.NewString()
	}
	if diagram.CreatedAt.IsZero() {
		diagram.CreatedAt = time.Now().UTC()
	}
	model := domainToDiagramModel(diagram)

	return withRetry(func() error {
		return r.db.WithContext(ctx).Save(&model).Error
	}, maxRetries)
}

// Delete implements ArchiveWriter.Delete
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DiagramModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("diagram %s: %w", id, domain.ErrDiagramNotFound)
		}
		return nil
	}, maxRetries)
}

// Clear implements ArchiveWriter.Clear
func (r *SQLiteRepository) Clear(ctx context.Context) (int64, error) {
	var removed int64
	err := withRetry(func() error {
		result := r.db.WithContext(ctx).Where("1 = 1").Delete(&DiagramModel{})
		removed = result.RowsAffected
		return result.Error
	}, maxRetries)
	if err != nil {
		return 0, err
	}
	return removed, nil
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
