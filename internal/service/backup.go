package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/baolive/camping-api/internal/domain"
)

var ErrBackupNotFound = errors.New("backup not found")

const (
	backupPrefix = "camping_"
	backupSuffix = ".db"
)

// BackupService snapshots the SQLite database into the data directory
// with VACUUM INTO, so backups are compacted, consistent copies taken
// without blocking writers.
type BackupService struct {
	db            *gorm.DB
	dataDir       string
	retentionDays int
	hourUTC       int
}

func NewBackupService(db *gorm.DB, dataDir string, retentionDays, hourUTC int) *BackupService {
	return &BackupService{
		db:            db,
		dataDir:       dataDir,
		retentionDays: retentionDays,
		hourUTC:       hourUTC,
	}
}

func backupName(now time.Time) string {
	stamp := now.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)

	return backupPrefix + stamp + backupSuffix
}

// Create writes a new snapshot and returns its metadata.
func (s *BackupService) Create(ctx context.Context) (domain.BackupFile, error) {
	name := backupName(time.Now())
	path := filepath.Join(s.dataDir, name)

	if err := s.db.WithContext(ctx).Exec("VACUUM INTO ?", path).Error; err != nil {
		return domain.BackupFile{}, fmt.Errorf("vacuum into %s -> %w", name, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return domain.BackupFile{}, fmt.Errorf("os.Stat -> %w", err)
	}

	zap.L().Info("backup created", zap.String("name", name), zap.Int64("size", info.Size()))

	return domain.BackupFile{
		Name:    name,
		Size:    info.Size(),
		Created: info.ModTime().UTC(),
		Path:    path,
	}, nil
}

// List returns existing snapshots, newest first. Files in the data
// directory that are not backups (the live database included) are
// ignored.
func (s *BackupService) List(ctx context.Context) ([]domain.BackupFile, error) {
	entries, err := os.ReadDir(s.dataDir)
	if err != nil {
		return nil, fmt.Errorf("os.ReadDir -> %w", err)
	}

	backups := []domain.BackupFile{}
	for _, entry := range entries {
		if entry.IsDir() || !isBackupName(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("entry.Info -> %w", err)
		}

		backups = append(backups, domain.BackupFile{
			Name:    entry.Name(),
			Size:    info.Size(),
			Created: info.ModTime().UTC(),
			Path:    filepath.Join(s.dataDir, entry.Name()),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Created.After(backups[j].Created)
	})

	return backups, nil
}

// Path resolves a backup name to its file path for download. The name
// is reduced to its base component so callers cannot escape the data
// directory.
func (s *BackupService) Path(name string) (string, error) {
	name = filepath.Base(name)
	if !isBackupName(name) {
		return "", ErrBackupNotFound
	}

	path := filepath.Join(s.dataDir, name)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrBackupNotFound
		}
		return "", fmt.Errorf("os.Stat -> %w", err)
	}

	return path, nil
}

func (s *BackupService) Delete(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	zap.L().Info("backup deleted", zap.String("name", filepath.Base(path)))

	return nil
}

// CleanupOld removes snapshots older than the retention window and
// returns how many were deleted.
func (s *BackupService) CleanupOld(ctx context.Context) (int, error) {
	backups, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)

	removed := 0
	for _, backup := range backups {
		if !backup.Created.Before(cutoff) {
			continue
		}

		if err := os.Remove(backup.Path); err != nil {
			return removed, fmt.Errorf("os.Remove -> %w", err)
		}

		zap.L().Info("expired backup removed", zap.String("name", backup.Name))
		removed++
	}

	return removed, nil
}

// Schedule runs a snapshot plus cleanup once a day at the configured
// UTC hour, until the context is cancelled. Intended to run in its own
// goroutine.
func (s *BackupService) Schedule(ctx context.Context) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	var lastRun time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			now = now.UTC()
			if now.Hour() != s.hourUTC || now.Minute() != 0 {
				continue
			}
			if !lastRun.IsZero() && now.Sub(lastRun) < time.Hour {
				continue
			}
			lastRun = now

			if _, err := s.Create(ctx); err != nil {
				zap.L().Error("scheduled backup failed", zap.Error(err))
				continue
			}
			if _, err := s.CleanupOld(ctx); err != nil {
				zap.L().Error("backup cleanup failed", zap.Error(err))
			}
		}
	}
}

func isBackupName(name string) bool {
	return strings.HasPrefix(name, backupPrefix) && strings.HasSuffix(name, backupSuffix)
}
