package tasks

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Rikoze777/menu-api/entity"
	"github.com/Rikoze777/menu-api/pkg/cache"
)

// Syncer reconciles the database from the menu workbook. Each run hashes
// the file; an unchanged hash is a no-op, otherwise all three tables are
// replaced in one transaction. The sidecar hash is written only after a
// successful load, so a failed cycle retries on the next tick.
type Syncer struct {
	db       *gorm.DB
	cache    *cache.Cache
	log      *zap.Logger
	workbook string
	hashFile string
}

func NewSyncer(db *gorm.DB, c *cache.Cache, log *zap.Logger, workbook, hashFile string) *Syncer {
	return &Syncer{db: db, cache: c, log: log, workbook: workbook, hashFile: hashFile}
}

// Run implements cron.Job. Errors are logged, never propagated: the
// schedule itself is the retry mechanism.
func (s *Syncer) Run() {
	if err := s.Sync(context.Background()); err != nil {
		s.log.Error("menu workbook sync failed", zap.Error(err))
	}
}

func (s *Syncer) Sync(ctx context.Context) error {
	if _, err := os.Stat(s.workbook); errors.Is(err, os.ErrNotExist) {
		s.log.Debug("menu workbook missing, skipping sync",
			zap.String("path", s.workbook))
		return nil
	}

	newHash, err := fileHash(s.workbook)
	if err != nil {
		return err
	}
	if old, err := os.ReadFile(s.hashFile); err == nil && string(old) == newHash {
		return nil
	}

	menus, submenus, dishes, err := ParseWorkbook(s.workbook)
	if err != nil {
		return err
	}
	if err := s.reload(ctx, menus, submenus, dishes); err != nil {
		return err
	}
	if err := os.WriteFile(s.hashFile, []byte(newHash), 0o644); err != nil {
		return errors.Wrap(err, "write workbook hash")
	}

	if s.cache != nil {
		if err := s.cache.Flush(ctx); err != nil {
			s.log.Warn("cache flush after sync failed", zap.Error(err))
		}
	}
	s.log.Info("menu workbook synced",
		zap.Int("menus", len(menus)),
		zap.Int("submenus", len(submenus)),
		zap.Int("dishes", len(dishes)))
	return nil
}

// reload is a full-table replace, not an upsert: drop everything, insert
// the parsed sets parent-first so the foreign keys resolve.
func (s *Syncer) reload(ctx context.Context, menus []MenuRow, submenus []SubmenuRow, dishes []DishRow) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&entity.Dish{}, &entity.Submenu{}, &entity.Menu{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return errors.Wrap(err, "clear table")
			}
		}

		for _, m := range menus {
			row := entity.Menu{ID: m.ID, Title: m.Title, Description: m.Description}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrap(err, "insert menu")
			}
		}
		for _, sm := range submenus {
			row := entity.Submenu{ID: sm.ID, MenuID: sm.MenuID, Title: sm.Title, Description: sm.Description}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrap(err, "insert submenu")
			}
		}
		for _, d := range dishes {
			row := entity.Dish{ID: d.ID, SubmenuID: d.SubmenuID, Title: d.Title, Description: d.Description, Price: d.Price}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrap(err, "insert dish")
			}
		}
		return nil
	})
}

func fileHash(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrap(err, "open workbook")
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", errors.Wrap(err, "hash workbook")
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
