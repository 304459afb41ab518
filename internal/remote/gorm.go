package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRow struct {
	ID          string `gorm:"primaryKey"`
	JSONContent string `gorm:"column:json_content;type:text;not null"`
}

// GormClient reads and writes the remote tables over a direct database
// connection. Missing tables are created on first use.
type GormClient struct {
	db *gorm.DB

	mu    sync.Mutex
	ready map[string]bool
}

func NewGormClient(db *gorm.DB) *GormClient {
	return &GormClient{db: db, ready: map[string]bool{}}
}

// Migrate creates the given tables when missing.
func (c *GormClient) Migrate(ctx context.Context, tables ...string) error {
	for _, t := range tables {
		if err := c.ensure(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (c *GormClient) ensure(ctx context.Context, table string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready[table] {
		return nil
	}
	db := c.db.WithContext(ctx)
	if !db.Migrator().HasTable(table) {
		if err := db.Table(table).AutoMigrate(&gormRow{}); err != nil {
			return fmt.Errorf("create table %s: %w", table, err)
		}
	}
	c.ready[table] = true
	return nil
}

func (c *GormClient) SelectAll(ctx context.Context, table string) ([]json.RawMessage, error) {
	if err := c.ensure(ctx, table); err != nil {
		return nil, err
	}
	var rows []gormRow
	if err := c.db.WithContext(ctx).Table(table).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("select %s: %w", table, err)
	}
	out := make([]json.RawMessage, len(rows))
	for i, r := range rows {
		out[i] = json.RawMessage(r.JSONContent)
	}
	return out, nil
}

func (c *GormClient) Upsert(ctx context.Context, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	if err := c.ensure(ctx, table); err != nil {
		return err
	}
	records := make([]gormRow, len(rows))
	for i, r := range rows {
		records[i] = gormRow{ID: r.ID, JSONContent: string(r.Content)}
	}
	err := c.db.WithContext(ctx).Table(table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"json_content"}),
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("upsert %s: %w", table, err)
	}
	return nil
}
