package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Snapshot is one persisted collection.
type Snapshot struct {
	Name      string    `gorm:"primaryKey;size:100"`
	Value     []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Snapshot) TableName() string { return "kv_snapshots" }

// GormStore keeps snapshots in a single table. On a device it is backed by a
// sqlite file; postgres works as well.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore migrates the snapshot table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&Snapshot{}); err != nil {
		return nil, fmt.Errorf("migrate kv_snapshots: %w", err)
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Get(ctx context.Context, name string) ([]byte, bool, error) {
	var snap Snapshot
	err := s.db.WithContext(ctx).Where("name = ?", name).First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", name, err)
	}
	return snap.Value, true, nil
}

func (s *GormStore) Set(ctx context.Context, name string, snapshot []byte) error {
	snap := Snapshot{Name: name, Value: snapshot, UpdatedAt: time.Now().UTC()}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&snap).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	return nil
}
