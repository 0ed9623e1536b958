package chat

import (
	"StockPilot-Backend/entities"
	"errors"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVStore is the persistence capability behind the session store: a flat
// string-to-string map. Production uses the GORM-backed table, tests use the
// in-memory variant.
type KVStore interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
	Delete(key string) error
}

type MemoryKVStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{data: make(map[string]string)}
}

func (m *MemoryKVStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	return value, ok
}

func (m *MemoryKVStore) Set(key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryKVStore) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

type gormKVStore struct {
	db *gorm.DB
}

func NewGormKVStore(db *gorm.DB) KVStore {
	return &gormKVStore{db: db}
}

func (g *gormKVStore) Get(key string) (string, bool) {
	var entry entities.KVEntry
	if err := g.db.Where("key = ?", key).First(&entry).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			// Read failures fail closed: callers see "no value".
			return "", false
		}
		return "", false
	}
	return entry.Value, true
}

func (g *gormKVStore) Set(key string, value string) error {
	entry := entities.KVEntry{Key: key, Value: value}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

func (g *gormKVStore) Delete(key string) error {
	return g.db.Where("key = ?", key).Delete(&entities.KVEntry{}).Error
}
