package cart

import (
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/YannikAckermann/Vintage-Store/models"
)

// Storage is the durable key-value slot behind a cart store. Load returns
// (nil, nil) when the key has never been written.
type Storage interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// GormStorage keeps snapshots in the cart_snapshots table, one row per
// session key.
type GormStorage struct {
	DB *gorm.DB
}

func (g GormStorage) Load(key string) ([]byte, error) {
	var snap models.CartSnapshot
	if err := g.DB.First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return snap.Data, nil
}

func (g GormStorage) Save(key string, data []byte) error {
	snap := models.CartSnapshot{Key: key, Data: data}
	return g.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}

// restore rehydrates the store from its slot. A missing slot or content
// that fails to parse leaves the cart empty; the failure is logged and
// never surfaced.
func (s *Store) restore() {
	if s.storage == nil {
		return
	}
	data, err := s.storage.Load(s.key)
	if err != nil {
		log.Printf("cart: failed to load snapshot %s: %v", s.key, err)
		return
	}
	if len(data) == 0 {
		return
	}
	var items []models.CartLineItem
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("cart: failed to parse saved cart %s: %v", s.key, err)
		return
	}
	s.mu.Lock()
	s.items = items
	s.recalcLocked()
	s.mu.Unlock()
}

func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("cart: failed to serialize cart %s: %v", s.key, err)
		return
	}
	if err := s.storage.Save(s.key, data); err != nil {
		log.Printf("cart: failed to save snapshot %s: %v", s.key, err)
	}
}
