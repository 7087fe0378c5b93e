package cart

import (
	"errors"

	"github.com/Oghenetega16/audiophile-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSnapshotNotFound signals an empty slot: the client has never
// saved a cart. Callers treat it as "start empty", not as a failure.
var ErrSnapshotNotFound = errors.New("cart snapshot not found")

// SnapshotStorage is the durable key-value slot behind a Store. The
// payload is the whole serialized cart; there is no per-item access.
type SnapshotStorage interface {
	Load(key string) ([]byte, error)
	Save(key string, payload []byte) error
}

// GormStorage keeps snapshots in the cart_snapshots table, one row per
// cart key.
type GormStorage struct {
	db *gorm.DB
}

func NewGormStorage(db *gorm.DB) *GormStorage {
	return &GormStorage{db: db}
}

func (s *GormStorage) Load(key string) ([]byte, error) {
	var snap models.CartSnapshot
	if err := s.db.First(&snap, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	return snap.Payload, nil
}

func (s *GormStorage) Save(key string, payload []byte) error {
	snap := models.CartSnapshot{Key: key, Payload: payload}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&snap).Error
}
