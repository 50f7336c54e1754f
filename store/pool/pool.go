package pool

import (
	"context"
	"math/big"
	"time"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

// Record pool row
type Record struct {
	ID            uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID       string    `sql:"size:36;unique_index:asset_idx" json:"asset_id"`
	TotalSupplied string    `sql:"type:varchar(48)" json:"total_supplied"`
	TotalBorrowed string    `sql:"type:varchar(48)" json:"total_borrowed"`
	TotalReserves string    `sql:"type:varchar(48)" json:"total_reserves"`
	CreatedAt     time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName gorm table name
func (Record) TableName() string {
	return "pools"
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(Record{})
		if err := tx.AutoMigrate(Record{}).Error; err != nil {
			return err
		}

		return nil
	})
}

type poolStore struct {
	db *db.DB
}

// New new pool store
func New(db *db.DB) core.PoolStore {
	return &poolStore{db: db}
}

func (s *poolStore) Init(ctx context.Context, tx *db.DB, assetID string) error {
	var record Record
	err := tx.Update().Where("asset_id = ?", assetID).First(&record).Error
	if err == nil {
		return core.ErrPoolAlreadyInitialized
	}
	if !gorm.IsRecordNotFoundError(err) {
		return err
	}

	record = Record{
		AssetID:       assetID,
		TotalSupplied: "0",
		TotalBorrowed: "0",
		TotalReserves: "0",
	}
	return tx.Update().Create(&record).Error
}

func (s *poolStore) Find(ctx context.Context, assetID string) (*core.Pool, error) {
	var record Record
	if err := s.db.View().Where("asset_id = ?", assetID).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrPoolNotInitialized
		}
		return nil, err
	}

	return toPool(&record)
}

func (s *poolStore) Save(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	updates := map[string]interface{}{
		"total_supplied": pool.TotalSupplied.String(),
		"total_borrowed": pool.TotalBorrowed.String(),
		"total_reserves": pool.TotalReserves.String(),
	}

	update := tx.Update().Model(Record{}).Where("asset_id = ?", pool.AssetID).Updates(updates)
	if update.Error != nil {
		return update.Error
	}
	if update.RowsAffected == 0 {
		return core.ErrPoolNotInitialized
	}
	return nil
}

func (s *poolStore) All(ctx context.Context) ([]*core.Pool, error) {
	var records []*Record
	if err := s.db.View().Order("asset_id").Find(&records).Error; err != nil {
		return nil, err
	}

	pools := make([]*core.Pool, 0, len(records))
	for _, record := range records {
		pool, err := toPool(record)
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}

	return pools, nil
}

func toPool(record *Record) (*core.Pool, error) {
	supplied, err := parseAmount(record.TotalSupplied)
	if err != nil {
		return nil, err
	}
	borrowed, err := parseAmount(record.TotalBorrowed)
	if err != nil {
		return nil, err
	}
	reserves, err := parseAmount(record.TotalReserves)
	if err != nil {
		return nil, err
	}

	return &core.Pool{
		AssetID:       record.AssetID,
		TotalSupplied: supplied,
		TotalBorrowed: borrowed,
		TotalReserves: reserves,
		CreatedAt:     record.CreatedAt,
		UpdatedAt:     record.UpdatedAt,
	}, nil
}

func parseAmount(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, core.ErrUnknown
	}
	return v, nil
}
