package risk

import (
	"context"
	"math/big"
	"time"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

// Record risk parameter row
type Record struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	AssetID   string    `sql:"size:36;unique_index:asset_idx" json:"asset_id"`
	LTV       int64     `sql:"default:0" json:"ltv"`
	Price     string    `sql:"type:varchar(48);default:'0'" json:"price"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName gorm table name
func (Record) TableName() string {
	return "risks"
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

type riskStore struct {
	db *db.DB
}

// New new risk store
func New(db *db.DB) core.RiskStore {
	return &riskStore{db: db}
}

func (s *riskStore) SetLTV(ctx context.Context, tx *db.DB, assetID string, ltv int64) error {
	return s.upsert(tx, assetID, map[string]interface{}{"ltv": ltv})
}

func (s *riskStore) SetPrice(ctx context.Context, tx *db.DB, assetID string, price *big.Int) error {
	return s.upsert(tx, assetID, map[string]interface{}{"price": price.String()})
}

func (s *riskStore) upsert(tx *db.DB, assetID string, updates map[string]interface{}) error {
	var record Record
	err := tx.Update().Where("asset_id = ?", assetID).First(&record).Error
	if gorm.IsRecordNotFoundError(err) {
		record = Record{AssetID: assetID, Price: "0"}
		if err := tx.Update().Create(&record).Error; err != nil {
			return err
		}
		err = nil
	}
	if err != nil {
		return err
	}

	return tx.Update().Model(Record{}).Where("asset_id = ?", assetID).Updates(updates).Error
}

// LTV reads the loan-to-value ratio; zero when the asset was never configured.
func (s *riskStore) LTV(ctx context.Context, assetID string) (int64, error) {
	var record Record
	if err := s.db.View().Where("asset_id = ?", assetID).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return 0, nil
		}
		return 0, err
	}

	return record.LTV, nil
}

// Price reads the asset price; zero when the asset was never configured.
func (s *riskStore) Price(ctx context.Context, assetID string) (*big.Int, error) {
	var record Record
	if err := s.db.View().Where("asset_id = ?", assetID).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return new(big.Int), nil
		}
		return nil, err
	}

	if record.Price == "" {
		return new(big.Int), nil
	}
	price, ok := new(big.Int).SetString(record.Price, 10)
	if !ok {
		return nil, core.ErrUnknown
	}
	return price, nil
}
