package transfer

import (
	"context"
	"math/big"
	"time"

	"lendpool/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
	"github.com/jmoiron/sqlx/types"
)

// Record transfer log row
type Record struct {
	ID        uint64         `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	CreatedAt time.Time      `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	TraceID   string         `sql:"size:36;unique_index:trace_idx" json:"trace_id"`
	UserID    string         `sql:"size:36" json:"user_id"`
	AssetID   string         `sql:"size:36" json:"asset_id"`
	Amount    string         `sql:"type:varchar(48)" json:"amount"`
	Direction string         `sql:"size:8" json:"direction"`
	Memo      string         `sql:"size:140" json:"memo"`
	Raw       types.JSONText `sql:"type:text" json:"raw"`
}

// TableName gorm table name
func (Record) TableName() string {
	return "transfers"
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

type transferStore struct {
	db *db.DB
}

// New new transfer store
func New(db *db.DB) core.TransferStore {
	return &transferStore{db: db}
}

func (s *transferStore) Create(ctx context.Context, tx *db.DB, transfer *core.Transfer) error {
	record := Record{
		TraceID:   transfer.TraceID,
		UserID:    transfer.UserID,
		AssetID:   transfer.AssetID,
		Amount:    transfer.Amount.String(),
		Direction: transfer.Direction,
		Memo:      transfer.Memo,
		Raw:       transfer.Raw,
	}
	return tx.Update().Where("trace_id = ?", record.TraceID).FirstOrCreate(&record).Error
}

// FindByTrace returns nil without error when no transfer used the trace yet.
func (s *transferStore) FindByTrace(ctx context.Context, traceID string) (*core.Transfer, error) {
	var record Record
	if err := s.db.View().Where("trace_id = ?", traceID).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	return toTransfer(&record)
}

func (s *transferStore) Top(ctx context.Context, limit int) ([]*core.Transfer, error) {
	var records []*Record
	if err := s.db.View().Order("id desc").Limit(limit).Find(&records).Error; err != nil {
		return nil, err
	}

	transfers := make([]*core.Transfer, 0, len(records))
	for _, record := range records {
		transfer, err := toTransfer(record)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, transfer)
	}

	return transfers, nil
}

func toTransfer(record *Record) (*core.Transfer, error) {
	amount, ok := new(big.Int).SetString(record.Amount, 10)
	if !ok {
		return nil, core.ErrUnknown
	}

	return &core.Transfer{
		ID:        record.ID,
		CreatedAt: record.CreatedAt,
		TraceID:   record.TraceID,
		UserID:    record.UserID,
		AssetID:   record.AssetID,
		Amount:    amount,
		Direction: record.Direction,
		Memo:      record.Memo,
		Raw:       record.Raw,
	}, nil
}
