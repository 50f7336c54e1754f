package position

import (
	"context"
	"math/big"
	"time"

	"lendpool/core"

	"github.com/fox-one/msgpack"
	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

// Record position row. Balances are msgpack encoded asset -> amount maps with
// amounts as decimal strings.
type Record struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	UserID    string    `sql:"size:36;unique_index:user_idx" json:"user_id"`
	Deposits  []byte    `sql:"type:blob" json:"deposits"`
	Debts     []byte    `sql:"type:blob" json:"debts"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName gorm table name
func (Record) TableName() string {
	return "positions"
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

type positionStore struct {
	db *db.DB
}

// New new position store
func New(db *db.DB) core.PositionStore {
	return &positionStore{db: db}
}

func (s *positionStore) Find(ctx context.Context, userID string) (*core.Position, error) {
	var record Record
	if err := s.db.View().Where("user_id = ?", userID).First(&record).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			// a never-before-seen user holds the canonical empty position
			return core.NewPosition(userID), nil
		}
		return nil, err
	}

	return toPosition(&record)
}

func (s *positionStore) Save(ctx context.Context, tx *db.DB, position *core.Position) error {
	deposits, err := encodeBalances(position.Deposits)
	if err != nil {
		return err
	}
	debts, err := encodeBalances(position.Debts)
	if err != nil {
		return err
	}

	var record Record
	err = tx.Update().Where("user_id = ?", position.UserID).First(&record).Error
	if gorm.IsRecordNotFoundError(err) {
		record = Record{
			UserID:   position.UserID,
			Deposits: deposits,
			Debts:    debts,
		}
		return tx.Update().Create(&record).Error
	}
	if err != nil {
		return err
	}

	updates := map[string]interface{}{
		"deposits": deposits,
		"debts":    debts,
	}
	return tx.Update().Model(Record{}).Where("user_id = ?", position.UserID).Updates(updates).Error
}

func (s *positionStore) All(ctx context.Context) ([]*core.Position, error) {
	var records []*Record
	if err := s.db.View().Order("user_id").Find(&records).Error; err != nil {
		return nil, err
	}

	positions := make([]*core.Position, 0, len(records))
	for _, record := range records {
		position, err := toPosition(record)
		if err != nil {
			return nil, err
		}
		positions = append(positions, position)
	}

	return positions, nil
}

func toPosition(record *Record) (*core.Position, error) {
	deposits, err := decodeBalances(record.Deposits)
	if err != nil {
		return nil, err
	}
	debts, err := decodeBalances(record.Debts)
	if err != nil {
		return nil, err
	}

	return &core.Position{
		UserID:   record.UserID,
		Deposits: deposits,
		Debts:    debts,
	}, nil
}

func encodeBalances(balances map[string]*big.Int) ([]byte, error) {
	plain := make(map[string]string, len(balances))
	for asset, amount := range balances {
		plain[asset] = amount.String()
	}
	return msgpack.Marshal(plain)
}

func decodeBalances(data []byte) (map[string]*big.Int, error) {
	balances := map[string]*big.Int{}
	if len(data) == 0 {
		return balances, nil
	}

	var plain map[string]string
	if err := msgpack.Unmarshal(data, &plain); err != nil {
		return nil, err
	}

	for asset, amount := range plain {
		v, ok := new(big.Int).SetString(amount, 10)
		if !ok {
			return nil, core.ErrUnknown
		}
		balances[asset] = v
	}

	return balances, nil
}
