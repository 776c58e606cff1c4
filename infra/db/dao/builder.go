package dao

import (
	"github.com/radhian/ledger-engine/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	GetLedgerProcessLogList() ([]model.LedgerProcessLog, error)
	GetLedgerProcessLogByStatusList(statusList []int) ([]model.LedgerProcessLog, error)
	GetLedgerProcessLogByID(logID int64) (model.LedgerProcessLog, error)
	CreateLedgerProcessLog(payload *model.LedgerProcessLog) error
	UpdateLedgerProcessLog(logEntry model.LedgerProcessLog) error
	CreateLedgerProcessLogAsset(payload *model.LedgerProcessLogAsset) error
	GetLedgerLogAssetsByLogID(logID int64) ([]model.LedgerProcessLogAsset, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}

// AutoMigrate creates or updates the ledger process tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.LedgerProcessLog{},
		&model.LedgerProcessLogAsset{},
	).Error
}
