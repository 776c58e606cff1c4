package dao

import (
	"fmt"

	"github.com/radhian/ledger-engine/infra/db/model"
)

func (d *dao) CreateLedgerProcessLogAsset(payload *model.LedgerProcessLogAsset) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to save file asset: %w", err)
	}
	return nil
}

func (d *dao) GetLedgerLogAssetsByLogID(logID int64) ([]model.LedgerProcessLogAsset, error) {
	var assets []model.LedgerProcessLogAsset
	if err := d.db.Where("ledger_process_log_id = ?", logID).Find(&assets).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch log assets: %w", err)
	}
	return assets, nil
}
