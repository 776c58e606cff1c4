package dao

import (
	"fmt"

	"github.com/jinzhu/gorm"
	"github.com/radhian/ledger-engine/entity"
	"github.com/radhian/ledger-engine/infra/db/model"
)

func (d *dao) GetLedgerProcessLogList() ([]model.LedgerProcessLog, error) {
	var logs []model.LedgerProcessLog
	if err := d.db.Order("create_time DESC").Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to list ledger process logs: %w", err)
	}

	return logs, nil
}

func (d *dao) GetLedgerProcessLogByStatusList(statusList []int) ([]model.LedgerProcessLog, error) {
	var processLogList []model.LedgerProcessLog
	if err := d.db.
		Select("id").
		Where("status IN (?)", statusList).
		Order("create_time ASC").
		Find(&processLogList).Error; err != nil {
		return nil, err
	}
	return processLogList, nil
}

func (d *dao) GetLedgerProcessLogByID(logID int64) (model.LedgerProcessLog, error) {
	var logEntry model.LedgerProcessLog
	if err := d.db.First(&logEntry, logID).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return logEntry, fmt.Errorf("log %d: %w", logID, entity.ErrProcessLogNotFound)
		}
		return logEntry, fmt.Errorf("failed to get log %d: %w", logID, err)
	}
	return logEntry, nil
}

func (d *dao) CreateLedgerProcessLog(payload *model.LedgerProcessLog) error {
	if err := d.db.Create(payload).Error; err != nil {
		return fmt.Errorf("failed to create ledger process log: %w", err)
	}
	return nil
}

func (d *dao) UpdateLedgerProcessLog(logEntry model.LedgerProcessLog) error {
	if err := d.db.Save(&logEntry).Error; err != nil {
		return fmt.Errorf("failed to update log: %w", err)
	}
	return nil
}
