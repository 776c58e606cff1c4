package model

type LedgerProcessLogAsset struct {
	ID                 int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	LedgerProcessLogID int64  `gorm:"not null;index" json:"ledger_process_log_id"`
	DataType           int64  `gorm:"not null" json:"data_type"`
	FileName           string `gorm:"size:255;not null" json:"file_name"`
	FileUrl            string `gorm:"size:500;not null" json:"file_url"`
	FileSize           int64  `gorm:"not null" json:"file_size"`
	CreateTime         int64  `gorm:"not null" json:"create_time"`
	CreateBy           string `gorm:"size:100;not null" json:"create_by"`
}

func (LedgerProcessLogAsset) TableName() string {
	return "ledger_process_log_asset"
}
