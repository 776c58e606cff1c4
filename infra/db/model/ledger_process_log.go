package model

type LedgerProcessLog struct {
	ID           int64  `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	TotalRow     int64  `gorm:"not null" json:"total_row"`
	AppliedRow   int64  `gorm:"not null" json:"applied_row"`
	SkippedRow   int64  `gorm:"not null" json:"skipped_row"`
	Status       int    `gorm:"not null;index" json:"status"`
	Result       string `gorm:"type:text;not null" json:"result"`
	ErrorMessage string `gorm:"type:text;not null" json:"error_message"`
	CreateTime   int64  `gorm:"not null" json:"create_time"`
	CreateBy     string `gorm:"size:100;not null" json:"create_by"`
	UpdateTime   int64  `gorm:"not null" json:"update_time"`
	UpdateBy     string `gorm:"size:100;not null" json:"update_by"`
}

func (LedgerProcessLog) TableName() string {
	return "ledger_process_log"
}
