package ledgerprocess

import (
	"encoding/json"
	"fmt"

	"github.com/radhian/ledger-engine/consts"
	"github.com/radhian/ledger-engine/entity"
	"github.com/radhian/ledger-engine/infra/db/model"
)

type LedgerProcessDetail struct {
	Log    model.LedgerProcessLog      `json:"log"`
	Result *entity.LedgerProcessResult `json:"result,omitempty"`
}

func (u *ledgerProcessUsecase) GetLedgerProcessResults() ([]model.LedgerProcessLog, error) {
	return u.dao.GetLedgerProcessLogList()
}

func (u *ledgerProcessUsecase) GetLedgerProcessResult(logID int64) (*LedgerProcessDetail, error) {
	logEntry, err := u.dao.GetLedgerProcessLogByID(logID)
	if err != nil {
		return nil, err
	}

	detail := &LedgerProcessDetail{Log: logEntry}
	if logEntry.Status == consts.StatusFinished && logEntry.Result != "" {
		var result entity.LedgerProcessResult
		if err := json.Unmarshal([]byte(logEntry.Result), &result); err != nil {
			return nil, fmt.Errorf("failed to parse result of log %d: %w", logID, err)
		}
		detail.Result = &result
	}
	return detail, nil
}

func (u *ledgerProcessUsecase) GetLedgerProcessAccounts(logID int64) ([]entity.ClientAccount, error) {
	detail, err := u.GetLedgerProcessResult(logID)
	if err != nil {
		return nil, err
	}
	if detail.Result == nil {
		return nil, fmt.Errorf("log %d: %w", logID, entity.ErrProcessNotFinished)
	}
	return detail.Result.Accounts, nil
}
