package ledgerprocess

import (
	"context"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/consts"
)

// TryAcquireLock claims the oldest pending job not held by another worker.
func (u *ledgerProcessUsecase) TryAcquireLock(ctx context.Context) (bool, int64, error) {
	processLogList, err := u.dao.GetLedgerProcessLogByStatusList([]int{consts.StatusInit, consts.StatusRunning})
	if err != nil {
		return false, 0, err
	}

	for _, processLog := range processLogList {
		if !u.locker.TryLock(processLog.ID) {
			continue
		}

		log.Infof("[LOCK_PROCESS] log_id:%d", processLog.ID)
		return true, processLog.ID, nil
	}

	return false, 0, nil
}

func (u *ledgerProcessUsecase) UnlockProcess(ctx context.Context, logID int64) {
	u.locker.Unlock(logID)
	log.Infof("[UNLOCK_PROCESS] log_id:%d", logID)
}
