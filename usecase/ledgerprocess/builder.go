package ledgerprocess

import (
	"context"

	"github.com/radhian/ledger-engine/entity"
	"github.com/radhian/ledger-engine/infra/db/dao"
	"github.com/radhian/ledger-engine/infra/db/model"
	"github.com/radhian/ledger-engine/infra/locker"
)

type LedgerProcessUsecase interface {
	ProcessLedgerInit(transactionCSV string, operator string) (*model.LedgerProcessLog, error)
	GetLedgerProcessResults() ([]model.LedgerProcessLog, error)
	GetLedgerProcessResult(logID int64) (*LedgerProcessDetail, error)
	GetLedgerProcessAccounts(logID int64) ([]entity.ClientAccount, error)
	ProcessLedgerJob(ctx context.Context, logID int64) error
	TryAcquireLock(ctx context.Context) (bool, int64, error)
	UnlockProcess(ctx context.Context, logID int64)
}

type ledgerProcessUsecase struct {
	dao       dao.DaoMethod
	locker    *locker.Locker
	uploadDir string
}

func NewLedgerProcessUsecase(d dao.DaoMethod, l *locker.Locker, uploadDir string) LedgerProcessUsecase {
	if l == nil {
		l = locker.New()
	}
	return &ledgerProcessUsecase{
		dao:       d,
		locker:    l,
		uploadDir: uploadDir,
	}
}
