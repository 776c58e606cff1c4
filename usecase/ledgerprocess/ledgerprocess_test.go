package ledgerprocess

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/radhian/ledger-engine/consts"
	"github.com/radhian/ledger-engine/entity"
	"github.com/radhian/ledger-engine/infra/db/model"
	"github.com/radhian/ledger-engine/infra/locker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memDao struct {
	mu     sync.Mutex
	nextID int64
	logs   map[int64]model.LedgerProcessLog
	assets []model.LedgerProcessLogAsset
}

func newMemDao() *memDao {
	return &memDao{logs: make(map[int64]model.LedgerProcessLog)}
}

func (d *memDao) GetLedgerProcessLogList() ([]model.LedgerProcessLog, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	logs := make([]model.LedgerProcessLog, 0, len(d.logs))
	for _, l := range d.logs {
		logs = append(logs, l)
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].ID < logs[j].ID })
	return logs, nil
}

func (d *memDao) GetLedgerProcessLogByStatusList(statusList []int) ([]model.LedgerProcessLog, error) {
	logs, _ := d.GetLedgerProcessLogList()
	var result []model.LedgerProcessLog
	for _, l := range logs {
		for _, s := range statusList {
			if l.Status == s {
				result = append(result, model.LedgerProcessLog{ID: l.ID})
			}
		}
	}
	return result, nil
}

func (d *memDao) GetLedgerProcessLogByID(logID int64) (model.LedgerProcessLog, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	l, ok := d.logs[logID]
	if !ok {
		return l, fmt.Errorf("log %d: %w", logID, entity.ErrProcessLogNotFound)
	}
	return l, nil
}

func (d *memDao) CreateLedgerProcessLog(payload *model.LedgerProcessLog) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	payload.ID = d.nextID
	d.logs[payload.ID] = *payload
	return nil
}

func (d *memDao) UpdateLedgerProcessLog(logEntry model.LedgerProcessLog) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.logs[logEntry.ID] = logEntry
	return nil
}

func (d *memDao) CreateLedgerProcessLogAsset(payload *model.LedgerProcessLogAsset) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	payload.ID = int64(len(d.assets) + 1)
	d.assets = append(d.assets, *payload)
	return nil
}

func (d *memDao) GetLedgerLogAssetsByLogID(logID int64) ([]model.LedgerProcessLogAsset, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var result []model.LedgerProcessLogAsset
	for _, a := range d.assets {
		if a.LedgerProcessLogID == logID {
			result = append(result, a)
		}
	}
	return result, nil
}

func writeLedger(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "transactions.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestUsecase(t *testing.T) (*memDao, LedgerProcessUsecase) {
	t.Helper()

	d := newMemDao()
	return d, NewLedgerProcessUsecase(d, locker.New(), filepath.Join(t.TempDir(), "uploads"))
}

func TestProcessLedgerInit(t *testing.T) {
	t.Parallel()

	d, uc := newTestUsecase(t)
	src := writeLedger(t, "type,client,tx,amount\ndeposit,1,1,1.0\n")

	processLog, err := uc.ProcessLedgerInit(src, "alice")
	require.NoError(t, err)
	assert.Equal(t, consts.StatusInit, processLog.Status)
	assert.Equal(t, "alice", processLog.CreateBy)

	assets, err := d.GetLedgerLogAssetsByLogID(processLog.ID)
	require.NoError(t, err)
	require.Len(t, assets, 1)
	assert.Equal(t, "transactions.csv", assets[0].FileName)
	assert.NotEqual(t, src, assets[0].FileUrl)

	stored, err := os.ReadFile(assets[0].FileUrl)
	require.NoError(t, err)
	assert.Equal(t, "type,client,tx,amount\ndeposit,1,1,1.0\n", string(stored))
	assert.Equal(t, int64(len(stored)), assets[0].FileSize)
}

func TestProcessLedgerInit_MissingFile(t *testing.T) {
	t.Parallel()

	d, uc := newTestUsecase(t)
	_, err := uc.ProcessLedgerInit(filepath.Join(t.TempDir(), "nope.csv"), "alice")
	require.Error(t, err)

	logs, _ := d.GetLedgerProcessLogList()
	assert.Empty(t, logs)
}

func TestProcessLedgerJob(t *testing.T) {
	t.Parallel()

	_, uc := newTestUsecase(t)
	src := writeLedger(t, "type, client, tx, amount\n"+
		"deposit, 1, 1, 1.0\n"+
		"deposit, 2, 2, 2.0\n"+
		"withdrawal, 1, 3, 0.5\n"+
		"withdrawal, 2, 4, 3.0\n"+
		"dispute, 2, 2,\n"+
		"chargeback, 2, 2,\n")

	processLog, err := uc.ProcessLedgerInit(src, "alice")
	require.NoError(t, err)

	require.NoError(t, uc.ProcessLedgerJob(context.Background(), processLog.ID))

	detail, err := uc.GetLedgerProcessResult(processLog.ID)
	require.NoError(t, err)
	assert.Equal(t, consts.StatusFinished, detail.Log.Status)
	assert.Equal(t, int64(6), detail.Log.TotalRow)
	assert.Equal(t, int64(5), detail.Log.AppliedRow)
	assert.Equal(t, int64(1), detail.Log.SkippedRow)
	require.NotNil(t, detail.Result)
	assert.Equal(t, int64(1), detail.Result.SkippedByReason["insufficient_funds"])

	accounts, err := uc.GetLedgerProcessAccounts(processLog.ID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "0.5", accounts[0].Available.String())
	assert.False(t, accounts[0].Locked)
	assert.True(t, accounts[1].Total.IsZero())
	assert.True(t, accounts[1].Locked)

	// finished jobs are not replayed
	require.NoError(t, uc.ProcessLedgerJob(context.Background(), processLog.ID))
}

func TestProcessLedgerJob_InvalidInputFailsJob(t *testing.T) {
	t.Parallel()

	_, uc := newTestUsecase(t)
	src := writeLedger(t, "type,client,tx,amount\ndeposit,1,1,1.0\nrefund,1,2,1.0\n")

	processLog, err := uc.ProcessLedgerInit(src, "alice")
	require.NoError(t, err)

	err = uc.ProcessLedgerJob(context.Background(), processLog.ID)
	require.Error(t, err)
	assert.True(t, entity.IsKind(err, entity.ParseError))

	detail, err := uc.GetLedgerProcessResult(processLog.ID)
	require.NoError(t, err)
	assert.Equal(t, consts.StatusFailed, detail.Log.Status)
	assert.Contains(t, detail.Log.ErrorMessage, "ParseError: line 3")
	assert.Nil(t, detail.Result)

	_, err = uc.GetLedgerProcessAccounts(processLog.ID)
	assert.ErrorIs(t, err, entity.ErrProcessNotFinished)
}

func TestProcessLedgerJob_UnknownLog(t *testing.T) {
	t.Parallel()

	_, uc := newTestUsecase(t)
	err := uc.ProcessLedgerJob(context.Background(), 42)
	assert.ErrorIs(t, err, entity.ErrProcessLogNotFound)
}

func TestTryAcquireLock(t *testing.T) {
	t.Parallel()

	_, uc := newTestUsecase(t)
	ctx := context.Background()

	acquired, _, err := uc.TryAcquireLock(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)

	first, err := uc.ProcessLedgerInit(writeLedger(t, "type,client,tx,amount\n"), "alice")
	require.NoError(t, err)
	second, err := uc.ProcessLedgerInit(writeLedger(t, "type,client,tx,amount\n"), "bob")
	require.NoError(t, err)

	acquired, logID, err := uc.TryAcquireLock(ctx)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.Equal(t, first.ID, logID)

	acquired, logID, err = uc.TryAcquireLock(ctx)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.Equal(t, second.ID, logID)

	acquired, _, err = uc.TryAcquireLock(ctx)
	require.NoError(t, err)
	assert.False(t, acquired)

	uc.UnlockProcess(ctx, first.ID)
	acquired, logID, err = uc.TryAcquireLock(ctx)
	require.NoError(t, err)
	require.True(t, acquired)
	assert.Equal(t, first.ID, logID)
}
