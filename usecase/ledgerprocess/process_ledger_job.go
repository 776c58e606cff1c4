package ledgerprocess

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/consts"
	"github.com/radhian/ledger-engine/entity"
	"github.com/radhian/ledger-engine/infra/csvio"
	"github.com/radhian/ledger-engine/infra/db/model"
	"github.com/radhian/ledger-engine/usecase/ledger"
)

// ProcessLedgerJob replays the job's transaction file through a fresh engine
// and stores the final accounts on the process log.
func (u *ledgerProcessUsecase) ProcessLedgerJob(ctx context.Context, logID int64) (err error) {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("[LedgerJob] Panic recovered for LogID %d: %v", logID, r)
			err = fmt.Errorf("ledger job %d panicked: %v", logID, r)
		}
	}()

	log.Infof("[LedgerJob] Starting job for LogID: %d", logID)

	logEntry, err := u.dao.GetLedgerProcessLogByID(logID)
	if err != nil {
		log.Errorf("[LedgerJob] Could not fetch process log %d: %v", logID, err)
		return err
	}
	if logEntry.Status == consts.StatusFinished || logEntry.Status == consts.StatusFailed {
		log.Warnf("[LedgerJob] LogID %d already done with status %d", logID, logEntry.Status)
		return nil
	}

	assets, err := u.dao.GetLedgerLogAssetsByLogID(logID)
	if err != nil {
		log.Errorf("[LedgerJob] Could not fetch assets for LogID %d: %v", logID, err)
		return err
	}

	fileURL, err := findTransactionFileUrl(assets)
	if err != nil {
		log.Errorf("[LedgerJob] Transaction file URL not found: %v", err)
		return u.markFailed(logEntry, err)
	}

	logEntry.Status = consts.StatusRunning
	logEntry.UpdateTime = time.Now().Unix()
	logEntry.UpdateBy = consts.SystemOperator
	if err := u.dao.UpdateLedgerProcessLog(logEntry); err != nil {
		return err
	}

	result, err := replayLedger(ctx, fileURL)
	if err != nil {
		if ctx.Err() != nil {
			log.Warnf("[LedgerJob] LogID %d interrupted: %v", logID, err)
			return err
		}
		log.Errorf("[LedgerJob] LogID %d failed: %v", logID, err)
		return u.markFailed(logEntry, err)
	}

	resBytes, err := json.Marshal(result)
	if err != nil {
		return u.markFailed(logEntry, fmt.Errorf("failed to marshal result: %w", err))
	}

	logEntry.TotalRow = result.TotalRows
	logEntry.AppliedRow = result.Applied
	logEntry.SkippedRow = result.Skipped
	logEntry.Result = string(resBytes)
	logEntry.ErrorMessage = ""
	logEntry.Status = consts.StatusFinished
	logEntry.UpdateTime = time.Now().Unix()
	logEntry.UpdateBy = consts.SystemOperator

	if err := u.dao.UpdateLedgerProcessLog(logEntry); err != nil {
		log.Errorf("[LedgerJob] Failed to update log %d: %v", logID, err)
		return fmt.Errorf("failed to update log: %w", err)
	}

	log.Infof("[LedgerJob] Job completed for LogID %d: rows=%d applied=%d skipped=%d clients=%d",
		logID, result.TotalRows, result.Applied, result.Skipped, len(result.Accounts))
	return nil
}

func (u *ledgerProcessUsecase) markFailed(logEntry model.LedgerProcessLog, cause error) error {
	logEntry.Status = consts.StatusFailed
	logEntry.ErrorMessage = cause.Error()
	logEntry.UpdateTime = time.Now().Unix()
	logEntry.UpdateBy = consts.SystemOperator

	if err := u.dao.UpdateLedgerProcessLog(logEntry); err != nil {
		log.Errorf("[LedgerJob] Failed to mark log %d as failed: %v", logEntry.ID, err)
		return fmt.Errorf("failed to update log: %w", err)
	}
	return fmt.Errorf("ledger job %d failed: %w", logEntry.ID, cause)
}

func findTransactionFileUrl(assets []model.LedgerProcessLogAsset) (string, error) {
	for _, asset := range assets {
		if asset.DataType == consts.DataTypeTransactionFile {
			return asset.FileUrl, nil
		}
	}
	return "", errors.New("missing transaction file URL")
}

func replayLedger(ctx context.Context, fileURL string) (*entity.LedgerProcessResult, error) {
	reader, err := csvio.Open(fileURL)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	engine := ledger.NewEngine()
	stats, err := engine.Run(ctx, reader)
	if err != nil {
		return nil, err
	}

	byReason := make(map[string]int64, len(stats.SkippedByReason))
	for reason, count := range stats.SkippedByReason {
		byReason[string(reason)] = count
	}

	return &entity.LedgerProcessResult{
		TotalRows:       stats.Records,
		Applied:         stats.Applied,
		Skipped:         stats.Skipped,
		SkippedByReason: byReason,
		Accounts:        engine.Accounts(),
	}, nil
}
