package ledgerprocess

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/gommon/bytes"
	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/consts"
	"github.com/radhian/ledger-engine/infra/db/model"
)

func (u *ledgerProcessUsecase) ProcessLedgerInit(transactionCSV string, operator string) (*model.LedgerProcessLog, error) {
	timeNowUnix := time.Now().Unix()

	fileURL, size, err := u.uploadFile(transactionCSV)
	if err != nil {
		return nil, fmt.Errorf("failed to upload transaction file: %w", err)
	}

	processLog := &model.LedgerProcessLog{
		Status:     consts.StatusInit,
		CreateTime: timeNowUnix,
		CreateBy:   operator,
		UpdateTime: timeNowUnix,
		UpdateBy:   operator,
	}
	if err := u.dao.CreateLedgerProcessLog(processLog); err != nil {
		return nil, err
	}

	asset := &model.LedgerProcessLogAsset{
		LedgerProcessLogID: processLog.ID,
		DataType:           consts.DataTypeTransactionFile,
		FileName:           filepath.Base(transactionCSV),
		FileUrl:            fileURL,
		FileSize:           size,
		CreateTime:         timeNowUnix,
		CreateBy:           operator,
	}
	if err := u.dao.CreateLedgerProcessLogAsset(asset); err != nil {
		return nil, err
	}

	log.Infof("[LedgerInit] Created LogID %d for %s (%s) by %s", processLog.ID, asset.FileName, bytes.Format(size), operator)
	return processLog, nil
}

// NOTES: uploads are kept on local disk; an object storage uploader can replace this later.
func (u *ledgerProcessUsecase) uploadFile(filePath string) (string, int64, error) {
	src, err := os.Open(filePath)
	if err != nil {
		return "", 0, err
	}
	defer src.Close()

	if err := os.MkdirAll(u.uploadDir, 0o755); err != nil {
		return "", 0, err
	}

	destPath := filepath.Join(u.uploadDir, fmt.Sprintf("%s_%s", uuid.NewString(), filepath.Base(filePath)))
	dest, err := os.Create(destPath)
	if err != nil {
		return "", 0, err
	}

	size, err := io.Copy(dest, src)
	if closeErr := dest.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(destPath)
		return "", 0, err
	}

	return destPath, size, nil
}
