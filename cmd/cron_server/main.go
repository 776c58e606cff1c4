package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/config"
	"github.com/radhian/ledger-engine/handler"
	"github.com/radhian/ledger-engine/infra/db/dao"
	"github.com/radhian/ledger-engine/infra/locker"
	"github.com/radhian/ledger-engine/usecase/ledgerprocess"
)

type CronWorkerConfig struct {
	Interval time.Duration
	Workers  int
}

func (cfg CronWorkerConfig) startLedgerExecutorWorker(ctx context.Context, h *handler.LedgerHandler, workerID int) {
	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		err := h.LedgerExecution(ctx)
		switch {
		case errors.Is(err, handler.ErrNoProcessHandled):
			log.Debugf("[Worker %d] idle", workerID)
		case err != nil:
			log.Errorf("[Worker %d] error: %s", workerID, err.Error())
		default:
			log.Infof("[Worker %d] success", workerID)
		}

		select {
		case <-ctx.Done():
			log.Infof("[Worker %d] stopped", workerID)
			return
		case <-ticker.C:
		}
	}
}

type App struct {
	DB     *gorm.DB
	Locker *locker.Locker
}

func (a *App) startCronWorker(ctx context.Context, cfg CronWorkerConfig, uploadDir string) {
	var wg sync.WaitGroup

	ledgerUc := ledgerprocess.NewLedgerProcessUsecase(dao.NewDaoMethod(a.DB), a.Locker, uploadDir)
	h := handler.NewLedgerHandler(ledgerUc)

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			log.Infof("spawn [Worker %d]", workerID)
			cfg.startLedgerExecutorWorker(ctx, h, workerID)
		}(i + 1)
	}
	wg.Wait()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	db, err := gorm.Open("postgres", cfg.DBURI())
	if err != nil {
		log.Fatalf("Cannot connect to database %s: %v", cfg.DbName, err)
	}
	defer db.Close()
	log.Infof("We are connected to the database %s", cfg.DbName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := App{DB: db, Locker: locker.New()}
	app.startCronWorker(ctx, CronWorkerConfig{
		Workers:  cfg.WorkerNumber,
		Interval: cfg.Interval,
	}, cfg.UploadDir)
}
