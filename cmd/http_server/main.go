package main

import (
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres" //postgres
	"github.com/labstack/gommon/log"
	"github.com/radhian/ledger-engine/config"
	"github.com/radhian/ledger-engine/controllers"
	"github.com/radhian/ledger-engine/handler"
	"github.com/radhian/ledger-engine/infra/db/dao"
	"github.com/radhian/ledger-engine/infra/locker"
	"github.com/radhian/ledger-engine/usecase/ledgerprocess"
)

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

	if err := dao.AutoMigrate(db); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	uc := ledgerprocess.NewLedgerProcessUsecase(dao.NewDaoMethod(db), locker.New(), cfg.UploadDir)
	router := controllers.NewRouter(handler.NewLedgerHandler(uc))

	log.Fatal(controllers.RunServer(cfg.Port, router))
}
