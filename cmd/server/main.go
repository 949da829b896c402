package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"roastlog/config"
	"roastlog/database"
	"roastlog/router"

	// Inventory
	invCtrlImp "roastlog/pkg/inventory/controllerImp"
	invRepoImp "roastlog/pkg/inventory/repositoryImp"
	invSvcImp "roastlog/pkg/inventory/serviceImp"

	// Roast
	roastCtrlImp "roastlog/pkg/roast/controllerImp"
	roastRepoImp "roastlog/pkg/roast/repositoryImp"
	roastSvcImp "roastlog/pkg/roast/serviceImp"

	// Score
	scoreCtrlImp "roastlog/pkg/score/controllerImp"
	scoreRepoImp "roastlog/pkg/score/repositoryImp"
	scoreSvcImp "roastlog/pkg/score/serviceImp"

	// Report
	reportCtrlImp "roastlog/pkg/report/controllerImp"
	reportSvcImp "roastlog/pkg/report/serviceImp"

	// Health
	healthCtrlImp "roastlog/pkg/health/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// 4) Repos
	lotRepo := invRepoImp.New(db)
	roastRepo := roastRepoImp.New(db)
	scoreRepo := scoreRepoImp.New(db)

	// 5) Services
	lotSvc := invSvcImp.New(lotRepo)
	roastSvc := roastSvcImp.New(roastRepo, cfg.TempUnit)
	scoreSvc := scoreSvcImp.New(scoreRepo, roastRepo)
	reportSvc := reportSvcImp.New(db, roastRepo, scoreRepo, lotRepo)

	// 6) Controllers
	lotCtrl := invCtrlImp.New(lotSvc)
	roastCtrl := roastCtrlImp.New(roastSvc)
	scoreCtrl := scoreCtrlImp.New(scoreSvc)
	reportCtrl := reportCtrlImp.New(reportSvc)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, lotCtrl, roastCtrl, scoreCtrl, reportCtrl, hCtrl)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
