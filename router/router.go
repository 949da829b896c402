package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	lotCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
		UpdateStock(echo.Context) error
	},
	roastCtrl interface {
		Create(echo.Context) error
		Get(echo.Context) error
		List(echo.Context) error
	},
	scoreCtrl interface {
		Create(echo.Context) error
		List(echo.Context) error
	},
	reportCtrl interface {
		Cupping(echo.Context) error
		Inventory(echo.Context) error
		RoastsCSV(echo.Context) error
		ScoresCSV(echo.Context) error
		HistoryXLSX(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/green-beans", lotCtrl.Create)
	e.GET("/green-beans", lotCtrl.List)
	e.GET("/green-beans/:id", lotCtrl.Get)
	e.PUT("/green-beans/:id/update-stock", lotCtrl.UpdateStock)

	e.POST("/roasts", roastCtrl.Create)
	e.GET("/roasts", roastCtrl.List)
	e.GET("/roasts/export.csv", reportCtrl.RoastsCSV)
	e.GET("/roasts/:id", roastCtrl.Get)

	e.POST("/scores", scoreCtrl.Create)
	e.GET("/scores", scoreCtrl.List)
	e.GET("/scores/export.csv", reportCtrl.ScoresCSV)

	e.GET("/reports/cupping", reportCtrl.Cupping)
	e.GET("/reports/inventory", reportCtrl.Inventory)
	e.GET("/reports/history.xlsx", reportCtrl.HistoryXLSX)

	return e
}
