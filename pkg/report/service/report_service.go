package service

import (
	"io"

	"roastlog/entities"
	"roastlog/pkg/inventory"
	roastRepo "roastlog/pkg/roast/repository"
	scoreRepo "roastlog/pkg/score/repository"
)

// ScoreRow is a cupping score joined with its roast's display name.
// CoffeeName is nil when the roast row is missing.
type ScoreRow struct {
	entities.CuppingScore
	CoffeeName *string `json:"coffee_name"`
}

type LotRow struct {
	entities.GreenBeanLot
	Status inventory.StockStatus `json:"status"`
}

type InventoryReport struct {
	Lots   []LotRow       `json:"lots"`
	Counts map[string]int `json:"counts"` // per status band
}

type ReportService interface {
	ScoresWithCoffeeName(f scoreRepo.Filter) ([]ScoreRow, error)
	LotInventoryReport() (*InventoryReport, error)
	WriteRoastsCSV(w io.Writer, f roastRepo.Filter) error
	WriteScoresCSV(w io.Writer, f scoreRepo.Filter) error
	// WriteHistoryXLSX emits one workbook with Roasts and Cupping sheets.
	WriteHistoryXLSX(w io.Writer, rf roastRepo.Filter, sf scoreRepo.Filter) error
}
