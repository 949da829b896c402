package serviceImp

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"roastlog/entities"
	"roastlog/pkg/apperr"
	"roastlog/pkg/inventory"
	invRepo "roastlog/pkg/inventory/repository"
	"roastlog/pkg/report/service"
	roastRepo "roastlog/pkg/roast/repository"
	scoreRepo "roastlog/pkg/score/repository"
)

type reportSvc struct {
	db     *gorm.DB
	roasts roastRepo.RoastRepository
	scores scoreRepo.ScoreRepository
	lots   invRepo.InventoryRepository
}

func New(db *gorm.DB, roasts roastRepo.RoastRepository, scores scoreRepo.ScoreRepository, lots invRepo.InventoryRepository) service.ReportService {
	return &reportSvc{db: db, roasts: roasts, scores: scores, lots: lots}
}

func (s *reportSvc) ScoresWithCoffeeName(f scoreRepo.Filter) ([]service.ScoreRow, error) {
	q := s.db.Model(&entities.CuppingScore{}).
		Select("cupping_scores.*, roasts.coffee_name AS coffee_name").
		Joins("LEFT JOIN roasts ON roasts.roast_id = cupping_scores.roast_id")
	if len(f.CoffeeNames) > 0 {
		q = q.Where("roasts.coffee_name IN ?", f.CoffeeNames)
	}
	if f.From != "" {
		q = q.Where("cupping_scores.date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("cupping_scores.date <= ?", f.To)
	}
	var out []service.ScoreRow
	if err := q.Order("cupping_scores.date DESC, cupping_scores.created_at DESC").Scan(&out).Error; err != nil {
		return nil, apperr.Storage("join scores", err)
	}
	return out, nil
}

func (s *reportSvc) LotInventoryReport() (*service.InventoryReport, error) {
	lots, err := s.lots.List()
	if err != nil {
		return nil, err
	}
	rep := &service.InventoryReport{Counts: map[string]int{}}
	for _, l := range lots {
		st := inventory.DeriveStatus(l.CurrentStockKG, l.InitialStockKG)
		rep.Lots = append(rep.Lots, service.LotRow{GreenBeanLot: l, Status: st})
		rep.Counts[string(st)]++
	}
	return rep, nil
}

var roastHeader = []string{
	"roast_id", "date", "coffee_name", "bean_id", "agtron_whole", "agtron_ground",
	"drop_temp", "drop_temp_unit", "development_time", "total_time", "dtr_ratio",
	"amount_used_kg", "notes",
}

func roastRecord(r *entities.Roast) []string {
	return []string{
		r.RoastID, r.Date, r.CoffeeName, strPtr(r.BeanID),
		strconv.Itoa(r.AgtronWhole), strconv.Itoa(r.AgtronGround),
		num(r.DropTemp), r.DropTempUnit,
		num(r.DevelopmentTime), num(r.TotalTime), num(r.DTRRatio),
		numPtr(r.AmountUsedKG), r.Notes,
	}
}

var scoreHeader = []string{
	"score_id", "roast_id", "coffee_name", "date", "fragrance_aroma", "flavor",
	"aftertaste", "acidity", "body", "uniformity", "clean_cup", "sweetness",
	"overall", "defects", "total_score", "notes",
}

func scoreRecord(r *service.ScoreRow) []string {
	return []string{
		r.ScoreID, r.RoastID, strPtr(r.CoffeeName), r.Date,
		num(r.FragranceAroma), num(r.Flavor), num(r.Aftertaste), num(r.Acidity),
		num(r.Body), num(r.Uniformity), num(r.CleanCup), num(r.Sweetness),
		num(r.Overall), strconv.Itoa(r.Defects), num(r.TotalScore), r.Notes,
	}
}

func (s *reportSvc) WriteRoastsCSV(w io.Writer, f roastRepo.Filter) error {
	roasts, err := s.roasts.List(f)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(roastHeader); err != nil {
		return err
	}
	for i := range roasts {
		if err := cw.Write(roastRecord(&roasts[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *reportSvc) WriteScoresCSV(w io.Writer, f scoreRepo.Filter) error {
	rows, err := s.ScoresWithCoffeeName(f)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(scoreHeader); err != nil {
		return err
	}
	for i := range rows {
		if err := cw.Write(scoreRecord(&rows[i])); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func (s *reportSvc) WriteHistoryXLSX(w io.Writer, rf roastRepo.Filter, sf scoreRepo.Filter) error {
	roasts, err := s.roasts.List(rf)
	if err != nil {
		return err
	}
	scores, err := s.ScoresWithCoffeeName(sf)
	if err != nil {
		return err
	}

	x := excelize.NewFile()
	defer x.Close()

	if err := x.SetSheetName("Sheet1", "Roasts"); err != nil {
		return err
	}
	if _, err := x.NewSheet("Cupping"); err != nil {
		return err
	}

	writeRow := func(sheet string, row int, rec []string) error {
		cells := make([]any, len(rec))
		for i, v := range rec {
			cells[i] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		return x.SetSheetRow(sheet, cell, &cells)
	}

	if err := writeRow("Roasts", 1, roastHeader); err != nil {
		return err
	}
	for i := range roasts {
		if err := writeRow("Roasts", i+2, roastRecord(&roasts[i])); err != nil {
			return err
		}
	}
	if err := writeRow("Cupping", 1, scoreHeader); err != nil {
		return err
	}
	for i := range scores {
		if err := writeRow("Cupping", i+2, scoreRecord(&scores[i])); err != nil {
			return err
		}
	}

	if err := x.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func numPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return num(*v)
}

func strPtr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
