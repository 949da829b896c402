package validation

import (
	"math"
	"strings"

	"roastlog/entities"
	"roastlog/pkg/apperr"
)

// Drop-temperature windows per configured instrument unit.
const (
	TempFMin = 350.0
	TempFMax = 450.0
	TempCMin = 180.0
	TempCMax = 240.0
)

func TempWindow(unit string) (lo, hi float64) {
	if strings.EqualFold(unit, "C") {
		return TempCMin, TempCMax
	}
	return TempFMin, TempFMax
}

func CheckLot(l *entities.GreenBeanLot) error {
	v := apperr.NewValidation()
	if strings.TrimSpace(l.Name) == "" {
		v.Add("name", "must not be empty")
	}
	if l.InitialStockKG <= 0 {
		v.Addf("initial_stock_kg", "must be > 0, got %.2f", l.InitialStockKG)
	}
	if l.PricePerKG < 0 {
		v.Add("price_per_kg", "must be >= 0")
	}
	if l.Process != "" {
		ok := false
		for _, p := range entities.ProcessMethods {
			if l.Process == p {
				ok = true
				break
			}
		}
		if !ok {
			v.Addf("process", "must be one of %v", entities.ProcessMethods)
		}
	}
	return v.Err()
}

// CheckRoast validates every field and reports all violations at once.
// Derived fields (dtr_ratio) are ignored here; callers recompute them.
func CheckRoast(r *entities.Roast) error {
	v := apperr.NewValidation()
	if strings.TrimSpace(r.CoffeeName) == "" {
		v.Add("coffee_name", "must not be empty")
	}
	if r.AgtronWhole < 0 || r.AgtronWhole > 100 {
		v.Addf("agtron_whole", "must be in [0,100], got %d", r.AgtronWhole)
	}
	if r.AgtronGround < 0 || r.AgtronGround > 100 {
		v.Addf("agtron_ground", "must be in [0,100], got %d", r.AgtronGround)
	}
	lo, hi := TempWindow(r.DropTempUnit)
	if r.DropTemp < lo || r.DropTemp > hi {
		v.Addf("drop_temp", "must be in [%.0f,%.0f] °%s, got %.1f", lo, hi, strings.ToUpper(r.DropTempUnit), r.DropTemp)
	}
	if r.DevelopmentTime < 0 {
		v.Add("development_time", "must be >= 0")
	}
	if r.TotalTime < 0 {
		v.Add("total_time", "must be >= 0")
	}
	if r.DevelopmentTime >= 0 && r.TotalTime > 0 && r.DevelopmentTime > r.TotalTime {
		v.Add("development_time", "must not exceed total_time")
	}
	if r.BeanID != nil {
		if r.AmountUsedKG == nil || *r.AmountUsedKG <= 0 {
			v.Add("amount_used_kg", "must be > 0 when a bean lot is referenced")
		}
	} else if r.AmountUsedKG != nil {
		v.Add("amount_used_kg", "requires a bean_id")
	}
	return v.Err()
}

func CheckScore(s *entities.CuppingScore) error {
	v := apperr.NewValidation()
	check := func(field string, val float64) {
		if val < 0 || val > 10 {
			v.Addf(field, "must be in [0,10], got %.2f", val)
			return
		}
		if !onQuarterStep(val) {
			v.Addf(field, "must be a multiple of 0.25, got %.3f", val)
		}
	}
	check("fragrance_aroma", s.FragranceAroma)
	check("flavor", s.Flavor)
	check("aftertaste", s.Aftertaste)
	check("acidity", s.Acidity)
	check("body", s.Body)
	check("uniformity", s.Uniformity)
	check("clean_cup", s.CleanCup)
	check("sweetness", s.Sweetness)
	check("overall", s.Overall)
	if s.Defects < 0 {
		v.Add("defects", "must be >= 0")
	}
	return v.Err()
}

func onQuarterStep(v float64) bool {
	scaled := v * 4
	return math.Abs(scaled-math.Round(scaled)) < 1e-9
}

// DTRRatio derives development/total, 0 when total time is 0.
func DTRRatio(developmentTime, totalTime float64) float64 {
	if totalTime == 0 {
		return 0
	}
	return developmentTime / totalTime
}

// TotalScore applies the SCA cupping sheet formula: the eight
// sub-scores plus double-weighted overall, minus the defect count.
func TotalScore(s *entities.CuppingScore) float64 {
	return s.FragranceAroma + s.Flavor + s.Aftertaste + s.Acidity +
		s.Body + s.Uniformity + s.CleanCup + s.Sweetness +
		2*s.Overall - float64(s.Defects)
}
