package inventory

// StockStatus is the reporting band for a lot's remaining stock.
type StockStatus string

const (
	StatusCritical StockStatus = "critical" // <= 10% left
	StatusLow      StockStatus = "low"      // <= 25%
	StatusMedium   StockStatus = "medium"   // <= 50%
	StatusGood     StockStatus = "good"     // > 50%
)

// DeriveStatus maps current/initial to a band. Pure; reporting only.
func DeriveStatus(currentKG, initialKG float64) StockStatus {
	if initialKG <= 0 {
		return StatusCritical
	}
	pct := currentKG / initialKG * 100
	switch {
	case pct <= 10:
		return StatusCritical
	case pct <= 25:
		return StatusLow
	case pct <= 50:
		return StatusMedium
	default:
		return StatusGood
	}
}
