package entities

import "time"

type GreenBeanLot struct {
	BeanID         string  `gorm:"primaryKey" json:"bean_id"`
	Name           string  `gorm:"index" json:"name"`
	Origin         string  `json:"origin"`
	Process        string  `json:"process"` // Washed|Natural|Honey|Anaerobic|Other
	Variety        string  `json:"variety"`
	AltitudeM      *int    `json:"altitude_m"`
	PurchaseDate   string  `gorm:"index" json:"purchase_date"` // YYYY-MM-DD
	InitialStockKG float64 `json:"initial_stock_kg"`
	CurrentStockKG float64 `json:"current_stock_kg"`
	PricePerKG     float64 `json:"price_per_kg"`
	Supplier       string  `json:"supplier"`
	Notes          string  `json:"notes"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

var ProcessMethods = []string{"Washed", "Natural", "Honey", "Anaerobic", "Other"}
