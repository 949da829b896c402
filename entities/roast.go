package entities

import "time"

type Roast struct {
	RoastID         string   `gorm:"primaryKey" json:"roast_id"`
	BeanID          *string  `gorm:"index" json:"bean_id"` // nil for roasts with no tracked lot
	Date            string   `gorm:"index" json:"date"`    // YYYY-MM-DD
	CoffeeName      string   `gorm:"index" json:"coffee_name"`
	AgtronWhole     int      `json:"agtron_whole"`
	AgtronGround    int      `json:"agtron_ground"`
	DropTemp        float64  `json:"drop_temp"`
	DropTempUnit    string   `json:"drop_temp_unit"` // F|C
	DevelopmentTime float64  `json:"development_time"`
	TotalTime       float64  `json:"total_time"`
	DTRRatio        float64  `json:"dtr_ratio"` // derived: development/total, 0 when total is 0
	AmountUsedKG    *float64 `json:"amount_used_kg"`
	Notes           string   `json:"notes"`

	CreatedAt time.Time
}
