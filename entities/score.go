package entities

import "time"

type CuppingScore struct {
	ScoreID        string  `gorm:"primaryKey" json:"score_id"`
	RoastID        string  `gorm:"index" json:"roast_id"`
	Date           string  `gorm:"index" json:"date"` // YYYY-MM-DD
	FragranceAroma float64 `json:"fragrance_aroma"`
	Flavor         float64 `json:"flavor"`
	Aftertaste     float64 `json:"aftertaste"`
	Acidity        float64 `json:"acidity"`
	Body           float64 `json:"body"`
	Uniformity     float64 `json:"uniformity"`
	CleanCup       float64 `json:"clean_cup"`
	Sweetness      float64 `json:"sweetness"`
	Overall        float64 `json:"overall"`
	Defects        int     `json:"defects"`
	TotalScore     float64 `json:"total_score"` // derived: sum(sub) + 2*overall - defects
	Notes          string  `json:"notes"`

	CreatedAt time.Time
}
