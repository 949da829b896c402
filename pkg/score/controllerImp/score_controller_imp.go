package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roastlog/entities"
	"roastlog/pkg/httperr"
	"roastlog/pkg/score/repository"
	"roastlog/pkg/score/service"
)

type ScoreCtrl struct{ svc service.ScoreService }

func New(svc service.ScoreService) *ScoreCtrl { return &ScoreCtrl{svc} }

type createReq struct {
	RoastID        string  `json:"roast_id"`
	Date           string  `json:"date"`
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
	TotalScore     float64 `json:"total_score"` // accepted for wire compat, always recomputed
	Notes          string  `json:"notes"`
}

func (h *ScoreCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	s := &entities.CuppingScore{
		RoastID: req.RoastID, Date: req.Date,
		FragranceAroma: req.FragranceAroma, Flavor: req.Flavor, Aftertaste: req.Aftertaste,
		Acidity: req.Acidity, Body: req.Body, Uniformity: req.Uniformity,
		CleanCup: req.CleanCup, Sweetness: req.Sweetness, Overall: req.Overall,
		Defects: req.Defects, Notes: req.Notes,
	}
	res, err := h.svc.RecordScore(s)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *ScoreCtrl) List(c echo.Context) error {
	out, err := h.svc.ListScores(FilterFromQuery(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func FilterFromQuery(c echo.Context) repository.Filter {
	return repository.Filter{
		CoffeeNames: c.QueryParams()["coffee"],
		From:        c.QueryParam("from"),
		To:          c.QueryParam("to"),
	}
}
