package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roastlog/entities"
	"roastlog/pkg/httperr"
	"roastlog/pkg/roast/repository"
	"roastlog/pkg/roast/service"
)

type RoastCtrl struct{ svc service.RoastService }

func New(svc service.RoastService) *RoastCtrl { return &RoastCtrl{svc} }

type createReq struct {
	Date            string   `json:"date"`
	CoffeeName      string   `json:"coffee_name"`
	AgtronWhole     int      `json:"agtron_whole"`
	AgtronGround    int      `json:"agtron_ground"`
	DropTemp        float64  `json:"drop_temp"`
	DevelopmentTime float64  `json:"development_time"`
	TotalTime       float64  `json:"total_time"`
	DTRRatio        float64  `json:"dtr_ratio"` // accepted for wire compat, always recomputed
	BeanID          *string  `json:"bean_id"`
	AmountUsedKG    *float64 `json:"amount_used_kg"`
	Notes           string   `json:"notes"`
}

func (h *RoastCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	r := &entities.Roast{
		Date: req.Date, CoffeeName: req.CoffeeName,
		AgtronWhole: req.AgtronWhole, AgtronGround: req.AgtronGround,
		DropTemp: req.DropTemp,
		DevelopmentTime: req.DevelopmentTime, TotalTime: req.TotalTime,
		BeanID: req.BeanID, AmountUsedKG: req.AmountUsedKG,
		Notes: req.Notes,
	}
	res, err := h.svc.RecordRoast(r)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *RoastCtrl) Get(c echo.Context) error {
	r, err := h.svc.GetRoast(c.Param("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, r)
}

func (h *RoastCtrl) List(c echo.Context) error {
	out, err := h.svc.ListRoasts(FilterFromQuery(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// FilterFromQuery reads ?coffee= (repeatable), ?from=, ?to=. Shared
// with the report endpoints so lists and exports filter identically.
func FilterFromQuery(c echo.Context) repository.Filter {
	return repository.Filter{
		CoffeeNames: c.QueryParams()["coffee"],
		From:        c.QueryParam("from"),
		To:          c.QueryParam("to"),
	}
}
