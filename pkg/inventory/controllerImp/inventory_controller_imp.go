package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roastlog/entities"
	"roastlog/pkg/httperr"
	"roastlog/pkg/inventory/service"
)

type InventoryCtrl struct{ svc service.InventoryService }

func New(svc service.InventoryService) *InventoryCtrl { return &InventoryCtrl{svc} }

type createReq struct {
	Name           string  `json:"name"`
	Origin         string  `json:"origin"`
	Process        string  `json:"process"`
	Variety        string  `json:"variety"`
	AltitudeM      *int    `json:"altitude_m"`
	PurchaseDate   string  `json:"purchase_date"`
	InitialStockKG float64 `json:"initial_stock_kg"`
	PricePerKG     float64 `json:"price_per_kg"`
	Supplier       string  `json:"supplier"`
	Notes          string  `json:"notes"`
}

func (h *InventoryCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	l := &entities.GreenBeanLot{
		Name: req.Name, Origin: req.Origin, Process: req.Process, Variety: req.Variety,
		AltitudeM: req.AltitudeM, PurchaseDate: req.PurchaseDate,
		InitialStockKG: req.InitialStockKG, PricePerKG: req.PricePerKG,
		Supplier: req.Supplier, Notes: req.Notes,
	}
	out, err := h.svc.CreateLot(l)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{"bean_id": out.BeanID})
}

func (h *InventoryCtrl) Get(c echo.Context) error {
	l, err := h.svc.GetLot(c.Param("id"))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, l)
}

func (h *InventoryCtrl) List(c echo.Context) error {
	out, err := h.svc.ListLots()
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateStock is the only standalone stock mutator; it runs the same
// guarded consume as roast recording.
func (h *InventoryCtrl) UpdateStock(c echo.Context) error {
	var body struct {
		AmountUsed float64 `json:"amount_used"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	remaining, err := h.svc.UpdateStock(c.Param("id"), body.AmountUsed)
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"bean_id": c.Param("id"), "new_stock_kg": remaining})
}
