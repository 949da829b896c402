package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roastlog/pkg/httperr"
	"roastlog/pkg/report/service"
	roastCtrl "roastlog/pkg/roast/controllerImp"
	scoreCtrl "roastlog/pkg/score/controllerImp"
)

type ReportCtrl struct{ svc service.ReportService }

func New(svc service.ReportService) *ReportCtrl { return &ReportCtrl{svc} }

func (h *ReportCtrl) Cupping(c echo.Context) error {
	rows, err := h.svc.ScoresWithCoffeeName(scoreCtrl.FilterFromQuery(c))
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *ReportCtrl) Inventory(c echo.Context) error {
	rep, err := h.svc.LotInventoryReport()
	if err != nil {
		return httperr.Respond(c, err)
	}
	return c.JSON(http.StatusOK, rep)
}

func (h *ReportCtrl) RoastsCSV(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="coffee_roast_history.csv"`)
	res.WriteHeader(http.StatusOK)
	return h.svc.WriteRoastsCSV(res, roastCtrl.FilterFromQuery(c))
}

func (h *ReportCtrl) ScoresCSV(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="coffee_cupping_history.csv"`)
	res.WriteHeader(http.StatusOK)
	return h.svc.WriteScoresCSV(res, scoreCtrl.FilterFromQuery(c))
}

func (h *ReportCtrl) HistoryXLSX(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="coffee_history.xlsx"`)
	res.WriteHeader(http.StatusOK)
	return h.svc.WriteHistoryXLSX(res, roastCtrl.FilterFromQuery(c), scoreCtrl.FilterFromQuery(c))
}
