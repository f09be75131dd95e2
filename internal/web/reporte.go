package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ezequielleiter/admin-buffets-teo/internal/backend"
)

type reportePage struct {
	basePage
	Evento  *backend.Evento
	Reporte *backend.Reporte
	Error   string

	// Payment split as whole percentages of totalVendido.
	PorcEfectivo      int
	PorcTransferencia int
	TicketPromedio    float64
}

// handleReportePage shows the sales aggregates for one evento.
func (s *Server) handleReportePage(w http.ResponseWriter, r *http.Request) {
	eventoID := chi.URLParam(r, "eventoID")
	page := reportePage{basePage: s.newBase(w, r, "Reporte")}

	evento, err := s.api.GetEvento(r.Context(), s.token(r), eventoID)
	if err != nil {
		page.Error = err.Error()
		s.render(w, r, http.StatusOK, "reporte.html", page)
		return
	}
	page.Evento = evento
	page.Title = "Reporte · " + evento.Nombre

	reporte, err := s.api.Reporte(r.Context(), s.token(r), eventoID)
	if err != nil {
		page.Error = err.Error()
		s.render(w, r, http.StatusOK, "reporte.html", page)
		return
	}
	page.Reporte = reporte

	if reporte.TotalVendido > 0 {
		total := decimal.NewFromFloat(reporte.TotalVendido)
		cien := decimal.NewFromInt(100)
		page.PorcEfectivo = int(decimal.NewFromFloat(reporte.TotalEfectivo).Mul(cien).Div(total).Round(0).IntPart())
		page.PorcTransferencia = int(decimal.NewFromFloat(reporte.TotalTransferencia).Mul(cien).Div(total).Round(0).IntPart())
	}
	if reporte.CantidadOrdenes > 0 {
		promedio := decimal.NewFromFloat(reporte.TotalVendido).Div(decimal.NewFromInt(int64(reporte.CantidadOrdenes)))
		page.TicketPromedio, _ = promedio.Round(2).Float64()
	}

	s.render(w, r, http.StatusOK, "reporte.html", page)
}
