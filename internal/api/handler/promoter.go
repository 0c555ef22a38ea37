package handler

import (
	"net/http"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/middleware"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/response"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/tournament"
)

// PromoterHandler handles promoter endpoints
type PromoterHandler struct {
	controller *tournament.Controller
}

// NewPromoterHandler creates a new promoter handler
func NewPromoterHandler(controller *tournament.Controller) *PromoterHandler {
	return &PromoterHandler{controller: controller}
}

// Link handles GET /api/v1/promoters/me
func (h *PromoterHandler) Link(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	view, err := h.controller.PromoterLink(r.Context(), *principal)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PromoterLinkResponse{
		Promoter:      response.PromoterFromModel(&view.Promoter),
		ReferralToken: view.ReferralToken,
		CashTag:       h.controller.Config().CashTag,
	})
}

// Balances handles GET /api/v1/promoters/balances (admin)
func (h *PromoterHandler) Balances(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.controller.PromoterBalances(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.BalancesFromSummaries(summaries))
}
