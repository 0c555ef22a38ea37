package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/middleware"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/request"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/response"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/tournament"
)

// PlayerHandler handles player-facing endpoints
type PlayerHandler struct {
	controller *tournament.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller *tournament.Controller) *PlayerHandler {
	return &PlayerHandler{controller: controller}
}

// Enroll handles POST /api/v1/enroll
func (h *PlayerHandler) Enroll(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	var req request.EnrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Allow empty body: enrollment without a referral token
		req = request.EnrollRequest{}
	}

	view, err := h.controller.Enroll(r.Context(), *principal, req.ReferralToken)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.EnrollResponse{
		Player: response.PlayerFromModel(&view.Player),
		Terms:  response.TermsFromConfig(h.controller.Config()),
	}
	if view.Promoter != nil {
		p := response.PromoterFromModel(view.Promoter)
		resp.Promoter = &p
	}
	response.JSON(w, http.StatusOK, resp)
}

// Status handles GET /api/v1/players/me/status
func (h *PlayerHandler) Status(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	view, err := h.controller.Status(r.Context(), *principal)
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.StatusResponse{
		Player: response.PlayerFromModel(&view.Player),
	}
	if view.Promoter != nil {
		p := response.PromoterFromModel(view.Promoter)
		resp.Promoter = &p
	}
	response.JSON(w, http.StatusOK, resp)
}
