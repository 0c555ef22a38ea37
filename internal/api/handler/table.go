package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/apierr"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/middleware"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/request"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/api/response"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/model"
	"github.com/mikewthornton1988-glitch/Pool-bot/internal/services/tournament"
)

// TableHandler handles table endpoints
type TableHandler struct {
	controller *tournament.Controller
}

// NewTableHandler creates a new table handler
func NewTableHandler(controller *tournament.Controller) *TableHandler {
	return &TableHandler{controller: controller}
}

// Join handles POST /api/v1/tables/join
func (h *TableHandler) Join(w http.ResponseWriter, r *http.Request) {
	principal := middleware.MustGetPrincipal(r.Context())

	result, err := h.controller.Join(r.Context(), *principal)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinFromResult(result))
}

// List handles GET /api/v1/tables (admin)
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.controller.ListTables(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	resp := response.TableListResponse{Tables: make([]response.TableSummary, 0, len(summaries))}
	for _, s := range summaries {
		resp.Tables = append(resp.Tables, response.TableSummaryFromModel(s))
	}
	response.JSON(w, http.StatusOK, resp)
}

// DeclareWinner handles POST /api/v1/tables/{id}/winner (admin)
func (h *TableHandler) DeclareWinner(w http.ResponseWriter, r *http.Request) {
	rawID := mux.Vars(r)["id"]
	tableID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		WriteError(w, apierr.NewInvalidRequestError("invalid table id"))
		return
	}

	var req request.DeclareWinnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Winner == "" {
		WriteError(w, apierr.NewInvalidRequestError("winner is required"))
		return
	}

	result, err := h.controller.DeclareWinner(r.Context(), model.TableID(tableID), req.Winner)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WinnerFromResult(result))
}
