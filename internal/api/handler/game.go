package handler

import (
	"net/http"

	"github.com/mcoot/lifegame/internal/api/middleware"
	"github.com/mcoot/lifegame/internal/api/request"
	"github.com/mcoot/lifegame/internal/api/response"
	"github.com/mcoot/lifegame/internal/services/simulation"
)

// GameHandler handles the menu and activity choices
type GameHandler struct {
	controller *simulation.Controller
}

// NewGameHandler creates a new game handler
func NewGameHandler(controller *simulation.Controller) *GameHandler {
	return &GameHandler{
		controller: controller,
	}
}

// Menu handles getRelevantMenu
func (h *GameHandler) Menu(w http.ResponseWriter, r *http.Request) {
	options, err := h.controller.Menu(r.Context(), middleware.MustGetPlayerID(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, response.MenuResponse{Envelope: response.OK, Options: options})
}

// Choose handles handleChoice
func (h *GameHandler) Choose(w http.ResponseWriter, r *http.Request) {
	var req request.ChoiceRequest
	if err := request.Decode(r.Body, &req); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.controller.Choose(r.Context(), middleware.MustGetPlayerID(r.Context()), req.Choice)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, response.ChoiceResponse{
		Envelope:   response.OK,
		PlayerData: response.PlayerDataFromModel(result.Player),
		Time:       response.FormatTime(result.Player.TimeOfDay),
		AgedUp:     result.AgedUp,
		BonusSkill: result.Bonus,
		Events:     response.EventsFromModel(result.Events),
	})
}
