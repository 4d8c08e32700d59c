package handler

import (
	"net/http"

	"github.com/mcoot/lifegame/internal/api/middleware"
	"github.com/mcoot/lifegame/internal/api/request"
	"github.com/mcoot/lifegame/internal/api/response"
	"github.com/mcoot/lifegame/internal/services/simulation"
)

// PlayerHandler handles registration, login and player lookups
type PlayerHandler struct {
	controller *simulation.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller *simulation.Controller) *PlayerHandler {
	return &PlayerHandler{
		controller: controller,
	}
}

// Form handles getFormForNewPlayer
func (h *PlayerHandler) Form(w http.ResponseWriter, r *http.Request) {
	response.Success(w, response.FormFromModel(h.controller.Form()))
}

// ValidateInput handles validateSingleInput
func (h *PlayerHandler) ValidateInput(w http.ResponseWriter, r *http.Request) {
	var req request.ValidateInputRequest
	if err := request.Decode(r.Body, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.controller.ValidateInput(r.Context(), string(req.GivenInput), req.Type); err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, nil)
}

// Register handles createNewPlayer
func (h *PlayerHandler) Register(w http.ResponseWriter, r *http.Request) {
	answers, err := request.DecodeAnswers(r.Body)
	if err != nil {
		WriteError(w, err)
		return
	}

	entry, err := h.controller.Register(r.Context(), answers)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, entryResponse(entry))
}

// Login handles login
func (h *PlayerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := request.Decode(r.Body, &req); err != nil {
		WriteError(w, err)
		return
	}

	entry, err := h.controller.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, entryResponse(entry))
}

// Details handles getBasicDetailsForLogin
func (h *PlayerHandler) Details(w http.ResponseWriter, r *http.Request) {
	player, err := h.controller.Player(r.Context(), middleware.MustGetPlayerID(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, response.DetailsFromModel(player))
}

// Data handles getPlayerData
func (h *PlayerHandler) Data(w http.ResponseWriter, r *http.Request) {
	player, err := h.controller.Player(r.Context(), middleware.MustGetPlayerID(r.Context()))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.Success(w, response.PlayerResponse{
		Envelope:   response.OK,
		PlayerData: response.PlayerDataFromModel(player),
	})
}

func entryResponse(entry *simulation.Entry) response.EntryResponse {
	return response.EntryResponse{
		Details:      response.DetailsFromModel(entry.Player),
		SessionToken: entry.Session.Token,
		ExpiresAt:    entry.Session.ExpiresAt,
		Events:       response.EventsFromModel(entry.Events),
	}
}
