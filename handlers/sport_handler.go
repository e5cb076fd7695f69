package handlers

import (
	"net/http"

	"github.com/teamup-app/league-backend/middleware"
	"github.com/teamup-app/league-backend/services"
)

type SportHandler struct {
	sportService services.SportService
}

func NewSportHandler(sportService services.SportService) *SportHandler {
	return &SportHandler{
		sportService: sportService,
	}
}

func (h *SportHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerEmail, err := middleware.CallerEmail(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, services.ErrUnauthorized.Error())
		return
	}

	var input services.CreateSportInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sport, err := h.sportService.Create(r.Context(), callerEmail, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, sport, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SportHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	sports, err := h.sportService.GetAll(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, sports, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SportHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := getIDFromURL(r, "sportID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sport, err := h.sportService.GetByID(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, sport, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SportHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerEmail, err := middleware.CallerEmail(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, services.ErrUnauthorized.Error())
		return
	}

	id, err := getIDFromURL(r, "sportID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateSportInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	sport, err := h.sportService.Update(r.Context(), callerEmail, id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, sport, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *SportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	callerEmail, err := middleware.CallerEmail(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, services.ErrUnauthorized.Error())
		return
	}

	id, err := getIDFromURL(r, "sportID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.sportService.Delete(r.Context(), callerEmail, id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
