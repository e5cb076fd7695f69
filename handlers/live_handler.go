package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/teamup-app/league-backend/live"
	"github.com/teamup-app/league-backend/services"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the frontend origin once it is deployed.
		return true
	},
}

type LiveHandler struct {
	hub           *live.Hub
	leagueService services.LeagueService
}

func NewLiveHandler(hub *live.Hub, leagueService services.LeagueService) *LiveHandler {
	return &LiveHandler{
		hub:           hub,
		leagueService: leagueService,
	}
}

// ServeLeagueFeed upgrades the connection and subscribes it to the league's
// standings room. The league must exist; the current table is sent as the
// first frame by the next broadcast.
func (h *LiveHandler) ServeLeagueFeed(w http.ResponseWriter, r *http.Request) {
	leagueID, err := getIDFromURL(r, "leagueID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if _, err := h.leagueService.GetByID(r.Context(), leagueID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		slog.Warn("websocket upgrade failed", slog.Int("league_id", leagueID), slog.Any("error", err))
		return
	}

	h.hub.Join(conn, leagueID)
}
