package server

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Browsers connect from the web client's origin; the token authenticates.
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWebsocket authenticates with ?token= since browsers cannot set headers on
// websocket requests.
func (s *Server) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	if s.hub == nil {
		respondError(w, http.StatusServiceUnavailable, "unavailable", "notifications are disabled")
		return
	}
	raw := r.URL.Query().Get("token")
	if raw == "" {
		respondError(w, http.StatusUnauthorized, "unauthorized", "token is required")
		return
	}
	id, err := s.parseToken(raw)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "unauthorized", err.Error())
		return
	}
	actor, err := s.service.ResolveActor(r.Context(), id.userID, id.role)
	if err != nil {
		s.writeActorError(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("failed to upgrade connection", zap.String("user_id", actor.ID), zap.Error(err))
		return
	}
	s.hub.Serve(r.Context(), conn, actor.ID, actor.Role)
}
