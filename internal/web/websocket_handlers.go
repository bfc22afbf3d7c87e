package web

import (
	"log"
	"net/http"

	"historycar/internal/websocket"
)

// @Summary      Subscribe to view-state pushes
// @Description  Upgrades to a websocket. Every page state change for the caller's session is pushed as a JSON page event.
// @Tags         realtime
// @Success      101  {string}  string "Switching Protocols"
// @Failure      401  {string}  string "Unauthorized"
// @Router       /ws [get]
func (s *Server) ServeWsHandler(w http.ResponseWriter, r *http.Request) {
	token, ok := s.sessions.Token(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	conn, err := websocket.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ERROR: websocket upgrade failed: %v", err)
		return
	}

	client := websocket.NewClient(s.hub, conn, token)
	s.hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}
