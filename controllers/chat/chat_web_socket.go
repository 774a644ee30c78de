package chatcontroller

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/middleware"
	"github.com/anderson-code22/lojavirtual/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Connections are grouped by chat session so a message only reaches the
// customer and the support agents watching that session.
var (
	wsMu       sync.Mutex
	wsSessions = make(map[string]map[*websocket.Conn]bool)
)

// ChatWebSocketHandler subscribes the caller to live messages for their
// own chat session. The REST endpoints remain the write path; the socket
// is delivery only.
func ChatWebSocketHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := openSession(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open chat session"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		subscribe(session.ID, conn)
		defer unsubscribe(session.ID, conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}

func subscribe(sessionID string, conn *websocket.Conn) {
	wsMu.Lock()
	defer wsMu.Unlock()
	if wsSessions[sessionID] == nil {
		wsSessions[sessionID] = make(map[*websocket.Conn]bool)
	}
	wsSessions[sessionID][conn] = true
}

func unsubscribe(sessionID string, conn *websocket.Conn) {
	wsMu.Lock()
	defer wsMu.Unlock()
	delete(wsSessions[sessionID], conn)
	if len(wsSessions[sessionID]) == 0 {
		delete(wsSessions, sessionID)
	}
}

func broadcastMessage(msg models.ChatMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	wsMu.Lock()
	defer wsMu.Unlock()
	for conn := range wsSessions[msg.SessionID] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}
