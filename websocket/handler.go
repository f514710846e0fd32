package websocket

import (
	"log"
	"net/http"
	"strings"

	"coinquest/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ProgressionWebSocketHandler upgrades the connection and registers the
// client for progression events. The token comes from the Authorization
// header or, for browser websocket clients, the token query parameter.
func ProgressionWebSocketHandler(c *gin.Context) {
	var tokenString string
	if authz := c.GetHeader("Authorization"); authz != "" {
		parts := strings.Split(authz, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			tokenString = parts[1]
		}
	}
	if tokenString == "" {
		tokenString = c.Query("token")
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Authorization token required"})
		return
	}

	valid, email, err := utils.ValidateTokenAndFetchEmail(tokenString)
	if err != nil || !valid || email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Invalid or expired token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &ProgressionClient{Conn: conn, UserEmail: email}
	RegisterProgressionClient(client)

	// Drain the connection until the client goes away.
	go func() {
		defer UnregisterProgressionClient(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
