package handlers

import (
	fiberws "github.com/gofiber/contrib/websocket"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/jngeno/stablemate/configs"
	ws "github.com/jngeno/stablemate/websocket"
)

// ServeWs upgrades the connection and keeps it registered with the hub so
// celebration events can reach the user. The token comes in as a query
// parameter because browsers cannot set headers on websocket upgrades.
func ServeWs(c *fiberws.Conn) {
	tokenString := c.Query("token")
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.Close()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.Close()
		return
	}
	raw, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(raw)
	if err != nil {
		c.Close()
		return
	}

	client := &ws.Client{UserID: userID, Conn: c}
	ws.Register <- client
	defer func() {
		ws.Unregister <- client
		c.Close()
	}()

	// Reads are discarded; the socket only pushes events. The loop exits
	// when the client disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
