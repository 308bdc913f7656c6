package arrows

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // arrows carry no user data
	},
}

// WSHandler subscribes the connection to the arrow stream until the
// client goes away.
func WSHandler(hub *Hub, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Debug("arrows upgrade failed", zap.Error(err))
			return
		}

		hub.Add(ws)
		logger.Debug("arrows client connected", zap.String("remote", c.ClientIP()))

		// incoming messages are ignored; reading detects the close
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		hub.Remove(ws)
		logger.Debug("arrows client disconnected", zap.String("remote", c.ClientIP()))
	}
}
