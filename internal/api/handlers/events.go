package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"d23_web/internal/middleware"
	"d23_web/internal/service"
)

// 定義 WebSocket 升級器
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // 只推送事件，不接受指令
	},
}

// EventsHandler 把工作階段的 toast、狀態變更與導覽事件推送給前端
type EventsHandler struct {
	hub *service.Hub
}

// NewEventsHandler 創建一個新的 EventsHandler 實例
func NewEventsHandler(hub *service.Hub) *EventsHandler {
	return &EventsHandler{hub: hub}
}

// Stream 以 Server-Sent Events 推送事件，直到連線中斷或工作階段結束
func (h *EventsHandler) Stream(c *gin.Context) {
	sub := h.hub.Subscribe(middleware.CurrentSession(c).ID)
	defer h.hub.Unsubscribe(sub)

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(io.Writer) bool {
		select {
		case event, ok := <-sub.Events:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// WebSocket 升級連線並交給 Hub 的讀寫迴圈
func (h *EventsHandler) WebSocket(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade 已經回應了錯誤
		return
	}
	h.hub.ServeWebSocket(conn, sess.ID)
}
