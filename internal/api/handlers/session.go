package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"d23_web/internal/middleware"
	"d23_web/internal/service"
	"d23_web/internal/utils"
)

// SessionHandler 處理檢視工作階段的建立、導覽與結束
type SessionHandler struct {
	sessions *service.Sessions
	issuer   *utils.TokenIssuer
}

// NewSessionHandler 創建一個新的 SessionHandler 實例
func NewSessionHandler(sessions *service.Sessions, issuer *utils.TokenIssuer) *SessionHandler {
	return &SessionHandler{sessions: sessions, issuer: issuer}
}

// Create 建立工作階段並回傳包裝它的 token
func (h *SessionHandler) Create(c *gin.Context) {
	sess := h.sessions.Create()
	token, err := h.issuer.Issue(sess.ID)
	if err != nil {
		h.sessions.Remove(sess.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session_id": sess.ID,
		"token":      token,
		"location":   sess.Location(),
	})
}

// Show 回傳工作階段目前的位置與已掛載的頁面
func (h *SessionHandler) Show(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"session_id": sess.ID,
		"location":   sess.Location(),
		"mounted":    sess.Mounted(),
	})
}

// Delete 結束工作階段，卸載所有頁面
func (h *SessionHandler) Delete(c *gin.Context) {
	h.sessions.Remove(middleware.CurrentSession(c).ID)
	c.Status(http.StatusNoContent)
}

// Navigate 依固定路徑表切換位置
func (h *SessionHandler) Navigate(c *gin.Context) {
	var input struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sess := middleware.CurrentSession(c)
	if err := sess.Navigate(input.Path); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": sess.Location()})
}

// Routes 列出所有可導覽的路徑
func Routes(c *gin.Context) {
	c.JSON(http.StatusOK, service.Routes())
}
