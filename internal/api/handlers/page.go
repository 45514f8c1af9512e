package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"d23_web/internal/middleware"
	"d23_web/internal/service"
)

// PageHandler 把 HTTP 請求轉成頁面意圖，成功時回傳頁面的新狀態
type PageHandler struct {
	log *slog.Logger
}

// NewPageHandler 創建一個新的 PageHandler 實例
func NewPageHandler(log *slog.Logger) *PageHandler {
	return &PageHandler{log: log}
}

// apply 在工作階段鎖內執行 fn 並取得新的頁面狀態
func (h *PageHandler) apply(c *gin.Context, fn func(service.Page) error) {
	ctx := c.Request.Context()
	var view *service.View
	err := middleware.CurrentSession(c).With(ctx, c.Param("page"), func(p service.Page) error {
		if err := fn(p); err != nil {
			return err
		}
		v, err := p.View(ctx)
		view = v
		return err
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetView 回傳頁面狀態，尚未掛載時先建立
func (h *PageHandler) GetView(c *gin.Context) {
	h.apply(c, func(service.Page) error { return nil })
}

// Unmount 卸載頁面並取消它等待中的動作
func (h *PageHandler) Unmount(c *gin.Context) {
	if err := middleware.CurrentSession(c).Unmount(c.Param("page")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// OpenOverlay 開啟對話框
func (h *PageHandler) OpenOverlay(c *gin.Context) {
	h.apply(c, func(p service.Page) error {
		return p.Overlays().Open(c.Param("key"))
	})
}

// CloseOverlay 關閉最上層的對話框
func (h *PageHandler) CloseOverlay(c *gin.Context) {
	h.apply(c, func(p service.Page) error {
		p.Overlays().Close()
		return nil
	})
}

// SetForm 修改對話框表單的欄位
func (h *PageHandler) SetForm(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	key := c.Param("key")
	h.apply(c, func(p service.Page) error {
		return p.Overlays().SetFields(key, fields)
	})
}

// Select 設定選擇器，未知的值落回預設選項
func (h *PageHandler) Select(c *gin.Context) {
	var input struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.apply(c, func(p service.Page) error {
		sel, err := p.Selector(c.Param("name"))
		if err != nil {
			return err
		}
		sel.Select(input.Value)
		return nil
	})
}

// SetQuery 設定搜尋文字、分類篩選與日期範圍
func (h *PageHandler) SetQuery(c *gin.Context) {
	var q service.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.apply(c, func(p service.Page) error {
		p.SetQuery(q)
		return nil
	})
}

// Do 執行頁面專屬的動作，內容為任意 JSON
func (h *PageHandler) Do(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(body) > 0 && !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "request body must be JSON"})
		return
	}
	h.log.Debug("page action", "page", c.Param("page"), "action", c.Param("action"))
	h.apply(c, func(p service.Page) error {
		return p.Do(c.Request.Context(), c.Param("action"), body)
	})
}
