package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"d23_web/internal/service"
	"d23_web/internal/utils"
)

const sessionKey = "session"

// SessionAuth 驗證工作階段 token，並把對應的 *service.Session 放進上下文。
// token 可放在 Authorization 標頭，或在無法設定標頭的 EventSource/WebSocket 以 ?token= 傳入。
func SessionAuth(issuer *utils.TokenIssuer, sessions *service.Sessions) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := issuer.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		sess, err := sessions.Get(claims.SessionID)
		if errors.Is(err, service.ErrSessionNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired"})
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		token := c.Query("token")
		return token, token != ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// CurrentSession 取出 SessionAuth 放入的工作階段
func CurrentSession(c *gin.Context) *service.Session {
	sess, _ := c.MustGet(sessionKey).(*service.Session)
	return sess
}
