package middleware

import (
	"net/http"

	"github.com/nunes1886/prisma/internal/apierror"
	"github.com/nunes1886/prisma/internal/auth"

	"github.com/gin-gonic/gin"
)

const (
	SessionKey = "session"
)

// SessionAuth resolves the session cookie against the store on every
// protected route and injects the session into the gin context.
func SessionAuth(store auth.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := auth.ReadToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticação necessária"))
			return
		}

		sess, err := store.Get(c.Request.Context(), token)
		if err != nil {
			auth.ClearCookie(c)
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sessão inválida ou expirada"))
			return
		}

		c.Set(SessionKey, sess)
		c.Next()
	}
}

// RequireNivel rejects sessions whose nivel_acesso is above the maximum
// allowed tier (0=Admin .. 3=Produção; lower is more privileged).
func RequireNivel(max int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := c.MustGet(SessionKey).(*auth.Session)
		if !ok || sess.NivelAcesso > max {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.Forbidden())
			return
		}
		c.Next()
	}
}

// GetSession is a helper to retrieve the typed session from the Gin context.
func GetSession(c *gin.Context) *auth.Session {
	sess, _ := c.MustGet(SessionKey).(*auth.Session)
	return sess
}
