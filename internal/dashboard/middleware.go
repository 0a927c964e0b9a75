package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sahil8669/airaware/internal/session"
	"go.uber.org/zap"
)

// sessionKey is the context key holding the request's *sessionState.
const sessionKey = "airaware.session"

type cookieOpts struct {
	name   string
	secure bool
}

// sessionState tracks one request's session. A fresh session is only stored,
// and only gets a cookie, once a handler calls keepSession.
type sessionState struct {
	sess   *session.Session
	cookie cookieOpts
	fresh  bool
	keep   bool
	drop   bool
}

// sessionMiddleware loads the client's session before the handler runs and
// writes it back afterwards. Clients without a valid cookie get an unsaved
// session.
func sessionMiddleware(store *session.Store, cookie cookieOpts, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(cookie.name)
		st := &sessionState{cookie: cookie}
		if sess, ok := store.Get(id); ok {
			st.sess = sess
		} else {
			st.sess = store.New()
			st.fresh = true
		}
		c.Set(sessionKey, st)

		c.Next()

		switch {
		case st.drop:
			store.Delete(st.sess.ID)
		case !st.fresh:
			store.Save(st.sess)
		case st.keep:
			store.Save(st.sess)
			log.Debug("session started", zap.Int("live_sessions", store.Len()))
		}
	}
}

func stateOf(c *gin.Context) *sessionState {
	if v, ok := c.Get(sessionKey); ok {
		return v.(*sessionState)
	}
	return nil
}

// currentSession returns the session loaded by sessionMiddleware.
func currentSession(c *gin.Context) *session.Session {
	if st := stateOf(c); st != nil {
		return st.sess
	}
	return &session.Session{}
}

// keepSession marks the session for saving and issues its cookie if the
// client does not have one yet. Handlers that change the session call it
// before writing the response.
func keepSession(c *gin.Context) {
	st := stateOf(c)
	if st == nil || st.keep {
		return
	}
	st.keep = true
	if st.fresh {
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(st.cookie.name, st.sess.ID, 0, "/", "", st.cookie.secure, true)
	}
}

// dropSession deletes the session once the handler returns and expires the
// cookie.
func dropSession(c *gin.Context) {
	st := stateOf(c)
	if st == nil {
		return
	}
	st.drop = true
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(st.cookie.name, "", -1, "/", "", st.cookie.secure, true)
}

// requireLogin redirects anonymous clients to the login page.
func requireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !currentSession(c).LoggedIn() {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// requestLogger writes one structured line per request.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			log.Error("request", fields...)
		case c.Writer.Status() >= http.StatusBadRequest:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}
