package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahil8669/airaware/internal/auth"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const msgInvalidLogin = "Invalid Login"

func (h *handlers) loginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login", nil)
}

// login checks the submitted credentials. The failure message is the same
// whichever field was wrong.
func (h *handlers) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	fail := func() {
		h.render(c, http.StatusUnauthorized, "login", gin.H{
			"error":    msgInvalidLogin,
			"username": username,
		})
	}

	if username == "" || password == "" {
		fail()
		return
	}

	user, err := FindUser(h.db, username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail()
		return
	}
	if err != nil {
		h.serverError(c, "find user", err)
		return
	}
	// MySQL's default collation compares case-insensitively.
	if user.Username != username {
		fail()
		return
	}
	if err := auth.VerifyPassword(user.Password, password); err != nil {
		h.log.Info("login rejected", zap.String("username", username))
		fail()
		return
	}

	currentSession(c).User = user.Username
	keepSession(c)
	c.Redirect(http.StatusFound, "/dashboard")
}

func (h *handlers) logout(c *gin.Context) {
	currentSession(c).Clear()
	dropSession(c)
	c.Redirect(http.StatusFound, "/")
}
