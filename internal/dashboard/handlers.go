package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahil8669/airaware/internal/i18n"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// handlers carries the dependencies shared by every route.
type handlers struct {
	db        *gorm.DB
	log       *zap.Logger
	chatLimit int
}

// langLink is one entry of the language switcher.
type langLink struct {
	Code string
	Name string
}

func languageLinks() []langLink {
	codes := i18n.Codes()
	links := make([]langLink, len(codes))
	for i, code := range codes {
		links[i] = langLink{Code: code, Name: i18n.For(code).Get("lang_name")}
	}
	return links
}

// render executes the layout for page, adding the session's labels, language,
// user and the language switcher to data.
func (h *handlers) render(c *gin.Context, status int, page string, data gin.H) {
	sess := currentSession(c)
	if data == nil {
		data = gin.H{}
	}
	data["page"] = page
	data["lang"] = sess.Language()
	data["t"] = i18n.For(sess.Language())
	data["user"] = sess.User
	data["languages"] = languageLinks()
	c.HTML(status, "layout.html", data)
}

// serverError logs err and renders a generic 500 page. Store details never
// reach the client.
func (h *handlers) serverError(c *gin.Context, op string, err error) {
	c.Error(err)
	h.log.Error("request failed",
		zap.String("op", op),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	h.render(c, http.StatusInternalServerError, "error", nil)
}
