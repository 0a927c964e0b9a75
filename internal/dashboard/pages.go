package dashboard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sahil8669/airaware/internal/aqi"
	"go.uber.org/zap"
)

func (h *handlers) dashboard(c *gin.Context) {
	rows, err := CityAverages(h.db)
	if err != nil {
		h.serverError(c, "city averages", err)
		return
	}
	h.render(c, http.StatusOK, "dashboard", gin.H{
		"data":        rows,
		"totalCities": len(rows),
	})
}

func (h *handlers) about(c *gin.Context) {
	h.render(c, http.StatusOK, "about", gin.H{
		"categories": aqi.Categories(),
	})
}

// monthlyData serves per-month averages as JSON for the dashboard chart.
func (h *handlers) monthlyData(c *gin.Context) {
	rows, err := MonthlyAverages(h.db)
	if err != nil {
		c.Error(err)
		h.log.Error("request failed", zap.String("op", "monthly averages"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// changeLang stores the language code and returns the client to the page it
// came from when that page is on this site.
func (h *handlers) changeLang(c *gin.Context) {
	currentSession(c).Lang = c.Param("code")
	keepSession(c)
	target := localReferer(c)
	if target == "" {
		target = "/dashboard"
	}
	c.Redirect(http.StatusFound, target)
}

// localReferer returns the Referer as a path on this host, or "" when it is
// missing, malformed or points elsewhere.
func localReferer(c *gin.Context) string {
	ref := c.Request.Referer()
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "", "http", "https":
	default:
		return ""
	}
	if u.Host != "" && u.Host != c.Request.Host {
		return ""
	}
	if u.Host == "" && (u.Scheme != "" || !strings.HasPrefix(u.Path, "/")) {
		return ""
	}
	return u.RequestURI()
}
