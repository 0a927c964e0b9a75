package dashboard

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahil8669/airaware/internal/export"
	"go.uber.org/zap"
)

func (h *handlers) downloadPage(c *gin.Context) {
	cities, err := DistinctCities(h.db)
	if err != nil {
		h.serverError(c, "distinct cities", err)
		return
	}
	h.render(c, http.StatusOK, "download", gin.H{"cities": cities})
}

func (h *handlers) downloadAll(c *gin.Context) {
	h.sendCSV(c, nil, export.AllFilename)
}

// downloadByCity exports readings whose city equals the query parameter
// exactly. An unknown city yields a header-only file.
func (h *handlers) downloadByCity(c *gin.Context) {
	city := c.Query("city")
	h.sendCSV(c, &city, export.CityFilename(city))
}

// sendCSV renders the export into memory first so a failing query still
// produces a clean 500 instead of a truncated attachment.
func (h *handlers) sendCSV(c *gin.Context, city *string, filename string) {
	rows, err := ReadingRows(h.db, city)
	if err != nil {
		h.serverError(c, "export readings", err)
		return
	}
	var buf bytes.Buffer
	n, err := export.WriteRows(&buf, rows)
	if err != nil {
		h.serverError(c, "export readings", err)
		return
	}
	h.log.Debug("csv export", zap.String("file", filename), zap.Int("rows", n))

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
