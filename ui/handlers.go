package ui

import (
	"net/http"
	"strconv"
	"strings"

	"launchdash/domain/launch"
	"launchdash/internal/charts"
	"launchdash/internal/errors"

	"github.com/gin-gonic/gin"
)

// handleIndex renders the dashboard page
func (s *Server) handleIndex(c *gin.Context) {
	s.renderTemplate(c, "index.html", gin.H{
		"Layout":  s.layout,
		"Summary": s.summary,
		"Notes":   s.notes,
		"Dataset": gin.H{
			"Source":   s.dataset.Source(),
			"Records":  s.dataset.Len(),
			"Snapshot": s.dataset.Snapshot().String(),
			"LoadedAt": s.dataset.LoadedAt(),
		},
	})
}

// handleHealth reports liveness and the number of loaded records
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"records":  s.dataset.Len(),
		"snapshot": s.dataset.Snapshot().String(),
	})
}

// handleLayout returns the static page description
func (s *Server) handleLayout(c *gin.Context) {
	c.JSON(http.StatusOK, s.layout)
}

// handleSummary returns per-site and payload statistics
func (s *Server) handleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.summary)
}

// handlePieChart recomputes the success pie for ?site=
func (s *Server) handlePieChart(c *gin.Context) {
	site := siteParam(c)
	fig := charts.SuccessPie(s.dataset, site)

	s.logger.Debug("pie request=%s site=%q slices=%d", requestIDFrom(c), site, fig.SliceCount())
	c.JSON(http.StatusOK, fig)
}

// handleScatterChart recomputes the payload scatter for ?site=&low=&high=
func (s *Server) handleScatterChart(c *gin.Context) {
	site := siteParam(c)
	bounds := s.dataset.Bounds()

	low, err := floatParam(c, "low", bounds.Min)
	if err != nil {
		s.renderError(c, err)
		return
	}
	high, err := floatParam(c, "high", bounds.Max)
	if err != nil {
		s.renderError(c, err)
		return
	}

	fig := charts.PayloadScatter(s.dataset, site, low, high)

	s.logger.Debug("scatter request=%s site=%q range=[%g, %g] points=%d",
		requestIDFrom(c), site, low, high, fig.PointCount())
	c.JSON(http.StatusOK, fig)
}

// siteParam defaults a missing or blank selection to all sites. Unknown
// sites pass through and produce empty charts.
func siteParam(c *gin.Context) string {
	site := c.Query("site")
	if strings.TrimSpace(site) == "" {
		return launch.AllSites
	}
	return site
}

func floatParam(c *gin.Context, name string, fallback float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput(name + " must be a number, got " + strconv.Quote(raw))
	}
	return v, nil
}
