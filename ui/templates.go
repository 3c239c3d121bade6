package ui

import (
	"bytes"
	"net/http"

	"launchdash/internal/errors"

	"github.com/gin-gonic/gin"
)

// renderTemplate executes a template into a buffer first so a failing
// template never sends a half-written page
func (s *Server) renderTemplate(c *gin.Context, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		s.logger.Error("template %s failed: %v", templateName, err)
		s.renderError(c, errors.Wrapf(err, "failed to render %s", templateName))
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if _, err := buf.WriteTo(c.Writer); err != nil {
		s.logger.Warn("writing %s response: %v", templateName, err)
	}
}

// renderError answers with the JSON error body used by every endpoint
func (s *Server) renderError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(errors.HTTPStatus(err), gin.H{
		"error":      err.Error(),
		"code":       errors.GetCode(err),
		"request_id": requestIDFrom(c),
	})
}
