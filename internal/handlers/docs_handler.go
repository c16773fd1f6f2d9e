package handlers

import (
	"crypto/md5"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// defaultScalarHTML renders the Scalar reference against the served
// swagger.json. It is used when no generated docs page exists on disk, so
// /docs works from a fresh checkout before any docs build has run.
const defaultScalarHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Budget Tracker API Documentation</title>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
  <scalar-app></scalar-app>
  <script id="api-reference" data-url="/docs/swagger.json"></script>
  <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference/dist/browser/standalone.min.js"></script>
</body>
</html>`

// DocsHandler handles API documentation endpoints
type DocsHandler struct {
	scalarHTML    []byte
	scalarETag    string
	oas3Path      string
	docsGenerated bool
}

// NewDocsHandler creates a new documentation handler. A generated
// docs/scalar.html takes precedence over the built-in page.
func NewDocsHandler() *DocsHandler {
	scalarHTML, err := os.ReadFile(filepath.Join("docs", "scalar.html"))
	if err != nil {
		scalarHTML = []byte(defaultScalarHTML)
	}

	oas3Path := filepath.Join("docs", "swagger.json")

	return &DocsHandler{
		scalarHTML:    scalarHTML,
		scalarETag:    generateETag(scalarHTML),
		oas3Path:      oas3Path,
		docsGenerated: fileExists(oas3Path),
	}
}

// ServeScalarUI serves the Scalar HTML page
// @Summary API Documentation UI
// @Description Serves the interactive Scalar documentation interface
// @Tags Documentation
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router /docs [get]
func (h *DocsHandler) ServeScalarUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	if h.scalarETag != "" {
		c.Response().Header().Set("ETag", h.scalarETag)
		if match := c.Request().Header.Get("If-None-Match"); match != "" && match == h.scalarETag {
			return c.NoContent(http.StatusNotModified)
		}
	}

	return c.HTMLBlob(http.StatusOK, h.scalarHTML)
}

// ServeOAS3JSON serves the OpenAPI specification file
// This endpoint is called by Scalar to load the API specification
func (h *DocsHandler) ServeOAS3JSON(c echo.Context) error {
	c.Response().Header().Set("Access-Control-Allow-Origin", "*")
	c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type")
	c.Response().Header().Set("Cache-Control", "public, max-age=300") // Cache for 5 minutes
	c.Response().Header().Set("Content-Type", "application/json; charset=utf-8")
	return c.File(h.oas3Path)
}

// generateETag creates an ETag hash for cache control
func generateETag(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	hash := md5.Sum(data)
	return fmt.Sprintf("\"%x\"", hash)
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
