package handlers

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/demoshop/checkout.web/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type checkoutPage struct {
	Address models.ShippingAddress
	Error   string
	Loading bool
}

type resultPage struct {
	Title   string
	Error   string
	Message string
	Capture *models.CaptureResult
}

// render executes the named template into a buffer first so that a template
// failure can still produce a 500.
func render(w http.ResponseWriter, req *http.Request, name string, data interface{}, status int) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		log.ErrorR(req, fmt.Errorf("error rendering template [%s]: [%v]", name, err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.ErrorR(req, fmt.Errorf("error writing response: %v", err))
	}
}
