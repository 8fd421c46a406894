package main

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/mux"

	"github.com/stefanprodic/SNIP/harvest"
	"github.com/stefanprodic/SNIP/peakcall"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// handler provides global values that must be safe for concurrent use from
// multiple goroutines to each handler method.
type handler struct {
	*Global

	router *mux.Router

	mu  sync.Mutex
	tpl *template.Template
}

func (h *handler) Template() *template.Template {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.tpl == nil {
		h.Global.log.Println("Initializing HTML templates")
		h.tpl = template.Must(template.New("").ParseFS(embeddedTemplates, "templates/*.html"))
	}

	return h.tpl
}

func (h *handler) Render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	if err := h.Template().ExecuteTemplate(w, name, data); err != nil {
		h.Global.log.Println(r.URL.Path, err)
	}
}

// HTTPError logs and reports err. Input problems (bad file, bad window) are
// the client's fault; everything else is a 500.
func (h *handler) HTTPError(w http.ResponseWriter, r *http.Request, err error) {
	h.Global.log.Println(r.URL.Path, err)

	code := http.StatusInternalServerError
	if errors.Is(err, harvest.ErrMalformedInput) ||
		errors.Is(err, peakcall.ErrInvalidThreshold) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, errUnknownFile) {
		code = http.StatusBadRequest
	}

	http.Error(w, err.Error(), code)
}
