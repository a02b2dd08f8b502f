package server

import (
	"io/fs"
	"log"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// staticHandler serves the embedded overlay assets, minifying text assets
// once at startup.
type staticHandler struct {
	files map[string][]byte
	types map[string]string
}

func newStaticHandler(frontendFS fs.FS) *staticHandler {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	// mime.TypeByExtension reports .js as text/javascript on current Go,
	// application/javascript on older releases; register both
	m.AddFunc("text/javascript", js.Minify)
	m.AddFunc("application/javascript", js.Minify)

	h := &staticHandler{
		files: make(map[string][]byte),
		types: make(map[string]string),
	}

	err := fs.WalkDir(frontendFS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(frontendFS, p)
		if err != nil {
			return err
		}

		mediatype := mime.TypeByExtension(path.Ext(p))
		if i := strings.IndexByte(mediatype, ';'); i >= 0 {
			mediatype = mediatype[:i]
		}
		if minified, err := m.Bytes(mediatype, data); err == nil {
			data = minified
		}

		h.files["/"+p] = data
		h.types["/"+p] = mediatype
		return nil
	})
	if err != nil {
		log.Printf("Error preparing overlay assets: %v", err)
	}
	return h
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Path
	if p == "/" {
		p = "/index.html"
	}
	data, ok := h.files[p]
	if !ok {
		http.NotFound(w, r)
		return
	}
	if t := h.types[p]; t != "" {
		w.Header().Set("Content-Type", t)
	}
	w.Write(data)
}
