package handlers

import (
	"net/http"
)

const indexPage = `<h1>Welcome to the Todo API</h1>
<p>Use the <a href="/docs/index.html">Swagger Docs</a> to try it out.</p>
`

// NewIndexHandler returns the HTML landing page.
// @Summary Landing page
// @Tags meta
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func NewIndexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(indexPage))
	}
}
