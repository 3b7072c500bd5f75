// pages.go — статические страницы админ-панели и favicon.
// Страницы встроены в бинарник (internal/webui); аутентификация
// выполняется при обращении к мутирующим API, не при отдаче страниц.
package handlers

import (
	"net/http"

	"github.com/bigkaa/eduink/internal/webui"
)

// Favicon — GET /favicon.ico. Иконки нет, возвращается 204.
func (h *APIHandler) Favicon(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// AdminLogin — GET /admin.
func (h *APIHandler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, "admin/login.html")
}

// AdminDashboard — GET /admin/dashboard.
func (h *APIHandler) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, "admin/dashboard.html")
}

// AdminUpload — GET /admin/upload.
func (h *APIHandler) AdminUpload(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, "admin/upload.html")
}

// servePage отдаёт встроенную HTML-страницу.
func (h *APIHandler) servePage(w http.ResponseWriter, name string) {
	data, err := webui.Assets.ReadFile(name)
	if err != nil {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
