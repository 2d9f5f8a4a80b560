package httpapi

import "net/http"

const rootMessage = "Marcador Reportes API – OK"

func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, rootMessage)
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}
