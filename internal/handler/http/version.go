package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	serverVersion := h.services.AppInfoService.GetAppVersion(ctx)
	build := h.services.AppInfoService.GetBuildInfo(ctx)

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("X-Build-Commit", build.BuildCommit())
	w.Header().Set("X-Build-Date", build.BuildDate())
	w.Write([]byte(serverVersion))
}
