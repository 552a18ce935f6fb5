package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/config"
	"github.com/osuit/ai-agent/internal/web"
)

// HandleChatUI serves the assistant web page, preferring an HTML file
// on disk over the embedded copy so the UI can be swapped without a
// rebuild.
func HandleChatUI(w http.ResponseWriter, r *http.Request) {
	for _, path := range chatUIPaths() {
		if _, err := os.Stat(path); err == nil {
			http.ServeFile(w, r, path)
			return
		}
	}

	log.Ctx(r.Context()).Warn().Msg("chat-ui.html not found, serving embedded HTML")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, web.ChatUIHTML)
}

func chatUIPaths() []string {
	var paths []string
	if custom := config.GetChatUIPath(); custom != "" {
		paths = append(paths, custom)
	}
	return append(paths, "chat-ui.html")
}
