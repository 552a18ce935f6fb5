package handlers

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/osuit/ai-agent/internal/infrastructure/osuweb"
)

// HandleScrapeMajors fetches the live majors list on demand, so the
// scraper can be verified without going through a chat prompt. A
// failed scrape returns an empty list rather than an error.
func HandleScrapeMajors(osuWebService *osuweb.Service, w http.ResponseWriter, r *http.Request) {
	majorsList, err := osuWebService.FetchMajors(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Str("url", osuWebService.SourceURL()).Msg("Failed to fetch OSU majors")
	}
	if majorsList == nil {
		majorsList = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"source":    osuWebService.SourceURL(),
		"count":     len(majorsList),
		"majors":    majorsList,
		"timestamp": utcTimestamp(),
	})
}
