package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"lp-server/models"
	services "lp-server/service"
	"lp-server/token"
	"lp-server/util"
)

const (
	CACHE_STATUS_HEADER = "X-Cache"
	MOCK_DATA_HEADER    = "X-Mock-Data"
	RETRY_AFTER_HEADER  = "Retry-After"
)

const (
	LAT_QUERY_ARG     = "lat"
	LNG_QUERY_ARG     = "lng"
	RADIUS_QUERY_ARG  = "radius"
	CUISINE_QUERY_ARG = "cuisine"
	LIMIT_QUERY_ARG   = "limit"
)

type SearchHandler struct {
	searchService *services.SearchService
	signingKey    []byte
}

func NewSearchHandler(searchService *services.SearchService, signingKey []byte) *SearchHandler {
	return &SearchHandler{searchService: searchService, signingKey: signingKey}
}

// Search handles POST /v1/places/search.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req models.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}

	clientKey := token.ClientKey(r, h.signingKey)
	resp, meta, err := h.searchService.Search(r.Context(), clientKey, req)
	if err != nil {
		writeSearchError(w, err)
		return
	}

	if meta.CacheHit {
		w.Header().Set(CACHE_STATUS_HEADER, "HIT")
	} else {
		w.Header().Set(CACHE_STATUS_HEADER, "MISS")
	}
	if meta.MockData {
		w.Header().Set(MOCK_DATA_HEADER, "true")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to encode search response")
	}
}

// Plot handles GET /v1/places/plot, a debug route rendering a search as an
// HTML geo scatter chart.
// expects ?lat={latitude}&lng={longitude}&radius={radius_m}[&cuisine=a,b][&limit=n]
func (h *SearchHandler) Plot(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parsePlotArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	clientKey := token.ClientKey(r, h.signingKey)
	resp, _, err := h.searchService.Search(r.Context(), clientKey, req)
	if err != nil {
		writeSearchError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotSearchResults(w, req.Location, resp.Results); err != nil {
		log.Error().Err(err).Msg("failed to render results plot")
	}
}

// Ping handles GET /ping
func (h *SearchHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

func (h *SearchHandler) parsePlotArgs(vals url.Values, w http.ResponseWriter) (models.SearchRequest, bool) {
	var req models.SearchRequest
	var err error

	req.Location.Lat, err = parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid argument "+LAT_QUERY_ARG)
		return req, false
	}
	req.Location.Lng, err = parseArgFloat64(vals, LNG_QUERY_ARG)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid argument "+LNG_QUERY_ARG)
		return req, false
	}
	req.RadiusM, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid argument "+RADIUS_QUERY_ARG)
		return req, false
	}
	if c := vals.Get(CUISINE_QUERY_ARG); c != "" {
		req.Cuisine = strings.Split(c, ",")
	}
	if l := vals.Get(LIMIT_QUERY_ARG); l != "" {
		req.Limit, _ = strconv.Atoi(l)
	}
	return req, true
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	s := vals.Get(name)
	return strconv.ParseFloat(s, 64)
}

func writeSearchError(w http.ResponseWriter, err error) {
	var valErr *models.ValidationError
	var rateErr *models.RateLimitError
	var upErr *models.UpstreamError

	switch {
	case errors.As(err, &valErr):
		writeJSONError(w, http.StatusBadRequest, valErr.Msg)
	case errors.As(err, &rateErr):
		w.Header().Set(RETRY_AFTER_HEADER, strconv.Itoa(rateErr.RetryAfterSeconds))
		writeJSON(w, http.StatusTooManyRequests, map[string]interface{}{
			"error":         "rate limit exceeded",
			"retry_after_s": rateErr.RetryAfterSeconds,
		})
	case errors.As(err, &upErr):
		status := upErr.StatusCode
		if status == 0 {
			status = http.StatusBadGateway
		}
		writeJSONError(w, status, "upstream search failed")
	default:
		log.Error().Err(err).Msg("unexpected search failure")
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode error response")
	}
}
