package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/litescript/ls-lunar/internal/lunar"
)

// MoonHandler serves per-day moon reports.
type MoonHandler struct {
	Engine  lunar.Config
	Default lunar.Observer
	Cache   *resultCache
	Logger  *zap.Logger
}

// moonResponse is the wire form of lunar.Info.
type moonResponse struct {
	Date         string  `json:"date"`
	LatDeg       float64 `json:"lat"`
	LonDeg       float64 `json:"lon"`
	AgeDays      float64 `json:"age_days"`
	Phase        string  `json:"phase"`
	Illumination float64 `json:"illumination"`
	Moonrise     *string `json:"moonrise,omitempty"`
	Moonset      *string `json:"moonset,omitempty"`
	AlwaysUp     bool    `json:"always_up"`
	AlwaysDown   bool    `json:"always_down"`
}

// Moon handles GET /api/v1/moon?date=YYYY-MM-DD&lat=..&lon=..
//
// Input validation happens here, before the core is entered: the engine
// assumes numerically valid coordinates and calendar dates. A circumpolar
// Moon is a normal 200 response with the matching flag set; solver
// non-convergence maps to 422.
func (h *MoonHandler) Moon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		h.writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()

	date := time.Now().In(h.Engine.Location())
	if s := q.Get("date"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	obs := h.Default
	if s := q.Get("lat"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < -90 || v > 90 {
			h.writeError(w, http.StatusBadRequest, "lat must be a number in [-90, 90]")
			return
		}
		obs.LatDeg = v
		obs.Name = ""
	}
	if s := q.Get("lon"); s != "" {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil || v < -180 || v > 180 {
			h.writeError(w, http.StatusBadRequest, "lon must be a number in [-180, 180]")
			return
		}
		obs.LonDeg = v
		obs.Name = ""
	}

	key := cacheKey(date, obs)
	info, ok := h.Cache.Get(key)
	if !ok {
		var err error
		info, err = h.Engine.Info(date, obs)
		if errors.Is(err, lunar.ErrNoConvergence) {
			h.writeError(w, http.StatusUnprocessableEntity, "computation did not converge")
			return
		}
		if err != nil {
			h.Logger.Error("moon report failed", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		h.Cache.Put(key, info)
	}

	resp := moonResponse{
		Date:         info.Date.Format("2006-01-02"),
		LatDeg:       obs.LatDeg,
		LonDeg:       obs.LonDeg,
		AgeDays:      info.AgeDays,
		Phase:        info.Phase,
		Illumination: info.Illumination,
		AlwaysUp:     info.AlwaysUp,
		AlwaysDown:   info.AlwaysDown,
	}
	if !info.Rise.IsZero() {
		s := info.Rise.Format(time.RFC3339)
		resp.Moonrise = &s
	}
	if !info.Set.IsZero() {
		s := info.Set.Format(time.RFC3339)
		resp.Moonset = &s
	}

	h.writeJSON(w, http.StatusOK, resp)
}

// Health provides a minimal liveness check endpoint.
func Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (h *MoonHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warn("encode response failed", zap.Error(err))
	}
}

func (h *MoonHandler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
