package restserver

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tmsennott/velolog/internal/log"
	"github.com/tmsennott/velolog/internal/notebook"
	"github.com/tmsennott/velolog/internal/types"
	"github.com/tmsennott/velolog/pkg/responseformat"
)

// Handlers contains all HTTP handlers for the REST server
type Handlers struct {
	notebook  *notebook.Notebook
	formatter *responseformat.Formatter
}

// NewHandlers creates a new handlers instance
func NewHandlers(nb *notebook.Notebook) *Handlers {
	return &Handlers{
		notebook:  nb,
		formatter: responseformat.NewFormatter(),
	}
}

// GetRides returns the derived ride table, optionally filtered by ?year=
func (h *Handlers) GetRides(w http.ResponseWriter, req *http.Request) {
	rides := h.notebook.Rides

	if yearParam := req.URL.Query().Get("year"); yearParam != "" {
		year, err := strconv.Atoi(yearParam)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid year parameter")
			return
		}
		var filtered []types.Ride
		for _, r := range rides {
			if r.Year == year {
				filtered = append(filtered, r)
			}
		}
		rides = filtered
	}

	h.write(w, req, rides)
}

// GetSegments returns the expanded attempt records, optionally filtered by
// ?title=
func (h *Handlers) GetSegments(w http.ResponseWriter, req *http.Request) {
	attempts := h.notebook.Attempts

	if title := req.URL.Query().Get("title"); title != "" {
		var filtered []types.Attempt
		for _, a := range attempts {
			if a.Segment == title {
				filtered = append(filtered, a)
			}
		}
		attempts = filtered
	}

	h.write(w, req, attempts)
}

// placesResponse is the coverage structure with chart-ready month labels.
type placesResponse struct {
	Categories []string                        `json:"categories"`
	Entries    map[string][]types.PlaceEntry   `json:"entries"`
	Months     []string                        `json:"months"`
	Milestones []milestoneResponse             `json:"milestones,omitempty"`
}

type milestoneResponse struct {
	Category  string  `json:"category"`
	Place     string  `json:"place"`
	Threshold float64 `json:"threshold"`
	Month     string  `json:"month"`
}

// GetPlaces returns the road-coverage map with month labels and milestones
func (h *Handlers) GetPlaces(w http.ResponseWriter, req *http.Request) {
	cov := h.notebook.Coverage
	if cov == nil {
		h.formatter.WriteError(w, req, http.StatusNotFound, "no places file configured")
		return
	}

	span := 0
	for _, entries := range cov.Entries {
		for _, e := range entries {
			if len(e.Percentages) > span {
				span = len(e.Percentages)
			}
		}
	}

	resp := placesResponse{
		Categories: cov.Categories,
		Entries:    cov.Entries,
	}
	for _, m := range cov.Months(span) {
		resp.Months = append(resp.Months, m.String())
	}
	for _, ms := range cov.Milestones() {
		resp.Milestones = append(resp.Milestones, milestoneResponse{
			Category:  ms.Category,
			Place:     ms.Place,
			Threshold: ms.Threshold,
			Month:     ms.Month.String(),
		})
	}

	h.write(w, req, resp)
}

// GetEddington returns the Eddington number and configured target gaps; an
// optional ?year= overrides the configured cutoff
func (h *Handlers) GetEddington(w http.ResponseWriter, req *http.Request) {
	cutoff := 0
	if yearParam := req.URL.Query().Get("year"); yearParam != "" {
		var err error
		cutoff, err = strconv.Atoi(yearParam)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid year parameter")
			return
		}
	}

	h.write(w, req, h.notebook.Eddington(cutoff))
}

// GetTrend fits and samples a polynomial of {y} as a function of {x};
// ?degree= defaults to 1
func (h *Handlers) GetTrend(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)

	degree := 1
	if degreeParam := req.URL.Query().Get("degree"); degreeParam != "" {
		var err error
		degree, err = strconv.Atoi(degreeParam)
		if err != nil {
			h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid degree parameter")
			return
		}
	}

	trend, err := h.notebook.Trend(vars["x"], vars["y"], degree)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.write(w, req, trend)
}

// GetEstimate returns the expected minutes for a ride of ?miles= and ?feet=
func (h *Handlers) GetEstimate(w http.ResponseWriter, req *http.Request) {
	if h.notebook.Estimator == nil {
		h.formatter.WriteError(w, req, http.StatusServiceUnavailable, "estimator unavailable: too few rides to fit")
		return
	}

	miles, err := strconv.ParseFloat(req.URL.Query().Get("miles"), 64)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid miles parameter")
		return
	}
	feet, err := strconv.ParseFloat(req.URL.Query().Get("feet"), 64)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusBadRequest, "invalid feet parameter")
		return
	}

	minutes, err := h.notebook.Estimator.Minutes(miles, feet)
	if err != nil {
		h.formatter.WriteError(w, req, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.write(w, req, map[string]float64{"miles": miles, "feet": feet, "minutes": minutes})
}

// GetSummary returns the per-year ride summaries
func (h *Handlers) GetSummary(w http.ResponseWriter, req *http.Request) {
	h.write(w, req, h.notebook.Summaries())
}

func (h *Handlers) write(w http.ResponseWriter, req *http.Request, data any) {
	if err := h.formatter.WriteResponse(w, req, data); err != nil {
		log.Errorf("error writing response: %v", err)
	}
}
