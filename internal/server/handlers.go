package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Evgya/anime-analysis/pkg/chart"
	"github.com/Evgya/anime-analysis/pkg/chart/sink"
	"github.com/Evgya/anime-analysis/pkg/dataset"
	apperrors "github.com/Evgya/anime-analysis/pkg/errors"
	"github.com/Evgya/anime-analysis/pkg/observability"
)

// animeResponse is the lookup payload for a resolved catalog entry.
type animeResponse struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Genres string `json:"genres,omitempty"`
}

func (s *Server) handleAnimeLookup(w http.ResponseWriter, r *http.Request) {
	if s.cfg.Catalog == nil {
		writeError(w, apperrors.New(apperrors.ErrCodeUnsupported, "catalog lookups are not configured"))
		return
	}

	name := chi.URLParam(r, "name")
	if err := apperrors.ValidateQuery(name); err != nil {
		writeError(w, err)
		return
	}

	rec, ok, err := s.cfg.Catalog.Search(r.Context(), name)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "catalog lookup failed"))
		return
	}
	if !ok {
		writeError(w, apperrors.New(apperrors.ErrCodeAnimeNotFound, "no catalog entry for %q", name))
		return
	}

	resp := animeResponse{ID: rec.ID, Title: rec.Title}
	genres, ok, err := s.cfg.Catalog.GenresByID(r.Context(), rec.ID)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "catalog lookup failed"))
		return
	}
	if ok {
		resp.Genres = genres
	}

	s.logger.Info("anime lookup", "query", name, "id", rec.ID)
	writeJSON(w, http.StatusOK, resp)
}

// chartResponse points at a rendered artifact.
type chartResponse struct {
	Location string `json:"location"`
}

// handleChartRender accepts a CSV dataset in the request body and renders
// the requested chart kind into the artifact store.
func (s *Server) handleChartRender(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if err := apperrors.ValidateChartKind(kind); err != nil {
		writeError(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "png"
	}
	if err := apperrors.ValidateOutputFormat(format); err != nil {
		writeError(w, err)
		return
	}

	d, err := dataset.ReadCSV(r.Body)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidDataset, err, "parse csv body"))
		return
	}

	fig, err := s.buildFigure(kind, d, r)
	if err != nil {
		writeError(w, err)
		return
	}

	observability.Render().OnRenderStart(r.Context(), kind, format)
	start := time.Now()

	var data []byte
	switch format {
	case "svg":
		data, err = sink.RenderSVG(fig)
	default:
		data, err = sink.RenderPNG(fig)
	}
	observability.Render().OnRenderComplete(r.Context(), kind, format, len(data), time.Since(start), err)
	if err != nil {
		if errors.Is(err, sink.ErrRasterOnly) {
			writeError(w, apperrors.Wrap(apperrors.ErrCodeUnsupported, err, "render chart"))
			return
		}
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "render chart"))
		return
	}

	filename, err := s.artifacts.Save(kind, format, data)
	if err != nil {
		writeError(w, apperrors.Wrap(apperrors.ErrCodeInternal, err, "save chart"))
		return
	}

	s.logger.Info("chart rendered", "kind", kind, "format", format, "file", filename)
	writeJSON(w, http.StatusCreated, chartResponse{Location: "/api/charts/" + filename})
}

// buildFigure maps a chart kind plus query parameters onto a figure
// description.
func (s *Server) buildFigure(kind string, d *dataset.Dataset, r *http.Request) (chart.Figure, error) {
	title := r.URL.Query().Get("title")

	if kind == "heatmap" {
		return chart.CorrelationHeatmap(d, title), nil
	}

	column := r.URL.Query().Get("column")
	if err := apperrors.ValidateColumnName(column); err != nil {
		return nil, err
	}
	col, ok := d.Column(column)
	if !ok {
		return nil, apperrors.New(apperrors.ErrCodeInvalidColumn, "no such column: %s", column)
	}

	limit := chart.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, apperrors.New(apperrors.ErrCodeInvalidInput, "invalid limit: %q", raw)
		}
		limit = n
	}

	switch kind {
	case "donut":
		return chart.MissingValueDonut(col), nil
	case "bar":
		return chart.CategoryBar(col, title, limit), nil
	case "hbar":
		return chart.CategoryBarH(col, title, limit), nil
	case "wordcloud":
		return chart.WordCloud(col, title), nil
	default:
		return nil, apperrors.New(apperrors.ErrCodeInvalidChart, "unknown chart kind: %q", kind)
	}
}

func (s *Server) handleChartGet(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "file")

	path, err := s.artifacts.Open(filename)
	if err != nil {
		writeError(w, err)
		return
	}
	http.ServeFile(w, r, path)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	code := apperrors.GetCode(err)
	writeJSON(w, statusFromCode(code), errorResponse{
		Code:    string(code),
		Message: apperrors.UserMessage(err),
	})
}

// statusFromCode maps application error codes to HTTP status codes.
func statusFromCode(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidQuery,
		apperrors.ErrCodeInvalidColumn, apperrors.ErrCodeInvalidChart,
		apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidDataset,
		apperrors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeAnimeNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeNetwork, apperrors.ErrCodeTimeout:
		return http.StatusBadGateway
	case apperrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
