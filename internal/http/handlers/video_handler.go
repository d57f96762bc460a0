package handlers

// This file exposes the REST endpoints for the video dataset:
//   - GET  /videos          (search: fuzzy, keyword-exact, or category-exact)
//   - GET  /videos/{id}     (single record with numeric view count)
//   - GET  /keywords        (distinct keyword tags of the current snapshot)
//   - POST /videos/reload   (re-ingest the dataset source)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses (including conditional
// responses keyed to the dataset generation).

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sunidhi090894/kidsvids-backend/internal/domain"
	"github.com/sunidhi090894/kidsvids-backend/internal/ingest"
	"github.com/sunidhi090894/kidsvids-backend/internal/search"
	"github.com/sunidhi090894/kidsvids-backend/internal/services"
	"github.com/sunidhi090894/kidsvids-backend/internal/utils"
)

//
// Service contracts (context-aware)
//

// SearchService defines the query and dataset lifecycle operations consumed
// by HTTP handlers.
//
// Implementations should be safe for concurrent use and must honor the
// provided context for cancellation and timeouts. Search itself never
// returns a query error: empty, whitespace-only, and blocklisted queries all
// map to defined (possibly empty) results.
type SearchService interface {
	// Search evaluates one query in the given mode against the current
	// snapshot and returns the ranked results plus the snapshot generation.
	Search(ctx context.Context, query string, mode services.Mode, filter string) ([]services.ScoredVideo, uint64, error)
	// Reload re-ingests the dataset source and swaps the snapshot.
	Reload(ctx context.Context) (*services.ReloadReport, error)
	// Get returns one record by its 1-based dataset ID.
	Get(id int) (*domain.Video, error)
	// Keywords lists the distinct keyword tags of the current snapshot.
	Keywords() []string
}

// FeedbackService defines operations to capture user feedback on videos.
type FeedbackService interface {
	// Leave submits a feedback value (-1 or 1) for videoID by userID.
	Leave(ctx context.Context, userID string, videoID, value int) error
	// Totals returns the feedback sum and count for videoID.
	Totals(ctx context.Context, videoID int) (sum int64, count int64, err error)
}

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for videos, keywords, and feedback.
// It depends on abstract service interfaces to keep transport concerns
// separate from business logic.
type Handlers struct {
	searchSvc SearchService
	fbSvc     FeedbackService
}

// New constructs a Handlers instance bound to the given services.
func New(searchSvc SearchService, fbSvc FeedbackService) *Handlers {
	return &Handlers{searchSvc: searchSvc, fbSvc: fbSvc}
}

// userID extracts the user id from the Gin context (set by upstream
// middleware), falling back to the "X-User-ID" header and finally to
// "demo-user".
func userID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	if c != nil && c.Request != nil {
		if h := strings.TrimSpace(c.GetHeader("X-User-ID")); h != "" {
			return h
		}
	}
	return "demo-user"
}

//
// DTOs
//

// Pagination carries pagination metadata for list responses.
type Pagination struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Total      int  `json:"total"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
}

// SearchVideosResponse wraps one page of ranked results.
type SearchVideosResponse struct {
	Videos     []services.ScoredVideo `json:"videos"`
	Mode       string                 `json:"mode"`
	Generation uint64                 `json:"generation"`
	Pagination Pagination             `json:"pagination"`
}

// VideoDetailResponse is a single record plus its coerced view count and
// aggregated feedback.
type VideoDetailResponse struct {
	domain.Video
	ViewCount     int64  `json:"viewCount"`
	ViewsDisplay  string `json:"viewsDisplay"`
	FeedbackScore int64  `json:"feedbackScore"`
	FeedbackCount int64  `json:"feedbackCount"`
}

// KeywordsResponse lists the keyword tags available for keyword-exact search.
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}

//
// Helpers
//

// clampPagination parses and bounds page and page_size query params to sane
// defaults and limits, returning (page, pageSize).
func clampPagination(c *gin.Context) (page, pageSize int) {
	const (
		defaultPage     = 1
		defaultPageSize = 20
		maxPageSize     = 100
	)
	page = utils.AtoiDefault(c.Query("page"), defaultPage)
	if page < 1 {
		page = 1
	}
	pageSize = utils.AtoiDefault(c.Query("page_size"), defaultPageSize)
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return
}

//
// Handlers
//

// SearchVideos godoc
// @ID          searchVideos
// @Summary     Search videos
// @Description Evaluates a query against the loaded dataset. Mode "fuzzy" ranks by relevance; "keyword" and "category" are exact filters in load order. Empty fuzzy queries return the collection unranked.
// @Tags        Videos
// @Produce     json
//
// @Param       q              query   string  false "Free-text query (fuzzy mode)"
// @Param       mode           query   string  false "fuzzy|keyword|category" default(fuzzy)
// @Param       filter         query   string  false "Keyword or category value for the exact modes"
// @Param       If-None-Match  header  string  false "Return 304 if ETag matches"
// @Param       page           query   int     false "Page number" minimum(1) default(1)
// @Param       page_size      query   int     false "Items per page" minimum(1) maximum(100) default(20)
//
// @Success     200  {object} handlers.SearchVideosResponse
// @Header      200  {string} ETag "Weak ETag for the current snapshot and query"
// @Success     304  {string} string "Not Modified"
// @Failure     400  {object} handlers.ErrorResponse "Unknown mode"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /videos [get]
func (h *Handlers) SearchVideos(c *gin.Context) {
	mode, err := services.ParseMode(c.Query("mode"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "mode must be fuzzy, keyword, or category")
		return
	}
	query := c.Query("q")
	filter := c.Query("filter")
	if filter == "" {
		filter = query
	}

	results, generation, err := h.searchSvc.Search(c.Request.Context(), query, mode, filter)
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeSearchFailed, err.Error())
		return
	}

	page, pageSize := clampPagination(c)

	// The dataset only changes on reload, so generation + query params fully
	// identify the response body.
	etag := fmt.Sprintf(`W/"videos:%d:%s:%s:%s:%d:%d"`, generation, mode, query, filter, page, pageSize)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return
	}

	total := len(results)
	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	totalPages := (total + pageSize - 1) / pageSize
	ok(c, http.StatusOK, SearchVideosResponse{
		Videos:     results[start:end],
		Mode:       string(mode),
		Generation: generation,
		Pagination: Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    page < totalPages,
		},
	})
}

// GetVideo godoc
// @ID          getVideo
// @Summary     Get one video
// @Description Returns a single record by its dataset ID, with the coerced view count and aggregated feedback.
// @Tags        Videos
// @Produce     json
//
// @Param       id  path  int  true  "Video ID (1-based dataset order)"
//
// @Success     200  {object} handlers.VideoDetailResponse
// @Failure     400  {object} handlers.ErrorResponse "Invalid ID"
// @Failure     404  {object} handlers.ErrorResponse "Video not found"
// @Router      /videos/{id} [get]
func (h *Handlers) GetVideo(c *gin.Context) {
	id := utils.AtoiDefault(c.Param("id"), 0)
	if id < 1 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "video id must be a positive integer")
		return
	}

	v, err := h.searchSvc.Get(id)
	if err != nil {
		fail(c, http.StatusNotFound, ErrCodeNotFound, "video not found")
		return
	}

	views := search.ParseCount(v.Views)
	resp := VideoDetailResponse{
		Video:        *v,
		ViewCount:    views,
		ViewsDisplay: utils.FormatCount(views),
	}
	if sum, count, err := h.fbSvc.Totals(c.Request.Context(), id); err == nil {
		resp.FeedbackScore = sum
		resp.FeedbackCount = count
	}
	ok(c, http.StatusOK, resp)
}

// ListKeywords godoc
// @ID          listKeywords
// @Summary     List keyword tags
// @Description Returns the distinct keyword tags of the current snapshot, in first-seen order.
// @Tags        Videos
// @Produce     json
//
// @Success     200  {object} handlers.KeywordsResponse
// @Router      /keywords [get]
func (h *Handlers) ListKeywords(c *gin.Context) {
	kws := h.searchSvc.Keywords()
	if kws == nil {
		kws = []string{}
	}
	ok(c, http.StatusOK, KeywordsResponse{Keywords: kws})
}

// ReloadDataset godoc
// @ID          reloadDataset
// @Summary     Reload the dataset
// @Description Re-ingests the configured CSV source and atomically swaps the snapshot. On failure the previous snapshot stays active.
// @Tags        Videos
// @Produce     json
//
// @Success     200  {object} services.ReloadReport
// @Failure     400  {object} handlers.ErrorResponse "Source malformed or empty"
// @Failure     404  {object} handlers.ErrorResponse "Source missing"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /videos/reload [post]
func (h *Handlers) ReloadDataset(c *gin.Context) {
	report, err := h.searchSvc.Reload(c.Request.Context())
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrSourceMissing):
			fail(c, http.StatusNotFound, ErrCodeLoadFailed, err.Error())
		case errors.Is(err, ingest.ErrSourceMalformed), errors.Is(err, ingest.ErrSourceEmpty):
			fail(c, http.StatusBadRequest, ErrCodeLoadFailed, err.Error())
		default:
			fail(c, http.StatusInternalServerError, ErrCodeLoadFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, report)
}
