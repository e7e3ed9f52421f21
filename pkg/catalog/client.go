package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Evgya/anime-analysis/pkg/observability"
)

// DefaultBaseURL is the MyAnimeList v2 API root.
const DefaultBaseURL = "https://api.myanimelist.net/v2"

const (
	httpTimeout    = 10 * time.Second
	clientIDHeader = "X-MAL-CLIENT-ID"
)

// ErrNetwork is returned for transport failures (timeouts, connection errors).
// Responses that arrive but lack usable data are not errors; they are
// reported as an absent result instead.
var ErrNetwork = errors.New("network error")

// Config holds the settings needed to construct a [Client].
type Config struct {
	// ClientID is the MyAnimeList API client ID. Required for real requests.
	ClientID string

	// BaseURL overrides the API root. Defaults to [DefaultBaseURL].
	// Useful for pointing the client at a test server.
	BaseURL string

	// HTTPClient overrides the transport. Defaults to a client with a
	// 10 second timeout.
	HTTPClient *http.Client
}

// Record is the search result for a single anime: its catalog ID and title.
type Record struct {
	ID    int
	Title string
}

// Client queries the MyAnimeList catalog API.
// It is stateless apart from its configuration and is safe for concurrent use.
// Responses are never cached; every lookup performs a live request.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string
}

// NewClient creates a catalog client from cfg, applying defaults for any
// zero fields.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: httpTimeout}
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		headers: map[string]string{clientIDHeader: cfg.ClientID},
	}
}

// Search resolves a free-text name to the single best matching catalog
// record. It returns ok=false when the catalog has no match or the response
// is malformed; err is non-nil only for transport failures.
func (c *Client) Search(ctx context.Context, name string) (Record, bool, error) {
	reqURL := fmt.Sprintf("%s/anime?q=%s&limit=1", c.baseURL, url.QueryEscape(name))

	var data searchResponse
	ok, err := c.get(ctx, reqURL, &data)
	if err != nil || !ok {
		return Record{}, false, err
	}
	if len(data.Data) == 0 {
		return Record{}, false, nil
	}
	node := data.Data[0].Node
	return Record{ID: node.ID, Title: node.Title}, true, nil
}

// LookupID returns the catalog ID of the best match for name.
func (c *Client) LookupID(ctx context.Context, name string) (int, bool, error) {
	rec, ok, err := c.Search(ctx, name)
	return rec.ID, ok, err
}

// LookupTitle returns the canonical display title of the best match for name.
func (c *Client) LookupTitle(ctx context.Context, name string) (string, bool, error) {
	rec, ok, err := c.Search(ctx, name)
	return rec.Title, ok, err
}

// LookupGenres returns the genre names of the best match for name, joined
// with ", " (e.g. "Action, Adventure, Sci-Fi").
//
// It first resolves the catalog ID; when that yields no result, it returns
// absent immediately without issuing a detail request.
func (c *Client) LookupGenres(ctx context.Context, name string) (string, bool, error) {
	id, ok, err := c.LookupID(ctx, name)
	if err != nil || !ok {
		return "", false, err
	}
	return c.GenresByID(ctx, id)
}

// GenresByID returns the joined genre names for an already resolved catalog
// ID. Callers that hold a [Record] from Search should prefer this over
// LookupGenres, which repeats the search.
func (c *Client) GenresByID(ctx context.Context, id int) (string, bool, error) {
	reqURL := fmt.Sprintf("%s/anime/%d?fields=genres", c.baseURL, id)

	var data detailResponse
	ok, err := c.get(ctx, reqURL, &data)
	if err != nil || !ok {
		return "", false, err
	}
	// A nil slice means the field was absent from the payload; an anime
	// with an empty genre list decodes to a non-nil empty slice.
	if data.Genres == nil {
		return "", false, nil
	}

	names := make([]string, len(data.Genres))
	for i, g := range data.Genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", "), true, nil
}

// get performs a GET request and decodes the JSON body into v.
// It returns ok=false for non-2xx statuses and undecodable payloads,
// and an error only when the request itself fails.
func (c *Client) get(ctx context.Context, reqURL string, v any) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, err
	}
	for k, val := range c.headers {
		req.Header.Set(k, val)
	}

	observability.Catalog().OnRequest(ctx, http.MethodGet, req.URL.Host, req.URL.Path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		observability.Catalog().OnError(ctx, http.MethodGet, req.URL.Host, req.URL.Path, err)
		return false, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()
	observability.Catalog().OnResponse(ctx, http.MethodGet, req.URL.Host, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return false, nil
	}
	return true, nil
}

type searchResponse struct {
	Data []struct {
		Node struct {
			ID    int    `json:"id"`
			Title string `json:"title"`
		} `json:"node"`
	} `json:"data"`
}

type detailResponse struct {
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
}
