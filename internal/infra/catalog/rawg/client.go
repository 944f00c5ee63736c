// Package rawg implements the CatalogService interface against the RAWG
// video game database REST API.
package rawg

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"gamevault/config"
	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL  = "https://api.rawg.io/api"
	defaultTimeout  = 15 * time.Second
	defaultPageSize = 15

	// maxDescriptionLen caps the plain-text description shown in the
	// detail modal, matching the page layout.
	maxDescriptionLen = 1000
)

// Client calls the RAWG REST API. It implements service.CatalogService.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient constructs a Client from configuration. Missing values fall back
// to the public RAWG defaults; an empty API key leaves the catalog in a
// degraded state where every call fails and callers render their error state.
func NewClient(cfg *config.Config) service.CatalogService {
	baseURL := defaultBaseURL
	apiKey := ""
	timeout := defaultTimeout

	if cfg != nil && cfg.Catalog != nil {
		if cfg.Catalog.BaseURL != "" {
			baseURL = cfg.Catalog.BaseURL
		}
		if cfg.Catalog.Timeout > 0 {
			timeout = cfg.Catalog.Timeout
		}
		apiKey = cfg.Catalog.APIKey
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// gameRecord mirrors the wire shape of a RAWG game object.
type gameRecord struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	BackgroundImage string  `json:"background_image"`
	Released        string  `json:"released"`
	Rating          float64 `json:"rating"`
	Genres          []struct {
		Name string `json:"name"`
	} `json:"genres"`
	Platforms []struct {
		Platform struct {
			Name string `json:"name"`
		} `json:"platform"`
	} `json:"platforms"`
	DescriptionRaw string `json:"description_raw"`
}

type listResponse struct {
	Results []gameRecord `json:"results"`
}

// Search returns up to pageSize games matching the query.
func (c *Client) Search(ctx context.Context, query string, pageSize int) ([]*entity.Game, error) {
	params := url.Values{}
	params.Set("search", query)
	params.Set("page_size", strconv.Itoa(normalizePageSize(pageSize)))

	var body listResponse
	if err := c.get(ctx, "/games", params, &body); err != nil {
		return nil, errors.Wrap(err, "failed to search games")
	}

	return toGames(body.Results), nil
}

// Details returns the full record for a single game.
func (c *Client) Details(ctx context.Context, gameID int64) (*entity.Game, error) {
	var record gameRecord
	if err := c.get(ctx, fmt.Sprintf("/games/%d", gameID), url.Values{}, &record); err != nil {
		return nil, err
	}

	return toGame(&record), nil
}

// Trending returns up to pageSize games released inside [from, to], most
// added first.
func (c *Client) Trending(ctx context.Context, pageSize int, from, to time.Time) ([]*entity.Game, error) {
	params := url.Values{}
	params.Set("dates", from.Format(time.DateOnly)+","+to.Format(time.DateOnly))
	params.Set("ordering", "-added")
	params.Set("page_size", strconv.Itoa(normalizePageSize(pageSize)))

	var body listResponse
	if err := c.get(ctx, "/games", params, &body); err != nil {
		return nil, errors.Wrap(err, "failed to fetch trending games")
	}

	return toGames(body.Results), nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	requestURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "catalog request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return service.ErrGameNotFound
	}
	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

		return errors.Errorf("catalog returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode catalog response")
	}

	return nil
}

func normalizePageSize(pageSize int) int {
	if pageSize <= 0 {
		return defaultPageSize
	}

	return pageSize
}

func toGames(records []gameRecord) []*entity.Game {
	games := make([]*entity.Game, 0, len(records))
	for i := range records {
		games = append(games, toGame(&records[i]))
	}

	return games
}

// truncateDescription caps s at max bytes without splitting a multi-byte
// rune, appending an ellipsis when anything was cut.
func truncateDescription(s string, max int) string {
	if len(s) <= max {
		return s
	}

	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut] + "..."
}

func toGame(record *gameRecord) *entity.Game {
	genres := make([]string, 0, len(record.Genres))
	for _, g := range record.Genres {
		genres = append(genres, g.Name)
	}

	platforms := make([]string, 0, len(record.Platforms))
	for _, p := range record.Platforms {
		platforms = append(platforms, p.Platform.Name)
	}

	description := truncateDescription(record.DescriptionRaw, maxDescriptionLen)

	return &entity.Game{
		ID:              record.ID,
		Name:            record.Name,
		BackgroundImage: record.BackgroundImage,
		Released:        record.Released,
		Rating:          record.Rating,
		Genres:          genres,
		Platforms:       platforms,
		Description:     description,
	}
}
