// Package client talks to the scholarship API. When the API cannot be
// reached it falls back to the built-in catalog and to local matching with
// the same scorer the server uses.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/artem13815/scholarship/pkg/catalog"
	"github.com/artem13815/scholarship/pkg/matching"
	"github.com/artem13815/scholarship/pkg/scholarship"
)

// ErrUnexpectedStatus wraps non-2xx API responses.
var ErrUnexpectedStatus = errors.New("unexpected status")

const DefaultBaseURL = "http://localhost:5002/api"

type Client struct {
	BaseURL string
	httpDo  *http.Client
	scorer  *matching.Scorer
	local   func() ([]scholarship.Scholarship, error)
	log     *zap.Logger
}

type Option func(*Client)

// WithScorer sets the scorer used for local matching.
func WithScorer(sc *matching.Scorer) Option { return func(c *Client) { c.scorer = sc } }

// WithLocalCatalog replaces the built-in fallback catalog.
func WithLocalCatalog(load func() ([]scholarship.Scholarship, error)) Option {
	return func(c *Client) { c.local = load }
}

func WithLogger(log *zap.Logger) Option { return func(c *Client) { c.log = log } }

func New(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: timeout},
		scorer:  matching.NewScorer(nil),
		local:   catalog.Load,
		log:     zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Catalog is a fetched scholarship list. Local reports that it came from
// the built-in list instead of the API.
type Catalog struct {
	Items []scholarship.Scholarship
	Local bool
}

// Result is a ranked match list. Local reports that ranking ran in-process.
type Result struct {
	Items []scholarship.Scored
	Local bool
}

// FetchScholarships loads the catalog from the API, or the built-in list
// when the API call fails.
func (c *Client) FetchScholarships(ctx context.Context) (Catalog, error) {
	var items []scholarship.Scholarship
	err := c.do(ctx, http.MethodGet, "/scholarships", nil, &items)
	if err == nil {
		if items == nil {
			items = []scholarship.Scholarship{}
		}
		return Catalog{Items: items}, nil
	}
	c.log.Warn("fetching scholarships from API failed, using built-in catalog", zap.Error(err))
	local, lerr := c.local()
	if lerr != nil {
		return Catalog{}, errors.Join(err, fmt.Errorf("load built-in catalog: %w", lerr))
	}
	return Catalog{Items: local, Local: true}, nil
}

// Match asks the API to rank the catalog for p. When that fails, records
// are ranked locally. records should be the list FetchScholarships returned.
func (c *Client) Match(ctx context.Context, p scholarship.Profile, records []scholarship.Scholarship) (Result, error) {
	var ranked []scholarship.Scored
	err := c.do(ctx, http.MethodPost, "/match", p, &ranked)
	if err == nil {
		if ranked == nil {
			ranked = []scholarship.Scored{}
		}
		return Result{Items: ranked}, nil
	}
	c.log.Warn("remote matching failed, ranking locally", zap.Error(err))
	return Result{Items: c.scorer.Match(records, p), Local: true}, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpDo.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var e struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return fmt.Errorf("%w %d on %s %s: %s", ErrUnexpectedStatus, resp.StatusCode, method, path, strings.TrimSpace(e.Message+" "+e.Error))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
