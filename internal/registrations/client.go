package registrations

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/Hari-prashath-123/art-finity/internal/config"
	"github.com/Hari-prashath-123/art-finity/internal/version"
	"github.com/Hari-prashath-123/art-finity/pkg/logger"
)

// DefaultGID is the sub-sheet read when none is given.
const DefaultGID = "0"

// Params identify the sheet to read.
type Params struct {
	SheetID string `json:"sheet_id"`
	GID     string `json:"gid"`
}

// Normalize fills in the default sub-sheet.
func (p Params) Normalize() Params {
	p.SheetID = strings.TrimSpace(p.SheetID)
	p.GID = strings.TrimSpace(p.GID)
	if p.GID == "" {
		p.GID = DefaultGID
	}
	return p
}

// Fetcher reads the registration count for a sheet.
type Fetcher interface {
	FetchCount(ctx context.Context, p Params) (int, error)
}

// StatusError is returned when the export endpoint answers with a non-2xx status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("sheet export returned status %d", e.StatusCode)
}

// Client fetches spreadsheet exports over HTTP.
//
// Outbound requests share a rate limiter, and concurrent fetches of the same
// sheet are coalesced into one request.
type Client struct {
	http    *resty.Client
	baseURL string
	limiter *rate.Limiter
	group   singleflight.Group
	log     *slog.Logger
}

// NewClient creates a client from the registration settings.
func NewClient(cfg *config.Config, log *slog.Logger) *Client {
	rc := cfg.Registration
	perMinute := rc.RatePerMinute
	if perMinute <= 0 {
		perMinute = 30
	}

	return &Client{
		http: resty.New().
			SetTimeout(rc.Timeout).
			SetHeader("User-Agent", version.UserAgent()).
			SetHeader("Accept", "application/json, text/javascript, */*"),
		baseURL: strings.TrimRight(rc.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
		log:     log.With(logger.Scope("registrations.client")),
	}
}

// URL returns the export URL for p.
func (c *Client) URL(p Params) string {
	p = p.Normalize()
	return fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:json&gid=%s",
		c.baseURL, url.PathEscape(p.SheetID), url.QueryEscape(p.GID))
}

// FetchCount requests the export and returns its row count. The caller's
// context bounds how long it waits; a coalesced request keeps running for
// the other waiters until the client timeout.
func (c *Client) FetchCount(ctx context.Context, p Params) (int, error) {
	p = p.Normalize()
	if p.SheetID == "" {
		return 0, ErrMissingSheetID
	}
	u := c.URL(p)

	ch := c.group.DoChan(u, func() (any, error) {
		return c.fetch(context.WithoutCancel(ctx), u)
	})

	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return 0, res.Err
		}
		return res.Val.(int), nil
	}
}

func (c *Client) fetch(ctx context.Context, u string) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit: %w", err)
	}

	c.log.Debug("fetching sheet export", slog.String("url", u))

	resp, err := c.http.R().SetContext(ctx).Get(u)
	if err != nil {
		return 0, fmt.Errorf("fetch sheet export: %w", err)
	}
	if resp.IsError() {
		return 0, &StatusError{StatusCode: resp.StatusCode()}
	}

	count, err := ParseRowCount(resp.String())
	if err != nil {
		return 0, fmt.Errorf("parse sheet export: %w", err)
	}
	return count, nil
}
