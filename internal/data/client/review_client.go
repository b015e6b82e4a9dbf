package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"film-recommendations/internal/data/entity"
	"film-recommendations/pkg/metrics"
	"film-recommendations/pkg/utils"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
)

const breakerName = "review-provider"

// maxBodyBytes bounds how much of a provider response is read.
const maxBodyBytes = 8 << 20

type ReviewClient interface {
	// FetchReviews returns review aggregates keyed by film id. Films the
	// provider knows nothing about are absent from the map.
	FetchReviews(ctx context.Context, filmIDs []int64) (map[int64]*entity.ReviewAggregate, error)
}

type reviewPayload struct {
	FilmID  int64 `json:"film_id"`
	Reviews []struct {
		ID       int64    `json:"id"`
		AuthorID int64    `json:"author_id"`
		Rating   *float64 `json:"rating"`
	} `json:"reviews"`
}

type reviewClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	timeout    time.Duration
	cb         *gobreaker.CircuitBreaker[map[int64]*entity.ReviewAggregate]
	log        *zap.Logger
}

// NewReviewClient builds a provider client. Every call is bounded by
// config.Timeout and guarded by a circuit breaker.
func NewReviewClient(config utils.ReviewsConfig, log *zap.Logger) (ReviewClient, error) {
	baseURL, err := url.Parse(config.URL)
	if err != nil {
		return nil, fmt.Errorf("parse reviews url: %w", err)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	c := &reviewClient{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		timeout:    timeout,
		log:        log.With(zap.String("client", "review")),
	}

	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	c.cb = gobreaker.NewCircuitBreaker[map[int64]*entity.ReviewAggregate](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// a caller hanging up says nothing about provider health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("Circuit breaker state transition",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return c, nil
}

func (c *reviewClient) FetchReviews(ctx context.Context, filmIDs []int64) (map[int64]*entity.ReviewAggregate, error) {
	if len(filmIDs) == 0 {
		return map[int64]*entity.ReviewAggregate{}, nil
	}

	start := time.Now()
	result, err := c.cb.Execute(func() (map[int64]*entity.ReviewAggregate, error) {
		return c.fetch(ctx, filmIDs)
	})
	metrics.ReviewProviderDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.ReviewProviderRequests.WithLabelValues("rejected").Inc()
			c.log.Warn("Review provider request rejected", zap.Error(err))
		} else {
			metrics.ReviewProviderRequests.WithLabelValues("failure").Inc()
			c.log.Error("Review provider request failed",
				zap.Error(err),
				zap.Int("film_count", len(filmIDs)),
			)
		}
		return nil, fmt.Errorf("fetch reviews: %w", err)
	}

	metrics.ReviewProviderRequests.WithLabelValues("success").Inc()
	c.log.Debug("Reviews fetched",
		zap.Int("film_count", len(filmIDs)),
		zap.Int("aggregate_count", len(result)),
		zap.Duration("duration", time.Since(start)),
	)

	return result, nil
}

func (c *reviewClient) fetch(ctx context.Context, filmIDs []int64) (map[int64]*entity.ReviewAggregate, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(filmIDs), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("make request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.log.Warn("Failed to close response body", zap.Error(err))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload []reviewPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return toAggregates(payload)
}

// requestURL appends films=<comma joined ids> to the configured url,
// keeping any query it already carries.
func (c *reviewClient) requestURL(filmIDs []int64) string {
	ids := make([]string, len(filmIDs))
	for i, id := range filmIDs {
		ids[i] = strconv.FormatInt(id, 10)
	}

	u := *c.baseURL
	query := u.Query()
	query.Del("films")

	raw := query.Encode()
	if raw != "" {
		raw += "&"
	}
	u.RawQuery = raw + "films=" + strings.Join(ids, ",")

	return u.String()
}

func toAggregates(payload []reviewPayload) (map[int64]*entity.ReviewAggregate, error) {
	aggregates := make(map[int64]*entity.ReviewAggregate, len(payload))
	for _, p := range payload {
		agg, ok := aggregates[p.FilmID]
		if !ok {
			agg = &entity.ReviewAggregate{FilmID: p.FilmID}
			aggregates[p.FilmID] = agg
		}

		for _, r := range p.Reviews {
			if r.Rating == nil {
				return nil, fmt.Errorf("review %d of film %d has no rating", r.ID, p.FilmID)
			}
			agg.Reviews = append(agg.Reviews, entity.Review{
				ID:       r.ID,
				AuthorID: r.AuthorID,
				Rating:   *r.Rating,
			})
		}
	}
	return aggregates, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
