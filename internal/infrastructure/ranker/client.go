package ranker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Ranker re-orders and re-scores a candidate job pool using an external
// service. Implementations are strictly best-effort: callers must always
// keep a locally computed ranking to fall back on.
type Ranker interface {
	Rank(ctx context.Context, req Request) (Response, error)
}

type Request struct {
	UserSkills []string       `json:"user_skills"`
	Jobs       []CandidateJob `json:"jobs"`
}

type CandidateJob struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Location        string    `json:"location"`
	JobType         string    `json:"job_type"`
	CompanyName     string    `json:"company_name"`
	RequiredSkills  []string  `json:"required_skills"`
	MatchPercentage int       `json:"match_percentage"`
}

type Response struct {
	Recommendations []RankedJob `json:"recommendations"`
}

type RankedJob struct {
	ID                  uuid.UUID `json:"id"`
	RecommendationScore *float64  `json:"recommendation_score"`
}

var ErrUnavailable = errors.New("ranking service unavailable")

type httpRanker struct {
	baseURL string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTPRanker returns nil when no base URL is configured; a nil Ranker
// disables re-ranking.
func NewHTTPRanker(baseURL string, timeout time.Duration, logger *log.Logger) Ranker {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &httpRanker{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *httpRanker) Rank(ctx context.Context, rankReq Request) (Response, error) {
	if c == nil || c.client == nil {
		return Response{}, ErrUnavailable
	}
	endpoint := c.baseURL + "/recommend"

	b, err := json.Marshal(rankReq)
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		bodyStr := strings.TrimSpace(string(rb))
		if c.logger != nil {
			c.logger.Printf("[Ranker] rank failed endpoint=%s status=%d body=%q", endpoint, resp.StatusCode, bodyStr)
		}
		return Response{}, fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}
	return out, nil
}

var _ Ranker = (*httpRanker)(nil)
