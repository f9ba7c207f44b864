package ranker

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewHTTPRanker_EmptyURLDisables(t *testing.T) {
	if rk := NewHTTPRanker("", time.Second, nil); rk != nil {
		t.Fatalf("expected nil ranker without a base URL")
	}
}

func TestRank_Success(t *testing.T) {
	jobID := uuid.New()
	score := 0.87

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/recommend" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Jobs) != 1 || req.Jobs[0].ID != jobID {
			t.Errorf("unexpected request payload")
		}
		_ = json.NewEncoder(w).Encode(Response{Recommendations: []RankedJob{
			{ID: jobID, RecommendationScore: &score},
		}})
	}))
	defer srv.Close()

	rk := NewHTTPRanker(srv.URL, time.Second, nil)
	resp, err := rk.Rank(context.Background(), Request{
		UserSkills: []string{"Go"},
		Jobs:       []CandidateJob{{ID: jobID, Title: "Backend Engineer"}},
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(resp.Recommendations))
	}
	if resp.Recommendations[0].RecommendationScore == nil || *resp.Recommendations[0].RecommendationScore != score {
		t.Fatalf("score not carried through")
	}
}

func TestRank_Non2xxIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	rk := NewHTTPRanker(srv.URL, time.Second, nil)
	if _, err := rk.Rank(context.Background(), Request{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRank_MalformedBodyIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	rk := NewHTTPRanker(srv.URL, time.Second, nil)
	if _, err := rk.Rank(context.Background(), Request{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestRank_TimeoutIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	rk := NewHTTPRanker(srv.URL, 20*time.Millisecond, nil)
	if _, err := rk.Rank(context.Background(), Request{}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}
