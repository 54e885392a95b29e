// Package remoteeval scores positions by calling out to an external HTTP
// evaluation service instead of computing a score locally. It exists so
// the engine's search can be pointed at a neural or otherwise much heavier
// evaluator without the core ever depending on one directly: RemoteEvaluator
// implements the same eval.Evaluator interface as eval.Material.
package remoteeval

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Oliverans/gooseknight/board"
)

// RemoteEvaluator queries an HTTP scoring endpoint, caching results for the
// lifetime of the process so repeated probes of a transposed position don't
// re-hit the network.
type RemoteEvaluator struct {
	client *http.Client
	url    string
	log    zerolog.Logger

	mu    sync.Mutex
	cache map[uint64]int
}

// New returns a RemoteEvaluator that queries baseURL, e.g.
// "http://localhost:8080/eval", which is expected to accept a `fen` query
// parameter and respond with a JSON body `{"score": <int>}`. Probe failures
// are logged through log; pass zerolog.Nop() to discard them.
func New(baseURL string, log zerolog.Logger) *RemoteEvaluator {
	return &RemoteEvaluator{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    baseURL,
		log:    log,
		cache:  make(map[uint64]int),
	}
}

type evalResponse struct {
	Score int `json:"score"`
}

// Evaluate implements eval.Evaluator. Any network error, non-200 status, or
// malformed response degrades silently to a score of 0 — the result is not
// cached in that case, so a transient failure can be retried on a later
// probe of the same position rather than permanently pinning it at 0.
func (r *RemoteEvaluator) Evaluate(pos *board.Position) int {
	hash := pos.Hash()

	r.mu.Lock()
	if score, ok := r.cache[hash]; ok {
		r.mu.Unlock()
		return score
	}
	r.mu.Unlock()

	score, ok := r.probe(pos)
	if !ok {
		return 0
	}

	r.mu.Lock()
	r.cache[hash] = score
	r.mu.Unlock()
	return score
}

func (r *RemoteEvaluator) probe(pos *board.Position) (int, bool) {
	fullURL := fmt.Sprintf("%s?fen=%s", r.url, url.QueryEscape(pos.ToFEN()))

	resp, err := r.client.Get(fullURL)
	if err != nil {
		r.log.Warn().Err(err).Str("fen", pos.ToFEN()).Msg("remote eval probe failed")
		return 0, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.log.Warn().Int("status", resp.StatusCode).Str("fen", pos.ToFEN()).Msg("remote eval probe returned non-200 status")
		return 0, false
	}

	var out evalResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		r.log.Warn().Err(err).Str("fen", pos.ToFEN()).Msg("remote eval probe returned a malformed body")
		return 0, false
	}
	return out.Score, true
}
