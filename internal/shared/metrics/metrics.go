package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	matchesScoredTotal    atomic.Uint64
	matchesPersistedTotal atomic.Uint64
	batchStartedTotal     atomic.Uint64
	batchCompletedTotal   atomic.Uint64
	batchItemFailedTotal  atomic.Uint64

	batchDuration = newHistogram([]float64{50, 100, 250, 500, 1000, 2500, 5000, 15000, 60000})
)

// IncMatchScored increments the scored-match counter.
func IncMatchScored() {
	matchesScoredTotal.Add(1)
}

// IncMatchPersisted increments the persisted-match counter.
func IncMatchPersisted() {
	matchesPersistedTotal.Add(1)
}

// IncBatchStarted increments the batch-started counter.
func IncBatchStarted() {
	batchStartedTotal.Add(1)
}

// IncBatchCompleted increments the batch-completed counter.
func IncBatchCompleted() {
	batchCompletedTotal.Add(1)
}

// IncBatchItemFailed increments the per-candidate failure counter.
func IncBatchItemFailed() {
	batchItemFailedTotal.Add(1)
}

// ObserveBatchDurationMs records a batch run duration in milliseconds.
func ObserveBatchDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	batchDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "matches_scored_total", "Total candidate/job scorings computed", matchesScoredTotal.Load())
	writeCounter(&buf, "matches_persisted_total", "Total match results upserted", matchesPersistedTotal.Load())
	writeCounter(&buf, "batch_started_total", "Total batch match runs started", batchStartedTotal.Load())
	writeCounter(&buf, "batch_completed_total", "Total batch match runs completed", batchCompletedTotal.Load())
	writeCounter(&buf, "batch_item_failed_total", "Total per-candidate failures skipped during batches", batchItemFailedTotal.Load())
	writeHistogram(&buf, "batch_duration_ms", "Batch match duration in milliseconds", batchDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
