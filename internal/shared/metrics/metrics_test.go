package metrics

import (
	"bytes"
	"strings"
	"testing"
)

func TestHistogramBucketsCumulateOnce(t *testing.T) {
	h := newHistogram([]float64{100, 250, 500})
	h.Observe(50)
	h.Observe(200)
	h.Observe(400)

	var buf bytes.Buffer
	writeHistogram(&buf, "pipeline_ms", "test histogram", h.Snapshot())
	out := buf.String()

	want := []string{
		`pipeline_ms_bucket{le="100"} 1`,
		`pipeline_ms_bucket{le="250"} 2`,
		`pipeline_ms_bucket{le="500"} 3`,
		`pipeline_ms_bucket{le="+Inf"} 3`,
		`pipeline_ms_count 3`,
	}
	for _, line := range want {
		if !strings.Contains(out, line) {
			t.Fatalf("missing %q in rendered histogram:\n%s", line, out)
		}
	}
}

func TestHistogramObserveAboveAllBuckets(t *testing.T) {
	h := newHistogram([]float64{100})
	h.Observe(5000)

	snap := h.Snapshot()
	if snap.counts[0] != 0 {
		t.Fatalf("le=100 bucket = %d, want 0", snap.counts[0])
	}
	if snap.count != 1 {
		t.Fatalf("count = %d, want 1", snap.count)
	}
}
