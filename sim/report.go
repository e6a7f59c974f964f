// Final density / cumulative-density report over the batch histogram.

package sim

import (
	"bufio"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// WriteReport walks the histogram from its smallest to largest populated
// bucket and emits one row per index: bucket index, representative age in
// seconds, the bucket's share of all observations, and the running
// cumulative share. Read-only; the histogram is not modified. With zero
// observations nothing is emitted and a notice goes to the diagnostic
// log.
func WriteReport(w io.Writer, h *Histogram) error {
	if h.Total == 0 {
		logrus.Warn("no observations recorded; nothing to report")
		return nil
	}

	bw := bufio.NewWriter(w)
	total := float64(h.Total)
	cumulative := 0.0
	for i := h.Smallest; i <= h.Largest; i++ {
		count := float64(h.Buckets[i])
		cumulative += count
		if _, err := fmt.Fprintf(bw, "%d | %.6f | %.6f | %.6f\n",
			i, RepresentativeAge(i), count/total, cumulative/total); err != nil {
			return fmt.Errorf("writing report row for bucket %d: %w", i, err)
		}
	}
	return bw.Flush()
}
