// Package report collects findings produced by concurrent validation runs.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"sync"

	"github.com/sirkon/numgroup/internal/grouping"
)

// Collector gathers findings from any number of goroutines.
// The zero value is ready to use.
type Collector struct {
	mu       sync.Mutex
	findings []grouping.Finding
}

// Add records a new finding.
func (c *Collector) Add(f grouping.Finding) {
	c.mu.Lock()
	c.findings = append(c.findings, f)
	c.mu.Unlock()
}

// Findings returns a snapshot of all collected findings in arrival order.
func (c *Collector) Findings() []grouping.Finding {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]grouping.Finding, len(c.findings))
	copy(out, c.findings)

	return out
}

// Sorted returns a snapshot ordered by file name, line and column.
// Concurrent runs finish in arbitrary order, findings are re-associated
// with their source position here.
func (c *Collector) Sorted() []grouping.Finding {
	out := c.Findings()
	slices.SortFunc(out, func(a, b grouping.Finding) int {
		if v := cmp.Compare(a.Pos.Filename, b.Pos.Filename); v != 0 {
			return v
		}
		if v := cmp.Compare(a.Pos.Line, b.Pos.Line); v != 0 {
			return v
		}

		return cmp.Compare(a.Pos.Column, b.Pos.Column)
	})

	return out
}

// PrintSummary writes all collected findings in a compact, per-line form.
func (c *Collector) PrintSummary(w io.Writer) {
	for _, f := range c.Sorted() {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n",
			f.Pos.Filename,
			f.Pos.Line,
			f.Pos.Column,
			f.Rule.Code(),
			f.Message,
		)
	}
}
