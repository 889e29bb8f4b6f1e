// Package regno generates registration numbers for new applicants.
package regno

import (
	"strconv"
	"sync"
	"time"
)

// Prefix is prepended to every registration number.
const Prefix = "ATH"

// Generator produces unique registration numbers of the form
// "ATH<unix-millis>". Calls are serialized; when two calls land on the
// same millisecond the later one is bumped forward, so numbers are
// strictly increasing within a process.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

// NewGenerator creates a generator using the wall clock.
func NewGenerator() *Generator {
	return &Generator{now: time.Now}
}

// Next returns the next registration number.
func (g *Generator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	millis := g.now().UnixMilli()
	if millis <= g.last {
		millis = g.last + 1
	}
	g.last = millis

	return Prefix + strconv.FormatInt(millis, 10)
}
