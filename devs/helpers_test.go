package devs

import (
	"fmt"
	"math"
)

// ticker is a periodic generator used by the engine tests: it emits its
// firing count on every internal transition.
type ticker struct {
	Component
	Out *TypedPort[int]

	period float64
	count  int
}

func newTicker(id string, period float64) *ticker {
	tk := &ticker{Component: NewComponent(id), period: period}
	tk.Out = AddOutPort[int](&tk.Component, "out")
	return tk
}

func (tk *ticker) InternalTransition()          { tk.count++ }
func (tk *ticker) ExternalTransition(_ float64) {}
func (tk *ticker) Output()                      { tk.Out.AddMessage(tk.count) }
func (tk *ticker) TimeAdvance() float64         { return tk.period }
func (tk *ticker) StateString() string          { return fmt.Sprintf("Count: %d", tk.count) }

// collector is a passive sink that records every received value and the
// elapsed time reported with it.
type collector struct {
	Component
	In *TypedPort[int]

	got     []int
	elapsed []float64
}

func newCollector(id string) *collector {
	c := &collector{Component: NewComponent(id)}
	c.In = AddInPort[int](&c.Component, "in")
	return c
}

func (c *collector) InternalTransition() {}
func (c *collector) ExternalTransition(elapsed float64) {
	c.got = append(c.got, c.In.Bag()...)
	c.elapsed = append(c.elapsed, elapsed)
}
func (c *collector) Output()              {}
func (c *collector) TimeAdvance() float64 { return math.Inf(1) }

// relay is both periodic and input-driven, so it exercises the confluent
// case. It records the elapsed value of every external transition.
type relay struct {
	Component
	In  *TypedPort[int]
	Out *TypedPort[int]

	period  float64
	held    int
	elapsed []float64
}

func newRelay(id string, period float64) *relay {
	r := &relay{Component: NewComponent(id), period: period}
	r.In = AddInPort[int](&r.Component, "in")
	r.Out = AddOutPort[int](&r.Component, "out")
	return r
}

func (r *relay) InternalTransition() {}
func (r *relay) ExternalTransition(elapsed float64) {
	r.elapsed = append(r.elapsed, elapsed)
	for _, v := range r.In.Bag() {
		r.held = v
	}
}
func (r *relay) Output()              { r.Out.AddMessage(r.held) }
func (r *relay) TimeAdvance() float64 { return r.period }

// badSigma violates the time-advance contract on its first internal
// transition.
type badSigma struct {
	Component
	sigma float64
}

func newBadSigma(id string) *badSigma {
	return &badSigma{Component: NewComponent(id), sigma: 1.0}
}

func (b *badSigma) InternalTransition()          { b.sigma = -1 }
func (b *badSigma) ExternalTransition(_ float64) {}
func (b *badSigma) Output()                      {}
func (b *badSigma) TimeAdvance() float64         { return b.sigma }
