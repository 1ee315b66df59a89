package resilience

import "sync"

// SingleFlight collapses concurrent calls for the same key into one
// execution; late arrivals block until the leader finishes and then share
// its result. The zero value is ready to use.
type SingleFlight struct {
	mu       sync.Mutex
	inflight map[string]*pending
}

type pending struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn unless a call for key is already in flight, in which case it
// waits for that call instead. The third result reports whether the value
// came from another caller's execution.
func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if p, ok := g.inflight[key]; ok {
		g.mu.Unlock()
		<-p.done
		return p.val, p.err, true
	}

	if g.inflight == nil {
		g.inflight = make(map[string]*pending)
	}
	p := &pending{done: make(chan struct{})}
	g.inflight[key] = p
	g.mu.Unlock()

	p.val, p.err = fn()
	close(p.done)

	g.mu.Lock()
	delete(g.inflight, key)
	g.mu.Unlock()

	return p.val, p.err, false
}
