package resilience

import (
	"fmt"
	"sync"
)

// SingleFlight deduplicates concurrent calls for the same key. Results are
// not retained once the call returns, so a failed call is retried by the
// next caller.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	wg  sync.WaitGroup
	val any
	err error
}

func (g *SingleFlight) Do(key string, fn func() (any, error)) (any, error, bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		c.wg.Wait()
		return c.val, c.err, true
	}

	c := &call{}
	c.wg.Add(1)
	g.calls[key] = c
	g.mu.Unlock()

	g.run(key, c, fn)

	return c.val, c.err, false
}

// run releases waiters even when fn panics; the panic surfaces to waiters as
// an error and is re-raised for the leader.
func (g *SingleFlight) run(key string, c *call, fn func() (any, error)) {
	defer func() {
		if r := recover(); r != nil {
			c.err = fmt.Errorf("singleflight %s: panic: %v", key, r)
			g.finish(key, c)
			panic(r)
		}
		g.finish(key, c)
	}()

	c.val, c.err = fn()
}

func (g *SingleFlight) finish(key string, c *call) {
	g.mu.Lock()
	delete(g.calls, key)
	g.mu.Unlock()
	c.wg.Done()
}
