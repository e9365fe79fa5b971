package pagination

import "sync"

// State is the lifecycle position of a Context.
type State int

const (
	Idle State = iota
	Fetching
	Cancelled
	Completed
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	case Cancelled:
		return "cancelled"
	case Completed:
		return "completed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Context tracks a single in-flight page request. The delegate calls Start
// when it begins loading and Finish (or Cancel) once it is done; while a
// context is Fetching no further page is requested.
type Context struct {
	mu    sync.Mutex
	state State
}

// NewContext returns an idle context.
func NewContext() *Context { return &Context{} }

func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Context) IsFetching() bool  { return c.State() == Fetching }
func (c *Context) IsCancelled() bool { return c.State() == Cancelled }
func (c *Context) IsCompleted() bool { return c.State() == Completed }
func (c *Context) IsFailed() bool    { return c.State() == Failed }

func (c *Context) Start() { c.set(Fetching) }

func (c *Context) Cancel() { c.set(Cancelled) }

// Finish records the outcome of the request.
func (c *Context) Finish(ok bool) {
	if ok {
		c.set(Completed)
		return
	}
	c.set(Failed)
}

func (c *Context) set(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}
