// Package loading drives the status-message carousel shown while
// recommendations are being generated.
package loading

import (
	"sync"
	"time"
)

const (
	// Period is how long each message stays up before fading out.
	Period = 1800 * time.Millisecond
	// FadeDuration is how long the message is hidden between messages.
	FadeDuration = 300 * time.Millisecond
)

// Messages are the status strings the cycler rotates through.
var Messages = []string{
	"Our AI is crafting your personalized career path. This might take a moment.",
	"Analyzing your academic background...",
	"Evaluating your unique skills and talents...",
	"Cross-referencing your interests with top industries...",
	"Identifying potential skill gaps and opportunities...",
	"Crafting personalized learning paths...",
	"Finalizing your top career matches...",
}

// Frame is a snapshot of what the carousel is showing. Session identifies
// the Start it belongs to and Seq orders frames within that session, so a
// receiver can drop frames that arrive late or out of order.
type Frame struct {
	Session uint64
	Seq     uint64
	Index   int
	Message string
	Visible bool
}

// After reports whether f is newer than prev. Frames of another session are
// never newer.
func (f Frame) After(prev Frame) bool {
	return f.Session == prev.Session && f.Seq > prev.Seq
}

// Option configures a Cycler.
type Option func(*Cycler)

// WithTiming overrides the period and fade duration.
func WithTiming(period, fade time.Duration) Option {
	return func(c *Cycler) {
		c.periodDur = period
		c.fadeDur = fade
	}
}

// WithMessages overrides the message list. An empty list is ignored.
func WithMessages(msgs []string) Option {
	return func(c *Cycler) {
		if len(msgs) > 0 {
			c.messages = append([]string(nil), msgs...)
		}
	}
}

// Cycler rotates through Messages on a timer. It owns its timer handles and
// cancels both of them on Stop; callbacks from a previous session are
// ignored even if they were already in flight.
type Cycler struct {
	clock     Clock
	messages  []string
	periodDur time.Duration
	fadeDur   time.Duration

	mu      sync.Mutex
	notify  func(Frame)
	running bool
	session uint64
	seq     uint64
	index   int
	visible bool
	period  Timer
	fade    Timer
}

// New creates a stopped Cycler. notify, if non-nil, is called outside the
// cycler's lock after every timed frame change. It runs on the clock's
// goroutine and is never called from Start, so Start may be called from a
// goroutine that notify hands frames to.
func New(clock Clock, notify func(Frame), opts ...Option) *Cycler {
	if clock == nil {
		clock = SystemClock{}
	}
	c := &Cycler{
		clock:     clock,
		messages:  Messages,
		periodDur: Period,
		fadeDur:   FadeDuration,
		notify:    notify,
		visible:   true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetNotify replaces the frame-change callback.
func (c *Cycler) SetNotify(fn func(Frame)) {
	c.mu.Lock()
	c.notify = fn
	c.mu.Unlock()
}

// Start shows the first message at full visibility and schedules the
// rotation. Calling Start on a running cycler restarts it. The first frame
// is not sent to notify; read it with Frame.
func (c *Cycler) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelLocked()
	c.session++
	c.seq = 0
	c.running = true
	c.index = 0
	c.visible = true
	session := c.session
	c.period = c.clock.AfterFunc(c.periodDur, func() { c.fadeOut(session) })
}

// Stop cancels all pending timers. It is safe to call more than once.
func (c *Cycler) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.running {
		return
	}
	c.cancelLocked()
	c.session++
	c.running = false
	c.index = 0
	c.visible = true
}

// Running reports whether the cycler is between Start and Stop.
func (c *Cycler) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.running
}

// Frame returns the current frame.
func (c *Cycler) Frame() Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frameLocked()
}

func (c *Cycler) fadeOut(session uint64) {
	c.mu.Lock()
	if !c.running || session != c.session {
		c.mu.Unlock()
		return
	}
	c.visible = false
	c.seq++
	c.period = c.clock.AfterFunc(c.periodDur, func() { c.fadeOut(session) })
	c.fade = c.clock.AfterFunc(c.fadeDur, func() { c.advance(session) })
	f, notify := c.frameLocked(), c.notify
	c.mu.Unlock()

	if notify != nil {
		notify(f)
	}
}

func (c *Cycler) advance(session uint64) {
	c.mu.Lock()
	if !c.running || session != c.session {
		c.mu.Unlock()
		return
	}
	c.fade = nil
	c.index = (c.index + 1) % len(c.messages)
	c.visible = true
	c.seq++
	f, notify := c.frameLocked(), c.notify
	c.mu.Unlock()

	if notify != nil {
		notify(f)
	}
}

func (c *Cycler) cancelLocked() {
	if c.period != nil {
		c.period.Stop()
		c.period = nil
	}
	if c.fade != nil {
		c.fade.Stop()
		c.fade = nil
	}
}

func (c *Cycler) frameLocked() Frame {
	return Frame{
		Session: c.session,
		Seq:     c.seq,
		Index:   c.index,
		Message: c.messages[c.index],
		Visible: c.visible,
	}
}
