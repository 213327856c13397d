package flow

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/mediasaver/media-saver/internal/download"
	"github.com/mediasaver/media-saver/internal/materialize"
	"github.com/mediasaver/media-saver/internal/model"
)

// Display timing constants
const (
	// CycleEvery is how often the cosmetic progress phrase advances
	CycleEvery = 1500 * time.Millisecond

	// SuccessClearAfter is how long a success message stays visible
	SuccessClearAfter = 4 * time.Second

	// ErrorClearAfter is how long an error message stays visible
	ErrorClearAfter = 5 * time.Second

	// WarnClearAfter is how long the empty-URL validation message stays visible
	WarnClearAfter = 3 * time.Second
)

// MsgEmptyURL is shown when download is pressed without a link.
const MsgEmptyURL = "Please paste a link first"

// MsgServerError is the fallback when the backend reports an error without a
// message.
const MsgServerError = "The download server reported an error"

// progressPhrases cycle while a request is in flight. The backend exposes no
// progress channel, so these carry no meaning beyond perceived feedback.
var progressPhrases = []string{
	"Contacting the server…",
	"Fetching media…",
	"Transcoding…",
	"Preparing your file…",
	"Almost there…",
}

// Controller owns the view state and sequences one download action:
// validate → request → materialize → show outcome. The loading phase is the
// only mutual exclusion; a second action while loading is ignored.
//
// Every transition bumps a generation counter. Timers and the progress
// cycler capture the generation they were started under and give up when it
// no longer matches, so callbacks firing after teardown or after a newer
// action are no-ops against stale state.
type Controller struct {
	mu       sync.Mutex
	state    State
	gen      uint64
	client   download.Requester
	saver    materialize.Saver
	log      *zap.Logger
	onChange func(State)

	cycleEvery        time.Duration
	successClearAfter time.Duration
	errorClearAfter   time.Duration
	warnClearAfter    time.Duration
}

// NewController creates a controller wired to the backend client and the file
// saver. A nil logger is replaced with a no-op one.
func NewController(client download.Requester, saver materialize.Saver, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		state:             NewState(),
		client:            client,
		saver:             saver,
		log:               logger,
		cycleEvery:        CycleEvery,
		successClearAfter: SuccessClearAfter,
		errorClearAfter:   ErrorClearAfter,
		warnClearAfter:    WarnClearAfter,
	}
}

// SetUpdateCallback registers the render callback. It is invoked with a
// snapshot after every transition, outside the controller lock.
func (c *Controller) SetUpdateCallback(fn func(State)) {
	c.mu.Lock()
	c.onChange = fn
	c.mu.Unlock()
}

// State returns a snapshot of the current view state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetURL updates the input text; the platform badge is re-derived as part of
// the transition.
func (c *Controller) SetURL(url string) {
	c.mu.Lock()
	c.state = c.state.WithURL(url)
	snap := c.state
	c.mu.Unlock()
	c.notify(snap)
}

// Download starts one download action for the current URL. With an empty URL
// it stays idle and shows a transient validation message; while loading it
// does nothing.
func (c *Controller) Download(kind model.Kind) {
	c.mu.Lock()
	if c.state.Loading() {
		c.mu.Unlock()
		return
	}

	url := strings.TrimSpace(c.state.URL)
	if url == "" {
		c.gen++
		g := c.gen
		c.state = c.state.Warned(MsgEmptyURL)
		snap := c.state
		c.mu.Unlock()
		c.notify(snap)
		c.clearAfter(g, c.warnClearAfter)
		return
	}

	c.gen++
	g := c.gen
	c.state = c.state.Submitted(progressPhrases[0])
	snap := c.state
	c.mu.Unlock()

	c.log.Info("download started",
		zap.String("url", url),
		zap.String("kind", kind.String()),
		zap.String("platform", snap.Platform.String()))

	c.notify(snap)
	go c.cycleProgress(g)
	go c.perform(g, url, kind)
}

// Close invalidates all pending timers and the progress cycler. Any callback
// that fires afterwards finds a stale generation and returns without
// touching state.
func (c *Controller) Close() {
	c.mu.Lock()
	c.gen++
	c.mu.Unlock()
}

// perform runs the request/materialize sequence for one action.
func (c *Controller) perform(g uint64, url string, kind model.Kind) {
	resp, err := c.client.RequestDownload(context.Background(), url, kind)
	if err != nil {
		c.fail(g, err.Error())
		return
	}

	if resp.IsError() {
		msg := resp.Message
		if msg == "" {
			msg = MsgServerError
		}
		c.fail(g, msg)
		return
	}

	saved, err := c.saver.SaveFile(resp.Data, resp.Filename, kind.MIMEType())
	if err != nil {
		c.fail(g, err.Error())
		return
	}

	c.succeed(g, fmt.Sprintf("Saved %s (%s)", saved.Name, humanize.Bytes(uint64(saved.Size))))
}

// fail moves to the error phase unless a newer action superseded this one.
func (c *Controller) fail(g uint64, msg string) {
	c.mu.Lock()
	if c.gen != g {
		c.mu.Unlock()
		return
	}
	c.gen++
	g2 := c.gen
	c.state = c.state.Failed(msg)
	snap := c.state
	c.mu.Unlock()

	c.log.Warn("download failed", zap.String("reason", msg))
	c.notify(snap)
	c.clearAfter(g2, c.errorClearAfter)
}

// succeed moves to the success phase unless superseded.
func (c *Controller) succeed(g uint64, msg string) {
	c.mu.Lock()
	if c.gen != g {
		c.mu.Unlock()
		return
	}
	c.gen++
	g2 := c.gen
	c.state = c.state.Succeeded(msg)
	snap := c.state
	c.mu.Unlock()

	c.log.Info("download completed", zap.String("result", msg))
	c.notify(snap)
	c.clearAfter(g2, c.successClearAfter)
}

// clearAfter schedules the automatic return to idle for the generation g.
func (c *Controller) clearAfter(g uint64, d time.Duration) {
	time.AfterFunc(d, func() {
		c.mu.Lock()
		if c.gen != g {
			c.mu.Unlock()
			return
		}
		c.gen++
		c.state = c.state.Cleared()
		snap := c.state
		c.mu.Unlock()
		c.notify(snap)
	})
}

// cycleProgress advances the cosmetic phrase until the action g finishes.
func (c *Controller) cycleProgress(g uint64) {
	ticker := time.NewTicker(c.cycleEvery)
	defer ticker.Stop()

	for i := 1; ; i++ {
		<-ticker.C

		c.mu.Lock()
		if c.gen != g || !c.state.Loading() {
			c.mu.Unlock()
			return
		}
		c.state = c.state.Progressed(progressPhrases[i%len(progressPhrases)])
		snap := c.state
		c.mu.Unlock()
		c.notify(snap)
	}
}

// notify hands a state snapshot to the registered render callback.
func (c *Controller) notify(s State) {
	c.mu.Lock()
	fn := c.onChange
	c.mu.Unlock()
	if fn != nil {
		fn(s)
	}
}
