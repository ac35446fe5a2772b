package system

// ScoreEvent is emitted after every scored landing.
type ScoreEvent struct {
	Score int
}

// ScoreListener consumes score events, typically a HUD or a best-score store.
type ScoreListener interface {
	OnScore(ev ScoreEvent)
}

// ScoreListenerFunc adapts a function to ScoreListener.
type ScoreListenerFunc func(ScoreEvent)

func (f ScoreListenerFunc) OnScore(ev ScoreEvent) { f(ev) }

// ScoreFeed forwards score events to a buffered channel for consumers
// running outside the game loop. Events are dropped when the buffer is full
// so the game loop never blocks.
type ScoreFeed struct {
	ch      chan ScoreEvent
	dropped int
}

// NewScoreFeed creates a feed with the given buffer size.
func NewScoreFeed(buffer int) *ScoreFeed {
	if buffer < 1 {
		buffer = 1
	}
	return &ScoreFeed{ch: make(chan ScoreEvent, buffer)}
}

// OnScore implements ScoreListener.
func (f *ScoreFeed) OnScore(ev ScoreEvent) {
	select {
	case f.ch <- ev:
	default:
		f.dropped++
	}
}

// Events returns the receive side of the feed.
func (f *ScoreFeed) Events() <-chan ScoreEvent {
	return f.ch
}

// Dropped returns how many events were discarded on a full buffer.
func (f *ScoreFeed) Dropped() int {
	return f.dropped
}

// Close ends the feed. OnScore must not be called afterwards.
func (f *ScoreFeed) Close() {
	close(f.ch)
}
