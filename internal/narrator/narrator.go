// Package narrator runs the auto-play narration loop: it reads the
// current card aloud in both languages, pauses between utterances, and
// advances to a new random card, until stopped.
package narrator

import (
	"context"
	"sync"
	"time"

	"github.com/cwhuang/recite/internal/session"
	"github.com/cwhuang/recite/internal/speech"
	"github.com/cwhuang/recite/internal/vocab"
)

// Language tags the two card sides are spoken with.
const (
	LangEnglish = "en-US"
	LangChinese = "zh-TW"
)

// Pause lengths at rate 1.0. Pauses scale inversely with the rate but
// never drop below minPause.
const (
	shortPause = 700 * time.Millisecond
	longPause  = 900 * time.Millisecond
	minPause   = 200 * time.Millisecond
)

// EventKind tags a narrator event.
type EventKind int

const (
	// EventStarted is emitted when the loop transitions Idle -> Running.
	EventStarted EventKind = iota
	// EventStopped is emitted when the loop transitions Running -> Idle.
	EventStopped
	// EventAdvanced is emitted after a full cycle moved to a new card.
	EventAdvanced
)

// Event notifies the UI loop of narrator state changes.
type Event struct {
	Kind  EventKind
	Index int
}

// Narrator is the narration sequencer. It is Idle until Start and runs
// one goroutine while Running; Stop cancels the loop and interrupts
// any in-flight utterance.
type Narrator struct {
	engine speech.Engine
	store  *vocab.Store
	state  *session.State

	mu      sync.Mutex
	cancel  context.CancelFunc
	running bool
	done    chan struct{}

	events chan Event
	sleep  func(ctx context.Context, d time.Duration)
}

// New creates an Idle narrator over the given engine, store, and
// session state.
func New(engine speech.Engine, store *vocab.Store, state *session.State) *Narrator {
	return &Narrator{
		engine: engine,
		store:  store,
		state:  state,
		events: make(chan Event, 8),
		sleep:  sleepCtx,
	}
}

// Events returns the channel the narrator reports on. Events are
// dropped, not blocked on, when the UI falls behind.
func (n *Narrator) Events() <-chan Event {
	return n.events
}

// Running reports whether the narration loop is active.
func (n *Narrator) Running() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.running
}

// Start transitions Idle -> Running. A no-op when already Running,
// when the store is empty, or when the host has no speech capability.
func (n *Narrator) Start() {
	n.mu.Lock()
	if n.running || n.store.Len() == 0 || !n.engine.Available() {
		n.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	n.cancel = cancel
	n.done = done
	n.running = true
	n.mu.Unlock()

	n.state.SetAuto(true)
	n.emit(Event{Kind: EventStarted, Index: n.state.Index()})

	go func() {
		defer close(done)
		for n.cycle(ctx) {
		}
	}()
}

// Stop transitions Running -> Idle, interrupting any in-flight
// utterance and preventing every remaining step of the current
// sequence. A no-op when Idle.
func (n *Narrator) Stop() {
	n.mu.Lock()
	if !n.running {
		n.mu.Unlock()
		return
	}
	cancel := n.cancel
	done := n.done
	n.running = false
	n.cancel = nil
	n.done = nil
	n.mu.Unlock()

	cancel()
	n.engine.Cancel()
	<-done

	n.state.SetAuto(false)
	n.emit(Event{Kind: EventStopped, Index: n.state.Index()})
}

// SpeakOnce speaks a single utterance immediately: anything currently
// speaking is cancelled first. This is the manual read-English /
// read-Chinese path; it is disabled while the loop is Running and
// without speech capability.
func (n *Narrator) SpeakOnce(text, languageTag, voiceID string) {
	if n.Running() || !n.engine.Available() {
		return
	}
	n.engine.Cancel()
	req := speech.Request{
		Text:        text,
		LanguageTag: languageTag,
		VoiceID:     voiceID,
		Rate:        n.state.Rate(),
	}
	go func() {
		_ = n.engine.Speak(context.Background(), req)
	}()
}

// cycle narrates the current card once: each language is read twice to
// aid memorization, with a short pause after every utterance and a
// longer one before advancing. The rate and voices are re-read from
// the session at every step so mid-run changes take effect at the next
// step. Returns false once cancelled.
func (n *Narrator) cycle(ctx context.Context) bool {
	rec := n.store.At(n.state.Index())
	for range 2 {
		en, _ := n.state.Voices()
		if !n.say(ctx, rec.English, LangEnglish, en) {
			return false
		}
		if !n.pause(ctx, shortPause) {
			return false
		}
		_, zh := n.state.Voices()
		if !n.say(ctx, rec.Chinese, LangChinese, zh) {
			return false
		}
		if !n.pause(ctx, shortPause) {
			return false
		}
	}
	if !n.pause(ctx, longPause) {
		return false
	}

	next := vocab.PickNext(n.state.Index(), n.store.Len())
	n.state.SetIndex(next)
	n.emit(Event{Kind: EventAdvanced, Index: next})
	return true
}

// say speaks one utterance and waits for it. Synthesis errors count as
// completion; only cancellation stops the sequence.
func (n *Narrator) say(ctx context.Context, text, languageTag, voiceID string) bool {
	if ctx.Err() != nil {
		return false
	}
	_ = n.engine.Speak(ctx, speech.Request{
		Text:        text,
		LanguageTag: languageTag,
		VoiceID:     voiceID,
		Rate:        n.state.Rate(),
	})
	return ctx.Err() == nil
}

// pause waits base/rate, floored at minPause.
func (n *Narrator) pause(ctx context.Context, base time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	rate := n.state.Rate()
	if rate <= 0 {
		rate = 1.0
	}
	d := time.Duration(float64(base) / rate)
	if d < minPause {
		d = minPause
	}
	n.sleep(ctx, d)
	return ctx.Err() == nil
}

func (n *Narrator) emit(ev Event) {
	select {
	case n.events <- ev:
	default:
	}
}

func sleepCtx(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
