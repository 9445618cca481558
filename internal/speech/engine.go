// Package speech abstracts the host text-to-speech capability behind
// an engine interface so that narration can be driven by a fake in
// tests and degrades to no-ops on hosts without synthesis support.
package speech

import (
	"context"

	"github.com/cwhuang/recite/internal/voice"
)

// Request describes one utterance.
type Request struct {
	Text        string
	LanguageTag string // BCP 47 tag, e.g. "en-US", "zh-TW"
	VoiceID     string // engine voice identifier; "" lets the tag decide
	Rate        float64
}

// Engine is the injected text-to-speech capability.
type Engine interface {
	// Voices enumerates the currently available synthesis voices.
	Voices() []voice.Descriptor

	// Speak synthesizes one utterance and blocks until it finishes.
	// Natural completion, synthesis errors, and cancellation all end
	// the call; the caller treats every return as "done, proceed".
	Speak(ctx context.Context, req Request) error

	// Cancel interrupts any in-flight utterance immediately.
	Cancel()

	// Available reports whether the host can synthesize speech at all.
	Available() bool
}

// NullEngine is the stand-in used when the host has no synthesis
// capability. Every operation is a no-op.
type NullEngine struct{}

func (NullEngine) Voices() []voice.Descriptor { return nil }

func (NullEngine) Speak(context.Context, Request) error { return nil }

func (NullEngine) Cancel() {}

func (NullEngine) Available() bool { return false }
