package speech

import (
	"context"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/cwhuang/recite/internal/voice"
)

// baseWPM is the speaking rate a multiplier of 1.0 maps to.
const baseWPM = 175

// CommandEngine drives an espeak-ng compatible synthesizer binary.
// The binary is capability-detected at construction; when it is
// missing every operation degrades to a no-op.
type CommandEngine struct {
	path string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewCommandEngine resolves the synthesizer command on PATH. A missing
// binary is not an error; the engine just reports unavailable.
func NewCommandEngine(command string) *CommandEngine {
	path, err := exec.LookPath(command)
	if err != nil {
		return &CommandEngine{}
	}
	return &CommandEngine{path: path}
}

// Available reports whether the synthesizer binary was found.
func (e *CommandEngine) Available() bool {
	return e.path != ""
}

// Voices enumerates the synthesizer's voice list.
func (e *CommandEngine) Voices() []voice.Descriptor {
	if !e.Available() {
		return nil
	}
	out, err := exec.Command(e.path, "--voices").Output()
	if err != nil {
		return nil
	}
	return ParseVoiceList(string(out))
}

// ParseVoiceList parses `espeak-ng --voices` output:
//
//	Pty Language       Age/Gender VoiceName          File
//	 5  en-us           --/M      English_(America)  gmw/en-US
func ParseVoiceList(out string) []voice.Descriptor {
	var voices []voice.Descriptor
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if i == 0 {
			// Column header.
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 5 {
			continue
		}
		voices = append(voices, voice.Descriptor{
			DisplayName: strings.ReplaceAll(fields[3], "_", " "),
			LanguageTag: fields[1],
			ID:          fields[3],
		})
	}
	return voices
}

// Speak runs the synthesizer for one utterance and waits for it to
// exit. Cancel (or ctx) kills the process mid-utterance.
func (e *CommandEngine) Speak(ctx context.Context, req Request) error {
	if !e.Available() || strings.TrimSpace(req.Text) == "" {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	e.mu.Lock()
	e.cancel = cancel
	e.mu.Unlock()
	defer func() {
		cancel()
		e.mu.Lock()
		e.cancel = nil
		e.mu.Unlock()
	}()

	rate := req.Rate
	if rate <= 0 {
		rate = 1.0
	}
	args := []string{"-s", strconv.Itoa(int(baseWPM * rate))}
	switch {
	case req.VoiceID != "":
		args = append(args, "-v", req.VoiceID)
	case req.LanguageTag != "":
		args = append(args, "-v", strings.ToLower(req.LanguageTag))
	}
	args = append(args, "--", req.Text)

	return exec.CommandContext(ctx, e.path, args...).Run()
}

// Cancel interrupts the current utterance, if any.
func (e *CommandEngine) Cancel() {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
	}
	e.mu.Unlock()
}
