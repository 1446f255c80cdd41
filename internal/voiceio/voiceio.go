// Package voiceio wraps speech-to-text input and text-to-speech output
// behind small interfaces so the chat controller never touches engine
// details. The exec-backed implementations shell out to user-configured
// commands (say, espeak, whisper wrappers); a null speaker serves
// voice-off mode.
package voiceio

import (
	"context"
	"errors"
)

// ErrNotSupported is returned when no engine command is configured.
var ErrNotSupported = errors.New("voiceio: no engine command configured")

// Recognizer converts one spoken utterance into text. Recognition is
// single-shot: each call captures one utterance and returns.
type Recognizer interface {
	Recognize(ctx context.Context) (string, error)
}

// Speaker converts agent reply text into audio. Utterances queue in
// order; Cancel drops the in-flight utterance and the whole queue
// before returning, so Speaking reports false the moment Cancel
// returns.
type Speaker interface {
	Speak(text string)
	Cancel()
	Speaking() bool
}

// Events carries speaker lifecycle callbacks, mirroring the start/end/
// error events of an utterance. Any field may be nil.
type Events struct {
	OnStart func()
	OnEnd   func()
	OnError func(error)
}

func (e Events) start() {
	if e.OnStart != nil {
		e.OnStart()
	}
}

func (e Events) end() {
	if e.OnEnd != nil {
		e.OnEnd()
	}
}

func (e Events) error(err error) {
	if e.OnError != nil {
		e.OnError(err)
	}
}

// NullSpeaker discards all utterances. Used when voice output is off.
type NullSpeaker struct{}

// Speak discards the utterance.
func (NullSpeaker) Speak(string) {}

// Cancel is a no-op.
func (NullSpeaker) Cancel() {}

// Speaking always reports false.
func (NullSpeaker) Speaking() bool { return false }
