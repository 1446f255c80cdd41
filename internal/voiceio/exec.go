package voiceio

import (
	"context"
	"os/exec"
	"strings"
	"sync"
)

// textPlaceholder in an argument list is replaced with the utterance
// text; without it the text is appended as the final argument.
const textPlaceholder = "{}"

// ExecSpeaker speaks by running a TTS command per utterance.
type ExecSpeaker struct {
	name   string
	args   []string
	events Events

	mu       sync.Mutex
	queue    []string
	speaking bool
	running  bool
	cancel   context.CancelFunc
	gen      int
}

// NewExecSpeaker creates a speaker that runs name with args for each
// utterance.
func NewExecSpeaker(name string, args []string, events Events) *ExecSpeaker {
	return &ExecSpeaker{name: name, args: args, events: events}
}

// Speak enqueues text for playback and starts the playback worker if
// idle. Utterances play strictly in enqueue order.
func (s *ExecSpeaker) Speak(text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, text)
	if !s.running {
		s.running = true
		go s.run(s.gen)
	}
}

// Cancel stops the in-flight utterance and empties the queue. It is
// synchronous from the caller's perspective: Speaking reports false as
// soon as Cancel returns, and no queued utterance survives.
func (s *ExecSpeaker) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.queue = nil
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.speaking = false
}

// Speaking reports whether an utterance is currently playing.
func (s *ExecSpeaker) Speaking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.speaking
}

// run drains the queue until it is empty or the generation changes.
func (s *ExecSpeaker) run(gen int) {
	for {
		s.mu.Lock()
		if gen != s.gen || len(s.queue) == 0 {
			s.running = false
			s.mu.Unlock()
			return
		}
		text := s.queue[0]
		s.queue = s.queue[1:]

		ctx, cancel := context.WithCancel(context.Background())
		s.cancel = cancel
		s.speaking = true
		s.mu.Unlock()

		s.events.start()
		err := s.play(ctx, text)
		cancel()

		s.mu.Lock()
		canceled := gen != s.gen
		if canceled {
			// A Speak may have enqueued for the new generation while
			// this utterance was being killed; hand the queue to a
			// fresh worker, otherwise free the worker slot.
			if len(s.queue) > 0 {
				go s.run(s.gen)
			} else {
				s.running = false
			}
			s.mu.Unlock()
			// The cancel already reported nothing is speaking; its
			// utterance gets no end/error event.
			return
		}
		s.speaking = false
		s.cancel = nil
		s.mu.Unlock()
		if err != nil {
			s.events.error(err)
		} else {
			s.events.end()
		}
	}
}

func (s *ExecSpeaker) play(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, s.name, buildArgs(s.args, text)...)
	return cmd.Run()
}

// ExecRecognizer performs single-shot speech recognition by running a
// command that records one utterance and prints the transcript.
type ExecRecognizer struct {
	name string
	args []string
}

// NewExecRecognizer creates a recognizer backed by the given command.
func NewExecRecognizer(name string, args []string) *ExecRecognizer {
	return &ExecRecognizer{name: name, args: args}
}

// Recognize runs the recognition command and returns its trimmed
// stdout as the transcript.
func (r *ExecRecognizer) Recognize(ctx context.Context) (string, error) {
	if r.name == "" {
		return "", ErrNotSupported
	}
	out, err := exec.CommandContext(ctx, r.name, r.args...).Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func buildArgs(args []string, text string) []string {
	out := make([]string, 0, len(args)+1)
	replaced := false
	for _, arg := range args {
		if arg == textPlaceholder {
			out = append(out, text)
			replaced = true
			continue
		}
		out = append(out, arg)
	}
	if !replaced {
		out = append(out, text)
	}
	return out
}
