package proto

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/doctorsched/scheduler/internal/engine"
)

// ErrExit is returned by Shell.Serve when an EXIT command was received and
// the process should terminate. Per spec.md §6, EXIT has no reply.
var ErrExit = errors.New("proto: EXIT received")

// Shell drives the command loop described in spec.md §6: one line in, one
// line out, synchronously, until EXIT or end of input. It owns no engine
// invariants of its own — it validates shape, dispatches to Engine, and
// renders the reply.
type Shell struct {
	engine *engine.Engine
	out    *bufio.Writer
	log    zerolog.Logger

	instance uuid.UUID
}

// NewShell builds a Shell over an existing Engine. w is wrapped in a
// bufio.Writer that Serve flushes after every reply line, emulating the C
// source's unbuffered stdout without requiring a literal setvbuf
// equivalent (SPEC_FULL.md §6.2).
func NewShell(e *engine.Engine, w io.Writer, logger zerolog.Logger) *Shell {
	return &Shell{
		engine:   e,
		out:      bufio.NewWriter(w),
		log:      logger,
		instance: uuid.New(),
	}
}

// scanLine is one line off the wire, or the scanner's terminal state once
// its goroutine has nothing left to read.
type scanLine struct {
	text string
	done bool
	err  error
}

// Serve reads one line from r, dispatches it, and writes the reply,
// repeating until r is exhausted, an EXIT command arrives, or ctx is
// canceled. It returns ErrExit on EXIT, nil on a clean EOF, the first I/O
// error encountered, or ctx.Err() if ctx is canceled first.
//
// The actual line reads happen on a separate goroutine so that a canceled
// ctx can make Serve return immediately even while that goroutine is
// still blocked inside r.Read (stdin has no portable way to interrupt an
// in-flight read). That goroutine is abandoned, not joined, when ctx
// fires — acceptable because Serve returning is itself the signal for the
// owning process to exit.
func (s *Shell) Serve(ctx context.Context, r io.Reader) error {
	s.log.Info().Str("instance", s.instance.String()).Msg("scheduler shell starting")

	lines := make(chan scanLine)
	go func() {
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanLine{text: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		select {
		case lines <- scanLine{done: true, err: scanner.Err()}:
		case <-ctx.Done():
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case l := <-lines:
			if l.done {
				return l.err
			}
			if l.text == "" {
				continue
			}

			req, err := parseRequest(l.text)
			if err != nil {
				// Malformed commands are swallowed by the shell (spec.md
				// §7): the engine is never called, and the process keeps
				// running.
				s.log.Warn().Err(err).Str("line", l.text).Msg("malformed command")
				if writeErr := s.writeLine(fmt.Sprintf("ERROR %s", err.Error())); writeErr != nil {
					return writeErr
				}
				continue
			}

			if req.Name == cmdExit {
				return ErrExit
			}

			reply, handleErr := s.handle(req)
			if handleErr != nil {
				return handleErr
			}
			if err := s.writeLine(reply); err != nil {
				return err
			}
		}
	}
}

func (s *Shell) writeLine(line string) error {
	if _, err := s.out.WriteString(line); err != nil {
		return err
	}
	if err := s.out.WriteByte('\n'); err != nil {
		return err
	}
	return s.out.Flush()
}

// handle dispatches one validated request to the engine and renders its
// reply, per the table in spec.md §6.
func (s *Shell) handle(req request) (string, error) {
	switch req.Name {
	case cmdAdd:
		s.log.Debug().
			Int("doctor", req.Doctor).
			Str("kind", req.Kind.String()).
			Str("break", req.Break.String()).
			Msg("add requested")
		_, err := s.engine.AddEvent(req.Doctor, req.Start, req.Duration, req.Kind, req.Break, req.Desc)
		return renderAddReply(err), nil

	case cmdSuggest:
		slot, err := s.engine.SuggestSlot(req.Doctor, req.Duration, req.DayStart)
		if err != nil {
			s.log.Warn().Err(err).Msg("suggest on invalid doctor")
			return "SUGGESTION -1", nil
		}
		return fmt.Sprintf("SUGGESTION %d", slot), nil

	case cmdUndo:
		if err := s.engine.UndoLast(req.Doctor); err != nil {
			s.log.Warn().Err(err).Msg("undo on invalid doctor")
		}
		return "OK", nil

	case cmdGet:
		events, err := s.engine.GetEventsOrdered(req.Doctor)
		if err != nil {
			s.log.Warn().Err(err).Msg("get on invalid doctor")
			return "[]", nil
		}
		body, jsonErr := json.Marshal(toDTOs(events))
		if jsonErr != nil {
			// toDTOs only ever produces marshalable primitives; this
			// cannot happen, kept as a defensive fallback rather than a
			// panic per spec.md §4.8.
			s.log.Error().Err(jsonErr).Msg("failed to marshal GET reply")
			return "[]", nil
		}
		return string(body), nil

	case cmdAlert:
		diff, err := s.engine.TimeToNextEvent(req.Doctor, req.Current)
		if err != nil {
			s.log.Warn().Err(err).Msg("alert on invalid doctor")
			return "-1", nil
		}
		return strconv.Itoa(diff), nil

	default:
		return "", fmt.Errorf("proto: unreachable request name %q", req.Name)
	}
}

// renderAddReply maps an AddEvent outcome to the OK / COLLISION / MAX_EVENTS
// reply lines spec.md §6 specifies.
func renderAddReply(err error) string {
	if err == nil {
		return "OK"
	}
	var collision *engine.CollisionError
	if errors.As(err, &collision) {
		return fmt.Sprintf("COLLISION %d %d", collision.ExistingStart, collision.ExistingEnd)
	}
	if errors.Is(err, engine.ErrCapacityExceeded) {
		return "MAX_EVENTS"
	}
	// ErrInvalidDoctor / ErrInvalidArgument: parseRequest checks only arity
	// and integer syntax, so an out-of-range doctor id, a non-positive
	// duration or a negative start reaches the engine. These get their own
	// ERROR reply rather than being mapped to OK or MAX_EVENTS.
	return fmt.Sprintf("ERROR %s", err.Error())
}
