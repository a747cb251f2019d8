// Package proto implements the line-oriented request/response shell
// described in spec.md §6 and SPEC_FULL.md §6: parsing commands off
// stdin, dispatching them to an *engine.Engine, and rendering replies.
// None of the invariants the spec cares about live here — this package is
// the "trivial shell" spec.md §1 treats as an external collaborator,
// promoted to a real, tested component per SPEC_FULL.md §6.
package proto

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/doctorsched/scheduler/internal/engine"
)

// command names, the first whitespace-separated token of a request line.
const (
	cmdAdd     = "ADD"
	cmdSuggest = "SUGGEST"
	cmdUndo    = "UNDO"
	cmdGet     = "GET"
	cmdAlert   = "ALERT"
	cmdExit    = "EXIT"
)

// request is a parsed, type-checked command line. Only the fields that the
// command named by Name carries are populated; the rest stay zero.
type request struct {
	Name string

	Doctor   int
	Start    int
	Duration int
	Kind     engine.Kind
	Break    engine.BreakKind
	Desc     string

	DayStart int
	Current  int
}

// parseErr is returned for a malformed request line: wrong arity, or a
// field that doesn't parse as the expected integer. Per spec.md §7,
// "precondition violations from a malformed command are swallowed by the
// shell and produce no core-level error" — parseErr never reaches the
// engine.
type parseErr struct {
	msg string
}

func (e *parseErr) Error() string { return e.msg }

// parseRequest tokenizes one line and validates its shape. It never
// mutates engine state.
func parseRequest(line string) (request, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return request{}, &parseErr{"empty command"}
	}

	name := fields[0]
	args := fields[1:]

	switch name {
	case cmdAdd:
		if len(args) != 6 {
			return request{}, &parseErr{"ADD requires 6 fields"}
		}
		doctor, start, dur, kind, brk, err := parseAddInts(args[:5])
		if err != nil {
			return request{}, err
		}
		return request{
			Name:     cmdAdd,
			Doctor:   doctor,
			Start:    start,
			Duration: dur,
			Kind:     engine.Kind(kind),
			Break:    engine.BreakKind(brk),
			Desc:     args[5],
		}, nil

	case cmdSuggest:
		if len(args) != 3 {
			return request{}, &parseErr{"SUGGEST requires 3 fields"}
		}
		doctor, err := parseInt(args[0], "doctor")
		if err != nil {
			return request{}, err
		}
		dur, err := parseInt(args[1], "duration")
		if err != nil {
			return request{}, err
		}
		dayStart, err := parseInt(args[2], "day_start_mins")
		if err != nil {
			return request{}, err
		}
		return request{Name: cmdSuggest, Doctor: doctor, Duration: dur, DayStart: dayStart}, nil

	case cmdUndo:
		if len(args) != 1 {
			return request{}, &parseErr{"UNDO requires 1 field"}
		}
		doctor, err := parseInt(args[0], "doctor")
		if err != nil {
			return request{}, err
		}
		return request{Name: cmdUndo, Doctor: doctor}, nil

	case cmdGet:
		if len(args) != 1 {
			return request{}, &parseErr{"GET requires 1 field"}
		}
		doctor, err := parseInt(args[0], "doctor")
		if err != nil {
			return request{}, err
		}
		return request{Name: cmdGet, Doctor: doctor}, nil

	case cmdAlert:
		if len(args) != 2 {
			return request{}, &parseErr{"ALERT requires 2 fields"}
		}
		doctor, err := parseInt(args[0], "doctor")
		if err != nil {
			return request{}, err
		}
		current, err := parseInt(args[1], "current_mins")
		if err != nil {
			return request{}, err
		}
		return request{Name: cmdAlert, Doctor: doctor, Current: current}, nil

	case cmdExit:
		if len(args) != 0 {
			return request{}, &parseErr{"EXIT takes no fields"}
		}
		return request{Name: cmdExit}, nil

	default:
		return request{}, &parseErr{fmt.Sprintf("unknown command %q", name)}
	}
}

func parseInt(s, field string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, &parseErr{fmt.Sprintf("invalid %s: %q", field, s)}
	}
	return v, nil
}

func parseAddInts(fields []string) (doctor, start, dur, kind, brk int, err error) {
	names := []string{"doctor", "start", "duration", "kind", "break_kind"}
	out := make([]int, 5)
	for i, f := range fields {
		out[i], err = parseInt(f, names[i])
		if err != nil {
			return
		}
	}
	return out[0], out[1], out[2], out[3], out[4], nil
}
