package proto

import "github.com/doctorsched/scheduler/internal/engine"

// eventDTO is the wire shape of one GET array element, matching spec.md
// §6's sample payload exactly. The engine package never imports
// encoding/json itself (SPEC_FULL.md §6.2) — this DTO and its conversion
// live entirely in the shell.
type eventDTO struct {
	ID       int    `json:"id"`
	Start    int    `json:"start"`
	Duration int    `json:"duration"`
	Type     int    `json:"type"`
	Break    int    `json:"break"`
	Desc     string `json:"desc"`
}

func toDTO(e engine.Event) eventDTO {
	return eventDTO{
		ID:       e.ID,
		Start:    e.Start,
		Duration: e.Duration,
		Type:     int(e.Kind),
		Break:    int(e.BreakKind),
		Desc:     e.Description,
	}
}

func toDTOs(events []engine.Event) []eventDTO {
	out := make([]eventDTO, len(events))
	for i, e := range events {
		out[i] = toDTO(e)
	}
	return out
}
