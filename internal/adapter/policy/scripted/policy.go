package scripted

import (
	"sort"

	"verdant/internal/app/ports"
)

// Entry binds an hour of the game day to the action taken from then on.
type Entry struct {
	FromHour int
	Action   ports.BehaviorAction
}

// Policy is a deterministic daily routine. At each decision point it
// picks the entry with the latest FromHour not after the current hour.
// It never errors and never panics, which makes it the reference
// implementation for the selector's policy path.
type Policy struct {
	schedule []Entry
}

func New(entries []Entry) Policy {
	schedule := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.FromHour < 0 || e.FromHour > 23 {
			continue
		}
		schedule = append(schedule, e)
	}
	sort.Slice(schedule, func(i, j int) bool {
		return schedule[i].FromHour < schedule[j].FromHour
	})
	return Policy{schedule: schedule}
}

// DefaultRoutine is a villager's day: rest until morning, walk the town
// through the day, settle down at dusk.
func DefaultRoutine() Policy {
	return New([]Entry{
		{FromHour: 0, Action: ports.BehaviorNone},
		{FromHour: 8, Action: ports.BehaviorRight},
		{FromHour: 12, Action: ports.BehaviorDown},
		{FromHour: 16, Action: ports.BehaviorLeft},
		{FromHour: 20, Action: ports.BehaviorNone},
	})
}

func (p Policy) SelectAction(obs ports.PolicyObservation) (ports.BehaviorAction, error) {
	if !obs.WorldKnown || len(p.schedule) == 0 {
		return ports.BehaviorNone, nil
	}
	action := p.schedule[0].Action
	for _, e := range p.schedule {
		if e.FromHour > obs.Hour {
			break
		}
		action = e.Action
	}
	return action, nil
}
