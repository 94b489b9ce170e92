package replan

import (
	"slices"
	"time"
)

// PlanChange is a committed change descriptor as stored with the trip plan.
type PlanChange struct {
	Step        string
	Description string
}

// Plan is the last committed trip plan of a group. Version 0 means the group
// has never been replanned.
type Plan struct {
	Version     int
	JobID       string
	Trigger     Trigger
	CommittedAt time.Time
	Changes     []PlanChange
}

// Clone returns an independent copy of the plan.
func (p Plan) Clone() Plan {
	p.Changes = slices.Clone(p.Changes)
	return p
}

// Next returns the plan that results from committing changes produced by
// jobID.
func (p Plan) Next(jobID string, trigger Trigger, changes []Change, now time.Time) Plan {
	committed := make([]PlanChange, len(changes))
	for i, c := range changes {
		committed[i] = PlanChange{Step: c.Step, Description: c.Description}
	}
	return Plan{
		Version:     p.Version + 1,
		JobID:       jobID,
		Trigger:     trigger,
		CommittedAt: now,
		Changes:     committed,
	}
}
