// Package jobstatus implements the job-post lifecycle state machine.
//
// Valid status graph (soft delete is an absorbing flag, not a status):
//
//	PENDING ──► ACTIVE ──► ON_HOLD ──► ACTIVE
//	   ▲           │
//	   └───────────┤ (deactivate)
//	               └──► FULFILLED
//
// FULFILLED has no outgoing transitions. A post with deleted=true accepts
// no action and no transition.
//
// The role/action permission matrix and the role-agnostic transition table
// are derived from a single rule set so the two checks cannot drift apart.
package jobstatus

import (
	"errors"
	"fmt"
)

// Status values mirror the job post status column in PostgreSQL.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusOnHold    Status = "ON_HOLD"
	StatusFulfilled Status = "FULFILLED"
)

// Role identifies who is asking to act on a job post.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployer Role = "employer"
)

// Action is an operation performed against a job post.
type Action string

const (
	ActionCreate   Action = "create"
	ActionEdit     Action = "edit"
	ActionActivate Action = "activate"
	ActionHold     Action = "hold"
	ActionFulfill  Action = "fulfill"
	// ActionDelete covers both admin rejection of a pending post and
	// soft deletion; the post is never physically removed.
	ActionDelete Action = "delete"
	ActionClone  Action = "clone"
)

// ErrInvalidTransition is returned when a role/action/status combination or
// a status pair is not permitted by the state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// AllStatuses lists every recognized status.
var AllStatuses = []Status{StatusPending, StatusActive, StatusOnHold, StatusFulfilled}

// rule describes one (role, action) entry of the authoritative table:
// the statuses the action may start from and, when the action moves the
// post, the status it lands on.
type rule struct {
	sources []Status
	target  Status // empty when the action does not change status
}

// rules is the single authoritative permission table. The transition table
// used by IsValidTransition is derived from it in init.
var rules = map[Role]map[Action]rule{
	RoleAdmin: {
		ActionCreate:   {sources: AllStatuses},
		ActionEdit:     {sources: AllStatuses},
		ActionActivate: {sources: []Status{StatusPending, StatusOnHold}, target: StatusActive},
		ActionHold:     {sources: []Status{StatusActive}, target: StatusOnHold},
		ActionFulfill:  {sources: []Status{StatusActive}, target: StatusFulfilled},
		ActionDelete:   {sources: AllStatuses},
		ActionClone:    {sources: AllStatuses},
	},
	RoleEmployer: {
		ActionCreate: {sources: AllStatuses},
		ActionEdit:   {sources: []Status{StatusPending, StatusActive, StatusOnHold}},
		// Employers cannot reactivate a post an admin put on hold; only
		// admins release holds.
		ActionActivate: {sources: []Status{StatusPending}, target: StatusActive},
		ActionFulfill:  {sources: []Status{StatusActive}, target: StatusFulfilled},
		ActionDelete:   {sources: []Status{StatusPending, StatusActive, StatusOnHold}},
		ActionClone:    {sources: AllStatuses},
	},
}

// validTransitions is derived from rules plus the admin deactivation edge.
var validTransitions = map[Status][]Status{}

func init() {
	for _, actions := range rules {
		for _, r := range actions {
			if r.target == "" {
				continue
			}
			for _, src := range r.sources {
				addTransition(src, r.target)
			}
		}
	}
	// Deactivation (ACTIVE -> PENDING) has no dedicated action; it is an
	// admin-side status write that must still pass the transition guard.
	addTransition(StatusActive, StatusPending)
}

func addTransition(from, to Status) {
	for _, t := range validTransitions[from] {
		if t == to {
			return
		}
	}
	validTransitions[from] = append(validTransitions[from], to)
}

// ParseStatus converts a raw string to a Status, returning an error for
// unknown values.
func ParseStatus(s string) (Status, error) {
	st := Status(s)
	switch st {
	case StatusPending, StatusActive, StatusOnHold, StatusFulfilled:
		return st, nil
	}
	return "", fmt.Errorf("unknown job status %q", s)
}

// ParseRole converts a raw string to a Role, returning an error for unknown
// values. Callers must parse before reaching CanPerformAction.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleAdmin, RoleEmployer:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ParseAction converts a raw string to an Action, returning an error for
// unknown values.
func ParseAction(s string) (Action, error) {
	a := Action(s)
	switch a {
	case ActionCreate, ActionEdit, ActionActivate, ActionHold, ActionFulfill, ActionDelete, ActionClone:
		return a, nil
	}
	return "", fmt.Errorf("unknown job action %q", s)
}

// CanPerformAction reports whether role may perform action on a post that is
// currently in status with the given deleted flag.
//
// A deleted post is frozen: every action is refused. Unrecognized actions and
// statuses return false so new enum values added upstream degrade to a
// denial instead of a fault. An unrecognized role is a caller bug (roles must
// come through ParseRole) and panics.
func CanPerformAction(role Role, status Status, action Action, deleted bool) bool {
	actions, ok := rules[role]
	if !ok {
		panic(fmt.Sprintf("jobstatus: unrecognized role %q", role))
	}

	if deleted {
		return false
	}

	r, ok := actions[action]
	if !ok {
		return false
	}

	for _, src := range r.sources {
		if src == status {
			return true
		}
	}
	return false
}

// IsValidTransition reports whether moving current -> target is a legal
// status write, independent of role. It is the second guard callers run
// inside the transaction that commits the write.
func IsValidTransition(current, target Status, deleted bool) bool {
	if deleted {
		return false
	}
	for _, t := range validTransitions[current] {
		if t == target {
			return true
		}
	}
	return false
}

// TargetStatus returns the status the action moves a post to, if the action
// changes status at all.
func TargetStatus(role Role, action Action) (Status, bool) {
	r, ok := rules[role][action]
	if !ok || r.target == "" {
		return "", false
	}
	return r.target, true
}

// TransitionResult is the committed outcome of a legal transition. OnHold is
// a projection of Status and is derived here and nowhere else.
type TransitionResult struct {
	Status Status
	OnHold bool
}

// ApplyTransition validates current -> target and returns the resulting
// status together with the derived on-hold flag. It is the single place the
// on-hold projection is computed; storage writes must take it from here.
func ApplyTransition(current, target Status, deleted bool) (TransitionResult, error) {
	if !IsValidTransition(current, target, deleted) {
		return TransitionResult{}, fmt.Errorf("%w: %s -> %s (deleted=%t)", ErrInvalidTransition, current, target, deleted)
	}
	return TransitionResult{
		Status: target,
		OnHold: target == StatusOnHold,
	}, nil
}

// AcceptsApplications reports whether candidates may apply to or be matched
// against a post in this state. Only live ACTIVE posts qualify.
func AcceptsApplications(status Status, deleted bool) bool {
	return !deleted && status == StatusActive
}
