package jobstatus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "ACTIVE", "ON_HOLD", "FULFILLED"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	for _, s := range []string{"", "pending", "RUNNING", "DELETED"} {
		_, err := ParseStatus(s)
		assert.Error(t, err, "ParseStatus(%q) should fail", s)
	}
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "employer"} {
		got, err := ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, Role(s), got)
	}

	for _, s := range []string{"", "candidate", "ADMIN"} {
		_, err := ParseRole(s)
		assert.Error(t, err, "ParseRole(%q) should fail", s)
	}
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"create", "edit", "activate", "hold", "fulfill", "delete", "clone"} {
		got, err := ParseAction(s)
		require.NoError(t, err)
		assert.Equal(t, Action(s), got)
	}

	_, err := ParseAction("reject")
	assert.Error(t, err)
}

func TestCanPerformAction_Matrix(t *testing.T) {
	tests := []struct {
		name   string
		role   Role
		status Status
		action Action
		want   bool
	}{
		// edit
		{"admin edits pending", RoleAdmin, StatusPending, ActionEdit, true},
		{"admin edits fulfilled", RoleAdmin, StatusFulfilled, ActionEdit, true},
		{"employer edits active", RoleEmployer, StatusActive, ActionEdit, true},
		{"employer edits on hold", RoleEmployer, StatusOnHold, ActionEdit, true},
		{"employer cannot edit fulfilled", RoleEmployer, StatusFulfilled, ActionEdit, false},

		// activate
		{"admin activates pending", RoleAdmin, StatusPending, ActionActivate, true},
		{"admin activates on hold", RoleAdmin, StatusOnHold, ActionActivate, true},
		{"admin cannot activate active", RoleAdmin, StatusActive, ActionActivate, false},
		{"admin cannot activate fulfilled", RoleAdmin, StatusFulfilled, ActionActivate, false},
		{"employer activates pending", RoleEmployer, StatusPending, ActionActivate, true},
		{"employer cannot activate on hold", RoleEmployer, StatusOnHold, ActionActivate, false},

		// hold
		{"admin holds active", RoleAdmin, StatusActive, ActionHold, true},
		{"admin cannot hold pending", RoleAdmin, StatusPending, ActionHold, false},
		{"employer cannot hold active", RoleEmployer, StatusActive, ActionHold, false},

		// fulfill
		{"admin fulfills active", RoleAdmin, StatusActive, ActionFulfill, true},
		{"employer fulfills active", RoleEmployer, StatusActive, ActionFulfill, true},
		{"employer cannot fulfill pending", RoleEmployer, StatusPending, ActionFulfill, false},
		{"admin cannot fulfill on hold", RoleAdmin, StatusOnHold, ActionFulfill, false},

		// delete
		{"admin rejects pending", RoleAdmin, StatusPending, ActionDelete, true},
		{"admin deletes fulfilled", RoleAdmin, StatusFulfilled, ActionDelete, true},
		{"employer deletes active", RoleEmployer, StatusActive, ActionDelete, true},
		{"employer cannot delete fulfilled", RoleEmployer, StatusFulfilled, ActionDelete, false},

		// clone
		{"admin clones fulfilled", RoleAdmin, StatusFulfilled, ActionClone, true},
		{"employer clones on hold", RoleEmployer, StatusOnHold, ActionClone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerformAction(tt.role, tt.status, tt.action, false))
		})
	}
}

func TestCanPerformAction_DeletedIsFrozen(t *testing.T) {
	actions := []Action{ActionCreate, ActionEdit, ActionActivate, ActionHold, ActionFulfill, ActionDelete, ActionClone}
	for _, role := range []Role{RoleAdmin, RoleEmployer} {
		for _, status := range AllStatuses {
			for _, action := range actions {
				assert.False(t, CanPerformAction(role, status, action, true),
					"%s/%s/%s on deleted post should be refused", role, status, action)
			}
		}
	}
}

func TestCanPerformAction_UnknownInputs(t *testing.T) {
	// Unknown actions and statuses deny rather than fault.
	assert.False(t, CanPerformAction(RoleAdmin, StatusActive, Action("archive"), false))
	assert.False(t, CanPerformAction(RoleAdmin, Status("RUNNING"), ActionEdit, false))

	// An unknown role never comes out of ParseRole; reaching the engine with
	// one is a caller bug.
	assert.Panics(t, func() {
		CanPerformAction(Role("candidate"), StatusActive, ActionEdit, false)
	})
}

func TestIsValidTransition_DeclaredEdges(t *testing.T) {
	legal := []struct{ from, to Status }{
		{StatusPending, StatusActive},
		{StatusActive, StatusOnHold},
		{StatusActive, StatusFulfilled},
		{StatusActive, StatusPending},
		{StatusOnHold, StatusActive},
	}
	for _, e := range legal {
		assert.True(t, IsValidTransition(e.from, e.to, false), "%s -> %s should be legal", e.from, e.to)
	}
}

func TestIsValidTransition_FullCrossProduct(t *testing.T) {
	legal := map[[2]Status]bool{
		{StatusPending, StatusActive}:   true,
		{StatusActive, StatusOnHold}:    true,
		{StatusActive, StatusFulfilled}: true,
		{StatusActive, StatusPending}:   true,
		{StatusOnHold, StatusActive}:    true,
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := legal[[2]Status{from, to}]
			assert.Equal(t, want, IsValidTransition(from, to, false),
				"IsValidTransition(%s, %s, false)", from, to)
		}
	}
}

func TestIsValidTransition_NoSelfTransitions(t *testing.T) {
	for _, s := range AllStatuses {
		assert.False(t, IsValidTransition(s, s, false), "self transition %s should be illegal", s)
	}
}

func TestIsValidTransition_DeletedIsAbsorbing(t *testing.T) {
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			assert.False(t, IsValidTransition(from, to, true),
				"deleted post must refuse %s -> %s", from, to)
		}
	}
}

func TestIsValidTransition_FulfilledIsTerminal(t *testing.T) {
	for _, to := range AllStatuses {
		assert.False(t, IsValidTransition(StatusFulfilled, to, false))
	}
}

func TestFulfillRoundTrip(t *testing.T) {
	// The action matrix and the transition table agree on fulfillment.
	require.True(t, CanPerformAction(RoleEmployer, StatusActive, ActionFulfill, false))

	target, ok := TargetStatus(RoleEmployer, ActionFulfill)
	require.True(t, ok)
	assert.Equal(t, StatusFulfilled, target)
	assert.True(t, IsValidTransition(StatusActive, StatusFulfilled, false))
}

func TestApplyTransition(t *testing.T) {
	tests := []struct {
		name       string
		current    Status
		target     Status
		deleted    bool
		wantErr    bool
		wantOnHold bool
	}{
		{"activate pending", StatusPending, StatusActive, false, false, false},
		{"hold active", StatusActive, StatusOnHold, false, false, true},
		{"release hold", StatusOnHold, StatusActive, false, false, false},
		{"fulfill active", StatusActive, StatusFulfilled, false, false, false},
		{"deactivate active", StatusActive, StatusPending, false, false, false},
		{"illegal pair", StatusPending, StatusFulfilled, false, true, false},
		{"deleted post", StatusPending, StatusActive, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := ApplyTransition(tt.current, tt.target, tt.deleted)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTransition)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.target, res.Status)
			assert.Equal(t, tt.wantOnHold, res.OnHold)
		})
	}
}

func TestApplyTransition_AdminActivateScenario(t *testing.T) {
	require.True(t, CanPerformAction(RoleAdmin, StatusPending, ActionActivate, false))

	res, err := ApplyTransition(StatusPending, StatusActive, false)
	require.NoError(t, err)
	assert.Equal(t, StatusActive, res.Status)
	assert.False(t, res.OnHold)
}

func TestAcceptsApplications(t *testing.T) {
	assert.True(t, AcceptsApplications(StatusActive, false))
	assert.False(t, AcceptsApplications(StatusActive, true))
	assert.False(t, AcceptsApplications(StatusPending, false))
	assert.False(t, AcceptsApplications(StatusOnHold, false))
	assert.False(t, AcceptsApplications(StatusFulfilled, false))
}
