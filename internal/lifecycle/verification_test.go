package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingNGO() User {
	return User{ID: "ngo-5", Role: RoleNGO, Verification: VerificationPending, Organization: "Food Bank"}
}

func TestEngine_Verify(t *testing.T) {
	engine := newTestEngine()

	t.Run("admin verifies", func(t *testing.T) {
		res, err := engine.Verify(pendingNGO(), admin, VerificationVerified, " documents ok ")
		require.NoError(t, err)

		assert.Equal(t, VerificationVerified, res.User.Verification)
		assert.Equal(t, "documents ok", res.User.VerificationNotes)
		assert.Equal(t, admin.ID, res.User.VerifiedBy)
		require.NotNil(t, res.User.VerifiedAt)

		assert.Equal(t, EventVerificationUpdated, res.Event.Type)
		assert.Equal(t, "ngo-5", res.Event.UserID)
		assert.Empty(t, res.Event.RequestID)
		assert.Equal(t, "verified", res.Event.NewStatus)
		assert.True(t, res.Event.Recipients.Includes("someone", RoleAdmin))
		assert.True(t, res.Event.Recipients.Includes("ngo-5", RoleNGO))
	})

	t.Run("rejection is terminal too", func(t *testing.T) {
		res, err := engine.Verify(pendingNGO(), admin, VerificationRejected, "")
		require.NoError(t, err)

		_, err = engine.Verify(res.User, admin, VerificationVerified, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("only admins", func(t *testing.T) {
		_, err := engine.Verify(pendingNGO(), ngo, VerificationVerified, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("donors are never verified", func(t *testing.T) {
		_, err := engine.Verify(User{ID: "d", Role: RoleDonor}, admin, VerificationVerified, "")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("unknown decision", func(t *testing.T) {
		_, err := engine.Verify(pendingNGO(), admin, VerificationPending, "")
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestUser_Verified(t *testing.T) {
	assert.True(t, User{Role: RoleDonor}.Verified())
	assert.False(t, User{Role: RoleVolunteer, Verification: VerificationPending}.Verified())
	assert.True(t, User{Role: RoleVolunteer, Verification: VerificationVerified}.Verified())
}

func TestUser_HasCapacity(t *testing.T) {
	u := volunteerUser("v")
	assert.True(t, u.HasCapacity())

	u.ActiveTasks = 1
	assert.False(t, u.HasCapacity())

	u.TaskCapacity = 2
	assert.True(t, u.HasCapacity())

	u.Available = false
	assert.False(t, u.HasCapacity())

	zero := volunteerUser("z")
	zero.TaskCapacity = 0
	assert.True(t, zero.HasCapacity())
}
