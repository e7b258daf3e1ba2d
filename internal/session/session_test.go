package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestManager_Login(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		m := NewManager(testSecret, "utmka", time.Hour)

		for _, email := range []string{"", "   ", "not-an-email"} {
			token, sess, err := m.Login(email)

			assert.ErrorIs(t, err, ErrInvalidEmail)
			assert.Empty(t, token)
			assert.Nil(t, sess)
		}
	})

	t.Run("success", func(t *testing.T) {
		m := NewManager(testSecret, "utmka", time.Hour)

		token, sess, err := m.Login("  User@Example.com ")
		require.NoError(t, err)

		assert.NotEmpty(t, token)
		assert.Equal(t, "user@example.com", sess.Email)
		assert.NotEmpty(t, sess.TokenID)

		got, err := m.Authenticate(token)
		require.NoError(t, err)
		assert.Equal(t, sess.UserID, got.UserID)
		assert.Equal(t, sess.Email, got.Email)
	})

	t.Run("same email maps to same user", func(t *testing.T) {
		m := NewManager(testSecret, "utmka", time.Hour)

		_, a, err := m.Login("user@example.com")
		require.NoError(t, err)
		_, b, err := m.Login("USER@example.com")
		require.NoError(t, err)

		assert.Equal(t, a.UserID, b.UserID)
		assert.NotEqual(t, a.TokenID, b.TokenID)
	})
}

func TestManager_Authenticate(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		m := NewManager(testSecret, "utmka", time.Hour)

		_, err := m.Authenticate("")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("garbage token", func(t *testing.T) {
		m := NewManager(testSecret, "utmka", time.Hour)

		_, err := m.Authenticate("not.a.token")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("foreign secret", func(t *testing.T) {
		issuer := NewManager("another-secret-that-is-also-long-enough", "utmka", time.Hour)
		token, _, err := issuer.Login("user@example.com")
		require.NoError(t, err)

		_, err = NewManager(testSecret, "utmka", time.Hour).Authenticate(token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("foreign issuer", func(t *testing.T) {
		token, _, err := NewManager(testSecret, "other", time.Hour).Login("user@example.com")
		require.NoError(t, err)

		_, err = NewManager(testSecret, "utmka", time.Hour).Authenticate(token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("expired", func(t *testing.T) {
		m := NewManager(testSecret, "utmka", time.Minute)
		token, _, err := m.Login("user@example.com")
		require.NoError(t, err)

		m.now = func() time.Time { return time.Now().Add(2 * time.Minute) }

		_, err = m.Authenticate(token)
		assert.ErrorIs(t, err, ErrUnauthorized)
	})
}

func TestManager_Logout(t *testing.T) {
	m := NewManager(testSecret, "utmka", time.Hour)
	token, _, err := m.Login("user@example.com")
	require.NoError(t, err)

	require.NoError(t, m.Logout(token))

	_, err = m.Authenticate(token)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = m.Logout(token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestManager_Subscribe(t *testing.T) {
	m := NewManager(testSecret, "utmka", time.Hour)

	var events []Event
	unsubscribe := m.Subscribe(func(e Event) {
		events = append(events, e)
	})

	token, _, err := m.Login("user@example.com")
	require.NoError(t, err)
	require.NoError(t, m.Logout(token))

	require.Len(t, events, 2)
	assert.Equal(t, LoggedIn, events[0].Kind)
	assert.Equal(t, LoggedOut, events[1].Kind)
	assert.Equal(t, "user@example.com", events[1].Session.Email)

	unsubscribe()

	_, _, err = m.Login("user@example.com")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	sess := &Session{Email: "user@example.com"}
	got, ok := FromContext(WithContext(context.Background(), sess))

	assert.True(t, ok)
	assert.Same(t, sess, got)
}

func TestEventKind_String(t *testing.T) {
	assert.Equal(t, "logged_in", LoggedIn.String())
	assert.Equal(t, "logged_out", LoggedOut.String())
	assert.Equal(t, "unknown", EventKind(0).String())
}
