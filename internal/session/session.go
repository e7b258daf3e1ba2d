// Package session replaces the ad hoc "is logged in" flag with an explicit
// session object. A Manager issues signed tokens on login, revokes them on
// logout and notifies subscribers about both transitions.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrUnauthorized is returned when a token is missing, invalid, expired or revoked.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidEmail is returned when login is attempted without an e-mail address.
	ErrInvalidEmail = errors.New("invalid email")
)

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID    uuid.UUID
	Email     string
	TokenID   string
	ExpiresAt time.Time
}

// EventKind is the kind of session transition.
type EventKind int

const (
	LoggedIn EventKind = iota + 1
	LoggedOut
)

func (k EventKind) String() string {
	switch k {
	case LoggedIn:
		return "logged_in"
	case LoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers on every transition.
type Event struct {
	Kind    EventKind
	Session Session
}

type claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// Manager issues and validates session tokens.
type Manager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time

	mu          sync.Mutex
	revoked     map[string]time.Time
	subscribers map[int]func(Event)
	nextSubID   int
}

// NewManager creates a manager signing HS256 tokens with secret.
func NewManager(secret, issuer string, ttl time.Duration) *Manager {
	return &Manager{
		secret:      []byte(secret),
		issuer:      issuer,
		ttl:         ttl,
		now:         time.Now,
		revoked:     make(map[string]time.Time),
		subscribers: make(map[int]func(Event)),
	}
}

// Subscribe registers fn to be called on login and logout.
// The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(Event)) (unsubscribe func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = fn

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		delete(m.subscribers, id)
	}
}

func (m *Manager) notify(e Event) {
	m.mu.Lock()
	subs := make([]func(Event), 0, len(m.subscribers))
	for _, fn := range m.subscribers {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(e)
	}
}

// Login starts a session for email and returns its signed token.
// The identity provider is a stub: any well-formed address is accepted.
func (m *Manager) Login(email string) (string, *Session, error) {
	const op = "session.Manager.Login"

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
	}

	tokenID, err := newTokenID()
	if err != nil {
		return "", nil, fmt.Errorf("%s: failed to generate token id: %w", op, err)
	}

	now := m.now()
	sess := &Session{
		UserID:    uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)),
		Email:     email,
		TokenID:   tokenID,
		ExpiresAt: now.Add(m.ttl),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.TokenID,
			Subject:   sess.UserID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(sess.ExpiresAt),
		},
		Email: sess.Email,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("%s: failed to sign token: %w", op, err)
	}

	m.notify(Event{Kind: LoggedIn, Session: *sess})

	return signed, sess, nil
}

// Authenticate validates token and returns the session it belongs to.
func (m *Manager) Authenticate(token string) (*Session, error) {
	const op = "session.Manager.Authenticate"

	if token == "" {
		return nil, fmt.Errorf("%s: %w: empty token", op, ErrUnauthorized)
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, ErrUnauthorized, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: invalid subject", op, ErrUnauthorized)
	}

	m.mu.Lock()
	_, revoked := m.revoked[c.ID]
	m.mu.Unlock()

	if revoked {
		return nil, fmt.Errorf("%s: %w: token revoked", op, ErrUnauthorized)
	}

	return &Session{
		UserID:    userID,
		Email:     c.Email,
		TokenID:   c.ID,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}

// Logout revokes token. Logging out twice fails with ErrUnauthorized.
func (m *Manager) Logout(token string) error {
	const op = "session.Manager.Logout"

	sess, err := m.Authenticate(token)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	m.revoked[sess.TokenID] = sess.ExpiresAt
	m.pruneLocked()
	m.mu.Unlock()

	m.notify(Event{Kind: LoggedOut, Session: *sess})

	return nil
}

// pruneLocked forgets revocations of tokens that have expired anyway.
func (m *Manager) pruneLocked() {
	now := m.now()
	for id, exp := range m.revoked {
		if now.After(exp) {
			delete(m.revoked, id)
		}
	}
}

func newTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

type ctxKey struct{}

// WithContext returns a copy of ctx carrying sess.
func WithContext(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, sess)
}

// FromContext returns the session stored in ctx, if any.
func FromContext(ctx context.Context) (*Session, bool) {
	sess, ok := ctx.Value(ctxKey{}).(*Session)
	return sess, ok && sess != nil
}
