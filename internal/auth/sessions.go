package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Manager checks admin credentials and tracks issued session tokens. A token
// is a capability: it is handed out by Login, required by gated routes, and
// revoked by Logout or expiry. Credentials and the signing secret come from
// configuration; the manager holds no other state.
type Manager struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration

	mu       sync.Mutex
	sessions map[string]time.Time // token -> expiry
}

// NewManager creates a session manager for a single admin account.
func NewManager(username, password, secret string, ttl time.Duration) *Manager {
	return &Manager{
		username: username,
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: make(map[string]time.Time),
	}
}

// Login compares the submitted credentials against the configured admin
// account and, on match, issues a fresh session token. On mismatch it returns
// ok=false and issues nothing. There is no lockout or attempt counting.
func (m *Manager) Login(username, password string) (token string, ok bool) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) == 1
	if !userOK || !passOK {
		return "", false
	}

	token = uuid.New().String()
	m.mu.Lock()
	m.sessions[token] = time.Now().Add(m.ttl)
	m.mu.Unlock()
	return token, true
}

// Logout revokes the token unconditionally. Revoking an unknown token is a
// no-op.
func (m *Manager) Logout(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Valid reports whether the token names a live session, pruning it if it has
// expired.
func (m *Manager) Valid(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	expiry, ok := m.sessions[token]
	if !ok {
		return false
	}
	if time.Now().After(expiry) {
		delete(m.sessions, token)
		return false
	}
	return true
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Sign produces the cookie value for a token: the token followed by an
// HMAC-SHA256 signature keyed by the session secret.
func (m *Manager) Sign(token string) string {
	return token + "." + m.mac(token)
}

// Verify splits and checks a cookie value produced by Sign, returning the
// embedded token only if the signature matches.
func (m *Manager) Verify(value string) (token string, ok bool) {
	token, sig, found := strings.Cut(value, ".")
	if !found || token == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(m.mac(token))) {
		return "", false
	}
	return token, true
}

func (m *Manager) mac(token string) string {
	h := hmac.New(sha256.New, m.secret)
	h.Write([]byte(token))
	return hex.EncodeToString(h.Sum(nil))
}
