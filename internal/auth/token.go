package auth

import (
	"context"
	"sync"
)

// TokenManager supplies the bearer token attached to outbound requests.
// An empty token means the request goes out unauthenticated.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	SetToken(token string)
	ClearToken()
}

// StaticTokenManager holds a token in memory. There is no expiry check: a
// present token is treated as valid until replaced or cleared.
type StaticTokenManager struct {
	mu    sync.Mutex
	token string
}

// NewStaticTokenManager creates a token manager seeded with token, which may
// be empty.
func NewStaticTokenManager(token string) *StaticTokenManager {
	return &StaticTokenManager{token: token}
}

// GetToken returns the current token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.token, nil
}

// SetToken replaces the current token.
func (m *StaticTokenManager) SetToken(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = token
}

// ClearToken drops the current token.
func (m *StaticTokenManager) ClearToken() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = ""
}
