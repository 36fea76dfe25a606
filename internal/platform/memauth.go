package platform

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MemAuth is an in-process AuthAPI used by the demo binary and tests.
// It keeps accounts and sessions in memory and issues signed JWTs for
// activated sessions. Codes are sequential so callers can read them
// back via PendingCode.
type MemAuth struct {
	mu       sync.Mutex
	secret   []byte
	accounts map[string]*account
	sessions map[string]*session
	codeSeq  int
}

type account struct {
	id          string
	email       string
	hash        []byte
	verified    bool
	pendingCode string
}

type session struct {
	id     string
	email  string
	active bool
}

// NewMemAuth creates an empty provider signing tokens with secret.
func NewMemAuth(secret string) *MemAuth {
	return &MemAuth{
		secret:   []byte(secret),
		accounts: make(map[string]*account),
		sessions: make(map[string]*session),
	}
}

// CreateAccount registers an unverified account.
func (m *MemAuth) CreateAccount(_ context.Context, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[email]; ok {
		return errors.New("email already exists")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.accounts[email] = &account{id: uuid.New().String(), email: email, hash: hash}
	return nil
}

// SendVerificationCode issues a fresh 6-digit code for the account.
func (m *MemAuth) SendVerificationCode(_ context.Context, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[email]
	if !ok {
		return errors.New("account not found")
	}
	a.pendingCode = m.nextCode()
	return nil
}

// VerifyCode checks the emailed code; on a match the account becomes
// verified and a session is created.
func (m *MemAuth) VerifyCode(_ context.Context, email, code string) (AttemptResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[email]
	if !ok {
		return AttemptResult{Status: StatusRejected}, errors.New("account not found")
	}
	if a.pendingCode == "" || code != a.pendingCode {
		return AttemptResult{Status: StatusRejected}, nil
	}
	a.verified = true
	a.pendingCode = ""
	return AttemptResult{Status: StatusComplete, SessionID: m.newSession(email)}, nil
}

// BeginSignIn authenticates by email and password.
func (m *MemAuth) BeginSignIn(_ context.Context, identifier, password string) (AttemptResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[identifier]
	if !ok || bcrypt.CompareHashAndPassword(a.hash, []byte(password)) != nil {
		return AttemptResult{Status: StatusRejected}, errors.New("invalid credentials")
	}
	if !a.verified {
		return AttemptResult{Status: StatusNeedsMore}, nil
	}
	return AttemptResult{Status: StatusComplete, SessionID: m.newSession(identifier)}, nil
}

// BeginPasswordReset emails a reset code to an existing account.
func (m *MemAuth) BeginPasswordReset(_ context.Context, identifier string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[identifier]
	if !ok {
		return errors.New("account not found")
	}
	a.pendingCode = m.nextCode()
	return nil
}

// CompletePasswordReset swaps the password if the code matches and
// creates a session.
func (m *MemAuth) CompletePasswordReset(_ context.Context, identifier, code, newPassword string) (AttemptResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	a, ok := m.accounts[identifier]
	if !ok {
		return AttemptResult{Status: StatusRejected}, errors.New("account not found")
	}
	if a.pendingCode == "" || code != a.pendingCode {
		return AttemptResult{Status: StatusRejected}, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return AttemptResult{Status: StatusRejected}, err
	}
	a.hash = hash
	a.pendingCode = ""
	return AttemptResult{Status: StatusComplete, SessionID: m.newSession(identifier)}, nil
}

// ActivateSession marks a created session as the active one.
func (m *MemAuth) ActivateSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok {
		return errors.New("session not found")
	}
	s.active = true
	return nil
}

// IssueToken signs a JWT for an activated session, good for 24 hours.
func (m *MemAuth) IssueToken(sessionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[sessionID]
	if !ok || !s.active {
		return "", errors.New("session not active")
	}
	a := m.accounts[s.email]
	claims := gojwt.RegisteredClaims{
		Subject:   a.id,
		Issuer:    "rider-client",
		IssuedAt:  gojwt.NewNumericDate(time.Now()),
		ExpiresAt: gojwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// PendingCode returns the last code issued for an account; the demo
// and tests stand in for the user's inbox with it.
func (m *MemAuth) PendingCode(email string) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.accounts[email]; ok {
		return a.pendingCode
	}
	return ""
}

func (m *MemAuth) newSession(email string) string {
	id := uuid.New().String()
	m.sessions[id] = &session{id: id, email: email}
	return id
}

func (m *MemAuth) nextCode() string {
	m.codeSeq++
	return fmt.Sprintf("%06d", (m.codeSeq*271829)%1000000)
}
