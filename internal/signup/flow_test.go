package signup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rider-client/internal/platform"
)

// stubAuth is an AuthAPI whose behavior is overridable per test; the
// zero value succeeds at everything.
type stubAuth struct {
	mu          sync.Mutex
	createCalls int
	sendCalls   int

	createAccount func(email, password string) error
	sendCode      func(email string) error
	verifyCode    func(email, code string) (platform.AttemptResult, error)
	activate      func(sessionID string) error
}

func (s *stubAuth) CreateAccount(_ context.Context, email, password string) error {
	s.mu.Lock()
	s.createCalls++
	s.mu.Unlock()
	if s.createAccount != nil {
		return s.createAccount(email, password)
	}
	return nil
}

func (s *stubAuth) SendVerificationCode(_ context.Context, email string) error {
	s.mu.Lock()
	s.sendCalls++
	s.mu.Unlock()
	if s.sendCode != nil {
		return s.sendCode(email)
	}
	return nil
}

func (s *stubAuth) VerifyCode(_ context.Context, email, code string) (platform.AttemptResult, error) {
	if s.verifyCode != nil {
		return s.verifyCode(email, code)
	}
	return platform.AttemptResult{Status: platform.StatusComplete, SessionID: "sess-1"}, nil
}

func (s *stubAuth) BeginSignIn(context.Context, string, string) (platform.AttemptResult, error) {
	return platform.AttemptResult{Status: platform.StatusComplete}, nil
}

func (s *stubAuth) BeginPasswordReset(context.Context, string) error { return nil }

func (s *stubAuth) CompletePasswordReset(context.Context, string, string, string) (platform.AttemptResult, error) {
	return platform.AttemptResult{Status: platform.StatusComplete}, nil
}

func (s *stubAuth) ActivateSession(_ context.Context, sessionID string) error {
	if s.activate != nil {
		return s.activate(sessionID)
	}
	return nil
}

func (s *stubAuth) sent() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sendCalls
}

func fillValidForm(f *Flow) {
	f.SetName("Ada Rider")
	f.SetEmail("ada@example.com")
	f.SetPassword("Sup3rSecret")
	f.SetConfirmPassword("Sup3rSecret")
}

func TestSubmit_InvalidFormBlocksCollaboratorCall(t *testing.T) {
	t.Parallel()

	auth := &stubAuth{}
	f := New(Config{Auth: auth})
	defer f.Close()

	f.Submit(context.Background())

	assert.Equal(t, StageDefault, f.Stage())
	assert.Equal(t, 0, auth.createCalls, "validation failures must not reach the provider")
	assert.NotEmpty(t, f.FormErrors().Name)
	assert.NotEmpty(t, f.FormErrors().Email)
}

func TestSubmit_AdvancesToPending(t *testing.T) {
	t.Parallel()

	auth := &stubAuth{}
	f := New(Config{Auth: auth})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())

	assert.Equal(t, StagePending, f.Stage())
	assert.Empty(t, f.Error())
	assert.Equal(t, 1, auth.sent())
}

func TestSubmit_ProviderRejectionStaysDefault(t *testing.T) {
	t.Parallel()

	auth := &stubAuth{createAccount: func(string, string) error { return errors.New("email already exists") }}
	f := New(Config{Auth: auth})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())

	assert.Equal(t, StageDefault, f.Stage(), "errors keep the flow at the stage they occurred")
	assert.Equal(t, "email already exists", f.Error())
}

func TestVerify_RejectedCodeStaysPending(t *testing.T) {
	t.Parallel()

	auth := &stubAuth{verifyCode: func(string, string) (platform.AttemptResult, error) {
		return platform.AttemptResult{Status: platform.StatusRejected}, nil
	}}
	f := New(Config{Auth: auth})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())
	f.SetCode("111111")
	f.Verify(context.Background())

	assert.Equal(t, StagePending, f.Stage())
	assert.Equal(t, "Verification failed. Please try again.", f.Error())
	assert.Equal(t, "111111", f.Code(), "the entered code is kept for correction")
}

func TestVerify_ProviderErrorSurfacesMessage(t *testing.T) {
	t.Parallel()

	auth := &stubAuth{verifyCode: func(string, string) (platform.AttemptResult, error) {
		return platform.AttemptResult{}, errors.New("code has expired")
	}}
	f := New(Config{Auth: auth})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())
	f.Verify(context.Background())

	assert.Equal(t, StagePending, f.Stage())
	assert.Equal(t, "code has expired", f.Error())
}

func TestVerify_SuccessSchedulesNavigation(t *testing.T) {
	t.Parallel()

	navigated := make(chan struct{})
	f := New(Config{
		Auth:       &stubAuth{},
		OnNavigate: func() { close(navigated) },
		NavDelay:   5 * time.Millisecond,
	})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())
	f.Verify(context.Background())

	require.Equal(t, StageSuccess, f.Stage())
	assert.Empty(t, f.Error())

	select {
	case <-navigated:
	case <-time.After(time.Second):
		t.Fatal("deferred navigation never fired")
	}
}

func TestClose_CancelsPendingNavigation(t *testing.T) {
	t.Parallel()

	navigated := make(chan struct{}, 1)
	f := New(Config{
		Auth:       &stubAuth{},
		OnNavigate: func() { navigated <- struct{}{} },
		NavDelay:   30 * time.Millisecond,
	})

	fillValidForm(f)
	f.Submit(context.Background())
	f.Verify(context.Background())
	require.Equal(t, StageSuccess, f.Stage())

	f.Close()

	select {
	case <-navigated:
		t.Fatal("navigation fired after the screen was torn down")
	case <-time.After(80 * time.Millisecond):
	}
}

func TestResend_CooldownGatesRepeatCalls(t *testing.T) {
	t.Parallel()

	auth := &stubAuth{}
	// an hour-long tick keeps the cooldown frozen for the test
	f := New(Config{Auth: auth, CooldownTick: time.Hour})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())
	require.Equal(t, 1, auth.sent())

	f.Resend(context.Background())
	assert.Equal(t, 60, f.ResendCooldown())
	assert.Equal(t, 2, auth.sent())

	// second resend while cooling down is a no-op
	f.Resend(context.Background())
	assert.Equal(t, 2, auth.sent())
	assert.Equal(t, 60, f.ResendCooldown())
}

func TestResend_NotAllowedBeforePending(t *testing.T) {
	t.Parallel()

	auth := &stubAuth{}
	f := New(Config{Auth: auth})
	defer f.Close()

	f.Resend(context.Background())
	assert.Equal(t, 0, auth.sent())
}

func TestResend_SuccessClearsErrorAndCode(t *testing.T) {
	t.Parallel()

	rejected := true
	auth := &stubAuth{verifyCode: func(string, string) (platform.AttemptResult, error) {
		if rejected {
			return platform.AttemptResult{Status: platform.StatusRejected}, nil
		}
		return platform.AttemptResult{Status: platform.StatusComplete, SessionID: "sess-1"}, nil
	}}
	f := New(Config{Auth: auth, CooldownTick: time.Hour})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())
	f.SetCode("999999")
	f.Verify(context.Background())
	require.NotEmpty(t, f.Error())

	f.Resend(context.Background())
	assert.Empty(t, f.Error())
	assert.Empty(t, f.Code())
}

func TestResend_FailureResetsCooldown(t *testing.T) {
	t.Parallel()

	failing := false
	auth := &stubAuth{sendCode: func(string) error {
		if failing {
			return errors.New("rate limited")
		}
		return nil
	}}
	f := New(Config{Auth: auth, CooldownTick: time.Hour})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())

	failing = true
	f.Resend(context.Background())

	assert.Equal(t, 0, f.ResendCooldown(), "a failed resend frees the user to retry")
	assert.Equal(t, "rate limited", f.Error())
}

func TestResend_LateResultCannotRegressSuccess(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	firstSend := true
	auth := &stubAuth{sendCode: func(string) error {
		if firstSend {
			firstSend = false
			return nil
		}
		<-release // hold the resend in flight
		return nil
	}}
	f := New(Config{Auth: auth, CooldownTick: time.Hour})
	defer f.Close()

	fillValidForm(f)
	f.Submit(context.Background())

	done := make(chan struct{})
	go func() {
		f.Resend(context.Background())
		close(done)
	}()

	// the verify result lands while the resend is still in flight
	time.Sleep(10 * time.Millisecond)
	f.Verify(context.Background())
	require.Equal(t, StageSuccess, f.Stage())

	close(release)
	<-done

	assert.Equal(t, StageSuccess, f.Stage(), "a late resend result must not overwrite success")
	assert.Empty(t, f.Error())
}

func TestSetPassword_UpdatesStrengthMeter(t *testing.T) {
	t.Parallel()

	f := New(Config{Auth: &stubAuth{}})
	defer f.Close()

	f.SetPassword("Aa1!aaaa")
	assert.Equal(t, 5, f.Strength().Score)
	assert.Equal(t, "Strong", f.Strength().Label)

	f.SetPassword("")
	assert.Empty(t, f.Strength().Label)
}
