// Package signup drives the sign-up screen: form entry, account
// creation, and the email verification stages. Transitions are
// check-and-set from their expected source stage so late collaborator
// results can never regress the flow.
package signup

import (
	"context"
	"sync"
	"time"

	"rider-client/internal/platform"
	"rider-client/pkg/sched"
	"rider-client/pkg/validation"
)

// Stage is the verification state of the sign-up screen.
type Stage string

const (
	StageDefault Stage = "default"
	StagePending Stage = "pending"
	StageSuccess Stage = "success"
)

const (
	resendCooldownSeconds = 60
	defaultNavDelay       = 2 * time.Second
)

// Config wires a flow to its collaborators. NavDelay and CooldownTick
// default to 2s and 1s; tests shrink them.
type Config struct {
	Auth         platform.AuthAPI
	OnNavigate   func()
	NavDelay     time.Duration
	CooldownTick time.Duration
}

// Flow is one sign-up screen instance.
type Flow struct {
	mu       sync.Mutex
	cfg      Config
	stage    Stage
	form     validation.SignUpForm
	errs     validation.SignUpErrors
	strength validation.PasswordStrength
	code     string
	errMsg   string

	// gen rises whenever the instance is superseded (Close); in-flight
	// results and timers carrying an older gen are dropped.
	gen       int
	cooldown  *sched.Countdown
	cancelNav func()
	closed    bool
}

// New creates a flow at the default stage.
func New(cfg Config) *Flow {
	return &Flow{cfg: cfg, stage: StageDefault, cooldown: sched.NewCountdown()}
}

// SetName updates the name field and clears its error.
func (f *Flow) SetName(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Name = v
	f.errs.Name = ""
}

// SetEmail updates the email field and clears its error.
func (f *Flow) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Email = v
	f.errs.Email = ""
}

// SetPassword updates the password, recomputes the strength meter and
// clears the field error.
func (f *Flow) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Password = v
	f.strength = validation.ScorePassword(v)
	f.errs.Password = ""
}

// SetConfirmPassword updates the confirmation field and clears its
// error.
func (f *Flow) SetConfirmPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.ConfirmPassword = v
	f.errs.ConfirmPassword = ""
}

// SetCode records the OTP entered so far.
func (f *Flow) SetCode(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.code = code
}

// Submit validates the form and, when clean, asks the provider to
// create the account and email a verification code. On success the
// flow moves to pending; validation failures block the call entirely.
func (f *Flow) Submit(ctx context.Context) {
	f.mu.Lock()
	if f.closed || f.stage != StageDefault {
		f.mu.Unlock()
		return
	}
	errs, ok := validation.ValidateSignUpForm(f.form)
	f.errs = errs
	if !ok {
		f.mu.Unlock()
		return
	}
	gen := f.gen
	form := f.form
	f.mu.Unlock()

	err := f.cfg.Auth.CreateAccount(ctx, form.Email, form.Password)
	if err == nil {
		err = f.cfg.Auth.SendVerificationCode(ctx, form.Email)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.gen != gen || f.stage != StageDefault {
		return
	}
	if err != nil {
		f.errMsg = messageOr(err, "Something went wrong. Please try again.")
		return
	}
	f.errMsg = ""
	f.stage = StagePending
}

// Verify submits the entered code. Acceptance activates the session,
// moves the flow to success and schedules navigation after the grace
// delay; rejection keeps the flow at pending with an error and leaves
// the code in place for correction.
func (f *Flow) Verify(ctx context.Context) {
	f.mu.Lock()
	if f.closed || f.stage != StagePending {
		f.mu.Unlock()
		return
	}
	gen := f.gen
	email := f.form.Email
	code := f.code
	f.mu.Unlock()

	res, err := f.cfg.Auth.VerifyCode(ctx, email, code)
	var actErr error
	if err == nil && res.Status == platform.StatusComplete {
		actErr = f.cfg.Auth.ActivateSession(ctx, res.SessionID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.gen != gen || f.stage != StagePending {
		return
	}
	switch {
	case err != nil:
		f.errMsg = messageOr(err, "Invalid verification code. Please try again.")
	case res.Status != platform.StatusComplete:
		f.errMsg = "Verification failed. Please try again."
	case actErr != nil:
		f.errMsg = messageOr(actErr, "Something went wrong. Please try again.")
	default:
		f.errMsg = ""
		f.stage = StageSuccess
		f.scheduleNavLocked(gen)
	}
}

// Resend asks for a fresh code. Allowed only at pending with no
// cooldown running; a successful resend clears the error and the
// entered code, a failed one zeroes the cooldown so the user may retry
// immediately.
func (f *Flow) Resend(ctx context.Context) {
	f.mu.Lock()
	if f.closed || f.stage != StagePending || f.cooldown.Remaining() > 0 {
		f.mu.Unlock()
		return
	}
	gen := f.gen
	email := f.form.Email
	f.cooldown.Start(resendCooldownSeconds, f.cfg.CooldownTick)
	f.mu.Unlock()

	err := f.cfg.Auth.SendVerificationCode(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.gen != gen || f.stage != StagePending {
		return
	}
	if err != nil {
		f.cooldown.Reset()
		f.errMsg = messageOr(err, "Failed to resend verification code. Please try again.")
		return
	}
	f.errMsg = ""
	f.code = ""
}

// Close tears the instance down: timers are cancelled and any
// in-flight collaborator result is dropped on arrival.
func (f *Flow) Close() {
	f.mu.Lock()
	f.closed = true
	f.gen++
	cancel := f.cancelNav
	f.cancelNav = nil
	f.mu.Unlock()

	f.cooldown.Reset()
	if cancel != nil {
		cancel()
	}
}

// Stage returns the current verification stage.
func (f *Flow) Stage() Stage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stage
}

// FormErrors returns the current field errors.
func (f *Flow) FormErrors() validation.SignUpErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs
}

// Strength returns the live password strength meter state.
func (f *Flow) Strength() validation.PasswordStrength {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.strength
}

// Error returns the current verification error message, if any.
func (f *Flow) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Code returns the OTP entered so far.
func (f *Flow) Code() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.code
}

// ResendCooldown returns the seconds until resend is allowed again.
func (f *Flow) ResendCooldown() int { return f.cooldown.Remaining() }

func (f *Flow) scheduleNavLocked(gen int) {
	delay := f.cfg.NavDelay
	if delay <= 0 {
		delay = defaultNavDelay
	}
	f.cancelNav = sched.After(delay, func() {
		f.mu.Lock()
		if f.closed || f.gen != gen {
			f.mu.Unlock()
			return
		}
		nav := f.cfg.OnNavigate
		f.mu.Unlock()
		if nav != nil {
			nav()
		}
	})
}

func messageOr(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
