// Package signin drives the sign-in screen, including the
// forgot-password modal and its request/reset/success stages. As in
// signup, every transition is check-and-set from its expected source
// stage and superseded results are dropped.
package signin

import (
	"context"
	"sync"
	"time"

	"rider-client/internal/platform"
	"rider-client/pkg/sched"
	"rider-client/pkg/validation"
)

// ForgotStage is the state of the forgot-password modal.
type ForgotStage string

const (
	ForgotDefault ForgotStage = "default"
	ForgotRequest ForgotStage = "request"
	ForgotReset   ForgotStage = "reset"
	ForgotSuccess ForgotStage = "success"
)

const (
	resendCooldownSeconds = 60
	defaultNavDelay       = 2 * time.Second
)

// Config wires a flow to its collaborators.
type Config struct {
	Auth         platform.AuthAPI
	OnNavigate   func()
	NavDelay     time.Duration
	CooldownTick time.Duration
}

// Flow is one sign-in screen instance.
type Flow struct {
	mu   sync.Mutex
	cfg  Config
	form validation.SignInForm
	errs validation.SignInErrors

	forgotStage   ForgotStage
	forgotEmail   string
	forgotErr     string
	resetForm     validation.ResetForm
	resetErrs     validation.ResetErrors
	resetStrength validation.PasswordStrength

	gen       int
	cooldown  *sched.Countdown
	cancelNav func()
	closed    bool
}

// New creates a flow with the forgot-password modal closed.
func New(cfg Config) *Flow {
	return &Flow{cfg: cfg, forgotStage: ForgotDefault, cooldown: sched.NewCountdown()}
}

// SetEmail updates the email field and clears its error.
func (f *Flow) SetEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Email = v
	f.errs.Email = ""
}

// SetPassword updates the password field and clears its error.
func (f *Flow) SetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.form.Password = v
	f.errs.Password = ""
}

// SignIn validates the form and attempts authentication. A provider
// rejection lands on the email field with the provider's message; an
// incomplete attempt lands on the password field.
func (f *Flow) SignIn(ctx context.Context) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return
	}
	errs, ok := validation.ValidateSignInForm(f.form)
	f.errs = errs
	if !ok {
		f.mu.Unlock()
		return
	}
	gen := f.gen
	form := f.form
	f.mu.Unlock()

	res, err := f.cfg.Auth.BeginSignIn(ctx, form.Email, form.Password)
	if err == nil && res.Status == platform.StatusComplete {
		err = f.cfg.Auth.ActivateSession(ctx, res.SessionID)
	}

	f.mu.Lock()
	if f.closed || f.gen != gen {
		f.mu.Unlock()
		return
	}
	switch {
	case err != nil:
		f.errs.Email = messageOr(err, "Invalid email or password. Please try again.")
		f.mu.Unlock()
	case res.Status != platform.StatusComplete:
		f.errs.Password = "Sign in failed. Please check your credentials."
		f.mu.Unlock()
	default:
		nav := f.cfg.OnNavigate
		f.mu.Unlock()
		if nav != nil {
			nav()
		}
	}
}

// OpenForgotPassword opens the modal at the request stage, pre-filling
// the email already typed into the sign-in form.
func (f *Flow) OpenForgotPassword() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.forgotStage != ForgotDefault {
		return
	}
	f.forgotStage = ForgotRequest
	f.forgotEmail = f.form.Email
	f.forgotErr = ""
}

// SetForgotEmail edits the email at the request stage.
func (f *Flow) SetForgotEmail(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forgotEmail = v
	f.forgotErr = ""
}

// SendResetCode validates the email and asks the provider for a reset
// code; on success the modal advances to the reset stage. Failures
// keep the modal at request with an error so the user can retry.
func (f *Flow) SendResetCode(ctx context.Context) {
	f.mu.Lock()
	if f.closed || f.forgotStage != ForgotRequest {
		f.mu.Unlock()
		return
	}
	if msg, ok := validation.ValidateForgotPasswordEmail(f.forgotEmail); !ok {
		f.forgotErr = msg
		f.mu.Unlock()
		return
	}
	gen := f.gen
	email := f.forgotEmail
	f.mu.Unlock()

	err := f.cfg.Auth.BeginPasswordReset(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.gen != gen || f.forgotStage != ForgotRequest {
		return
	}
	if err != nil {
		f.forgotErr = messageOr(err, "Failed to send reset code. Please try again.")
		return
	}
	f.forgotStage = ForgotReset
	f.forgotErr = ""
}

// SetResetCode records the OTP entered so far and clears its error.
func (f *Flow) SetResetCode(code string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetForm.Code = code
	f.resetErrs.Code = ""
}

// SetResetPassword updates the new password, recomputing the strength
// meter.
func (f *Flow) SetResetPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetForm.Password = v
	f.resetStrength = validation.ScorePassword(v)
	f.resetErrs.Password = ""
}

// SetResetConfirmPassword updates the confirmation field.
func (f *Flow) SetResetConfirmPassword(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetForm.ConfirmPassword = v
	f.resetErrs.ConfirmPassword = ""
}

// ResetPassword submits the code plus new password. Acceptance
// activates the new session, advances to success and schedules
// navigation; any failure stays at reset with an error.
func (f *Flow) ResetPassword(ctx context.Context) {
	f.mu.Lock()
	if f.closed || f.forgotStage != ForgotReset {
		f.mu.Unlock()
		return
	}
	errs, ok := validation.ValidateResetPasswordForm(f.resetForm)
	f.resetErrs = errs
	if !ok {
		f.mu.Unlock()
		return
	}
	gen := f.gen
	email := f.forgotEmail
	form := f.resetForm
	f.mu.Unlock()

	res, err := f.cfg.Auth.CompletePasswordReset(ctx, email, form.Code, form.Password)
	var actErr error
	if err == nil && res.Status == platform.StatusComplete {
		actErr = f.cfg.Auth.ActivateSession(ctx, res.SessionID)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.gen != gen || f.forgotStage != ForgotReset {
		return
	}
	switch {
	case err != nil:
		f.forgotErr = messageOr(err, "Invalid code or password. Please try again.")
	case res.Status == platform.StatusNeedsMore:
		f.forgotErr = "Two-factor authentication is required but not implemented in this flow."
	case res.Status != platform.StatusComplete:
		f.forgotErr = "Password reset failed. Please try again."
	case actErr != nil:
		f.forgotErr = messageOr(actErr, "Password reset failed. Please try again.")
	default:
		f.forgotErr = ""
		f.forgotStage = ForgotSuccess
		f.scheduleNavLocked(gen)
	}
}

// ResendResetCode requests a fresh reset code, gated by the cooldown.
// A failed resend zeroes the cooldown so the user may retry.
func (f *Flow) ResendResetCode(ctx context.Context) {
	f.mu.Lock()
	if f.closed || f.forgotStage != ForgotReset || f.cooldown.Remaining() > 0 {
		f.mu.Unlock()
		return
	}
	gen := f.gen
	email := f.forgotEmail
	f.cooldown.Start(resendCooldownSeconds, f.cfg.CooldownTick)
	f.mu.Unlock()

	err := f.cfg.Auth.BeginPasswordReset(ctx, email)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed || f.gen != gen || f.forgotStage != ForgotReset {
		return
	}
	if err != nil {
		f.cooldown.Reset()
		f.forgotErr = messageOr(err, "Failed to resend reset code. Please try again.")
		return
	}
	f.forgotErr = ""
}

// CloseForgotPassword resets the whole modal sub-state in one step:
// stage, email, errors, reset form, strength meter and cooldown all
// return to initial values, and in-flight results are dropped. At the
// success stage the modal is past the point of cancelling and the call
// is a no-op.
func (f *Flow) CloseForgotPassword() {
	f.mu.Lock()
	if f.closed || f.forgotStage == ForgotSuccess {
		f.mu.Unlock()
		return
	}
	f.forgotStage = ForgotDefault
	f.forgotEmail = ""
	f.forgotErr = ""
	f.resetForm = validation.ResetForm{}
	f.resetErrs = validation.ResetErrors{}
	f.resetStrength = validation.PasswordStrength{}
	f.gen++
	f.mu.Unlock()

	f.cooldown.Reset()
}

// Close tears the instance down, cancelling timers and dropping
// in-flight results.
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

// Errors returns the sign-in field errors.
func (f *Flow) Errors() validation.SignInErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs
}

// ForgotPasswordStage returns the modal stage.
func (f *Flow) ForgotPasswordStage() ForgotStage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forgotStage
}

// ForgotEmail returns the email the reset code goes to.
func (f *Flow) ForgotEmail() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forgotEmail
}

// ForgotError returns the modal's current error message, if any.
func (f *Flow) ForgotError() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.forgotErr
}

// ResetErrors returns the reset form field errors.
func (f *Flow) ResetErrors() validation.ResetErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resetErrs
}

// ResetStrength returns the strength meter for the new password.
func (f *Flow) ResetStrength() validation.PasswordStrength {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resetStrength
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
