package validation

import (
	"strings"
	"unicode/utf8"
)

const specialChars = `!@#$%^&*(),.?":{}|<>`

// Strength label colors, matched to the meter UI.
const (
	ColorWeak   = "#EF4444"
	ColorFair   = "#F59E0B"
	ColorGood   = "#10B981"
	ColorStrong = "#059669"
)

// PasswordChecks records which of the five strength factors a password
// satisfies.
type PasswordChecks struct {
	Length    bool
	Uppercase bool
	Lowercase bool
	Number    bool
	Special   bool
}

// PasswordStrength is the meter state for a password: the number of
// satisfied checks plus a display label and color. Score is always the
// count of true checks.
type PasswordStrength struct {
	Score  int
	Label  string
	Color  string
	Checks PasswordChecks
}

// ScorePassword computes the five strength checks and maps the score
// to a label. An empty password yields score 0 and an empty label.
func ScorePassword(password string) PasswordStrength {
	checks := PasswordChecks{
		Length:    utf8.RuneCountInString(password) >= 8,
		Uppercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		Lowercase: strings.ContainsFunc(password, func(r rune) bool { return r >= 'a' && r <= 'z' }),
		Number:    strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }),
		Special:   strings.ContainsAny(password, specialChars),
	}

	score := 0
	for _, ok := range []bool{checks.Length, checks.Uppercase, checks.Lowercase, checks.Number, checks.Special} {
		if ok {
			score++
		}
	}

	strength := PasswordStrength{Score: score, Checks: checks}
	switch {
	case password == "":
		// empty password shows no label at all
	case score <= 2:
		strength.Label, strength.Color = "Weak", ColorWeak
	case score == 3:
		strength.Label, strength.Color = "Fair", ColorFair
	case score == 4:
		strength.Label, strength.Color = "Good", ColorGood
	default:
		strength.Label, strength.Color = "Strong", ColorStrong
	}
	return strength
}
