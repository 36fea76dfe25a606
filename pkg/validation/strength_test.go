package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScorePassword_ScoreMatchesChecks(t *testing.T) {
	t.Parallel()

	passwords := []string{"", "a", "A", "1", "!", "aaaaaaaa", "Aa1!aaaa", "Aa123456", "密码パスワード十分長い", `Aa1!????`}
	for _, p := range passwords {
		s := ScorePassword(p)
		count := 0
		for _, ok := range []bool{s.Checks.Length, s.Checks.Uppercase, s.Checks.Lowercase, s.Checks.Number, s.Checks.Special} {
			if ok {
				count++
			}
		}
		assert.Equal(t, count, s.Score, "password %q", p)
		assert.GreaterOrEqual(t, s.Score, 0)
		assert.LessOrEqual(t, s.Score, 5)
	}
}

func TestScorePassword_EmptyPassword(t *testing.T) {
	t.Parallel()

	s := ScorePassword("")
	assert.Equal(t, 0, s.Score)
	assert.Empty(t, s.Label)
	assert.Empty(t, s.Color)
	assert.Equal(t, PasswordChecks{}, s.Checks)
}

func TestScorePassword_Labels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		password string
		score    int
		label    string
		color    string
	}{
		{"Aa1!aaaa", 5, "Strong", ColorStrong},
		{"Aa123456", 4, "Good", ColorGood},
		{"Aa1", 3, "Fair", ColorFair},
		{"aaaaaaaa", 2, "Weak", ColorWeak},
		{"a", 1, "Weak", ColorWeak},
	}
	for _, tt := range tests {
		s := ScorePassword(tt.password)
		assert.Equal(t, tt.score, s.Score, "password %q", tt.password)
		assert.Equal(t, tt.label, s.Label, "password %q", tt.password)
		assert.Equal(t, tt.color, s.Color, "password %q", tt.password)
	}
}
