// Package otp manages the six-box one-time-code entry row: per-slot
// characters, focus advancement, and backspace navigation. The owner
// receives the joined code after every change.
package otp

const slotCount = 6

// Controller drives one OTP row. It is owned by a single screen and,
// like the screen itself, is driven from one goroutine at a time.
type Controller struct {
	slots    [slotCount]string
	focus    int
	onChange func(code string)
}

// New creates a controller; onChange receives the joined code after
// every mutation and may be nil.
func New(onChange func(code string)) *Controller {
	return &Controller{onChange: onChange}
}

// EnterDigit stores char at index. A non-empty entry advances focus to
// the next slot; the joined code is re-emitted either way.
func (c *Controller) EnterDigit(index int, char string) {
	if index < 0 || index >= slotCount {
		return
	}
	c.slots[index] = firstRune(char)
	if c.slots[index] != "" && index < slotCount-1 {
		c.focus = index + 1
	}
	c.emit()
}

// Backspace moves focus to the previous slot when pressed on an empty
// one; on a filled slot the platform's own deletion applies and focus
// stays put.
func (c *Controller) Backspace(index int) {
	if index <= 0 || index >= slotCount {
		return
	}
	if c.slots[index] == "" {
		c.focus = index - 1
	}
}

// FocusSlot blanks the slot being focused so re-entering a filled box
// starts clean, then re-emits the joined code.
func (c *Controller) FocusSlot(index int) {
	if index < 0 || index >= slotCount {
		return
	}
	c.focus = index
	c.slots[index] = ""
	c.emit()
}

// Code joins the slots in order. Slots are not compacted: emptying an
// inner slot leaves later characters at their positions.
func (c *Controller) Code() string {
	var out string
	for _, s := range c.slots {
		out += s
	}
	return out
}

// Focus returns the index of the currently focused slot.
func (c *Controller) Focus() int { return c.focus }

func (c *Controller) emit() {
	if c.onChange != nil {
		c.onChange(c.Code())
	}
}

// firstRune trims the input to at most one character; the UI enforces
// a max length of one but paste events can deliver more.
func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
