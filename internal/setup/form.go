// Package setup holds the game setup form shared by the graphical shells.
// It keeps the raw text the player typed and validates it with the same
// rules the console applies to its arguments.
package setup

import (
	"errors"
	"strconv"
	"strings"

	"github.com/lox/gundown/internal/game"
)

// Field identifies a form field.
type Field int

const (
	FieldSize Field = iota
	FieldHidden
	FieldCheat
	fieldCount
)

func (f Field) String() string {
	switch f {
	case FieldSize:
		return "Grid size"
	case FieldHidden:
		return "Hidden objects"
	case FieldCheat:
		return "Cheat mode"
	default:
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
}

// MaxInput caps the length of the text fields.
const MaxInput = 8

// Form is the setup form state.
type Form struct {
	Size   string
	Hidden string
	Cheat  bool
	Focus  Field
	// Err is the message from the last failed Submit, cleared on success.
	Err string
}

// New returns a form pre-filled from cfg.
func New(cfg game.Config) *Form {
	return &Form{
		Size:   cfg.Size(),
		Hidden: strconv.Itoa(cfg.Hidden),
		Cheat:  cfg.Cheat,
	}
}

// Next moves focus to the next field, wrapping around.
func (f *Form) Next() {
	f.Focus = (f.Focus + 1) % fieldCount
}

// Prev moves focus to the previous field, wrapping around.
func (f *Form) Prev() {
	f.Focus = (f.Focus + fieldCount - 1) % fieldCount
}

// ToggleCheat flips cheat mode.
func (f *Form) ToggleCheat() {
	f.Cheat = !f.Cheat
}

// Type appends printable text to the focused text field.
func (f *Form) Type(s string) {
	field := f.text()
	if field == nil {
		return
	}
	for _, r := range s {
		if len(*field) >= MaxInput || r < ' ' || r > '~' {
			continue
		}
		*field += string(r)
	}
}

// Backspace deletes the last character of the focused text field.
func (f *Form) Backspace() {
	field := f.text()
	if field == nil || *field == "" {
		return
	}
	*field = (*field)[:len(*field)-1]
}

func (f *Form) text() *string {
	switch f.Focus {
	case FieldSize:
		return &f.Size
	case FieldHidden:
		return &f.Hidden
	default:
		return nil
	}
}

// Submit validates the form. On failure it records an inline message in
// Err and returns the error, which wraps game.ErrInvalidConfig.
func (f *Form) Submit() (game.Config, error) {
	cfg, err := game.ParseConfig(f.Size, f.Hidden, f.Cheat)
	if err != nil {
		f.Err = Message(err)
		return game.Config{}, err
	}
	f.Err = ""
	return cfg, nil
}

// Message strips the error category so a shell can show just the reason.
func Message(err error) string {
	msg := err.Error()
	if errors.Is(err, game.ErrInvalidConfig) {
		msg = strings.TrimPrefix(msg, game.ErrInvalidConfig.Error()+": ")
	}
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
