package translate

import (
	"fmt"

	"github.com/doeshing/cmdx/internal/domain"
)

// Overlay holds user supplied table entries layered over the built-in ones.
type Overlay struct {
	Commands []OverlayCommand    `json:"commands" yaml:"commands" toml:"commands"`
	Native   map[string][]string `json:"native" yaml:"native" toml:"native"`
	Env      []EnvPair           `json:"env" yaml:"env" toml:"env"`
}

// OverlayCommand adds or replaces the mapping of one command for one pair.
type OverlayCommand struct {
	Source string            `json:"source" yaml:"source" toml:"source"`
	Target string            `json:"target" yaml:"target" toml:"target"`
	From   string            `json:"from" yaml:"from" toml:"from"`
	To     string            `json:"to" yaml:"to" toml:"to"`
	Flags  []domain.FlagPair `json:"flags" yaml:"flags" toml:"flags"`
	Notes  string            `json:"notes" yaml:"notes" toml:"notes"`
}

// Empty reports whether the overlay changes nothing.
func (o Overlay) Empty() bool {
	return len(o.Commands) == 0 && len(o.Native) == 0 && len(o.Env) == 0
}

// Validate checks that every entry names known operating systems.
func (o Overlay) Validate() error {
	for i, c := range o.Commands {
		if c.Source == "" || c.Target == "" {
			return fmt.Errorf("commands[%d]: source and target are required: %w", i, domain.ErrInvalidMapping)
		}
		if _, err := domain.ParseOS(c.From); err != nil {
			return fmt.Errorf("commands[%d]: %v: %w", i, err, domain.ErrInvalidMapping)
		}
		if _, err := domain.ParseOS(c.To); err != nil {
			return fmt.Errorf("commands[%d]: %v: %w", i, err, domain.ErrInvalidMapping)
		}
	}
	for name := range o.Native {
		if _, err := domain.ParseOS(name); err != nil {
			return fmt.Errorf("native: %v: %w", err, domain.ErrInvalidMapping)
		}
	}
	for i, p := range o.Env {
		if p.Windows == "" || p.Unix == "" {
			return fmt.Errorf("env[%d]: windows and unix names are required: %w", i, domain.ErrInvalidMapping)
		}
	}
	return nil
}

// apply layers the overlay onto t. Validate must have passed.
func (o Overlay) apply(t *tables) {
	for _, c := range o.Commands {
		from, _ := domain.ParseOS(c.From)
		to, _ := domain.ParseOS(c.To)
		t.put(domain.CommandMapping{
			SourceCommand: c.Source,
			TargetCommand: c.Target,
			Flags:         c.Flags,
			Notes:         c.Notes,
		}, from, to)
	}
	for name, commands := range o.Native {
		os, _ := domain.ParseOS(name)
		t.addNative(os, commands...)
	}
	if len(o.Env) > 0 {
		t.env.append(o.Env...)
	}
}
