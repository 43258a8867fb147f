package helpers

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"github.com/doeshing/cmdx/internal/domain"
)

// ErrUnknownFormat is returned for an -o value other than text, json or yaml.
var ErrUnknownFormat = errors.New("unknown output format")

// OSFlag is a pflag.Value accepting any OS name or alias. The zero value
// means "not set".
type OSFlag struct {
	Value domain.OS
}

func (f *OSFlag) String() string { return string(f.Value) }

func (f *OSFlag) Set(s string) error {
	parsed, err := domain.ParseOS(s)
	if err != nil {
		return err
	}
	f.Value = parsed
	return nil
}

func (f *OSFlag) Type() string { return "os" }

// PackageManagerFlag is a pflag.Value accepting a package-manager name or
// binary. The zero value means "not set".
type PackageManagerFlag struct {
	Value domain.PackageManager
}

func (f *PackageManagerFlag) String() string { return string(f.Value) }

func (f *PackageManagerFlag) Set(s string) error {
	pm, err := domain.ParsePackageManager(s)
	if err != nil {
		return err
	}
	f.Value = pm
	return nil
}

func (f *PackageManagerFlag) Type() string { return "manager" }

// OSNames lists canonical OS names for flag help text.
func OSNames() string {
	names := make([]string, 0, len(domain.AllOS()))
	for _, o := range domain.AllOS() {
		names = append(names, string(o))
	}
	return strings.Join(names, ", ")
}

// AddOSPairFlags registers --from and --to on fs.
func AddOSPairFlags(fs *pflag.FlagSet, from, to *OSFlag) {
	fs.VarP(from, "from", "f", "Source OS ("+OSNames()+")")
	fs.VarP(to, "to", "t", "Target OS (default: configured or detected)")
}

// AddOutputFlag registers -o/--output on fs.
func AddOutputFlag(fs *pflag.FlagSet, format *string) {
	fs.StringVarP(format, "output", "o", "", "Output format: text, json or yaml (default: configured)")
}

var (
	_ pflag.Value = (*OSFlag)(nil)
	_ pflag.Value = (*PackageManagerFlag)(nil)
)
