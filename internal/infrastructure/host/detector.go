// Package host describes the machine cmdx runs on.
package host

import (
	"context"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
	"github.com/doeshing/cmdx/internal/ports"
)

const osReleasePath = "/etc/os-release"

// Detector implements ports.HostDetector.
type Detector struct {
	goos        string
	arch        string
	getenv      func(string) string
	lookPath    func(string) (string, error)
	openRelease func() (io.ReadCloser, error)
}

// NewDetector builds a detector for the running process.
func NewDetector() *Detector {
	return &Detector{
		goos:        runtime.GOOS,
		arch:        runtime.GOARCH,
		getenv:      os.Getenv,
		lookPath:    exec.LookPath,
		openRelease: func() (io.ReadCloser, error) { return os.Open(osReleasePath) },
	}
}

// Detect implements ports.HostDetector.
func (d *Detector) Detect(context.Context) domain.HostInfo {
	info := domain.HostInfo{
		OS:    translate.OSFromGOOS(d.goos),
		Arch:  d.arch,
		Shell: d.shell(),
	}
	if info.OS == domain.OSLinux || info.OS == domain.OSAndroid {
		if distro, ok := d.distro(); ok {
			info.Distro = distro
			info.PackageManager = distro.PackageManager()
		}
	}
	if info.PackageManager == "" && info.OS.IsUnixLike() {
		info.PackageManager = d.managerOnPath()
	}
	return info
}

func (d *Detector) distro() (domain.Distro, bool) {
	f, err := d.openRelease()
	if err != nil {
		return "", false
	}
	defer f.Close()
	return translate.DetectDistro(f)
}

// managerOnPath returns the first manager whose primary binary is installed.
func (d *Detector) managerOnPath() domain.PackageManager {
	for _, pm := range domain.AllPackageManagers() {
		if _, err := d.lookPath(pm.CommandName()); err == nil {
			return pm
		}
	}
	return ""
}

func (d *Detector) shell() string {
	if s := d.getenv("SHELL"); s != "" {
		return s
	}
	if s := d.getenv("COMSPEC"); s != "" {
		return s
	}
	if d.goos == "windows" {
		return "cmd.exe"
	}
	return "/bin/sh"
}

var _ ports.HostDetector = (*Detector)(nil)
