package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/doeshing/cmdx/internal/application/translate"
	"github.com/doeshing/cmdx/internal/domain"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }
func (s stubConfig) Path() string                                { return "/tmp/cmdx/config.yaml" }

type stubMappings struct {
	overlay translate.Overlay
	err     error
}

func (s stubMappings) Load(context.Context, string) (translate.Overlay, error) {
	return s.overlay, s.err
}

type stubHistory struct{ err error }

func (s stubHistory) Save(domain.HistoryRecord) error { return nil }
func (s stubHistory) Records(int, string) ([]domain.HistoryRecord, error) {
	return nil, s.err
}
func (s stubHistory) Clear() error            { return nil }
func (s stubHistory) ExportJSON(string) error { return nil }
func (s stubHistory) Path() string            { return "/tmp/cmdx/history/history.db" }

type stubHost struct{}

func (stubHost) Detect(context.Context) domain.HostInfo {
	return domain.HostInfo{OS: domain.OSLinux, Arch: "arm64", Distro: domain.DistroFedora, PackageManager: domain.PMDnf}
}

type stubShell struct{ status domain.ShellStatus }

func (s stubShell) Install(string, bool) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}
func (s stubShell) Uninstall(string) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}
func (s stubShell) Status(string) domain.ShellStatus { return s.status }
func (s stubShell) DetectShell() string              { return string(s.status.Shell) }

func statuses(report domain.HealthReport) map[string]domain.HealthStatus {
	out := make(map[string]domain.HealthStatus, len(report.Checks))
	for _, c := range report.Checks {
		out[c.Name] = c.Status
	}
	return out
}

func TestServiceRun(t *testing.T) {
	enabled := domain.Config{ConfigFormatVersion: "1", History: domain.HistorySettings{Enabled: true}}

	tests := []struct {
		name    string
		svc     Service
		want    map[string]domain.HealthStatus
		healthy bool
	}{
		{
			name: "all good",
			svc: Service{
				ConfigProvider: stubConfig{cfg: enabled},
				MappingSource:  stubMappings{},
				History:        stubHistory{},
				HostDetector:   stubHost{},
			},
			want: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK, "Mappings": domain.HealthOK, "History": domain.HealthOK,
				"Host": domain.HealthOK, "Engine": domain.HealthOK,
			},
			healthy: true,
		},
		{
			name: "broken overlay and history",
			svc: Service{
				ConfigProvider: stubConfig{cfg: enabled},
				MappingSource:  stubMappings{err: domain.ErrInvalidMapping},
				History:        stubHistory{err: errors.New("locked")},
			},
			want: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK, "Mappings": domain.HealthError, "History": domain.HealthError,
				"Engine": domain.HealthOK,
			},
		},
		{
			name: "history disabled",
			svc:  Service{ConfigProvider: stubConfig{cfg: domain.Config{}}},
			want: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK, "History": domain.HealthWarn, "Engine": domain.HealthOK,
			},
			healthy: true,
		},
		{
			name: "shell hook installed",
			svc: Service{
				ConfigProvider: stubConfig{cfg: enabled},
				History:        stubHistory{},
				Shell: stubShell{status: domain.ShellStatus{
					Shell: domain.ShellZsh, ScriptExists: true, LinePresent: true,
				}},
			},
			want: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK, "History": domain.HealthOK, "Shell hook": domain.HealthOK,
				"Engine": domain.HealthOK,
			},
			healthy: true,
		},
		{
			name: "shell hook unsupported",
			svc: Service{
				ConfigProvider: stubConfig{cfg: enabled},
				History:        stubHistory{},
				Shell:          stubShell{status: domain.ShellStatus{Shell: domain.ShellUnknown, Error: "unsupported shell"}},
			},
			want: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK, "History": domain.HealthOK, "Shell hook": domain.HealthWarn,
				"Engine": domain.HealthOK,
			},
			healthy: true,
		},
		{
			name: "overlay breaks self-check",
			svc: Service{
				ConfigProvider: stubConfig{cfg: domain.Config{}},
				MappingSource: stubMappings{overlay: translate.Overlay{Commands: []translate.OverlayCommand{
					{Source: "dir", Target: "exa", From: "windows", To: "linux"},
				}}},
			},
			want: map[string]domain.HealthStatus{
				"Config file": domain.HealthOK, "Mappings": domain.HealthOK, "History": domain.HealthWarn,
				"Engine": domain.HealthError,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := tt.svc.Run(context.Background())
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			got := statuses(report)
			if len(got) != len(tt.want) {
				t.Fatalf("checks = %v, want %v", got, tt.want)
			}
			for name, status := range tt.want {
				if got[name] != status {
					t.Errorf("%s = %s, want %s", name, got[name], status)
				}
			}
			if report.Healthy() != tt.healthy {
				t.Errorf("Healthy() = %v, want %v", report.Healthy(), tt.healthy)
			}
		})
	}
}

func TestServiceRunConfigFailure(t *testing.T) {
	svc := Service{ConfigProvider: stubConfig{err: errors.New("permission denied")}}
	report, err := svc.Run(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	if len(report.Checks) != 1 || report.Checks[0].Status != domain.HealthError {
		t.Fatalf("report = %+v", report)
	}
}
