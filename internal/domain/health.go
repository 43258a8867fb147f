package domain

// HealthStatus indicates doctor check outcomes.
type HealthStatus string

const (
	HealthOK    HealthStatus = "ok"
	HealthWarn  HealthStatus = "warn"
	HealthError HealthStatus = "error"
)

// HealthCheck captures a single diagnostic result.
type HealthCheck struct {
	Name    string       `json:"name"`
	Status  HealthStatus `json:"status"`
	Details string       `json:"details"`
}

// HealthReport aggregates checks.
type HealthReport struct {
	Checks []HealthCheck `json:"checks"`
}

// Healthy reports whether no check failed outright.
func (r HealthReport) Healthy() bool {
	for _, check := range r.Checks {
		if check.Status == HealthError {
			return false
		}
	}
	return true
}

// HostInfo describes the machine cmdx is running on.
type HostInfo struct {
	OS             OS             `json:"os" yaml:"os"`
	Arch           string         `json:"arch" yaml:"arch"`
	Distro         Distro         `json:"distro,omitempty" yaml:"distro,omitempty"`
	PackageManager PackageManager `json:"package_manager,omitempty" yaml:"package_manager,omitempty"`
	Shell          string         `json:"shell,omitempty" yaml:"shell,omitempty"`
}
