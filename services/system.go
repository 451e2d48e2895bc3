package services

import (
	"os"
	"strings"
)

// ServiceName identifies this backend in /info and /health
const ServiceName = "foxy-fabrications-admin"

const unknown = "unknown"

// VersionInfo describes the running build
type VersionInfo struct {
	Service     string `json:"service"`
	Image       string `json:"image"`
	BuildTime   string `json:"build_time"`
	GitCommit   string `json:"git_commit"`
	Environment string `json:"environment"`
}

// HealthStatus is the body of the health check
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ReadVersionInfo parses the version file written by the build pipeline.
// Its format is "image,build_time,git_commit"; a file without commas names only the image.
func ReadVersionInfo(path, environment string) VersionInfo {
	if environment == "" {
		environment = unknown
	}
	info := VersionInfo{
		Service:     ServiceName,
		Image:       unknown,
		BuildTime:   unknown,
		GitCommit:   unknown,
		Environment: environment,
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return info
	}
	content := strings.TrimSpace(string(raw))

	if !strings.Contains(content, ",") {
		info.Image = content
		return info
	}

	parts := strings.SplitN(content, ",", 3)
	info.Image = parts[0]
	if len(parts) > 1 {
		info.BuildTime = parts[1]
	}
	if len(parts) > 2 {
		info.GitCommit = parts[2]
	}
	return info
}

// Health reports the service as up
func Health() HealthStatus {
	return HealthStatus{Status: "healthy", Service: ServiceName}
}
