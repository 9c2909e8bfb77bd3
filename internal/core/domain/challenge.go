package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// DeploymentType selects how a challenge is exposed through the gateway.
type DeploymentType string

const (
	DeploymentTypeHTTP DeploymentType = "http"
	DeploymentTypeTCP  DeploymentType = "tcp"
	DeploymentTypeNC   DeploymentType = "nc"
	DeploymentTypeSSH  DeploymentType = "ssh"
)

// IsHTTP reports whether the challenge is served on the gateway's default web entrypoints.
func (t DeploymentType) IsHTTP() bool {
	return t == DeploymentTypeHTTP
}

// ChallengeClass is the run-level signal that decides the target namespace.
type ChallengeClass string

const (
	ChallengeClassStatic  ChallengeClass = "static"
	ChallengeClassDynamic ChallengeClass = "dynamic"
	ChallengeClassIsolet  ChallengeClass = "isolet"
)

func ParseChallengeClass(value string) (ChallengeClass, error) {
	switch ChallengeClass(strings.ToLower(strings.TrimSpace(value))) {
	case ChallengeClassStatic:
		return ChallengeClassStatic, nil
	case ChallengeClassDynamic:
		return ChallengeClassDynamic, nil
	case ChallengeClassIsolet:
		return ChallengeClassIsolet, nil
	}
	return "", fmt.Errorf("unknown challenge class '%s'", value)
}

type Resources struct {
	CPU    string `yaml:"cpu"`
	Memory string `yaml:"memory"`
}

// MaxPort is the highest TCP port a challenge may listen on.
const MaxPort = 65535

// ValidatePort rejects ports outside 1..MaxPort.
func ValidatePort(subdomain string, port int32) error {
	if port <= 0 {
		return fmt.Errorf("%w: listenPort is required for '%s'", ErrInvalidSpec, subdomain)
	}
	if port > MaxPort {
		return fmt.Errorf("%w: listenPort %d of '%s' is out of range 1-%d", ErrInvalidSpec, port, subdomain, MaxPort)
	}
	return nil
}

// ChallengeExposureSpec is the per-challenge input of a deployment run.
type ChallengeExposureSpec struct {
	Subdomain      string
	Image          string
	ListenPort     int32
	DeploymentType DeploymentType
	Private        bool
	Custom         bool
	Resources      Resources
	Namespace      string
}

// Validate returns an ErrInvalidSpec error naming the first missing or
// invalid required field.
func (s ChallengeExposureSpec) Validate() error {
	switch {
	case s.Subdomain == "":
		return fmt.Errorf("%w: subdomain is required", ErrInvalidSpec)
	case s.Image == "":
		return fmt.Errorf("%w: image is required for '%s'", ErrInvalidSpec, s.Subdomain)
	case s.Resources.CPU == "" || s.Resources.Memory == "":
		return fmt.Errorf("%w: cpu and memory limits are required for '%s'", ErrInvalidSpec, s.Subdomain)
	}
	return ValidatePort(s.Subdomain, s.ListenPort)
}

// ChallengeMetadata is what the metadata provider knows about a challenge.
type ChallengeMetadata struct {
	Name           string         `yaml:"name"`
	Subdomain      string         `yaml:"subdomain"`
	Image          string         `yaml:"image"`
	ListenPort     int32          `yaml:"listenPort"`
	DeploymentType DeploymentType `yaml:"deploymentType"`
	Private        bool           `yaml:"private"`
	Custom         bool           `yaml:"custom"`
	// Deployment holds the raw manifest template of a custom challenge.
	Deployment string `yaml:"deployment,omitempty"`
	CPU        string `yaml:"cpu,omitempty"`
	Memory     string `yaml:"memory,omitempty"`
}

// ExposureSpec turns the metadata into the immutable spec of one run.
func (m ChallengeMetadata) ExposureSpec(namespace string, private bool) ChallengeExposureSpec {
	return ChallengeExposureSpec{
		Subdomain:      m.Subdomain,
		Image:          m.Image,
		ListenPort:     m.ListenPort,
		DeploymentType: m.DeploymentType,
		Private:        m.Private || private,
		Custom:         m.Custom,
		Resources:      Resources{CPU: m.CPU, Memory: m.Memory},
		Namespace:      namespace,
	}
}

var subdomainInvalidChars = regexp.MustCompile(`[^a-z0-9-]`)

// ToSubdomain converts a challenge name into a DNS label.
func ToSubdomain(name string) string {
	subdomain := strings.ToLower(name)
	subdomain = subdomainInvalidChars.ReplaceAllString(subdomain, "-")
	subdomain = strings.Trim(subdomain, "-")

	if len(subdomain) > 63 {
		subdomain = strings.TrimRight(subdomain[:63], "-")
	}
	if subdomain == "" {
		subdomain = "example"
	}

	return subdomain
}
