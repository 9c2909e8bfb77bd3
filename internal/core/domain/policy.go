package domain

import (
	"fmt"
	"slices"
)

const (
	// ServicePort is the port every challenge Service listens on inside the cluster.
	ServicePort int32 = 8008

	wildcardSNIMatch = "HostSNI(`*`)"

	gatewayInternalEntryPoint = "traefik"
)

var (
	webEntryPoints = []string{"web", "websecure"}

	// fixedExposurePorts maps deployment types to the port the container is reached on.
	// Types not listed expose the challenge's own listen port.
	fixedExposurePorts = map[DeploymentType]int32{
		DeploymentTypeHTTP: 80,
		DeploymentTypeNC:   6969,
		DeploymentTypeSSH:  22,
	}
)

// IsReservedEntrypoint reports whether name is an entrypoint the gateway
// owns. A non-http challenge with that subdomain would replace it.
func IsReservedEntrypoint(name string) bool {
	return name == gatewayInternalEntryPoint || slices.Contains(webEntryPoints, name)
}

// ExposurePort returns the wire port for a deployment type.
func ExposurePort(deploymentType DeploymentType, listenPort int32) int32 {
	if port, ok := fixedExposurePorts[deploymentType]; ok {
		return port
	}
	return listenPort
}

// RoutePolicy describes how a challenge attaches to the gateway.
type RoutePolicy struct {
	Kind        RouteKind
	Match       string
	EntryPoints []string
	TLS         bool
}

// RoutePolicyFor returns the route policy of a challenge. publicDomain is only used for http.
func RoutePolicyFor(deploymentType DeploymentType, subdomain, publicDomain string) RoutePolicy {
	if deploymentType.IsHTTP() {
		return RoutePolicy{
			Kind:        RouteKindHTTP,
			Match:       fmt.Sprintf("Host(`%s.ctf.%s`)", subdomain, publicDomain),
			EntryPoints: append([]string(nil), webEntryPoints...),
			TLS:         true,
		}
	}

	return RoutePolicy{
		Kind:        RouteKindTCP,
		Match:       wildcardSNIMatch,
		EntryPoints: []string{subdomain},
	}
}
