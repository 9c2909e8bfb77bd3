package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExposurePort(t *testing.T) {
	tests := []struct {
		deploymentType DeploymentType
		listenPort     int32
		expected       int32
	}{
		{DeploymentTypeHTTP, 5000, 80},
		{DeploymentTypeNC, 9001, 6969},
		{DeploymentTypeSSH, 2222, 22},
		{DeploymentTypeTCP, 31337, 31337},
		{"", 4444, 4444},
		{"udp", 5353, 5353},
	}

	for _, tt := range tests {
		t.Run(string(tt.deploymentType), func(t *testing.T) {
			assert.Equal(t, tt.expected, ExposurePort(tt.deploymentType, tt.listenPort))
		})
	}
}

func TestRoutePolicyFor(t *testing.T) {
	httpPolicy := RoutePolicyFor(DeploymentTypeHTTP, "web1", "example.org")
	assert.Equal(t, RoutePolicy{
		Kind:        RouteKindHTTP,
		Match:       "Host(`web1.ctf.example.org`)",
		EntryPoints: []string{"web", "websecure"},
		TLS:         true,
	}, httpPolicy)

	for _, deploymentType := range []DeploymentType{DeploymentTypeNC, DeploymentTypeSSH, DeploymentTypeTCP, "custom"} {
		policy := RoutePolicyFor(deploymentType, "pwn1", "example.org")
		assert.Equal(t, RoutePolicy{
			Kind:        RouteKindTCP,
			Match:       "HostSNI(`*`)",
			EntryPoints: []string{"pwn1"},
		}, policy, "deployment type %q", deploymentType)
	}
}

func TestRoutePolicyForDoesNotShareEntryPoints(t *testing.T) {
	first := RoutePolicyFor(DeploymentTypeHTTP, "a", "example.org")
	first.EntryPoints[0] = "changed"

	second := RoutePolicyFor(DeploymentTypeHTTP, "b", "example.org")
	assert.Equal(t, "web", second.EntryPoints[0])
}

func TestRoute_Unstructured(t *testing.T) {
	route := &Route{
		Kind:          RouteKindHTTP,
		Name:          "web1-ingress",
		Namespace:     "isolet",
		Labels:        ChallengeLabels("ingress", "web1"),
		EntryPoints:   []string{"web", "websecure"},
		Match:         "Host(`web1.ctf.example.org`)",
		ServiceName:   "web1-svc",
		ServicePort:   ServicePort,
		TLSSecretName: "challenge-certs",
	}

	object := route.Unstructured()
	assert.Equal(t, "traefik.io/v1alpha1", object.GetAPIVersion())
	assert.Equal(t, "IngressRoute", object.GetKind())
	assert.Equal(t, "isolet", object.GetNamespace())
	assert.Equal(t, "challenges", object.GetLabels()[LabelPartOf])

	spec := object.Object["spec"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"secretName": "challenge-certs"}, spec["tls"])
	routes := spec["routes"].([]interface{})
	first := routes[0].(map[string]interface{})
	assert.Equal(t, "Rule", first["kind"])
	assert.Equal(t, []interface{}{map[string]interface{}{"name": "web1-svc", "port": int64(8008)}}, first["services"])

	route.Kind = RouteKindTCP
	route.TLSSecretName = ""
	_, hasTLS := route.Unstructured().Object["spec"].(map[string]interface{})["tls"]
	assert.False(t, hasTLS)
	assert.Equal(t, "ingressroutetcps", route.Resource().Resource)
}

func TestGatewayResourceForKind(t *testing.T) {
	plural, ok := GatewayResourceForKind("MiddlewareTCP")
	assert.True(t, ok)
	assert.Equal(t, "middlewaretcps", plural)

	_, ok = GatewayResourceForKind("ConfigMap")
	assert.False(t, ok)

	assert.Equal(t, "ingressroutes", RouteResource(DeploymentTypeHTTP).Resource)
	assert.Equal(t, "ingressroutetcps", RouteResource(DeploymentTypeSSH).Resource)
}
