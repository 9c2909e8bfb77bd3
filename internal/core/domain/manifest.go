package domain

import (
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Standard labels carried by every generated object.
const (
	LabelComponent = "app.kubernetes.io/component"
	LabelName      = "app.kubernetes.io/name"
	LabelPartOf    = "app.kubernetes.io/part-of"

	PartOfChallenges = "challenges"

	EntryPointsAnnotation = "traefik.ingress.kubernetes.io/router.entrypoints"
)

// GatewayGroupVersion is the API group/version of the gateway's custom resources.
var GatewayGroupVersion = schema.GroupVersion{Group: "traefik.io", Version: "v1alpha1"}

// RouteKind is the custom resource kind of a challenge route.
type RouteKind string

const (
	RouteKindHTTP RouteKind = "IngressRoute"
	RouteKindTCP  RouteKind = "IngressRouteTCP"
)

// gatewayKinds maps the gateway's custom resource kinds to their plural resource names.
var gatewayKinds = map[string]string{
	"IngressRoute":     "ingressroutes",
	"IngressRouteTCP":  "ingressroutetcps",
	"IngressRouteUDP":  "ingressrouteudps",
	"Middleware":       "middlewares",
	"MiddlewareTCP":    "middlewaretcps",
	"TLSOption":        "tlsoptions",
	"TLSStore":         "tlsstores",
	"ServersTransport": "serverstransports",
	"TraefikService":   "traefikservices",
}

// GatewayResourceForKind returns the plural resource of a gateway custom kind.
func GatewayResourceForKind(kind string) (string, bool) {
	plural, ok := gatewayKinds[kind]
	return plural, ok
}

// RouteResource returns the resource of the route generated for a deployment type.
func RouteResource(deploymentType DeploymentType) schema.GroupVersionResource {
	kind := RouteKindTCP
	if deploymentType.IsHTTP() {
		kind = RouteKindHTTP
	}
	return GatewayGroupVersion.WithResource(gatewayKinds[string(kind)])
}

// ChallengeLabels returns the label set shared by all objects of a challenge.
func ChallengeLabels(component, subdomain string) map[string]string {
	return map[string]string{
		LabelComponent: component,
		LabelName:      subdomain,
		LabelPartOf:    PartOfChallenges,
	}
}

func ResourceName(subdomain string) string { return subdomain }

func ServiceName(subdomain string) string { return subdomain + "-svc" }

func RouteName(subdomain string) string { return subdomain + "-ingress" }

// GatewayPortName names the gateway Service port of a non-http challenge.
func GatewayPortName(subdomain string) string { return subdomain + "-port" }

// EntrypointAddress is the listen address of a gateway entrypoint.
func EntrypointAddress(port int32) string { return fmt.Sprintf(":%d", port) }

// Route is a gateway rule mapping a host or SNI match to a challenge Service.
type Route struct {
	Kind          RouteKind
	Name          string
	Namespace     string
	Labels        map[string]string
	EntryPoints   []string
	Match         string
	ServiceName   string
	ServicePort   int32
	TLSSecretName string
}

func (r *Route) Resource() schema.GroupVersionResource {
	return GatewayGroupVersion.WithResource(gatewayKinds[string(r.Kind)])
}

// Unstructured renders the route as a custom object.
func (r *Route) Unstructured() *unstructured.Unstructured {
	entryPoints := make([]interface{}, len(r.EntryPoints))
	for i, entryPoint := range r.EntryPoints {
		entryPoints[i] = entryPoint
	}

	labels := make(map[string]interface{}, len(r.Labels))
	for key, value := range r.Labels {
		labels[key] = value
	}

	spec := map[string]interface{}{
		"entryPoints": entryPoints,
		"routes": []interface{}{
			map[string]interface{}{
				"match": r.Match,
				"kind":  "Rule",
				"services": []interface{}{
					map[string]interface{}{
						"name": r.ServiceName,
						"port": int64(r.ServicePort),
					},
				},
			},
		},
	}
	if r.TLSSecretName != "" {
		spec["tls"] = map[string]interface{}{"secretName": r.TLSSecretName}
	}

	return &unstructured.Unstructured{Object: map[string]interface{}{
		"apiVersion": GatewayGroupVersion.String(),
		"kind":       string(r.Kind),
		"metadata": map[string]interface{}{
			"name":      r.Name,
			"namespace": r.Namespace,
			"labels":    labels,
		},
		"spec": spec,
	}}
}

// Manifest is one object of a rendering. The concrete type decides which
// cluster call creates it.
type Manifest interface {
	// Describe returns "Kind namespace/name" for logs and errors.
	Describe() string
	manifest()
}

type DeploymentManifest struct {
	Deployment *appsv1.Deployment
}

type ServiceManifest struct {
	Service *corev1.Service
}

type RouteManifest struct {
	Route *Route
}

// CustomObjectManifest is a gateway custom resource read from a stored rendering.
type CustomObjectManifest struct {
	Resource schema.GroupVersionResource
	Object   *unstructured.Unstructured
}

// GenericManifest is any other object read from a stored rendering.
type GenericManifest struct {
	Object *unstructured.Unstructured
}

func (m DeploymentManifest) Describe() string {
	return describe("Deployment", m.Deployment.Namespace, m.Deployment.Name)
}

func (m ServiceManifest) Describe() string {
	return describe("Service", m.Service.Namespace, m.Service.Name)
}

func (m RouteManifest) Describe() string {
	return describe(string(m.Route.Kind), m.Route.Namespace, m.Route.Name)
}

func (m CustomObjectManifest) Describe() string {
	return describe(m.Object.GetKind(), m.Object.GetNamespace(), m.Object.GetName())
}

func (m GenericManifest) Describe() string {
	return describe(m.Object.GetKind(), m.Object.GetNamespace(), m.Object.GetName())
}

func (DeploymentManifest) manifest()   {}
func (ServiceManifest) manifest()      {}
func (RouteManifest) manifest()        {}
func (CustomObjectManifest) manifest() {}
func (GenericManifest) manifest()      {}

func describe(kind, namespace, name string) string {
	if namespace == "" {
		return fmt.Sprintf("%s %s", kind, name)
	}
	return fmt.Sprintf("%s %s/%s", kind, namespace, name)
}

// ManifestSet holds the generated objects of one challenge.
type ManifestSet struct {
	Subdomain    string
	Deployment   *appsv1.Deployment
	Service      *corev1.Service
	Route        *Route
	ExposurePort int32
}

// Manifests returns the objects in creation order.
func (s *ManifestSet) Manifests() []Manifest {
	return []Manifest{
		DeploymentManifest{Deployment: s.Deployment},
		ServiceManifest{Service: s.Service},
		RouteManifest{Route: s.Route},
	}
}
