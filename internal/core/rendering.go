package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"isolet/internal/core/domain"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	utilyaml "k8s.io/apimachinery/pkg/util/yaml"
	"sigs.k8s.io/yaml"
)

const documentSeparator = "---\n"

// EncodeRendering serializes a manifest set as a multi-document YAML stream.
func EncodeRendering(set *domain.ManifestSet) (string, error) {
	objects := make([]map[string]interface{}, 0, 3)
	for _, typed := range []runtime.Object{set.Deployment, set.Service} {
		object, err := runtime.DefaultUnstructuredConverter.ToUnstructured(typed)
		if err != nil {
			return "", fmt.Errorf("failed to convert %s: %w", typed.GetObjectKind().GroupVersionKind().Kind, err)
		}
		objects = append(objects, object)
	}
	objects = append(objects, set.Route.Unstructured().Object)

	documents := make([]string, 0, len(objects))
	for _, object := range objects {
		unstructured.RemoveNestedField(object, "status")
		unstructured.RemoveNestedField(object, "metadata", "creationTimestamp")
		unstructured.RemoveNestedField(object, "spec", "template", "metadata", "creationTimestamp")

		data, err := yaml.Marshal(object)
		if err != nil {
			return "", fmt.Errorf("failed to encode manifest: %w", err)
		}
		documents = append(documents, string(data))
	}

	return strings.Join(documents, documentSeparator), nil
}

// DecodeRendering parses a stored rendering in document order. Gateway kinds
// become custom objects, everything else generic objects. Documents without
// a namespace are placed in namespace.
func DecodeRendering(rendering string, namespace string) ([]domain.Manifest, error) {
	decoder := utilyaml.NewYAMLOrJSONDecoder(bytes.NewReader([]byte(rendering)), 4096)

	var manifests []domain.Manifest
	for index := 0; ; index++ {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to decode document %d: %w", index, err)
		}
		raw = bytes.TrimSpace(raw)
		if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
			continue
		}

		object := &unstructured.Unstructured{}
		if err := object.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("failed to decode document %d: %w", index, err)
		}

		manifest, err := toManifest(object, namespace)
		if err != nil {
			return nil, fmt.Errorf("document %d: %w", index, err)
		}
		manifests = append(manifests, manifest)
	}

	return manifests, nil
}

func toManifest(object *unstructured.Unstructured, namespace string) (domain.Manifest, error) {
	if object.GetKind() == "" || object.GetAPIVersion() == "" {
		return nil, fmt.Errorf("manifest is missing apiVersion or kind")
	}
	if object.GetNamespace() == "" {
		object.SetNamespace(namespace)
	}

	plural, ok := domain.GatewayResourceForKind(object.GetKind())
	if !ok {
		return domain.GenericManifest{Object: object}, nil
	}

	groupVersion, err := schema.ParseGroupVersion(object.GetAPIVersion())
	if err != nil {
		return nil, fmt.Errorf("invalid apiVersion '%s': %w", object.GetAPIVersion(), err)
	}
	return domain.CustomObjectManifest{
		Resource: groupVersion.WithResource(plural),
		Object:   object,
	}, nil
}
