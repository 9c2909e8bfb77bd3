package core

import (
	"context"
)

// Rendering is the manifest stream of one challenge.
type Rendering struct {
	Subdomain string
	Manifests string
}

// ChallengeRenderer renders resolved challenges without touching the cluster.
type ChallengeRenderer struct {
	resolver       *ChallengeResolver
	builder        *ResourceSpecBuilder
	customRenderer *CustomManifestRenderer
}

func ProvideChallengeRenderer(
	resolver *ChallengeResolver,
	builder *ResourceSpecBuilder,
	customRenderer *CustomManifestRenderer,
) *ChallengeRenderer {
	return &ChallengeRenderer{
		resolver:       resolver,
		builder:        builder,
		customRenderer: customRenderer,
	}
}

// RenderAll renders every named challenge, all of them when names is empty.
// Nothing is returned unless every challenge renders.
func (r *ChallengeRenderer) RenderAll(ctx context.Context, names []string) ([]Rendering, error) {
	resolved, err := r.resolver.Resolve(ctx, names)
	if err != nil {
		return nil, err
	}

	renderings := make([]Rendering, 0, len(resolved))
	for _, challenge := range resolved {
		manifests, err := r.render(challenge)
		if err != nil {
			return nil, err
		}
		renderings = append(renderings, Rendering{Subdomain: challenge.Spec.Subdomain, Manifests: manifests})
	}
	return renderings, nil
}

func (r *ChallengeRenderer) render(challenge ResolvedChallenge) (string, error) {
	if challenge.Spec.Custom {
		return r.customRenderer.Render(challenge.Metadata)
	}
	set, err := r.builder.Build(challenge.Spec)
	if err != nil {
		return "", err
	}
	return EncodeRendering(set)
}
