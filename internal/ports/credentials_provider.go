package ports

import "context"

type CredentialsProvider interface {
	// RegistryIsPrivate reports whether registry credentials are provisioned for the run.
	RegistryIsPrivate(ctx context.Context) (bool, error)
}
