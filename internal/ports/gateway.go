package ports

import "context"

// GatewayBatch accumulates edits to the shared gateway and writes them back once.
type GatewayBatch interface {
	AddEntrypoint(name, address string)
	AddPortToService(name string, port int32)
	RemoveEntrypoint(name string)
	RemovePortFromService(name string, port int32)
	HasChanges() bool
	Commit(ctx context.Context) error
}

// GatewayBatchOpener reads the live gateway state into a new batch.
type GatewayBatchOpener interface {
	OpenBatch(ctx context.Context) (GatewayBatch, error)
}
