package auditlog

import "context"

// Metadata describes where a change came from.
type Metadata struct {
	Command string
}

type metadataKey struct{}

// WithMetadata attaches audit metadata to a context. Empty fields keep the
// value already stored.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	existing, _ := ctx.Value(metadataKey{}).(Metadata)
	if meta.Command == "" {
		meta.Command = existing.Command
	}
	return context.WithValue(ctx, metadataKey{}, meta)
}

// MetadataFromContext returns audit metadata stored in the context.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}
