package scopology

import "context"

type scopeKey struct{}

// WithScope returns context carrying supplied active scope
func WithScope(ctx context.Context, scope Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// FromContext returns active scope or nil
func FromContext(ctx context.Context) Scope {
	if ctx == nil {
		return nil
	}
	scope, _ := ctx.Value(scopeKey{}).(Scope)
	return scope
}
