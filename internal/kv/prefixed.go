package kv

import "context"

// Prefixed namespaces every key of an underlying store.
type Prefixed struct {
	Store
	prefix string
}

// WithPrefix wraps store so that every key is stored as prefix+key.
// An empty prefix returns store unchanged.
func WithPrefix(store Store, prefix string) Store {
	if prefix == "" {
		return store
	}
	return &Prefixed{Store: store, prefix: prefix}
}

// Get reads prefix+key.
func (p *Prefixed) Get(ctx context.Context, key string) ([]byte, error) {
	return p.Store.Get(ctx, p.prefix+key)
}

// Put writes prefix+key.
func (p *Prefixed) Put(ctx context.Context, key string, value []byte) error {
	return p.Store.Put(ctx, p.prefix+key, value)
}
