package store

import "context"

// Memory is an in-process KV backend. It is the default when no external
// store is configured, and the test double; contents do not survive the
// process.
type Memory struct {
	records map[string][]byte
}

// NewMemory builds an empty in-process backend.
func NewMemory() *Memory {
	return &Memory{records: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := m.records[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.records[key] = append([]byte(nil), value...)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	delete(m.records, key)
	return nil
}

func (m *Memory) Close() error { return nil }
