package store

import "context"

// Memory is an in-process backend used for tests and -store memory runs.
type Memory struct {
	data map[string]string
}

// NewMemory creates an empty Memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Load(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Save(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
