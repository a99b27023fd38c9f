package storage

// Memory is an in-memory KV for tests and ephemeral runs. Contents are
// lost on exit.
type Memory struct {
	m map[string]string
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool, error) {
	v, ok := m.m[key]
	return v, ok, nil
}

func (m *Memory) Set(key, value string) error {
	m.m[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.m, key)
	return nil
}

func (m *Memory) Close() error {
	return nil
}
