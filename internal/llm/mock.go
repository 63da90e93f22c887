package llm

import "context"

// MockClient allows tests to run the pipeline without a real provider.
// If GenerateFunc is set it takes precedence; otherwise Response/Err
// are returned verbatim.
type MockClient struct {
	Response     string
	Err          error
	GenerateFunc func(ctx context.Context, input GenerateInput) (string, error)

	// Calls records every input seen, in order.
	Calls []GenerateInput
}

// Generate implements Client.
func (m *MockClient) Generate(ctx context.Context, input GenerateInput) (string, error) {
	m.Calls = append(m.Calls, input)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, input)
	}
	return m.Response, m.Err
}

var _ Client = (*MockClient)(nil)
