package tutorial

import (
	"context"
	"sync"
)

// MockReply is one scripted model response.
type MockReply struct {
	Result GenerateResult
	Err    error
}

// MockModel replays scripted replies in call order and records every request.
// Once the script runs out it answers with a plain text result, so callers
// with a variable number of calls keep working.
type MockModel struct {
	mu       sync.Mutex
	Script   []MockReply
	Requests []GenerateRequest
}

func (m *MockModel) Generate(_ context.Context, req GenerateRequest) (GenerateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests = append(m.Requests, req)
	if len(m.Script) == 0 {
		return GenerateResult{Text: "mock response"}, nil
	}
	reply := m.Script[0]
	m.Script = m.Script[1:]
	return reply.Result, reply.Err
}
