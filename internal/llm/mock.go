package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// mockBatch is what an unscripted MockProvider generates, in the
// quiz-batch wire shape. It keeps the mock provider playable end to
// end without an API key.
const mockBatch = `{"questions":[
	{"question":"Which habit most supports a consistent sleep schedule?","options":["A fixed wake-up time","Weekend lie-ins","Late caffeine","Bright screens at night"],"correctAnswer":0,"explanation":"A fixed wake-up time anchors the circadian rhythm."},
	{"question":"What does SMART stand for in goal setting?","options":["Specific, Measurable, Achievable, Relevant, Time-bound","Simple, Modern, Agile, Rapid, Tested","Strict, Minimal, Accurate, Real, True","Slow, Mindful, Aware, Rested, Thorough"],"correctAnswer":0,"explanation":"SMART goals are Specific, Measurable, Achievable, Relevant and Time-bound."},
	{"question":"Roughly how much water does an adult need per day?","options":["About 2 liters","About 8 liters","About 200 ml","About 5 cups of coffee"],"correctAnswer":0,"explanation":"Around two liters a day is the common guideline for adults."}
]}`

// MockProvider serves scripted generations without touching the
// network. With an empty script every request gets a small fixed
// question batch; tests enqueue their own outcomes with Reply and
// Fail, consumed in order.
type MockProvider struct {
	mu       sync.Mutex
	script   []mockTurn
	Requests []Request
}

type mockTurn struct {
	content json.RawMessage
	err     error
}

// NewMockProvider creates a mock with an empty script.
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Reply enqueues a successful generation with the given content.
func (m *MockProvider) Reply(content string) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockTurn{content: json.RawMessage(content)})
	return m
}

// Fail enqueues a failed generation.
func (m *MockProvider) Fail(err error) *MockProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, mockTurn{err: err})
	return m
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Requests = append(m.Requests, req)

	if len(m.script) == 0 {
		return &Response{Content: json.RawMessage(mockBatch), Model: "mock"}, nil
	}

	turn := m.script[0]
	m.script = m.script[1:]
	if turn.err != nil {
		return nil, turn.err
	}
	return &Response{Content: turn.content, Model: "mock"}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// CallCount returns how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Requests)
}
