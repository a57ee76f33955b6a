package ui

// Prompter defines interface for user interaction
type Prompter interface {
	ConfirmPost(prNumber int, jobCount int) (bool, error)
}

// DefaultPrompter implements the actual prompting logic
type DefaultPrompter struct{}

// ConfirmPost prompts user to confirm posting
func (p *DefaultPrompter) ConfirmPost(prNumber int, jobCount int) (bool, error) {
	return ConfirmPost(prNumber, jobCount)
}

// MockPrompter for testing
type MockPrompter struct {
	Confirmed         bool
	ConfirmationError error

	// Call tracking
	ConfirmPostCalled bool
	LastPRNumber      int
	LastJobCount      int
}

// ConfirmPost mocks confirmation
func (m *MockPrompter) ConfirmPost(prNumber int, jobCount int) (bool, error) {
	m.ConfirmPostCalled = true
	m.LastPRNumber = prNumber
	m.LastJobCount = jobCount
	return m.Confirmed, m.ConfirmationError
}
