package git

import "context"

// MockBackend is a test double for Backend. It serves predefined commit
// data and records checkouts, so navigation logic can be tested without a
// real Git repository.
type MockBackend struct {
	Tip      Commit
	Chain    []Commit
	ChainErr error

	Head        string // currently checked-out commit
	CheckoutErr error
	Checkouts   []string // revisions passed to Checkout, in order

	Branch     string
	Clean      bool
	StashErr   error
	StashCalls int

	Dir string
}

// NewMockBackend creates a backend serving the given chain, with the last
// commit as branch tip and checked out.
func NewMockBackend(chain []Commit) *MockBackend {
	m := &MockBackend{Chain: chain, Clean: true}
	if len(chain) > 0 {
		m.Tip = chain[len(chain)-1]
		m.Head = m.Tip.Hash
	}
	return m
}

func (m *MockBackend) BranchTip(_ context.Context) (Commit, error) {
	return m.Tip, nil
}

func (m *MockBackend) AncestryChain(_ context.Context, anchor, _ string, opts ChainOptions) ([]Commit, error) {
	if m.ChainErr != nil {
		return nil, m.ChainErr
	}
	chain := m.Chain
	if anchor != "" {
		idx := -1
		for i, c := range chain {
			if c.Hash == anchor {
				idx = i
				break
			}
		}
		if idx == -1 {
			return nil, ErrDisjointHistory
		}
		chain = chain[idx:]
	}
	return filterChain(chain, nil, opts.Paths), nil
}

func (m *MockBackend) CheckedOut(_ context.Context) (string, error) {
	return m.Head, nil
}

func (m *MockBackend) Checkout(_ context.Context, rev string) error {
	if m.CheckoutErr != nil {
		return m.CheckoutErr
	}
	m.Checkouts = append(m.Checkouts, rev)
	m.Head = rev
	return nil
}

func (m *MockBackend) CurrentBranch(_ context.Context) (string, error) {
	return m.Branch, nil
}

func (m *MockBackend) IsClean(_ context.Context) (bool, error) {
	return m.Clean, nil
}

func (m *MockBackend) Stash(_ context.Context) error {
	if m.StashErr != nil {
		return m.StashErr
	}
	m.StashCalls++
	m.Clean = true
	return nil
}

func (m *MockBackend) GitDir() string {
	return m.Dir
}

// Compile-time interface conformance check.
var _ Backend = (*MockBackend)(nil)
