package git

import "testing"

func TestMatchesAnyPath(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		paths    []string
		expected bool
	}{
		{
			name:     "no patterns accepts everything",
			patterns: nil,
			paths:    []string{"src/main.go"},
			expected: true,
		},
		{
			name:     "simple glob match",
			patterns: []string{"docs/*.md"},
			paths:    []string{"docs/intro.md"},
			expected: true,
		},
		{
			name:     "doublestar matches nested paths",
			patterns: []string{"docs/**"},
			paths:    []string{"docs/guide/setup.md"},
			expected: true,
		},
		{
			name:     "no path matches",
			patterns: []string{"docs/**"},
			paths:    []string{"src/main.go", "go.mod"},
			expected: false,
		},
		{
			name:     "one of several paths matches",
			patterns: []string{"**/*.go"},
			paths:    []string{"README.md", "internal/nav/controller.go"},
			expected: true,
		},
		{
			name:     "windows separators are normalized",
			patterns: []string{"docs/**"},
			paths:    []string{`docs\intro.md`},
			expected: true,
		},
		{
			name:     "no touched paths",
			patterns: []string{"**/*.go"},
			paths:    nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := matchesAnyPath(tt.patterns, tt.paths); got != tt.expected {
				t.Errorf("matchesAnyPath(%v, %v) = %v, expected %v", tt.patterns, tt.paths, got, tt.expected)
			}
		})
	}
}

func TestFilterChain_KeepsEndpoints(t *testing.T) {
	chain := []Commit{
		{Hash: "a"}, {Hash: "b"}, {Hash: "c"}, {Hash: "d"},
	}
	touched := map[string][]string{
		"a": {"other/file.txt"},
		"b": {"docs/intro.md"},
		"c": {"src/main.go"},
		"d": {"src/main.go"},
	}

	got := filterChain(chain, touched, []string{"docs/**"})

	want := []string{"a", "b", "d"}
	if len(got) != len(want) {
		t.Fatalf("filterChain() kept %d commits, expected %d", len(got), len(want))
	}
	for i, hash := range want {
		if got[i].Hash != hash {
			t.Errorf("filterChain()[%d] = %s, expected %s", i, got[i].Hash, hash)
		}
	}
}

func TestFilterChain_NoPatternsKeepsAll(t *testing.T) {
	chain := []Commit{{Hash: "a"}, {Hash: "b"}, {Hash: "c"}}
	if got := filterChain(chain, nil, nil); len(got) != 3 {
		t.Errorf("filterChain() kept %d commits, expected 3", len(got))
	}
}

func TestFilterChain_TwoCommitChainUntouched(t *testing.T) {
	chain := []Commit{{Hash: "a"}, {Hash: "b"}}
	if got := filterChain(chain, map[string][]string{}, []string{"docs/**"}); len(got) != 2 {
		t.Errorf("filterChain() kept %d commits, expected both endpoints", len(got))
	}
}
