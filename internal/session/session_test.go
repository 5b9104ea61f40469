package session

import (
	"testing"
	"time"
)

func validSession() *Session {
	return &Session{
		Anchor:       "v1.0",
		StartedAt:    time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC),
		Slides:       []Slide{{Hash: "aaaa111", Subject: "Intro"}, {Hash: "bbbb222", Subject: "Demo"}},
		CurrentIndex: 0,
	}
}

func TestSession_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Session)
		wantErr bool
	}{
		{
			name:   "valid session",
			mutate: func(s *Session) {},
		},
		{
			name:    "no slides",
			mutate:  func(s *Session) { s.Slides = nil },
			wantErr: true,
		},
		{
			name:    "negative index",
			mutate:  func(s *Session) { s.CurrentIndex = -1 },
			wantErr: true,
		},
		{
			name:    "index past the end",
			mutate:  func(s *Session) { s.CurrentIndex = 2 },
			wantErr: true,
		},
		{
			name:    "slide without hash",
			mutate:  func(s *Session) { s.Slides[1].Hash = "" },
			wantErr: true,
		},
		{
			name:   "last slide selected",
			mutate: func(s *Session) { s.CurrentIndex = 1 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSession()
			tt.mutate(s)
			err := s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSlide_ShortHash(t *testing.T) {
	tests := []struct {
		hash     string
		expected string
	}{
		{"0123456789abcdef0123456789abcdef01234567", "0123456"},
		{"0123456", "0123456"},
		{"012", "012"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.hash, func(t *testing.T) {
			s := Slide{Hash: tt.hash}
			if got := s.ShortHash(); got != tt.expected {
				t.Errorf("ShortHash() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSession_Current(t *testing.T) {
	s := validSession()
	if s.Current().Hash != "aaaa111" {
		t.Errorf("Current() = %q, expected slide 1", s.Current().Hash)
	}
	s.CurrentIndex = 1
	if s.Current().Hash != "bbbb222" {
		t.Errorf("Current() = %q, expected slide 2", s.Current().Hash)
	}
}
