package repository

import "testing"

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()

	if s.IsLoggedIn() {
		t.Fatalf("expected fresh session to be logged out")
	}

	s.SetLoginFlag()
	if !s.IsLoggedIn() {
		t.Fatalf("expected logged in after SetLoginFlag")
	}

	s.ClearLoginFlag()
	if s.IsLoggedIn() {
		t.Fatalf("expected logged out after ClearLoginFlag")
	}
}
