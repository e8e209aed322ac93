package util

import "testing"

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("Clamp(5,0,10) = %d, want 5", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("Clamp(-3,0,10) = %d, want 0", got)
	}
	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("Clamp(42,0,10) = %d, want 10", got)
	}
}

func TestContainsFold(t *testing.T) {
	if !ContainsFold("User Authentication", "auth") {
		t.Fatalf("expected case-insensitive match")
	}
	if !ContainsFold("anything", "") {
		t.Fatalf("empty needle must match")
	}
	if ContainsFold("Design System", "api") {
		t.Fatalf("unexpected match")
	}
}

func TestInitials(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Alex Johnson", "AJ"},
		{"Sarah", "S"},
		{"mike van chen", "MV"},
		{"", ""},
	}
	for _, c := range cases {
		if got := Initials(c.name); got != c.want {
			t.Fatalf("Initials(%q) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestPtrDeref(t *testing.T) {
	p := Ptr(7)
	if *p != 7 {
		t.Fatalf("Ptr(7) = %d, want 7", *p)
	}
	if got := Deref[int](nil); got != 0 {
		t.Fatalf("Deref(nil) = %d, want 0", got)
	}
	if got := Deref(p); got != 7 {
		t.Fatalf("Deref(p) = %d, want 7", got)
	}
}
