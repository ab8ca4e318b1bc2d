package greeting

import "testing"

func TestRoot(t *testing.T) {
	if got := Root(); got != "My name is Rajan Yadav" {
		t.Fatalf("unexpected root message %q", got)
	}
}

func TestWorld(t *testing.T) {
	if got := World(); got != "Hello World" {
		t.Fatalf("expected 'Hello World', got %q", got)
	}
}

func TestGreet(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Alice", "Hello Alice"},
		{"", "Hello "},
		{"Ann Lee", "Hello Ann Lee"},
		{"<b>x</b>", "Hello <b>x</b>"},
		{"Jürgen", "Hello Jürgen"},
		{"42", "Hello 42"},
	}
	for _, tt := range tests {
		if got := Greet(tt.name); got != tt.want {
			t.Errorf("Greet(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
