package strutil

import "testing"

func TestIsIPv4Address(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"192.168.0.1", true},
		{"0.0.0.0", true},
		{"255.255.255.255", true},
		{"010.001.0.1", true},
		{"256.1.1.1", false},
		{"1.2.3", false},
		{"1.2.3.4.5", false},
		{"a.b.c.d", false},
		{" 1.2.3.4", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsIPv4Address(tt.in); got != tt.want {
			t.Errorf("IsIPv4Address(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"first.last-name_1@mail.example.co.uk", true},
		{"someone@[192.168.0.1]", true},
		{"user@localhost", false},
		{"@example.com", false},
		{"user@example.c", false},
		{"user name@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsEmail(tt.in); got != tt.want {
			t.Errorf("IsEmail(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("") {
		t.Error(`IsEmpty("") should be true`)
	}
	if IsEmpty(" ") {
		t.Error(`IsEmpty(" ") should be false`)
	}
}
