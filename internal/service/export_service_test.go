package service

import "testing"

func TestSanitizeFileName(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Shell Aviation", "Shell-Aviation"},
		{"BP (Pty) Ltd.", "BP--Pty--Ltd"},
		{"already-clean_name", "already-clean_name"},
		{"///", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := sanitizeFileName(tc.input); got != tc.want {
			t.Errorf("sanitizeFileName(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}
