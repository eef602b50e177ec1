package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain text", "Michael Jordan", true},
		{"email address", "mike@gmail.com", true},
		{"empty string", "", true},
		{"address with punctuation", "123 Fake Street, Springfield", true},
		{"script element", "<script>alert('x')</script>", false},
		{"bare tag", "<b>bold</b>", false},
		{"img with handler", `<img src=x onerror=alert(1)>`, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, sanitary(tc.input))
		})
	}
}
