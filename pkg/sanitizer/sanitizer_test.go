package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/gatekeep/pkg/sanitizer"
)

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already normal", input: "a@x.com", want: "a@x.com"},
		{name: "upper case", input: "A@X.COM", want: "a@x.com"},
		{name: "surrounding whitespace", input: "  a@x.com\t\n", want: "a@x.com"},
		{name: "plus tag preserved", input: "A+tag@X.com", want: "a+tag@x.com"},
		{name: "dots preserved", input: "first.last@x.com", want: "first.last@x.com"},
		{name: "blank", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.input))
		})
	}
}
