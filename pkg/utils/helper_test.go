package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 3, ParseInt("3", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 10, ParseInt("abc", 10))
	assert.Equal(t, 10, ParseInt("0", 10))
	assert.Equal(t, 10, ParseInt("-4", 10))
}

func TestParseNonNegativeInt(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected int
		ok       bool
	}{
		{"Empty uses default", "", 30, true},
		{"Zero", "0", 0, true},
		{"Positive", "45", 45, true},
		{"Padded", " 7 ", 7, true},
		{"Negative", "-1", 0, false},
		{"Not a number", "soon", 0, false},
		{"Fraction", "1.5", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseNonNegativeInt(tc.input, 30)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitList("a, b,,c"))
	assert.Nil(t, SplitList(" , "))
}

func TestGenerateBookingNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-[A-F0-9]{8}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		number := GenerateBookingNumber()
		assert.Regexp(t, pattern, number)
		seen[number] = true
	}
	assert.Greater(t, len(seen), 1)
}

func TestActorOrSystem(t *testing.T) {
	ctx := t.Context()
	assert.Equal(t, SystemActor, ActorOrSystem(ctx))
	assert.Equal(t, SystemActor, ActorOrSystem(SetActorContext(ctx, "  ")))
	assert.Equal(t, "Ravi", ActorOrSystem(SetActorContext(ctx, "Ravi")))
}
