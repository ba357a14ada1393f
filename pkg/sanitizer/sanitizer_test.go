package sanitizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Jane Doe", CleanText("  Jane   Doe \n"))
	assert.Equal(t, "", CleanText("   "))
	assert.Equal(t, "Jane Doe", CleanText("Jane Doe"))
}

func TestCleanEmail(t *testing.T) {
	assert.Equal(t, "jane@example.com", CleanEmail(" Jane@Example.com "))
	assert.Equal(t, "", CleanEmail(""))
}

func TestCleanPhoneKeepsDigitsVerbatim(t *testing.T) {
	assert.Equal(t, "555-0100", CleanPhone(" 555-0100 "))
	assert.Equal(t, "+1 (555) 010-0000", CleanPhone("+1 (555) 010-0000"))
}

func TestPipelineAppliesInOrder(t *testing.T) {
	p := Pipeline{
		func(s string) string { return s + "b" },
		func(s string) string { return s + "c" },
	}
	assert.Equal(t, "abc", p.Apply("a"))
}
