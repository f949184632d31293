package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{"**Grace Hopper** and I", "Grace Hopper and I"},
		{"went to _Marie's Diner_.", "went to Marie's Diner."},
		{"_Paris_", "Paris"},
		{"_Paris_ _Rome_", "Paris Rome"},
		{"**Ada** at _Paris_ and **Bob**", "Ada at Paris and Bob"},
		{"snake_case_word stays", "snake_case_word stays"},
		{"a lone _ underscore", "a lone _ underscore"},
		{"Grace [Paris] @navy", "Grace [Paris] @navy"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Normalize(tt.input), "Normalize(%q)", tt.input)
	}
}

func TestEntityName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Paris", "Paris"},
		{"  Marie's Diner  ", "Marie's Diner"},
		{"Grace Hopper (a.k.a. The Admiral a.k.a. Amazing Grace) [Paris] @navy @science", "Grace Hopper"},
		{"Marie Curie [Atlantis] @science", "Marie Curie"},
		{"Home @cozy", "Home"},
		{"[Paris]", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EntityName(tt.input), "EntityName(%q)", tt.input)
	}
}

func TestTags(t *testing.T) {
	t.Run("Distinct tags in order", func(t *testing.T) {
		assert.Equal(t, []string{"@navy", "@science"}, Tags("Grace @navy @science @navy"))
	})

	t.Run("Email-like text is not a tag", func(t *testing.T) {
		assert.Empty(t, Tags("wrote to grace@example.com"))
	})

	t.Run("Tag at line start", func(t *testing.T) {
		assert.Equal(t, []string{"@food"}, Tags("@food lunch"))
	})
}
