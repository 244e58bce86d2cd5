package learning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPatterns_TechStack(t *testing.T) {
	patterns := extractPatterns("way too much React and TypeScript for my taste")

	assert.Contains(t, patterns, extractedPattern{Type: "tech_stack", Value: "React"})
	assert.Contains(t, patterns, extractedPattern{Type: "tech_stack", Value: "TypeScript"})
}

func TestExtractPatterns_JavaWordBoundary(t *testing.T) {
	patterns := extractPatterns("too much Java")
	assert.Contains(t, patterns, extractedPattern{Type: "tech_stack", Value: "Java"})

	patterns = extractPatterns("heavy JavaScript frontend work")
	assert.NotContains(t, patterns, extractedPattern{Type: "tech_stack", Value: "Java"})
	assert.Contains(t, patterns, extractedPattern{Type: "tech_stack", Value: "JavaScript"})
}

func TestExtractPatterns_DeduplicatesWithinReason(t *testing.T) {
	patterns := extractPatterns("React, React, and more React. Also frontend and front-end work.")

	reactCount := 0
	frontendCount := 0
	for _, p := range patterns {
		if p.Value == "React" {
			reactCount++
		}
		if p.Value == "frontend" {
			frontendCount++
		}
	}
	assert.Equal(t, 1, reactCount)
	assert.Equal(t, 1, frontendCount, "synonym phrases collapse to one pattern value")
}

func TestExtractPatterns_MultipleTypes(t *testing.T) {
	patterns := extractPatterns("onsite role, salary too low, and they want a degree")

	assert.Contains(t, patterns, extractedPattern{Type: "location", Value: "onsite"})
	assert.Contains(t, patterns, extractedPattern{Type: "compensation", Value: "salary"})
	assert.Contains(t, patterns, extractedPattern{Type: "education", Value: "degree"})
}

func TestExtractPatterns_CaseInsensitive(t *testing.T) {
	patterns := extractPatterns("ONSITE ONLY in PHOENIX")

	assert.Contains(t, patterns, extractedPattern{Type: "location", Value: "onsite"})
}

func TestExtractPatterns_EmptyReason(t *testing.T) {
	assert.Empty(t, extractPatterns(""))
	assert.Empty(t, extractPatterns("   "))
}

func TestExtractPatterns_NoMatches(t *testing.T) {
	assert.Empty(t, extractPatterns("the vibes were off"))
}

func TestDeriveCategory(t *testing.T) {
	assert.Equal(t, "general", deriveCategory(nil))
	assert.Equal(t, "tech_stack", deriveCategory([]extractedPattern{
		{Type: "tech_stack", Value: "React"},
		{Type: "location", Value: "onsite"},
	}))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 50.0, clamp(80, 50))
	assert.Equal(t, -50.0, clamp(-80, 50))
	assert.Equal(t, -12.5, clamp(-12.5, 50))
}
