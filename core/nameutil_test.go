package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Basic lowercase conversion", "Hello World", "hello-world"},
		{"Remove parentheses and content inside", "Product (Special Edition)", "product"},
		{"Remove suffix after hyphen-space", "Movie - Director's Cut", "movie"},
		{"Replace non-alphanumeric with hyphens", "Hello! @World#", "hello-world"},
		{"Collapse multiple hyphens", "Hello---World", "hello-world"},
		{"Remove leading and trailing hyphens", "-hello-world-", "hello-world"},
		{"Empty string", "", ""},
		{"Only special characters", "!@#$%^&*()", ""},
		{"Numbers preserved", "Product123", "product123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SlugifyName(tt.input))
		})
	}
}

func TestGuessNameFromFile(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Camel case with version", "TestMod-1.0.0.zip", "Test Mod"},
		{"Camel case with v prefix", "CarryOn_v2.3.1.zip", "Carry On"},
		{"Single word", "primitivesurvival.zip", "Primitivesurvival"},
		{"No version suffix", "StoneQuarry.zip", "Stone Quarry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GuessNameFromFile(tt.input))
		})
	}
}
