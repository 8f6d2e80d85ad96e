package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/cvsync/internal/core/domain"
)

const mainTeX = "\\documentclass[11pt, a4paper]{awesome-cv}\n" +
	"\\name{Jane}{Doe}\n" +
	"\\position{Product Manager{\\enskip\\cdotp\\enskip}Business Analyst}\n" +
	"\\address{Somewhere}\n" +
	"\\quote{``Ship small, learn fast \\& iterate\"}\n"

func TestParsePersonalInfo(t *testing.T) {
	info := ParsePersonalInfo(mainTeX)

	assert.Equal(t, domain.PersonalInfo{
		FirstName: "Jane",
		LastName:  "Doe",
		Position:  "Product Manager, Business Analyst",
		Quote:     "Ship small, learn fast & iterate",
	}, info)
}

func TestParsePersonalInfo_MissingFields(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.PersonalInfo
	}{
		{
			name:     "empty document",
			input:    "",
			expected: domain.PersonalInfo{},
		},
		{
			name:     "name only",
			input:    `\name{Jane}{Doe}`,
			expected: domain.PersonalInfo{FirstName: "Jane", LastName: "Doe"},
		},
		{
			name:     "position only",
			input:    `\position{Engineer}`,
			expected: domain.PersonalInfo{Position: "Engineer"},
		},
		{
			name:     "name with single argument does not match",
			input:    `\name{Jane}`,
			expected: domain.PersonalInfo{},
		},
		{
			name:     "quote without closing mark does not match",
			input:    "\\quote{``unterminated}",
			expected: domain.PersonalInfo{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParsePersonalInfo(tc.input))
		})
	}
}

func TestParsePersonalInfo_PositionWhitespace(t *testing.T) {
	info := ParsePersonalInfo("\\position{Data\n   Scientist}")
	assert.Equal(t, "Data Scientist", info.Position)
}
