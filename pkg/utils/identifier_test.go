package utils_test

import (
	"testing"

	"github.com/pseudomuto/myddl/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestBacktickIdentifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple identifier",
			input:    "table",
			expected: "`table`",
		},
		{
			name:     "identifier with a dot is a single name",
			input:    "my.table",
			expected: "`my.table`",
		},
		{
			name:     "identifier with spaces",
			input:    "my table",
			expected: "`my table`",
		},
		{
			name:     "embedded backtick is doubled",
			input:    "odd`name",
			expected: "`odd``name`",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, utils.BacktickIdentifier(tt.input))
		})
	}
}

func TestBacktickQualifiedName(t *testing.T) {
	require.Equal(t, "`shop`.`users`", utils.BacktickQualifiedName(utils.Ptr("shop"), "users"))
	require.Equal(t, "`users`", utils.BacktickQualifiedName(nil, "users"))
	require.Equal(t, "`users`", utils.BacktickQualifiedName(utils.Ptr(""), "users"))
}

func TestQuoteString(t *testing.T) {
	require.Equal(t, "'utf8mb4'", utils.QuoteString("utf8mb4"))
	require.Equal(t, "''", utils.QuoteString(""))
}
