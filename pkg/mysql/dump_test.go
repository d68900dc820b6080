package mysql

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterDatabases(t *testing.T) {
	tests := []struct {
		name     string
		dbs      []string
		ignore   []string
		expected []string
	}{
		{"no ignores", []string{"shop", "inventory"}, nil, []string{"shop", "inventory"}},
		{"keeps order", []string{"b", "a", "c"}, []string{"a"}, []string{"b", "c"}},
		{"all ignored", []string{"scratch"}, []string{"scratch"}, []string{}},
		{"unknown ignore", []string{"shop"}, []string{"nope"}, []string{"shop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, filterDatabases(tt.dbs, tt.ignore))
		})
	}
}
