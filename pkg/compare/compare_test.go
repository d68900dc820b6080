package compare_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/myddl/pkg/compare"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/stretchr/testify/require"
)

func parseUnit(t *testing.T, sql string) *parser.Unit {
	t.Helper()

	unit, err := parser.ParseUnit("test.sql", strings.NewReader(sql))
	require.NoError(t, err)
	return unit
}

func TestUnits(t *testing.T) {
	expected := `
		CREATE DATABASE shop;
		CREATE TABLE users (
			id INTEGER NOT NULL PRIMARY KEY,
			email VARCHAR(255),
			active BOOL
		);
	`

	tests := []struct {
		name   string
		actual string
		diffs  []string
	}{
		{
			name: "equivalent after normalization",
			actual: "CREATE DATABASE `shop`;\n" +
				"CREATE TABLE `users` (`id` int NOT NULL, `email` varchar(255) DEFAULT NULL, `active` tinyint(1) DEFAULT NULL, PRIMARY KEY (`id`)) ENGINE=InnoDB;",
		},
		{
			name:   "missing table",
			actual: "CREATE DATABASE shop;",
			diffs:  []string{"shop.users: table is missing"},
		},
		{
			name: "unexpected table",
			actual: `CREATE DATABASE shop;
				CREATE TABLE users (id INT PRIMARY KEY, email VARCHAR(10), active BOOL);
				CREATE TABLE extra (id INT);`,
			diffs: []string{"shop.extra: unexpected table"},
		},
		{
			name: "column differences",
			actual: `CREATE DATABASE shop;
				CREATE TABLE users (id INT, email TEXT, created_at DATETIME, PRIMARY KEY (id));`,
			diffs: []string{
				"shop.users.email: type is text, want varchar",
				"shop.users.active: column is missing",
				"shop.users.created_at: unexpected column",
			},
		},
		{
			name: "column order",
			actual: `CREATE DATABASE shop;
				CREATE TABLE users (id INT PRIMARY KEY, active BOOL, email VARCHAR(255));`,
			diffs: []string{"shop.users: column order is (id,active,email), want (id,email,active)"},
		},
		{
			name: "primary key",
			actual: `CREATE DATABASE shop;
				CREATE TABLE users (id INT, email VARCHAR(255), active BOOL, PRIMARY KEY (id, email));`,
			diffs: []string{"shop.users: primary key is (id,email), want (id)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diffs := Units(parseUnit(t, expected), parseUnit(t, tt.actual))

			got := make([]string, len(diffs))
			for i, d := range diffs {
				got[i] = d.String()
			}

			if len(tt.diffs) == 0 {
				require.Empty(t, got)
				return
			}
			require.Equal(t, tt.diffs, got)
		})
	}
}

func TestUnits_DatabasesAreDistinct(t *testing.T) {
	expected := parseUnit(t, "CREATE TABLE a.t (id INT);")
	actual := parseUnit(t, "CREATE TABLE b.t (id INT);")

	diffs := Units(expected, actual)
	require.Equal(t, []Difference{
		{Database: "a", Table: "t", Message: "table is missing"},
		{Database: "b", Table: "t", Message: "unexpected table"},
	}, diffs)
}

func TestUnits_Nil(t *testing.T) {
	require.Empty(t, Units(nil, nil))

	diffs := Units(parseUnit(t, "CREATE TABLE a.t (id INT);"), nil)
	require.Len(t, diffs, 1)
}

func TestDifference_String(t *testing.T) {
	require.Equal(t, "shop: x", Difference{Database: "shop", Message: "x"}.String())
	require.Equal(t, "shop.t: x", Difference{Database: "shop", Table: "t", Message: "x"}.String())
	require.Equal(t, "shop.t.c: x", Difference{Database: "shop", Table: "t", Column: "c", Message: "x"}.String())
}
