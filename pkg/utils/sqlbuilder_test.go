package utils_test

import (
	"testing"

	"github.com/pseudomuto/myddl/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestSQLBuilder(t *testing.T) {
	tests := []struct {
		name     string
		builder  func() *utils.SQLBuilder
		expected string
	}{
		{
			name:     "CREATE DATABASE",
			builder:  func() *utils.SQLBuilder { return utils.NewSQLBuilder().Create("DATABASE").Name("test") },
			expected: "CREATE DATABASE `test`;",
		},
		{
			name: "CREATE DATABASE IF NOT EXISTS with options",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Create("DATABASE").IfNotExists().Name("shop").Raw("CHARACTER SET utf8mb4")
			},
			expected: "CREATE DATABASE IF NOT EXISTS `shop` CHARACTER SET utf8mb4;",
		},
		{
			name: "DROP TABLE IF EXISTS qualified",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Drop("TABLE").IfExists().QualifiedName(utils.Ptr("shop"), "users")
			},
			expected: "DROP TABLE IF EXISTS `shop`.`users`;",
		},
		{
			name: "options and quoted values",
			builder: func() *utils.SQLBuilder {
				return utils.NewSQLBuilder().Option("ENGINE", "InnoDB").Option("ROW_FORMAT", "").Raw("COMMENT").Quoted("users")
			},
			expected: "ENGINE=InnoDB COMMENT 'users';",
		},
		{
			name:     "empty builder",
			builder:  utils.NewSQLBuilder,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.builder().String())
		})
	}
}

func TestSQLBuilder_WithoutSemicolon(t *testing.T) {
	b := utils.NewSQLBuilder().Show("CREATE TABLE").QualifiedName(utils.Ptr("shop"), "users")
	require.Equal(t, "SHOW CREATE TABLE `shop`.`users`", b.StringWithoutSemicolon())
	require.Equal(t, 3, b.Len())
}
