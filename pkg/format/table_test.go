package format_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/myddl/pkg/format"
	"github.com/pseudomuto/myddl/pkg/parser"
	"github.com/stretchr/testify/require"
)

func TestFormatter_CreateTable(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		expected []string
	}{
		{
			name: "columns and keys",
			sql: `CREATE TABLE users (
				id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
				email VARCHAR(255) CHARACTER SET utf8mb4 NOT NULL,
				PRIMARY KEY (id),
				UNIQUE KEY uq_email (email)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;`,
			expected: []string{
				"CREATE TABLE `users` (",
				"    `id` BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,",
				"    `email` VARCHAR(255) CHARACTER SET utf8mb4 NOT NULL,",
				"    PRIMARY KEY (`id`),",
				"    UNIQUE KEY `uq_email` (`email`)",
				") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;",
			},
		},
		{
			name: "defaults",
			sql: `CREATE TABLE t (
				created_at DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),
				updated DATETIME DEFAULT NOW(),
				status ENUM('a','b') NOT NULL DEFAULT 'a',
				flags SET('x', 'y') DEFAULT NULL,
				price DECIMAL(10,2) UNSIGNED DEFAULT 0.00,
				data JSON DEFAULT (JSON_ARRAY())
			);`,
			expected: []string{
				"CREATE TABLE `t` (",
				"    `created_at` DATETIME(3) NOT NULL DEFAULT CURRENT_TIMESTAMP(3) ON UPDATE CURRENT_TIMESTAMP(3),",
				"    `updated` DATETIME DEFAULT NOW(),",
				"    `status` ENUM('a','b') NOT NULL DEFAULT 'a',",
				"    `flags` SET('x','y') DEFAULT NULL,",
				"    `price` DECIMAL(10,2) UNSIGNED DEFAULT 0.00,",
				"    `data` JSON DEFAULT (JSON_ARRAY())",
				");",
			},
		},
		{
			name: "constraints",
			sql: `CREATE TABLE shop.orders (
				id INT NOT NULL,
				user_id INT,
				note TEXT,
				CONSTRAINT pk PRIMARY KEY USING BTREE (id),
				KEY idx_user (user_id DESC) COMMENT 'by user' INVISIBLE,
				FULLTEXT KEY ft_note (note) WITH PARSER ngram,
				CONSTRAINT fk_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE ON UPDATE SET NULL,
				CHECK (user_id > 0) NOT ENFORCED,
				INDEX (note(10))
			);`,
			expected: []string{
				"CREATE TABLE `shop`.`orders` (",
				"    `id` INT NOT NULL,",
				"    `user_id` INT,",
				"    `note` TEXT,",
				"    CONSTRAINT `pk` PRIMARY KEY USING BTREE (`id`),",
				"    KEY `idx_user` (`user_id` DESC) COMMENT 'by user' INVISIBLE,",
				"    FULLTEXT KEY `ft_note` (`note`) WITH PARSER ngram,",
				"    CONSTRAINT `fk_user` FOREIGN KEY (`user_id`) REFERENCES `users` (`id`) ON DELETE CASCADE ON UPDATE SET NULL,",
				"    CHECK (user_id > 0) NOT ENFORCED,",
				"    INDEX (`note`(10))",
				");",
			},
		},
		{
			name: "table options",
			sql: `CREATE TEMPORARY TABLE IF NOT EXISTS t (id INT)
				ENGINE = InnoDB, AUTO_INCREMENT = 100 ROW_FORMAT=dynamic COMMENT='hello'
				COMPRESSION='zlib' STATS_PERSISTENT=DEFAULT AUTOEXTEND_SIZE=8m TABLESPACE ts STORAGE DISK;`,
			expected: []string{
				"CREATE TEMPORARY TABLE IF NOT EXISTS `t` (",
				"    `id` INT",
				") ENGINE=InnoDB AUTO_INCREMENT=100 ROW_FORMAT=DYNAMIC COMMENT='hello' COMPRESSION='ZLIB' " +
					"STATS_PERSISTENT=DEFAULT AUTOEXTEND_SIZE=8M TABLESPACE `ts` STORAGE DISK;",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, err := parser.ParseString(tt.sql)
			require.NoError(t, err)
			require.Len(t, sql.Statements, 1)

			require.Equal(t, strings.Join(tt.expected, "\n"), Statement(sql.Statements[0]))
		})
	}
}

func TestFormatter_DataType(t *testing.T) {
	tests := map[string]string{
		"int":                          "INT",
		"integer(10) signed":           "INTEGER(10)",
		"tinyint(1) unsigned zerofill": "TINYINT(1) UNSIGNED ZEROFILL",
		"boolean":                      "BOOLEAN",
		"numeric(8)":                   "NUMERIC(8)",
		"real":                         "REAL",
		"char":                         "CHAR",
		"varbinary(16)":                "VARBINARY(16)",
		"longtext charset latin1":      "LONGTEXT CHARACTER SET latin1",
		"date":                         "DATE",
		"timestamp(6)":                 "TIMESTAMP(6)",
		"year(4)":                      "YEAR(4)",
		"json":                         "JSON",
	}

	f := New(Defaults)
	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			sql, err := parser.ParseString("CREATE TABLE t (c " + input + ");")
			require.NoError(t, err)

			col := sql.Statements[0].CreateTable.Columns()[0]
			require.Equal(t, expected, f.DataType(col.Type))
			require.Equal(t, "`c` "+expected, f.Column(col))
		})
	}
}

func TestFormatter_Key(t *testing.T) {
	sql, err := parser.ParseString("CREATE TABLE t (a INT, b INT, CONSTRAINT UNIQUE (a, b) KEY_BLOCK_SIZE 4);")
	require.NoError(t, err)

	keys := sql.Statements[0].CreateTable.Keys()
	require.Len(t, keys, 1)
	require.Equal(t, "CONSTRAINT UNIQUE (`a`,`b`) KEY_BLOCK_SIZE=4", New(Defaults).Key(keys[0]))
}
