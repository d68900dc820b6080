// Package compare reports structural differences between two parsed schemas.
//
// It is used to check a schema against what a MySQL server made of it: the
// schema is loaded into a server, dumped back with SHOW CREATE TABLE and both
// units are compared. The comparison is deliberately coarse. Servers rewrite
// DDL (display widths, charsets, implicit indexes for foreign keys), so only
// the things a server must preserve are compared:
//
//   - Which tables exist in which database
//   - Column names and their order
//   - The type family of each column
//   - The primary key columns
//
// # Usage Example
//
//	expected, _ := parser.ParseUnit("schema.sql", f)
//	actual, _ := mysql.DumpSchema(ctx, client, mysql.DumpOptions{Databases: names})
//
//	for _, d := range compare.Units(expected, actual) {
//		fmt.Println(d) // shop.users.email: column is missing
//	}
package compare
