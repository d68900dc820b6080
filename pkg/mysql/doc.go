// Package mysql reads live schema definitions out of a MySQL server.
//
// The client connects with github.com/go-sql-driver/mysql and extracts DDL
// the same way mysqldump does, through SHOW CREATE DATABASE and SHOW CREATE
// TABLE. The extracted text is fed back through the parser so callers get the
// same AST they would get from a schema file on disk.
//
// Key features:
//   - DSN validation before any network traffic
//   - Optional TLS with a client certificate, a private CA, or both
//   - System schemas (mysql, sys, information_schema, performance_schema)
//     are never extracted
//   - Views are skipped; only base tables are dumped
//   - Server version detection
//
// Example usage:
//
//	client, err := mysql.NewClient(ctx, "root:secret@tcp(localhost:3306)/")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	unit, err := mysql.DumpSchema(ctx, client, mysql.DumpOptions{
//		Databases: []string{"shop"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	for _, db := range unit.Databases() {
//		fmt.Printf("%s: %d tables\n", db.Name, len(db.Tables))
//	}
package mysql
