// Package schema assembles schema files that are split across several files.
//
// A schema entrypoint can pull in other files with an import directive:
//
//	CREATE DATABASE shop;
//	-- myddl:import tables/users.sql
//	-- myddl:import tables/orders.sql
//
// Compile inlines the imports recursively, so the result can be handed to the
// parser as one buffer and the current database carries across files. The
// directive is an ordinary SQL comment, so each file stays valid on its own.
package schema
