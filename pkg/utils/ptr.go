package utils

// Ptr returns a pointer to v. Optional AST fields (a table's database, an
// identifier's qualifier) are pointers, so this keeps call sites to one line.
func Ptr[T any](v T) *T {
	return &v
}
