package parser

import "slices"

// Closed value sets. The grammar captures these permissively (identifier,
// number or string) so that an out-of-set value is reported by the validator
// as a value error instead of a grammar mismatch.
type (
	// RowFormat is the ROW_FORMAT table option.
	RowFormat string
	// Compression is the COMPRESSION table option.
	Compression string
	// Encryption is the ENCRYPTION table and database option.
	Encryption string
	// InsertMethod is the INSERT_METHOD table option of MERGE tables.
	InsertMethod string
	// Toggle is a {0|1} option such as CHECKSUM or DELAY_KEY_WRITE.
	Toggle string
	// TriState is a {DEFAULT|0|1} option such as PACK_KEYS.
	TriState string
	// Storage is the STORAGE clause of columns and tablespaces.
	Storage string
	// ColumnFormat is the COLUMN_FORMAT column attribute.
	ColumnFormat string
	// IndexAlgorithm is the USING clause of an index.
	IndexAlgorithm string
	// Visibility is VISIBLE or INVISIBLE, for columns and indexes.
	Visibility string
	// DirectoryKind distinguishes DATA DIRECTORY from INDEX DIRECTORY.
	DirectoryKind string
	// ReferenceOption is the action of an ON DELETE/ON UPDATE clause.
	ReferenceOption string
	// ReferenceEvent is DELETE or UPDATE.
	ReferenceEvent string
	// MatchType is the MATCH clause of a foreign key reference.
	MatchType string
	// Enforcement is ENFORCED or NOT ENFORCED on a CHECK constraint.
	Enforcement string
)

const (
	RowFormatDefault    RowFormat = "DEFAULT"
	RowFormatDynamic    RowFormat = "DYNAMIC"
	RowFormatFixed      RowFormat = "FIXED"
	RowFormatCompressed RowFormat = "COMPRESSED"
	RowFormatRedundant  RowFormat = "REDUNDANT"
	RowFormatCompact    RowFormat = "COMPACT"

	CompressionZlib Compression = "ZLIB"
	CompressionLZ4  Compression = "LZ4"
	CompressionNone Compression = "NONE"

	EncryptionYes Encryption = "Y"
	EncryptionNo  Encryption = "N"

	InsertMethodNo    InsertMethod = "NO"
	InsertMethodFirst InsertMethod = "FIRST"
	InsertMethodLast  InsertMethod = "LAST"

	ToggleOff Toggle = "0"
	ToggleOn  Toggle = "1"

	TriStateDefault TriState = "DEFAULT"
	TriStateOff     TriState = "0"
	TriStateOn      TriState = "1"

	StorageDisk   Storage = "DISK"
	StorageMemory Storage = "MEMORY"

	ColumnFormatFixed   ColumnFormat = "FIXED"
	ColumnFormatDynamic ColumnFormat = "DYNAMIC"
	ColumnFormatDefault ColumnFormat = "DEFAULT"

	IndexAlgorithmBTree IndexAlgorithm = "BTREE"
	IndexAlgorithmHash  IndexAlgorithm = "HASH"

	Visible   Visibility = "VISIBLE"
	Invisible Visibility = "INVISIBLE"

	DataDirectory  DirectoryKind = "DATA"
	IndexDirectory DirectoryKind = "INDEX"

	Restrict   ReferenceOption = "RESTRICT"
	Cascade    ReferenceOption = "CASCADE"
	SetNull    ReferenceOption = "SET NULL"
	SetDefault ReferenceOption = "SET DEFAULT"
	NoAction   ReferenceOption = "NO ACTION"

	OnDeleteEvent ReferenceEvent = "DELETE"
	OnUpdateEvent ReferenceEvent = "UPDATE"

	MatchFull    MatchType = "FULL"
	MatchPartial MatchType = "PARTIAL"
	MatchSimple  MatchType = "SIMPLE"

	Enforced    Enforcement = "ENFORCED"
	NotEnforced Enforcement = "NOT ENFORCED"
)

var (
	rowFormats      = []RowFormat{RowFormatDefault, RowFormatDynamic, RowFormatFixed, RowFormatCompressed, RowFormatRedundant, RowFormatCompact}
	compressions    = []Compression{CompressionZlib, CompressionLZ4, CompressionNone}
	encryptions     = []Encryption{EncryptionYes, EncryptionNo}
	insertMethods   = []InsertMethod{InsertMethodNo, InsertMethodFirst, InsertMethodLast}
	toggles         = []Toggle{ToggleOff, ToggleOn}
	triStates       = []TriState{TriStateDefault, TriStateOff, TriStateOn}
	storages        = []Storage{StorageDisk, StorageMemory}
	columnFormats   = []ColumnFormat{ColumnFormatFixed, ColumnFormatDynamic, ColumnFormatDefault}
	indexAlgorithms = []IndexAlgorithm{IndexAlgorithmBTree, IndexAlgorithmHash}
)

func (v *RowFormat) Capture(values []string) error       { *v = RowFormat(keyword(values)); return nil }
func (v *Compression) Capture(values []string) error     { *v = Compression(keyword(values)); return nil }
func (v *Encryption) Capture(values []string) error      { *v = Encryption(keyword(values)); return nil }
func (v *InsertMethod) Capture(values []string) error    { *v = InsertMethod(keyword(values)); return nil }
func (v *Toggle) Capture(values []string) error          { *v = Toggle(keyword(values)); return nil }
func (v *TriState) Capture(values []string) error        { *v = TriState(keyword(values)); return nil }
func (v *Storage) Capture(values []string) error         { *v = Storage(keyword(values)); return nil }
func (v *ColumnFormat) Capture(values []string) error    { *v = ColumnFormat(keyword(values)); return nil }
func (v *IndexAlgorithm) Capture(values []string) error  { *v = IndexAlgorithm(keyword(values)); return nil }
func (v *Visibility) Capture(values []string) error      { *v = Visibility(keyword(values)); return nil }
func (v *DirectoryKind) Capture(values []string) error   { *v = DirectoryKind(keyword(values)); return nil }
func (v *ReferenceOption) Capture(values []string) error { *v = ReferenceOption(keyword(values)); return nil }
func (v *ReferenceEvent) Capture(values []string) error  { *v = ReferenceEvent(keyword(values)); return nil }
func (v *MatchType) Capture(values []string) error       { *v = MatchType(keyword(values)); return nil }
func (v *Enforcement) Capture(values []string) error     { *v = Enforcement(keyword(values)); return nil }

func (v RowFormat) Valid() bool      { return slices.Contains(rowFormats, v) }
func (v Compression) Valid() bool    { return slices.Contains(compressions, v) }
func (v Encryption) Valid() bool     { return slices.Contains(encryptions, v) }
func (v InsertMethod) Valid() bool   { return slices.Contains(insertMethods, v) }
func (v Toggle) Valid() bool         { return slices.Contains(toggles, v) }
func (v TriState) Valid() bool       { return slices.Contains(triStates, v) }
func (v Storage) Valid() bool        { return slices.Contains(storages, v) }
func (v ColumnFormat) Valid() bool   { return slices.Contains(columnFormats, v) }
func (v IndexAlgorithm) Valid() bool { return slices.Contains(indexAlgorithms, v) }
