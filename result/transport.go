package result

// Transport collaborator contracts. The session layer implements these; the
// result engine only consumes them. All Wait style calls block until the
// transport has the requested data.

// Reply gives access to one request's full server response, which may carry
// several sequential results.
type Reply interface {
	// Wait blocks until the reply header has been received.
	Wait() error

	// NextResult advances to the next result of the reply. It returns
	// false when the reply holds no further results.
	NextResult() (bool, error)

	// HasResults reports whether the current result carries row data.
	HasResults() bool

	// Cursor opens a cursor over the current data-bearing result.
	Cursor() (Cursor, error)

	// EntryCount returns the number of diagnostic entries of the given
	// severity.
	EntryCount(sev Severity) (uint, error)

	// Entries returns the diagnostic entries of exactly the given
	// severity.
	Entries(sev Severity) []DiagEntry

	AffectedRows() (uint64, error)
	LastInsertID() (uint64, error)

	// Release frees the transport side of the reply. The reply must not
	// be used afterwards.
	Release()
}

// Cursor reads metadata and rows of one data-bearing result.
type Cursor interface {
	// Wait blocks until result metadata is available.
	Wait() error

	ColCount() uint
	Type(pos uint) TypeTag
	Format(pos uint) FormatInfo
	ColInfo(pos uint) ColumnMeta

	// GetRows pushes rows into the processor until the processor declines
	// a row, or the result is exhausted (EndOfData is called in that
	// case). Delivery resumes at the first undelivered row on the next
	// call.
	GetRows(rp RowProcessor) error

	Close() error
}

// FormatInfo exposes the codec construction parameters the server reported
// for one column. Accessors that do not apply to the column's type return
// zero values.
type FormatInfo interface {
	// PadWidth is the fixed width of padded bytes columns, 0 if unpadded.
	PadWidth() uint64

	// Unsigned reports whether an integer column is unsigned.
	Unsigned() bool

	// FloatKind tells how a float column's values are encoded.
	FloatKind() FloatKind

	// Scale is the decimal digit count of a decimal-encoded column.
	Scale() uint32

	// ContentType names the document encoding, "json" if empty.
	ContentType() string
}

// ColumnMeta exposes the textual identity the server reported for one
// column.
type ColumnMeta interface {
	OrigName() string
	Name() string
	TableOrigName() string
	TableName() string
	SchemaName() string
	Length() uint32
	Decimals() uint32
	Collation() uint16
}

// Session is the session-scoped resource backing the transport. A Result
// keeps a reference for its whole lifetime so the session cannot be torn
// down under an outstanding reply.
type Session interface {
	AddRef()
	Release()
}

// ResultInit initializes a Result: it hands over the reply (ownership moves
// to the Result) and the session keep-alive, plus any server-generated
// document ids of the executed statement.
type ResultInit interface {
	Session() Session
	Reply() Reply
	GeneratedIDs() []string
}
