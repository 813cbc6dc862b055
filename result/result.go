package result

import (
	"github.com/juju/errors"

	"github.com/gragonvlad/xmysql-connector/logger"
)

/*
Result gives access to one server reply, which may contain several
sequential results. NextResult prepares one result at a time; a prepared
result either carries row data (read through GetRow/Store/Count, decoded
against the result's metadata catalog) or is a pure status result that still
exposes affected rows, auto increment id and warning count.

Rows are fetched through the cursor's push callbacks into an internal cache
and handed out in arrival order. All transport interactions block the
calling goroutine; the engine has no internal parallelism and no retry.
*/
type Result struct {
	sess   Session
	reply  Reply
	cursor Cursor

	// shared read-only with every Row produced from this result
	mdata *Metadata

	inited      bool
	exhausted   bool
	hadData     bool
	pendingRows bool

	cache        rowCache
	prefetchSize uint64

	diag       diagArena
	diagLoaded bool

	filter RowFilter

	// ingestion state for the batch currently being loaded
	asm    rowAssembler
	budget uint64
	loaded uint64

	genIDs []string
}

// NewResult builds a result from a result initializer. The result takes
// ownership of the reply and holds the session alive until Close.
func NewResult(init ResultInit) *Result {
	sess := init.Session()
	if sess != nil {
		sess.AddRef()
	}
	return &Result{
		sess:   sess,
		reply:  init.Reply(),
		genIDs: init.GeneratedIDs(),
	}
}

// SetPrefetchSize bounds how many rows GetRow loads into the cache per
// batch. 0 loads without bound.
func (r *Result) SetPrefetchSize(n uint64) {
	r.prefetchSize = n
}

// SetRowFilter installs a client-side row filter. Rows rejected by the
// filter are silently dropped before they reach the cache.
func (r *Result) SetRowFilter(f RowFilter) {
	r.filter = f
}

// GeneratedIDs returns the document ids the server generated for the
// executed statement.
func (r *Result) GeneratedIDs() []string {
	return r.genIDs
}

// NextResult prepares the next result of the reply. It must be called
// before anything else; calling it again consumes the current result,
// unread rows included, and advances to the next one. Returns false once
// the reply is exhausted. A reply carrying a server error entry yields no
// results; the error is available through Errors().
func (r *Result) NextResult() (bool, error) {
	if r.reply == nil {
		return false, errors.Trace(ErrResultReleased)
	}
	if r.exhausted {
		return false, nil
	}

	if !r.inited {
		if err := r.reply.Wait(); err != nil {
			return false, errors.Trace(err)
		}
		r.inited = true

		n, err := r.reply.EntryCount(SeverityError)
		if err != nil {
			return false, errors.Trace(err)
		}
		if n > 0 {
			r.loadDiagnostics()
			r.exhausted = true
			logger.Debugf("reply carries %d error entries, no results", n)
			return false, nil
		}
	} else if err := r.discardCurrent(); err != nil {
		return false, errors.Trace(err)
	}

	ok, err := r.reply.NextResult()
	if err != nil {
		return false, errors.Trace(err)
	}
	if !ok {
		r.exhausted = true
		logger.Debugf("reply exhausted")
		return false, nil
	}

	r.cache.clear()
	r.mdata = nil
	r.hadData = false
	r.pendingRows = false

	if r.reply.HasResults() {
		cur, err := r.reply.Cursor()
		if err != nil {
			return false, errors.Trace(err)
		}
		if err := cur.Wait(); err != nil {
			return false, errors.Trace(err)
		}
		r.cursor = cur
		r.mdata = NewMetadata(cur)
		r.pendingRows = true
		r.hadData = true
		logger.Debugf("result prepared with %d columns", r.mdata.ColCount())
	} else {
		logger.Debugf("status result prepared")
	}

	return true, nil
}

// HasData reports whether the current result has more rows to fetch.
func (r *Result) HasData() bool {
	return !r.cache.empty() || r.pendingRows
}

// GetRow fetches the next row of the current result, nil when the rows are
// exhausted. Fails with ErrNoData if this result never carried row data.
// Rows are cached internally and read in prefetch-sized batches.
func (r *Result) GetRow() (*Row, error) {
	if r.reply == nil {
		return nil, errors.Trace(ErrResultReleased)
	}
	if !r.hadData {
		return nil, errors.Trace(ErrNoData)
	}

	ok, err := r.loadCache(r.prefetchSize)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if !ok {
		return nil, nil
	}
	return NewRow(r.cache.popFront(), r.mdata), nil
}

// Store drains all remaining rows of the current result into the cache.
func (r *Result) Store() error {
	_, err := r.loadCache(0)
	return errors.Trace(err)
}

// Count returns the number of rows remaining in the current result. This
// drains the result into the cache first; rows already fetched with GetRow
// are not counted.
func (r *Result) Count() (uint64, error) {
	if err := r.Store(); err != nil {
		return 0, errors.Trace(err)
	}
	return r.cache.size, nil
}

// GetMetadata returns the shared metadata catalog of the current result,
// nil for status-only results.
func (r *Result) GetMetadata() *Metadata {
	return r.mdata
}

// GetColCount returns the column count of the current result set.
func (r *Result) GetColCount() (uint, error) {
	if r.cursor == nil {
		return 0, errors.Annotate(ErrNoResult, "no result set")
	}
	return r.cursor.ColCount(), nil
}

// GetColumn returns the metadata of one column of the current result set.
func (r *Result) GetColumn(pos uint) (*ColumnInfo, error) {
	if r.cursor == nil || r.mdata == nil {
		return nil, errors.Annotate(ErrNoResult, "no result set")
	}
	ci, err := r.mdata.Column(pos)
	if err != nil {
		return nil, errors.Trace(err)
	}
	return ci, nil
}

// GetAffectedRows returns the affected row count of the current result.
func (r *Result) GetAffectedRows() (uint64, error) {
	if r.reply == nil || !r.inited {
		return 0, errors.Annotate(ErrNoResult,
			"attempt to get affected rows count on empty result")
	}
	n, err := r.reply.AffectedRows()
	return n, errors.Trace(err)
}

// GetAutoIncrement returns the last insert id of the current result.
func (r *Result) GetAutoIncrement() (uint64, error) {
	if r.reply == nil || !r.inited {
		return 0, errors.Annotate(ErrNoResult,
			"attempt to get auto increment value on empty result")
	}
	n, err := r.reply.LastInsertID()
	return n, errors.Trace(err)
}

// GetWarningCount returns the number of warnings of the current result.
func (r *Result) GetWarningCount() (uint, error) {
	if r.reply == nil || !r.inited {
		return 0, errors.Annotate(ErrNoResult,
			"attempt to get warning count for empty result")
	}
	r.loadDiagnostics()
	n, err := r.reply.EntryCount(SeverityWarning)
	return n, errors.Trace(err)
}

// Warnings returns the warning entries of the reply.
func (r *Result) Warnings() ([]DiagEntry, error) {
	if r.reply == nil {
		return nil, errors.Trace(ErrResultReleased)
	}
	r.loadDiagnostics()
	return r.diag.bySeverity(SeverityWarning), nil
}

// Errors returns the error entries of the reply.
func (r *Result) Errors() ([]DiagEntry, error) {
	if r.reply == nil {
		return nil, errors.Trace(ErrResultReleased)
	}
	r.loadDiagnostics()
	return r.diag.bySeverity(SeverityError), nil
}

// ClearDiagnostics drops the cached diagnostic entries; the next access
// re-pulls them from the reply.
func (r *Result) ClearDiagnostics() {
	r.diag.clear()
	r.diagLoaded = false
}

// Close releases the transport resources: any open cursor is drained and
// closed first, then the reply, then the session keep-alive. Safe to call
// more than once.
func (r *Result) Close() error {
	if r.reply == nil {
		return nil
	}
	err := r.discardCurrent()
	r.reply.Release()
	r.reply = nil
	if r.sess != nil {
		r.sess.Release()
		r.sess = nil
	}
	return errors.Trace(err)
}

// loadCache ensures rows are available in the cache. A bounded load with a
// non-empty cache returns true right away; otherwise the cursor is driven
// until the result is exhausted or prefetch rows were appended. prefetch 0
// loads without bound and always drains the pending rows. Returns whether
// any rows are now cached.
func (r *Result) loadCache(prefetch uint64) (bool, error) {
	if prefetch > 0 && !r.cache.empty() {
		return true, nil
	}
	if r.cursor == nil || !r.pendingRows {
		return !r.cache.empty(), nil
	}

	r.budget = prefetch
	r.loaded = 0
	if err := r.cursor.GetRows(r); err != nil {
		return false, errors.Trace(err)
	}
	logger.Debugf("loaded %d rows into cache (prefetch %d)", r.loaded, prefetch)
	return !r.cache.empty(), nil
}

// discardCurrent abandons the current result: unread rows are drained so
// the transport stays in sync, then the cursor is closed.
func (r *Result) discardCurrent() error {
	r.cache.clear()
	if r.cursor == nil {
		return nil
	}
	if r.pendingRows {
		if err := r.cursor.GetRows(discardProcessor{}); err != nil {
			return errors.Trace(err)
		}
		r.pendingRows = false
	}
	err := r.cursor.Close()
	r.cursor = nil
	return errors.Trace(err)
}

// RowProcessor side: the cursor pushes row bytes into these callbacks
// while loadCache runs.

// RowBegin implements RowProcessor. Declining a row stops the current
// batch; the cursor redelivers that row on the next GetRows call.
func (r *Result) RowBegin(row uint64) bool {
	if r.budget > 0 && r.loaded >= r.budget {
		return false
	}
	r.asm.begin()
	return true
}

// FieldBegin implements RowProcessor.
func (r *Result) FieldBegin(col uint, sizeHint int) int {
	r.asm.fieldBegin(col)
	return fieldChunkSize
}

// FieldData implements RowProcessor. Chunks of one field are concatenated
// in delivery order.
func (r *Result) FieldData(col uint, chunk []byte) int {
	r.asm.fieldData(col, chunk)
	return fieldChunkSize
}

// FieldEnd implements RowProcessor.
func (r *Result) FieldEnd(col uint) {}

// FieldNull implements RowProcessor.
func (r *Result) FieldNull(col uint) {
	r.asm.fieldNull(col)
}

// RowEnd implements RowProcessor. The row filter runs here; rejected rows
// never reach the cache but keep their transport row index.
func (r *Result) RowEnd(row uint64) {
	raw := r.asm.take()
	if raw == nil {
		return
	}
	if r.filter != nil && !r.filter(raw) {
		return
	}
	r.cache.append(raw)
	r.loaded++
}

// EndOfData implements RowProcessor.
func (r *Result) EndOfData() {
	r.pendingRows = false
}

// loadDiagnostics copies the reply's diagnostic entries into the local
// arena once; ClearDiagnostics resets the flag.
func (r *Result) loadDiagnostics() {
	if r.diagLoaded {
		return
	}
	for _, sev := range []Severity{SeverityWarning, SeverityError} {
		for _, e := range r.reply.Entries(sev) {
			r.diag.add(e)
		}
	}
	r.diagLoaded = true
}
