package result

// Severity of a server-reported diagnostic entry.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// DiagEntry is one warning or error reported by the server inside a reply.
// Entries are captured, not thrown: an error entry makes the result
// data-less instead of aborting the whole reply.
type DiagEntry struct {
	Severity Severity
	Code     uint16
	Msg      string
}

// diagArena accumulates diagnostic entries pulled from the reply. Mirrors
// the lazily filled arena on the result object: entries are loaded on first
// access and kept until explicitly cleared.
type diagArena struct {
	entries []DiagEntry
}

func (a *diagArena) add(e DiagEntry) {
	a.entries = append(a.entries, e)
}

func (a *diagArena) bySeverity(sev Severity) []DiagEntry {
	var out []DiagEntry
	for _, e := range a.entries {
		if e.Severity == sev {
			out = append(out, e)
		}
	}
	return out
}

func (a *diagArena) clear() {
	a.entries = nil
}
