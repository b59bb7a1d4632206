package ui

// AppMode is derived from the focus controller: browsing when no cell is
// editing, editing otherwise.
type AppMode int

const (
	ModeBrowse AppMode = iota
	ModeEdit
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeEdit:
		return "Edit"
	default:
		return "Unknown"
	}
}
