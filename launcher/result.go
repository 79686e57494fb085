package launcher

import (
	"errors"
	"fmt"
)

var (
	// ErrNoDirectory means the containing folder of a path could not be determined
	ErrNoDirectory = errors.New("unable to determine program directory")
	// ErrUnknownProgram means the category/program pair is not in the mapping
	ErrUnknownProgram = errors.New("unknown program")
)

// Status is the outcome of a launch request
type Status int

const (
	// Launched means the process was started
	Launched Status = iota
	// NotConfigured means no path is stored and the user cancelled the picker
	NotConfigured
	// PickFailed means the picker failed or returned an unusable file
	PickFailed
	// SaveFailed means the new path could not be written to the settings file
	SaveFailed
	// NoDirectory means the directory of the path could not be determined
	NoDirectory
	// ChdirFailed means changing into the program directory failed
	ChdirFailed
	// SpawnFailed means starting the process failed
	SpawnFailed
)

func (s Status) String() string {
	switch s {
	case Launched:
		return "launched"
	case NotConfigured:
		return "not configured"
	case PickFailed:
		return "pick failed"
	case SaveFailed:
		return "save failed"
	case NoDirectory:
		return "no directory"
	case ChdirFailed:
		return "chdir failed"
	case SpawnFailed:
		return "spawn failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result describes what happened to one launch request. ID correlates the
// log lines of a single request.
type Result struct {
	ID       string
	Category string
	Program  string
	Path     string
	Status   Status
	Err      error
}

// OK reports whether the program was started
func (r Result) OK() bool {
	return r.Status == Launched
}

// Message is a one-line, human readable summary
func (r Result) Message() string {
	switch r.Status {
	case Launched:
		return fmt.Sprintf("Launched %s", r.Program)
	case NotConfigured:
		return fmt.Sprintf("The path for %s is empty. Please select the executable file.", r.Program)
	case NoDirectory:
		return fmt.Sprintf("Unable to determine the directory for %s.", r.Program)
	default:
		return fmt.Sprintf("An error occurred while launching %s: %v", r.Program, r.Err)
	}
}

func (r Result) fail(status Status, err error) Result {
	r.Status = status
	r.Err = err
	return r
}
