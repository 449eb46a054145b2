package carriers

import "fmt"

// Stage names the loader step that produced a Warning
type Stage string

const (
	StageLoad      Stage = "load"
	StageClean     Stage = "clean"
	StageSummarize Stage = "summarize"
)

// Warning records a non-fatal, per-file failure. The file is left out of the
// stage's output and the batch continues.
type Warning struct {
	File  string
	Stage Stage
	Err   error
}

func (w Warning) String() string {
	return fmt.Sprintf("%s %s: %v", w.Stage, w.File, w.Err)
}
