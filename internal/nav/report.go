package nav

import (
	"fmt"
	"strings"
)

// Issue is a single human-readable validation finding.
type Issue struct {
	Path    string // dotted path to the offending element, e.g. "regions.floor"
	Message string
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// Report collects validation issues. Validation passes never halt on the
// first problem; tooling wants every issue in a scene at once.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

func NewReport() *Report {
	return &Report{}
}

// AddError records an authoring mistake that makes the element unusable.
func (r *Report) AddError(path, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// AddWarning records a suspicious but tolerated condition.
func (r *Report) AddWarning(path, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Merge appends every issue from other into r.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
}

// OK reports whether the report contains no errors. Warnings do not fail
// validation.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

func (r *Report) String() string {
	var b strings.Builder
	for _, e := range r.Errors {
		b.WriteString("error: ")
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	for _, w := range r.Warnings {
		b.WriteString("warning: ")
		b.WriteString(w.String())
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return "ok\n"
	}
	return b.String()
}
