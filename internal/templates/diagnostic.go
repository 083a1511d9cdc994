package templates

import (
	"fmt"

	"github.com/nauticalab/buildenv/internal/config"
)

// Issue is one invalid variable as shown in the diagnostic
type Issue struct {
	Field  string
	Value  string
	Reason string
}

// DiagnosticData feeds diagnostic.txt.tmpl
type DiagnosticData struct {
	Errors  []Issue
	Options []config.Option
	// Sources lists where environment values were read from
	Sources []string
}

// Count is the number of invalid variables
func (d DiagnosticData) Count() int {
	return len(d.Errors)
}

// NewDiagnostic prepares the human-readable report for a failed validation
func NewDiagnostic(cerr *config.ConfigurationError, sources []string) DiagnosticData {
	data := DiagnosticData{
		Options: config.Options(),
		Sources: sources,
	}
	for _, fe := range cerr.Errors {
		data.Errors = append(data.Errors, Issue{
			Field:  fe.Field,
			Value:  fmt.Sprint(fe.BadValue),
			Reason: fe.Detail,
		})
	}
	return data
}
