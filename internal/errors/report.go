package errors

import (
	"encoding/json"
	"errors"

	"github.com/tsxcheck/tsxcheck/internal/ast"
)

// Fix is an optional, non-automatic correction attached to a Report.
type Fix struct {
	Description string `json:"description"`
	Replacement string `json:"replacement,omitempty"`
}

// Report is a single structured diagnostic: a pipeline phase, one of
// this repository's error codes, a human-readable message, and
// whatever span/data/fix context the reporting site had on hand. Every
// error-constructing function in this package returns a *Report, so
// callers (the CLI, the REPL) can render it uniformly instead of
// pattern-matching on error strings.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Span    *ast.Span      `json:"span,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
	Fix     *Fix           `json:"fix,omitempty"`
}

// reportSchema is the schema tag stamped onto every Report this
// package constructs.
const reportSchema = "tsxcheck.error/v1"

// ReportError adapts a *Report to the error interface so it can travel
// through ordinary Go error-handling paths (including wrapping by
// %w and unwrapping by errors.As) without losing its structure.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown error"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport unwraps err looking for a *Report, returning ok=false if
// none is found anywhere in the chain.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if errors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport adapts r to an error value. Callers that produce a
// Report should return WrapReport(r) instead of a plain
// fmt.Errorf/errors.New, so the structure survives until something
// further up the stack needs it (AsReport, the CLI's diagnostic
// printer).
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// ToJSON renders r as JSON; compact produces a single line, otherwise
// two-space indentation.
func (r *Report) ToJSON(compact bool) (string, error) {
	if compact {
		data, err := json.Marshal(r)
		return string(data), err
	}
	data, err := json.MarshalIndent(r, "", "  ")
	return string(data), err
}

// NewGeneric adapts an arbitrary error into a Report under the
// synthetic "RUNTIME" code, for call sites that caught a lower-level
// failure with no dedicated code of its own to assign.
func NewGeneric(phase string, err error) *Report {
	return &Report{
		Schema:  reportSchema,
		Code:    "RUNTIME",
		Phase:   phase,
		Message: err.Error(),
		Data:    map[string]any{},
	}
}

// New builds a bare Report for phase/code/message; WithSpan/WithData
// attach whatever additional context the call site has.
func New(phase, code, message string) *Report {
	return &Report{Schema: reportSchema, Code: code, Phase: phase, Message: message}
}

// WithSpan attaches a span to r and returns r for chaining.
func (r *Report) WithSpan(span ast.Span) *Report {
	r.Span = &span
	return r
}

// WithData attaches key/value diagnostic data to r and returns r for
// chaining.
func (r *Report) WithData(key string, value any) *Report {
	if r.Data == nil {
		r.Data = map[string]any{}
	}
	r.Data[key] = value
	return r
}
