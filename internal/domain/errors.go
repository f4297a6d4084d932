package domain

import (
	"errors"
	"fmt"
)

// Kind classifies conversion failures. Every failure is terminal for the
// current conversion; nothing is retried.
type Kind int

const (
	// KindUnknown marks errors that did not originate in the converter.
	KindUnknown Kind = iota
	// KindMalformedDocument marks a structurally invalid source document.
	KindMalformedDocument
	// KindUnsupportedVersion marks a recognized container format with an
	// unsupported schema revision.
	KindUnsupportedVersion
	// KindMissingRequiredColumn marks a tabular header lacking a required column.
	KindMissingRequiredColumn
	// KindOrphanStepRow marks a continuation step row with no preceding case.
	KindOrphanStepRow
	// KindAmbiguousDirection marks an input whose conversion direction could
	// not be determined.
	KindAmbiguousDirection
	// KindWriteFailure marks an unwritable destination.
	KindWriteFailure
)

// String returns the kind as a short human-readable phrase.
func (k Kind) String() string {
	switch k {
	case KindMalformedDocument:
		return "malformed document"
	case KindUnsupportedVersion:
		return "unsupported version"
	case KindMissingRequiredColumn:
		return "missing required column"
	case KindOrphanStepRow:
		return "orphan step row"
	case KindAmbiguousDirection:
		return "ambiguous direction"
	case KindWriteFailure:
		return "write failure"
	default:
		return "unknown"
	}
}

// ConversionError is the typed error surfaced for every conversion failure.
// Location pinpoints the offending input: a row reference for tabular
// sources, a topic path for hierarchical ones. It is empty when the failure
// is not tied to a position.
type ConversionError struct {
	Kind     Kind
	Message  string
	Location string
	Err      error
}

// Error implements the error interface.
func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Message)
	if e.Location != "" {
		msg += fmt.Sprintf(" (%s)", e.Location)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the wrapped cause, if any.
func (e *ConversionError) Unwrap() error {
	return e.Err
}

// KindOf extracts the conversion error kind from err, unwrapping as needed.
// It returns KindUnknown for errors that are not ConversionErrors.
func KindOf(err error) Kind {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is a ConversionError of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// MalformedDocument reports a structurally invalid source document.
func MalformedDocument(location, format string, args ...any) *ConversionError {
	return &ConversionError{Kind: KindMalformedDocument, Message: fmt.Sprintf(format, args...), Location: location}
}

// UnsupportedVersion reports a recognized container with an unsupported
// schema revision.
func UnsupportedVersion(location, format string, args ...any) *ConversionError {
	return &ConversionError{Kind: KindUnsupportedVersion, Message: fmt.Sprintf(format, args...), Location: location}
}

// MissingRequiredColumn reports a tabular header without the named column.
func MissingRequiredColumn(column string) *ConversionError {
	return &ConversionError{
		Kind:     KindMissingRequiredColumn,
		Message:  fmt.Sprintf("header has no %s column", column),
		Location: "header row",
	}
}

// OrphanStepRow reports a step continuation row that no case precedes.
func OrphanStepRow(row int) *ConversionError {
	return &ConversionError{
		Kind:     KindOrphanStepRow,
		Message:  "step row has no preceding case",
		Location: fmt.Sprintf("row %d", row),
	}
}

// AmbiguousDirection reports an input whose direction cannot be inferred.
func AmbiguousDirection(path string) *ConversionError {
	return &ConversionError{
		Kind:    KindAmbiguousDirection,
		Message: fmt.Sprintf("cannot determine conversion direction for %q; pass an explicit direction", path),
	}
}

// WriteFailure wraps a destination write error.
func WriteFailure(path string, err error) *ConversionError {
	return &ConversionError{
		Kind:     KindWriteFailure,
		Message:  "cannot write output",
		Location: path,
		Err:      err,
	}
}
