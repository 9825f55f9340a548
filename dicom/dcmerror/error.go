// Package dcmerror defines the error taxonomy shared by the P10 reader,
// writer, and data-set builder packages.
//
// Every fallible operation in those packages returns a *Error (or a
// fmt.Errorf-wrapped one) rather than an ad-hoc error string, so callers can
// use errors.As to recover the Kind and react programmatically - for example
// a streaming reader retrying once more data arrives after a DataRequired.
package dcmerror

import (
	"fmt"

	"github.com/codeninja55/dcmfx/dicom/tag"
)

// Kind enumerates the taxonomy of errors a P10 stream operation can raise.
type Kind string

const (
	// DataRequired is returned by a streaming reader when it cannot make
	// progress without more input bytes. It is not a terminal failure: the
	// caller is expected to supply more bytes and retry.
	DataRequired Kind = "data_required"

	// DataEndedUnexpectedly is returned when EOF was signalled but the
	// stream was mid-token - e.g. a value or header was only partially read.
	DataEndedUnexpectedly Kind = "data_ended_unexpectedly"

	// WriteAfterCompletion is returned when bytes are written to a reader
	// (or tokens to a writer) after it already observed EOF/End.
	WriteAfterCompletion Kind = "write_after_completion"

	// TokenStreamInvalid is returned when a consumer (builder, writer, or
	// transform) receives a token sequence that violates the token-ordering
	// invariants - e.g. a SequenceItemDelimiter with no open item.
	TokenStreamInvalid Kind = "token_stream_invalid"

	// MalformedData is returned when bytes cannot be parsed as specified by
	// the active transfer syntax, VR, or the P10 file structure.
	MalformedData Kind = "malformed_data"

	// UnsupportedTransferSyntax is returned when a Transfer Syntax UID is
	// not known to the transfer syntax table.
	UnsupportedTransferSyntax Kind = "unsupported_transfer_syntax"

	// MaximumExceeded is returned when a configured memory bound
	// (max token size, max string size, max sequence depth) is exceeded.
	MaximumExceeded Kind = "maximum_exceeded"

	// ConfigInvalid is returned when a ReadConfig/WriteConfig fails
	// validation.
	ConfigInvalid Kind = "config_invalid"

	// IOFailure wraps an underlying I/O error from an io.Reader/io.Writer.
	IOFailure Kind = "io_failure"

	// CharacterSetUnsupported is returned when a Specific Character Set
	// value names a code page the charset registry has no decoder for.
	CharacterSetUnsupported Kind = "character_set_unsupported"

	// NotFound is returned when a lookup (tag, transfer syntax, element)
	// fails to find a match.
	NotFound Kind = "not_found"
)

// Error is the error type returned throughout the p10read, p10write, and
// p10build packages. The transform package reports its errors with plain
// fmt.Errorf values.
type Error struct {
	// Kind classifies the failure.
	Kind Kind
	// When names the operation in progress when the error occurred, e.g.
	// "reading data element header" or "writing sequence item".
	When string
	// Details holds a human-readable explanation specific to this
	// occurrence.
	Details string
	// Path locates the error within the data set being read or written, if
	// applicable. Nil when the error is not tied to a specific element.
	Path *tag.Tag
	// Offset is the byte offset into the stream where the error was
	// detected, or -1 if not applicable.
	Offset int64
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.When, e.Details)
	if e.Path != nil {
		msg = fmt.Sprintf("%s (at %s)", msg, e.Path.String())
	}
	if e.Offset >= 0 {
		msg = fmt.Sprintf("%s [offset %d]", msg, e.Offset)
	}
	return msg
}

// New builds an *Error with no path or offset information attached.
func New(kind Kind, when, details string) *Error {
	return &Error{Kind: kind, When: when, Details: details, Offset: -1}
}

// WithPath attaches a data-set path (here, the element tag at the point of
// failure) to the error, returning the same *Error for chaining.
func (e *Error) WithPath(t tag.Tag) *Error {
	p := t
	e.Path = &p
	return e
}

// WithOffset attaches a byte offset to the error, returning the same *Error
// for chaining.
func (e *Error) WithOffset(offset int64) *Error {
	e.Offset = offset
	return e
}

// Is reports whether err is a *Error of the given Kind, unwrapping as
// needed. It lets callers write dcmerror.Is(err, dcmerror.DataRequired)
// instead of a manual errors.As dance.
func Is(err error, kind Kind) bool {
	var target *Error
	if !asError(err, &target) {
		return false
	}
	return target.Kind == kind
}

// asError walks err's single-error Unwrap chain looking for a *Error; it is
// used only by Is.
func asError(err error, target **Error) bool {
	for err != nil {
		if e, ok := err.(*Error); ok {
			*target = e
			return true
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = unwrapper.Unwrap()
	}
	return false
}
