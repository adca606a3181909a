package crc

import "errors"

// Sentinel errors for the taxonomy of  Callers distinguish
// kinds with errors.Is; the parser/emitter/drivers wrap these with
// fmt.Errorf("...: %w", ...) to attach per-line or per-model context.
var (
	// ErrParse marks a malformed parameter line: missing "=", unclosed
	// quote, unknown parameter, repeated parameter, out-of-range
	// integer, or a missing required parameter. The caller skips the
	// line and continues with the next one.
	ErrParse = errors.New("crc: malformed parameter line")

	// ErrUnusableModel marks a parsed-but-semantically-invalid model:
	// width zero or beyond the supported range, an even polynomial, or
	// a check value outside the width's range. The caller skips the
	// model.
	ErrUnusableModel = errors.New("crc: unusable model")

	// ErrWidthExceedsWord reports, informationally rather than as a
	// failure, that width exceeds the host word width the caller asked
	// to exercise: byte/word paths and combine can't be run, but bit
	// and residue paths still can.
	ErrWidthExceedsWord = errors.New("crc: width exceeds host word width")

	// ErrResource marks an allocation or I/O failure while writing
	// generated sources. Allocation failure during parsing aborts the
	// whole batch; I/O failure while emitting one model's source closes
	// any files already opened for that model and unlinks the header if
	// the source file could not be created.
	ErrResource = errors.New("crc: resource error")

	// ErrNameCollision marks a generated .h or .c file that already
	// exists; that model is skipped and never overwritten.
	ErrNameCollision = errors.New("crc: generated file already exists")

	// ErrVerification marks a disagreement between one of the three
	// evaluators and the model's check value, a residue mismatch, or a
	// combine result that disagrees with a direct byte-wise computation
	// over the concatenated data.
	ErrVerification = errors.New("crc: verification failed")
)
