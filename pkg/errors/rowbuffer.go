package errors

import stringpool "github.com/flowlane/rowbuffer/pkg/strings"

const (
	// ErrorTypeInvalidRow marks a malformed row: empty/blank column name,
	// unknown column, or a type mismatch/exception during cell conversion.
	ErrorTypeInvalidRow ErrorType = "invalid_row"
	// ErrorTypeUnknownDataType marks a (logical, physical) column type pair
	// outside the supported matrix.
	ErrorTypeUnknownDataType ErrorType = "unknown_data_type"
)

// NewInvalidRow builds the INVALID_ROW error for a malformed row.
func NewInvalidRow(reason string) *Error {
	return New(ErrorTypeInvalidRow, reason)
}

// WrapInvalidRow wraps a lower-level conversion failure as INVALID_ROW.
func WrapInvalidRow(err error, reason string) *Error {
	return Wrap(err, ErrorTypeInvalidRow, reason)
}

// NewUnknownDataType builds the UNKNOWN_DATA_TYPE error for an unsupported
// (logical, physical) column type pair.
func NewUnknownDataType(logicalType, physicalType string) *Error {
	return New(ErrorTypeUnknownDataType,
		stringpool.Sprintf("unsupported column type: logical=%s physical=%s", logicalType, physicalType))
}
