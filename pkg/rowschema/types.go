// Package rowschema resolves server-supplied column descriptors into the
// per-column storage plan the row buffer appends values against.
package rowschema

// ColumnLogicalType is the logical (SQL-facing) type of a table column.
type ColumnLogicalType string

const (
	LogicalAny              ColumnLogicalType = "ANY"
	LogicalBoolean          ColumnLogicalType = "BOOLEAN"
	LogicalRowIndex         ColumnLogicalType = "ROWINDEX"
	LogicalNull             ColumnLogicalType = "NULL"
	LogicalReal             ColumnLogicalType = "REAL"
	LogicalFixed            ColumnLogicalType = "FIXED"
	LogicalText             ColumnLogicalType = "TEXT"
	LogicalChar             ColumnLogicalType = "CHAR"
	LogicalBinary           ColumnLogicalType = "BINARY"
	LogicalDate             ColumnLogicalType = "DATE"
	LogicalTime             ColumnLogicalType = "TIME"
	LogicalTimestampLTZ     ColumnLogicalType = "TIMESTAMP_LTZ"
	LogicalTimestampNTZ     ColumnLogicalType = "TIMESTAMP_NTZ"
	LogicalTimestampTZ      ColumnLogicalType = "TIMESTAMP_TZ"
	LogicalInterval         ColumnLogicalType = "INTERVAL"
	LogicalRaw              ColumnLogicalType = "RAW"
	LogicalArray            ColumnLogicalType = "ARRAY"
	LogicalObject           ColumnLogicalType = "OBJECT"
	LogicalVariant          ColumnLogicalType = "VARIANT"
	LogicalRow              ColumnLogicalType = "ROW"
	LogicalSequence         ColumnLogicalType = "SEQUENCE"
	LogicalFunction         ColumnLogicalType = "FUNCTION"
	LogicalUserDefinedType  ColumnLogicalType = "USER_DEFINED_TYPE"
)

// ColumnPhysicalType is the wire/storage width of a table column.
type ColumnPhysicalType string

const (
	PhysicalRowIndex ColumnPhysicalType = "ROWINDEX"
	PhysicalDouble   ColumnPhysicalType = "DOUBLE"
	PhysicalSB1      ColumnPhysicalType = "SB1"
	PhysicalSB2      ColumnPhysicalType = "SB2"
	PhysicalSB4      ColumnPhysicalType = "SB4"
	PhysicalSB8      ColumnPhysicalType = "SB8"
	PhysicalSB16     ColumnPhysicalType = "SB16"
	PhysicalLOB      ColumnPhysicalType = "LOB"
	PhysicalBinary   ColumnPhysicalType = "BINARY"
	PhysicalRow      ColumnPhysicalType = "ROW"
)

// StorageKind is the internal columnar representation a ColumnPlan resolves to.
type StorageKind int

const (
	StorageUnknown StorageKind = iota
	StorageInt8
	StorageInt16
	StorageInt32
	StorageInt64
	StorageDecimal128
	StorageUTF8
)

func (k StorageKind) String() string {
	switch k {
	case StorageInt8:
		return "int8"
	case StorageInt16:
		return "int16"
	case StorageInt32:
		return "int32"
	case StorageInt64:
		return "int64"
	case StorageDecimal128:
		return "decimal128"
	case StorageUTF8:
		return "utf8"
	default:
		return "unknown"
	}
}

// Persisted metadata keys, verbatim wire names expected by downstream readers.
const (
	MetaPhysicalType = "physicalType"
	MetaLogicalType  = "logicalType"
	MetaPrecision    = "precision"
	MetaScale        = "scale"
	MetaCharLength   = "charLength"
	MetaByteLength   = "byteLength"
)

// ColumnDescriptor is the server-supplied column metadata passed to setup_schema.
type ColumnDescriptor struct {
	Name        string
	LogicalType ColumnLogicalType
	PhysicalType ColumnPhysicalType
	Precision   *int32
	Scale       *int32
	ByteLength  *int32
	CharLength  *int32
	Nullable    bool
}

// ColumnPlan is the immutable, derived plan built from a ColumnDescriptor.
type ColumnPlan struct {
	Name             string // original name, as declared
	NormalizedName   string
	StorageKind      StorageKind
	Nullable         bool
	Precision        int32
	Scale            int32
	// PreservedMetadata carries the verbatim wire keys for downstream encoders.
	PreservedMetadata map[string]string
}

const decimalBitWidth = 128

// DecimalBitWidth is the fixed Arrow decimal bit width used for all FIXED/SB16
// columns and for FIXED/SB1..SB8 columns with a non-zero scale.
const DecimalBitWidth = decimalBitWidth
