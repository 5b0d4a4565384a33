package rowschema

import (
	"strconv"
	"strings"

	rberrors "github.com/flowlane/rowbuffer/pkg/errors"
)

// Normalize applies the column-name normalization rule: a name that begins
// and ends with an ASCII double-quote is stripped of those quotes and kept
// verbatim (case preserved); otherwise it is upper-cased by ASCII rules.
// Normalize(Normalize(x)) == Normalize(x) for unquoted names and for quoted
// names without lower-case letters; a quoted name with lower-case letters
// loses its quotes on the first call, so a second call upper-cases it.
func Normalize(name string) string {
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		return name[1 : len(name)-1]
	}
	return strings.ToUpper(name)
}

// Resolve builds the ColumnPlan for a single column descriptor, applying the
// supported logical/physical type matrix. Any combination outside that
// matrix fails with an UNKNOWN_DATA_TYPE error.
func Resolve(col ColumnDescriptor) (*ColumnPlan, error) {
	kind, err := resolveStorageKind(col)
	if err != nil {
		return nil, err
	}

	plan := &ColumnPlan{
		Name:              col.Name,
		NormalizedName:    Normalize(col.Name),
		StorageKind:       kind,
		Nullable:          col.Nullable,
		PreservedMetadata: preservedMetadata(col),
	}
	if col.Precision != nil {
		plan.Precision = *col.Precision
	}
	if col.Scale != nil {
		plan.Scale = *col.Scale
	}
	return plan, nil
}

// ResolveAll resolves a full column list, preserving declaration order.
func ResolveAll(cols []ColumnDescriptor) ([]*ColumnPlan, error) {
	plans := make([]*ColumnPlan, 0, len(cols))
	for _, col := range cols {
		plan, err := Resolve(col)
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func resolveStorageKind(col ColumnDescriptor) (StorageKind, error) {
	switch col.LogicalType {
	case LogicalFixed:
		scale := int32(0)
		if col.Scale != nil {
			scale = *col.Scale
		}
		switch col.PhysicalType {
		case PhysicalSB1:
			if scale == 0 {
				return StorageInt8, nil
			}
			return StorageDecimal128, nil
		case PhysicalSB2:
			if scale == 0 {
				return StorageInt16, nil
			}
			return StorageDecimal128, nil
		case PhysicalSB4:
			if scale == 0 {
				return StorageInt32, nil
			}
			return StorageDecimal128, nil
		case PhysicalSB8:
			if scale == 0 {
				return StorageInt64, nil
			}
			return StorageDecimal128, nil
		case PhysicalSB16:
			return StorageDecimal128, nil
		default:
			return StorageUnknown, unknownDataType(col)
		}
	case LogicalAny, LogicalArray, LogicalChar, LogicalText, LogicalObject, LogicalVariant:
		return StorageUTF8, nil
	default:
		return StorageUnknown, unknownDataType(col)
	}
}

func unknownDataType(col ColumnDescriptor) error {
	return rberrors.NewUnknownDataType(string(col.LogicalType), string(col.PhysicalType))
}

func preservedMetadata(col ColumnDescriptor) map[string]string {
	md := map[string]string{
		MetaLogicalType:  string(col.LogicalType),
		MetaPhysicalType: string(col.PhysicalType),
	}
	if col.Precision != nil {
		md[MetaPrecision] = strconv.FormatInt(int64(*col.Precision), 10)
	}
	if col.Scale != nil {
		md[MetaScale] = strconv.FormatInt(int64(*col.Scale), 10)
	}
	if col.ByteLength != nil {
		md[MetaByteLength] = strconv.FormatInt(int64(*col.ByteLength), 10)
	}
	if col.CharLength != nil {
		md[MetaCharLength] = strconv.FormatInt(int64(*col.CharLength), 10)
	}
	return md
}
