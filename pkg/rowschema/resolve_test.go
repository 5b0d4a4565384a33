package rowschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i32(n int32) *int32 { return &n }

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"unquoted is upper-cased", "my_col", "MY_COL"},
		{"already upper stays upper", "MY_COL", "MY_COL"},
		{"quoted is case-preserved and unquoted", `"MiXeD"`, "MiXeD"},
		{"single quote char is not stripped", `"`, `"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "Normalize must be idempotent")
		})
	}
}

func TestResolve_IntegerWidths(t *testing.T) {
	tests := []struct {
		name     string
		physical ColumnPhysicalType
		scale    *int32
		want     StorageKind
	}{
		{"SB1 scale 0 is int8", PhysicalSB1, i32(0), StorageInt8},
		{"SB2 scale 0 is int16", PhysicalSB2, i32(0), StorageInt16},
		{"SB4 scale 0 is int32", PhysicalSB4, i32(0), StorageInt32},
		{"SB8 scale 0 is int64", PhysicalSB8, i32(0), StorageInt64},
		{"SB1 with scale is decimal128", PhysicalSB1, i32(2), StorageDecimal128},
		{"SB8 with scale is decimal128", PhysicalSB8, i32(4), StorageDecimal128},
		{"SB16 is always decimal128", PhysicalSB16, i32(0), StorageDecimal128},
		{"SB16 with scale is still decimal128", PhysicalSB16, i32(9), StorageDecimal128},
		{"missing scale defaults to 0", PhysicalSB4, nil, StorageInt32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col := ColumnDescriptor{Name: "c", LogicalType: LogicalFixed, PhysicalType: tt.physical, Scale: tt.scale}
			plan, err := Resolve(col)
			require.NoError(t, err)
			assert.Equal(t, tt.want, plan.StorageKind)
		})
	}
}

func TestResolve_StringLogicalTypes(t *testing.T) {
	for _, lt := range []ColumnLogicalType{LogicalAny, LogicalArray, LogicalChar, LogicalText, LogicalObject, LogicalVariant} {
		t.Run(string(lt), func(t *testing.T) {
			plan, err := Resolve(ColumnDescriptor{Name: "c", LogicalType: lt})
			require.NoError(t, err)
			assert.Equal(t, StorageUTF8, plan.StorageKind)
		})
	}
}

func TestResolve_UnknownDataType(t *testing.T) {
	_, err := Resolve(ColumnDescriptor{Name: "c", LogicalType: LogicalBoolean})
	require.Error(t, err)

	_, err = Resolve(ColumnDescriptor{Name: "c", LogicalType: LogicalFixed, PhysicalType: PhysicalRowIndex})
	require.Error(t, err)
}

func TestResolve_PreservedMetadataAndPlanFields(t *testing.T) {
	col := ColumnDescriptor{
		Name:        `"MixedCaseCol"`,
		LogicalType: LogicalFixed,
		PhysicalType: PhysicalSB16,
		Precision:   i32(20),
		Scale:       i32(2),
		Nullable:    true,
	}
	plan, err := Resolve(col)
	require.NoError(t, err)

	assert.Equal(t, "MixedCaseCol", plan.NormalizedName)
	assert.Equal(t, StorageDecimal128, plan.StorageKind)
	assert.Equal(t, int32(20), plan.Precision)
	assert.Equal(t, int32(2), plan.Scale)
	assert.True(t, plan.Nullable)
	assert.Equal(t, "FIXED", plan.PreservedMetadata[MetaLogicalType])
	assert.Equal(t, "SB16", plan.PreservedMetadata[MetaPhysicalType])
	assert.Equal(t, "20", plan.PreservedMetadata[MetaPrecision])
	assert.Equal(t, "2", plan.PreservedMetadata[MetaScale])
}

func TestResolveAll_PreservesOrderAndStopsOnFirstError(t *testing.T) {
	cols := []ColumnDescriptor{
		{Name: "a", LogicalType: LogicalText},
		{Name: "b", LogicalType: LogicalBoolean},
		{Name: "c", LogicalType: LogicalText},
	}
	_, err := ResolveAll(cols)
	assert.Error(t, err)

	cols[1] = ColumnDescriptor{Name: "b", LogicalType: LogicalText}
	plans, err := ResolveAll(cols)
	require.NoError(t, err)
	require.Len(t, plans, 3)
	assert.Equal(t, "A", plans[0].NormalizedName)
	assert.Equal(t, "B", plans[1].NormalizedName)
	assert.Equal(t, "C", plans[2].NormalizedName)
}
