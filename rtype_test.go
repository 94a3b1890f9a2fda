package dohdns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeToName(t *testing.T) {
	assert.Equal(t, "MX", TypeToName(15))
	assert.Equal(t, "A", TypeToName(1))
	assert.Equal(t, "ANY", TypeToName(0))
	assert.Equal(t, "CAA", TypeToName(257))
	assert.Equal(t, "UNKNOWN", TypeToName(999999))
}

func TestTypeByName_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"aaaa", "AAAA", "AaAa"} {
		rt, ok := TypeByName(name)
		require.True(t, ok, name)
		assert.Equal(t, TypeAAAA, rt)
	}

	_, ok := TypeByName("bogus")
	assert.False(t, ok)
}

func TestRecordTypeRegistry_Consistent(t *testing.T) {
	assert.Len(t, recordTypes, 28)

	// The table is the single source of truth; both lookup directions must
	// agree with it.
	seen := make(map[uint32]bool, len(recordTypes))
	for _, rt := range recordTypes {
		assert.False(t, seen[rt.Code], rt.Name)
		seen[rt.Code] = true

		assert.Equal(t, rt.Name, TypeToName(rt.Code))
		got, ok := TypeByName(rt.Name)
		require.True(t, ok, rt.Name)
		assert.Equal(t, rt, got)
	}
}

func TestRecordType_String(t *testing.T) {
	assert.Equal(t, "NSEC3PARAM", TypeNSEC3PARAM.String())
}
