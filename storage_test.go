package enum_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deedles.dev/enum"
)

func TestStorage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		storage enum.Storage
		size    int
		signed  bool
		str     string
	}{
		{enum.Long, bits.UintSize / 8, true, "long"},
		{enum.Int8, 1, true, "int8"},
		{enum.Uint8, 1, false, "uint8"},
		{enum.Int16, 2, true, "int16"},
		{enum.Uint16, 2, false, "uint16"},
		{enum.Int32, 4, true, "int32"},
		{enum.Uint32, 4, false, "uint32"},
		{enum.Int64, 8, true, "int64"},
		{enum.Uint64, 8, false, "uint64"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.size, tt.storage.Size())
			assert.Equal(t, tt.signed, tt.storage.Signed())
			assert.Equal(t, tt.str, tt.storage.String())

			parsed, err := enum.ParseStorage(tt.str)
			require.NoError(t, err)
			assert.Equal(t, tt.storage, parsed)
		})
	}
}

func TestParseStorageDefault(t *testing.T) {
	t.Parallel()

	s, err := enum.ParseStorage("")
	require.NoError(t, err)
	assert.Equal(t, enum.Long, s)
}

func TestParseStorageUnknown(t *testing.T) {
	t.Parallel()

	_, err := enum.ParseStorage("float32")
	assert.Error(t, err)
}

func TestDefaultStorageIsLong(t *testing.T) {
	t.Parallel()

	e := enum.New(enum.Def{Name: "DEF"})
	assert.Equal(t, enum.Long, e.Storage())
	assert.Equal(t, bits.UintSize/8, e.Size())
}
