package zipstore

import (
	"bytes"
	"hash/crc32"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestChecksum(t *testing.T) {
	t.Run("matches the standard reference vectors", func(t *testing.T) {
		assert.Equal(t, uint32(0x00000000), Checksum([]byte{}))
		assert.Equal(t, uint32(0xCBF43926), Checksum([]byte("123456789")))
	})

	t.Run("matches hash/crc32 for arbitrary inputs", func(t *testing.T) {
		inputs := [][]byte{
			nil,
			[]byte("a"),
			[]byte("hello, world!"),
			[]byte{0x00, 0xFF, 0x10, 0x80},
			bytes.Repeat([]byte("zipstore"), 1000),
		}

		for _, input := range inputs {
			assert.Equal(t, crc32.ChecksumIEEE(input), Checksum(input))
		}
	})
}

func BenchmarkChecksum(b *testing.B) {
	input := bytes.Repeat([]byte("0123456789abcdef"), 64*1024)
	b.SetBytes(int64(len(input)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Checksum(input)
	}
}
