// Package readers provides reproducible pseudo-random input for the list
// tests and for the dlist -gen mode.
package readers

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"io"

	"hop.computer/dlist/pkg"
	"hop.computer/dlist/pkg/must"
)

var iv = [aes.BlockSize]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
var mask = [aes.BlockSize]byte{0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77, 0x77}

type ctrReader struct {
	stream cipher.Stream
}

// Read implements io.Reader. The output depends only on the seed and the total
// number of bytes read so far, not on how reads are split. It cannot fail.
func (c *ctrReader) Read(p []byte) (n int, err error) {
	for i := 0; i < len(p); i += len(mask) {
		chunk := p[i:]
		c.stream.XORKeyStream(chunk, mask[0:min(len(chunk), len(mask))])
	}
	return len(p), nil
}

var _ io.Reader = &ctrReader{}

// DeterministicRandomReader returns a "random" reader based on the seed
// provided, using AES in CTR mode with a static IV.
func DeterministicRandomReader(seed uint64) io.Reader {
	key := [16]byte{}
	binary.LittleEndian.PutUint64(key[:], seed)
	block, err := aes.NewCipher(key[:])
	if err != nil {
		pkg.Panicf("unable to create new aes: %s", err)
	}
	return &ctrReader{
		stream: cipher.NewCTR(block, iv[:]),
	}
}

// Source draws integers and coin flips from a DeterministicRandomReader. Two
// sources with the same seed produce the same sequence.
type Source struct {
	r io.Reader
}

// NewSource returns a Source seeded with seed.
func NewSource(seed uint64) *Source {
	return &Source{r: DeterministicRandomReader(seed)}
}

// Uint64 returns the next 8 bytes of the stream as an integer.
func (s *Source) Uint64() uint64 {
	var buf [8]byte
	_ = must.Do(io.ReadFull(s.r, buf[:]))
	return binary.LittleEndian.Uint64(buf[:])
}

// Intn returns a value in [0, n). The modulo bias is irrelevant for test data.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		pkg.Panicf("Intn: n must be positive, got %d", n)
	}
	return int(s.Uint64() % uint64(n))
}

// Ints returns count values in [0, n).
func (s *Source) Ints(count, n int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = s.Intn(n)
	}
	return out
}

// Flip flips a biased coin that lands heads (true) with probability 2^-bits.
func (s *Source) Flip(bits int) bool {
	if bits > 7 || bits < 0 {
		pkg.Panicf("bits must be in the range 0-7, got %d", bits)
	}
	var buf [1]byte
	_ = must.Do(s.r.Read(buf[:]))
	return buf[0]&byte((1<<bits)-1) == 0
}
