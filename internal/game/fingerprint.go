package game

import (
	"encoding/binary"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a short stable digest of b. The row count and each row
// length are written as uvarints ahead of the cells, so boards that differ
// only in shape hash differently.
func Fingerprint(b Board) string {
	h, _ := blake2b.New256(nil)
	buf := binary.AppendUvarint(nil, uint64(len(b)))
	for _, row := range b {
		buf = binary.AppendUvarint(buf, uint64(len(row)))
		for _, c := range row {
			buf = append(buf, byte(c))
		}
	}
	h.Write(buf)
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
