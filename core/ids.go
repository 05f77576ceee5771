package core

import (
	"encoding/binary"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/go-crypt/x/blake2b"
	"github.com/google/uuid"
)

// NewEntityID derives a list-stable id for the index-th entity of a batch.
// The index keeps ids unique within one batch; the timestamp and salt keep
// them unique across batches.
func NewEntityID(prefix string, index int, at time.Time, salt string) string {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(at.UnixNano()))
	h.Write(buf[:])
	h.Write([]byte(salt))
	return prefix + "-" + strconv.Itoa(index) + "-" + hex.EncodeToString(h.Sum(nil))
}

// NewAnalysisID returns a random id for a single analysis.
func NewAnalysisID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
