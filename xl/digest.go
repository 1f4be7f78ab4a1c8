package xl

import (
	"hash/fnv"

	"github.com/google/uuid"
)

func BlobHash(blob []byte) uuid.UUID {
	h := fnv.New128()
	h.Write(blob)
	uid, _ := uuid.FromBytes(h.Sum([]byte{}))
	return uid
}

// Digest identifies the package content. Packages with equal parts have
// equal digests.
func (p *Package) Digest() uuid.UUID {
	h := fnv.New128()
	enumerate(p.Parts, func(path, text string) error {
		h.Write([]byte(path))
		h.Write([]byte{0})
		h.Write([]byte(text))
		h.Write([]byte{0})
		return nil
	})
	uid, _ := uuid.FromBytes(h.Sum([]byte{}))
	return uid
}
