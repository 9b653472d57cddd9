package site

import "github.com/cespare/xxhash/v2"

const (
	idLength   = 10
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	idSalt     = "frankmark/page:"
)

// DeriveID maps a folder-qualified page name to a 10 character alphanumeric
// id. The result only depends on the name, so it is stable across builds.
func DeriveID(fullName string) string {
	sum := xxhash.Sum64String(idSalt + fullName)
	base := uint64(len(idAlphabet))

	var buf [idLength]byte
	for i := range buf {
		buf[i] = idAlphabet[sum%base]
		sum /= base
	}
	return string(buf[:])
}
