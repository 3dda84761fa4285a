package strutil

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// ErrUnknownAlgorithm is returned by DigestString for an unregistered
// algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

// digests maps upper-case algorithm names to their constructor and the hex
// length of their output.
var digests = map[string]struct {
	newHash func() hash.Hash
	hexLen  int
}{
	"MD5":         {md5.New, 32},
	"SHA-1":       {sha1.New, 40},
	"SHA-256":     {sha256.New, 64},
	"SHA-512":     {sha512.New, 128},
	"SHA3-256":    {sha3.New256, 64},
	"BLAKE2B-256": {newBlake2b256, 64},
}

func newBlake2b256() hash.Hash {
	// Only fails for keys longer than 64 bytes.
	h, _ := blake2b.New256(nil)
	return h
}

// Algorithms lists the names DigestString accepts.
func Algorithms() []string {
	names := make([]string, 0, len(digests))
	for name := range digests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MD5String returns the 32 character hex MD5 digest of the UTF-8 bytes of s.
func MD5String(s string) string {
	d, _ := DigestString(s, "MD5", 32)
	return d
}

// SHA1String returns the 40 character hex SHA-1 digest of the UTF-8 bytes
// of s.
func SHA1String(s string) string {
	d, _ := DigestString(s, "SHA-1", 40)
	return d
}

// DigestString hashes the UTF-8 bytes of s with the named algorithm and
// formats the digest with ToHexString. Names are case-insensitive. A padTo of
// zero or less pads to the algorithm's full hex length.
func DigestString(s, algorithm string, padTo int) (string, error) {
	d, ok := digests[strings.ToUpper(algorithm)]
	if !ok {
		return "", fmt.Errorf("%s: %w", algorithm, ErrUnknownAlgorithm)
	}
	if padTo <= 0 {
		padTo = d.hexLen
	}
	h := d.newHash()
	h.Write([]byte(s))
	return ToHexString(h.Sum(nil), padTo), nil
}

// ToHexString formats b as an unsigned big-endian number in lower-case hex,
// without leading zeros, then left-pads it with '0' to at least padTo
// characters.
func ToHexString(b []byte, padTo int) string {
	digits := strings.TrimLeft(hex.EncodeToString(b), "0")
	if digits == "" {
		digits = "0"
	}
	if len(digits) < padTo {
		digits = strings.Repeat("0", padTo-len(digits)) + digits
	}
	return digits
}
