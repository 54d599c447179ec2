package core

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"github.com/vsmodtools/vsmod/core/murmur2"
)

// FingerprintFormats lists the digest formats supported for mod archives,
// in preferred order.
var FingerprintFormats = []string{
	"murmur2",
	"md5",
	"sha1",
	"sha256",
}

// GetHashImpl gets an implementation of hash.Hash for the given hash type string
func GetHashImpl(hashType string) (HashStringer, error) {
	switch strings.ToLower(hashType) {
	case "sha1":
		return &hexStringer{sha1.New()}, nil
	case "sha256":
		return &hexStringer{sha256.New()}, nil
	case "md5":
		return &hexStringer{md5.New()}, nil
	case "murmur2":
		// the CurseForge-style whitespace-stripping variant
		return &number32As64Stringer{murmur2.New()}, nil
	}
	return nil, fmt.Errorf("hash implementation %s not found", hashType)
}

type HashStringer interface {
	hash.Hash
	String() string
}

type hexStringer struct {
	hash.Hash
}

func (h *hexStringer) String() string {
	return hex.EncodeToString(h.Sum(nil))
}

type number32As64Stringer struct {
	hash.Hash
}

func (h *number32As64Stringer) String() string {
	return strconv.FormatUint(uint64(binary.BigEndian.Uint32(h.Sum(nil))), 10)
}
