package extract

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Fingerprint computes a stable 128-bit content hash of text: all whitespace
// removed, lowercased, MD5, hex-encoded. Two documents whose text differs
// only in whitespace or letter case produce identical fingerprints. MD5 is
// fine here: the hash identifies duplicate scans, it is not a security
// boundary.
func Fingerprint(text string) string {
	normalized := whitespaceRun.ReplaceAllString(strings.ToLower(text), "")
	sum := md5.Sum([]byte(normalized))
	return hex.EncodeToString(sum[:])
}
