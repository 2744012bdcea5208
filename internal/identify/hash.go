// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package identify

import (
	"crypto/md5"
	"encoding/hex"
)

// HashLength is the number of hex characters kept from the digest.
const HashLength = 8

// Hash returns the first HashLength hex characters of the MD5 digest of
// content. The digest only names files; it is not a security boundary.
func Hash(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])[:HashLength]
}
