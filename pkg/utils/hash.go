package utils

import (
	"crypto/md5"
	"encoding/hex"
)

// MD5Hash generates the hex MD5 digest of input. Used for cache keys.
func MD5Hash(input string) string {
	hash := md5.Sum([]byte(input))
	return hex.EncodeToString(hash[:])
}
