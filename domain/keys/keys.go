package keys

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const (
	// PfxHealthCheck prefixes the key written by the health probe
	PfxHealthCheck = "healthcheck"
	// PfxMetadata prefixes cached token metadata documents
	PfxMetadata = "metadata"
	// PfxEnsResolve and PfxEnsReverse prefix cached ENS lookups
	PfxEnsResolve = "resolve"
	PfxEnsReverse = "reverse-resolve"
)

// MD5 hashes the data with md5
func MD5(data string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(data)))
}

// RedisKey joins key components with ':'
func RedisKey(components ...string) string {
	return strings.Join(components, ":")
}

// GetPrefix returns the leading components of a key for metric tags:
// two for keys of three or more components, one for two, none otherwise.
func GetPrefix(key string) string {
	s := strings.Split(key, ":")
	switch {
	case len(s) > 2:
		return s[0] + ":" + s[1]
	case len(s) > 1:
		return s[0]
	}
	return ""
}
