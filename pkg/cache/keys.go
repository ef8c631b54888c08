package cache

import (
	"fmt"
)

// cache key for the access token of a credential fingerprint.
func TokenKey(fingerprint string) string {
	return fmt.Sprintf("monnify:token:%s", fingerprint)
}
