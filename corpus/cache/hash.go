package cache

import "github.com/minio/highwayhash"

// hashKey seeds corpus content hashing; highwayhash requires 32 bytes.
var hashKey = []byte("sentiscale/corpus-cache-hash-key")

// Hash fingerprints corpus content for change detection.
func Hash(data []byte) uint64 {
	return highwayhash.Sum64(data, hashKey)
}
