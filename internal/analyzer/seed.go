package analyzer

import "hash/fnv"

// refSeed derives a stable seed from an image reference so repeated analyses
// of the same reference return identical results.
func refSeed(imageURL string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(imageURL))
	return h.Sum32()
}

// refIndex picks a stable index in [0,n) for an image reference. A salt keeps
// independent components from always selecting correlated profiles.
func refIndex(imageURL string, salt string, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(salt))
	h.Write([]byte(imageURL))
	return int(h.Sum32() % uint32(n))
}
