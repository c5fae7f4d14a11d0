package draft

import "hash/fnv"

// Pick selects one candidate by hashing the seed. Same seed, same choice:
// the variation is reproducible, never random.
func Pick(seed string, candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	h := fnv.New32a()
	h.Write([]byte(seed))
	return candidates[int(h.Sum32())%len(candidates)]
}
