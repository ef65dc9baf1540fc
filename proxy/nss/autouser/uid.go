package autouser

import "context"

// DefaultHashAttempts is the number of collision retries HashUID
// performs before giving up and returning 0.
const DefaultHashAttempts = 10

const (
	fnvOffset64 uint64 = 0xcbf29ce484222325
	fnvPrime64  uint64 = 0x100000001b3
)

// fnv1a folds every byte of s into the running hash state. It is
// hand-rolled rather than built on hash/fnv because HashUID needs to
// re-seed the *running* state with the name on every collision retry —
// a recurrence hash/fnv's Write-onto-a-fresh-hash API doesn't expose.
func fnv1a(state uint64, s string) uint64 {
	for i := 0; i < len(s); i++ {
		state ^= uint64(s[i])
		state *= fnvPrime64
	}
	return state
}

// HashUID deterministically derives a UID for name in [min, max] from a
// seeded FNV-1a hash. If the candidate UID already belongs to an
// existing user (per exists), the name is folded into the running hash
// again and a new candidate is tried, up to attempts times. Returns 0
// (never a valid UID) if every attempt collides.
func HashUID(ctx context.Context, dir Directory, seed, name string, min, max uint32, attempts int) (uint32, error) {
	if max < min {
		return 0, nil
	}

	span := uint64(max-min) + 1
	state := fnv1a(fnvOffset64, seed)
	for i := 0; i < attempts; i++ {
		state = fnv1a(state, name)
		uid := min + uint32(state%span)

		exists, err := dir.Exists(ctx, uid)
		if err != nil {
			return 0, err
		}
		if !exists {
			return uid, nil
		}
	}
	return 0, nil
}
