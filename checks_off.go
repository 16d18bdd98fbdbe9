//go:build treaps_nocheck

package treaps

// Without checks, contract violations lead to undefined behaviour, most of the
// time to a nil-pointer panic further down the road.
const checks = false
