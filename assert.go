package treaps

// assert panics with a TreapError if a contract is violated.
// With build tag `treaps_nocheck` the compiler removes the check entirely.
func assert(condition bool, msg TreapError) {
	if checks && !condition {
		panic(msg)
	}
}
