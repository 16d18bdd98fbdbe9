//go:build !treaps_nocheck

package treaps

const checks = true
