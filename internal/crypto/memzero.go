package crypto

import "runtime"

// Wipe zeroes b. This is best-effort and aims to keep the compiler from
// eliding the write; Go gives no guarantee that no other copy exists.
//
//go:noinline
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
