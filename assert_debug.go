//go:build debug

package epidemicgo

// panicOrIgnore is a fatal assertion in debug builds: internal invariant
// violations should never happen given a correct stepper, so a debug
// build crashes loudly instead of silently continuing.
func panicOrIgnore(msg string) {
	panic(msg)
}
