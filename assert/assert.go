package assert

import "fmt"

// T panics with the formatted message when cond is false.
// Used for programmer errors, never for recoverable resource failures.
func T(cond bool, msgFmt string, args ...any) {

	if cond {
		return
	}

	panic(fmt.Sprintf(msgFmt, args...))
}
