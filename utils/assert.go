package utils

import "fmt"

// Assert panics with the formatted message if condition does not hold. The
// message is only formatted on failure, so hot paths can assert freely.
func Assert(condition bool, format string, args ...any) {
	if !condition {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
