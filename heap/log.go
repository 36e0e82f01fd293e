package heap

import (
	"fmt"
	"os"
)

// Runtime flag for diagnostic logging of rejected operations - controlled
// by the MEMKIT_LOG_ALLOC env var.
var logAlloc = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// warnf reports a recoverable misuse (foreign ref, double free, exhaustion)
// on stderr. The structured error is still returned to the caller; this is
// the human-facing side channel.
func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "[memkit] "+format+"\n", args...)
}
