//go:build debug
// +build debug

package phantoms4d

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	debugOut io.Writer = os.Stderr
	debugMu  sync.Mutex
	// formats already printed by DebugLogOnce
	debugSeen = map[string]bool{}
)

// DebugLog prints one prefixed line; workers may call it concurrently.
func DebugLog(format string, args ...interface{}) {
	debugMu.Lock()
	defer debugMu.Unlock()
	fmt.Fprintf(debugOut, "[phantoms4d] "+format+"\n", args...)
}

// DebugLogOnce prints a message the first time its format is seen.
func DebugLogOnce(format string, args ...interface{}) {
	debugMu.Lock()
	defer debugMu.Unlock()
	if debugSeen[format] {
		return
	}
	debugSeen[format] = true
	fmt.Fprintf(debugOut, "[phantoms4d] "+format+"\n", args...)
}
