package guest

import (
	"os"
	"strconv"
	"strings"

	"go.bytecodealliance.org/cm"
)

// ExitPrefix names the imports that end the process.
const ExitPrefix = "wasi:cli/exit"

// IsExit reports whether the import name is a process exit.
func IsExit(name string) bool {
	return strings.HasPrefix(name, ExitPrefix)
}

// ExitCode derives the exit status from the encoded arguments of an exit
// call: "ok" is 0, "err" is 1, and a number is taken as is.
func ExitCode(args []string) int {
	if len(args) == 0 {
		return 0
	}
	s := strings.TrimSpace(args[0])
	switch {
	case s == "ok" || strings.HasPrefix(s, "ok("):
		return 0
	case s == "err" || strings.HasPrefix(s, "err("):
		return 1
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return n
}

// Exit ends a replayed run the way the recorded run ended.
func Exit(args cm.List[string]) {
	os.Exit(ExitCode(args.Slice()))
}
