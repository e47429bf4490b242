package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Eval  bool
	Op    bool
	Token bool
}

var d *debug

func init() {
	d = &debug{}
	d.Eval = boolEnv("RPN_DEBUG_EVAL")
	d.Op = boolEnv("RPN_DEBUG_OP")
	d.Token = boolEnv("RPN_DEBUG_TOKEN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Eval() bool {
	return d.Eval
}
func Op() bool {
	return d.Op
}
func Token() bool {
	return d.Token
}

// Logf writes a diagnostic message to stderr.
func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
