package bridge

import (
	"fmt"
	"log/slog"
)

// guard runs one call into the editor engine. Errors and panics are
// discarded and logged at debug level; the result reports success.
type guard struct {
	log *slog.Logger
}

func (g guard) call(op string, fn func() error) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			g.log.Debug("editor call panicked", "op", op, "panic", fmt.Sprint(r))
			ok = false
		}
	}()
	if err := fn(); err != nil {
		g.log.Debug("editor call failed", "op", op, "err", err)
		return false
	}
	return true
}
