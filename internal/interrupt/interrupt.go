// Package interrupt turns the first Ctrl-C into a cancelled context.
package interrupt

import (
	"context"
	"os"
	"os/signal"
)

// Notify returns a context cancelled by the first interrupt. Once that
// happens the handler is released, so a second interrupt terminates the
// process the default way even if the caller is stuck.
func Notify(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt)
	go func() {
		<-ctx.Done()
		stop()
	}()
	return ctx, stop
}
