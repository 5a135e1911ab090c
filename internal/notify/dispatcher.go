// Package notify is the boundary between the stock scanner and whatever
// actually shows an alert to the user. Delivery is best-effort: a failed
// toast never aborts a scan and never touches ledger state.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"
)

// Dispatcher delivers one alert. Implementations must be safe to call from
// a background goroutine and should return quickly.
type Dispatcher interface {
	Deliver(titulo, mensagem string) error
}

// Status reports whether the delivery transport initialized successfully.
// It is decided once at process start and injected into the scanner —
// when unavailable the scanner skips its passes entirely.
type Status int

const (
	StatusReady Status = iota
	StatusUnavailable
)

// LogDispatcher writes alerts to the structured log. Always available;
// the daemon's default transport.
type LogDispatcher struct{}

func (LogDispatcher) Deliver(titulo, mensagem string) error {
	log.Info().Str("titulo", titulo).Msg(mensagem)
	return nil
}

// WriterDispatcher prints alerts to an io.Writer. Used by the CLI's manual
// check and by tests.
type WriterDispatcher struct {
	mu sync.Mutex
	W  io.Writer
}

func NewWriterDispatcher(w io.Writer) *WriterDispatcher {
	return &WriterDispatcher{W: w}
}

func (d *WriterDispatcher) Deliver(titulo, mensagem string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := fmt.Fprintf(d.W, "%s\n  %s\n", titulo, mensagem)
	return err
}
