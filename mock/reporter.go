package mock

import (
	"sync"

	"github.com/fwojciec/soup"
)

var _ soup.ErrorReporter = (*ErrorReporter)(nil)

// ErrorReporter records every reported message.
type ErrorReporter struct {
	mu       sync.Mutex
	messages []string
}

func (r *ErrorReporter) ReportError(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of the reported messages.
func (r *ErrorReporter) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
