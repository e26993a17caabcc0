package jules

import (
	"context"
	"errors"
	"iter"
)

// Done is returned by Pager.Next when the listing is exhausted. It signals
// normal completion, not a failure.
var Done = errors.New("no more items")

// streamPageSize is the page size used by the Stream* methods.
const streamPageSize = 100

// fetchFunc retrieves one page for the given continuation token. An empty
// token requests the first page. The returned token is empty on the last
// page.
type fetchFunc[T any] func(ctx context.Context, pageToken string) (items []T, nextPageToken string, err error)

// Pager walks a cursor-paginated listing one item at a time, fetching pages
// lazily as the consumer advances. At most one page is buffered, so a slow
// consumer never pulls more than one page ahead of itself.
//
// A Pager holds its own cursor and buffer and must not be shared between
// goroutines; create one Pager per traversal.
type Pager[T any] struct {
	fetch    fetchFunc[T]
	buf      []T
	token    string
	terminal bool // cursor known-terminal: no further pages exist
	err      error
}

func newPager[T any](fetch fetchFunc[T]) *Pager[T] {
	return &Pager[T]{fetch: fetch}
}

// Next returns the next item, fetching the next page when the buffer is
// empty. Items come back in the order pages were fetched and, within a
// page, in server order. When the listing is exhausted Next returns Done,
// and keeps returning it. A fetch failure halts the pager: the classified
// error is returned and is sticky.
func (p *Pager[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if p.err != nil {
		return zero, p.err
	}

	// A page may be empty yet carry a token, so keep fetching until there
	// is an item to yield or the cursor is terminal.
	for len(p.buf) == 0 && !p.terminal {
		items, next, err := p.fetch(ctx, p.token)
		if err != nil {
			p.err = err
			return zero, err
		}
		p.buf = items
		p.token = next
		if next == "" {
			p.terminal = true
		}
	}

	if len(p.buf) == 0 {
		return zero, Done
	}

	item := p.buf[0]
	p.buf = p.buf[1:]
	return item, nil
}

// All adapts the pager into a pull-driven sequence for use with range.
// Iteration stops at exhaustion or on the first error; the second value of
// the final pair carries the classified error, and is nil otherwise.
// Breaking out of the range stops all further fetching.
//
//	for session, err := range client.StreamSessions(ctx) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(session.Name)
//	}
func (p *Pager[T]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			item, err := p.Next(ctx)
			if errors.Is(err, Done) {
				return
			}
			if !yield(item, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}
