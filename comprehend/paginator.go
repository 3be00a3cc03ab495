package comprehend

import (
	"context"
	"errors"
)

// ErrNoMorePages is returned by NextPage after the last page.
var ErrNoMorePages = errors.New("no more pages available")

// Paginator walks the pages of a List operation, following NextToken.
type Paginator[O any] struct {
	fetch     func(context.Context, *string) (*O, *string, error)
	nextToken *string
	firstPage bool
}

func newPaginator[O any](token *string, fetch func(context.Context, *string) (*O, *string, error)) *Paginator[O] {
	return &Paginator[O]{fetch: fetch, nextToken: token, firstPage: true}
}

// HasMorePages reports whether NextPage can be called.
func (p *Paginator[O]) HasMorePages() bool {
	return p.firstPage || (p.nextToken != nil && *p.nextToken != "")
}

// NextPage fetches the next page. Pagination stops when the service returns
// no token, an empty token or the token it was just given.
func (p *Paginator[O]) NextPage(ctx context.Context) (*O, error) {
	if !p.HasMorePages() {
		return nil, ErrNoMorePages
	}

	out, next, err := p.fetch(ctx, p.nextToken)
	if err != nil {
		return nil, err
	}

	prev := p.nextToken
	p.firstPage = false
	p.nextToken = next
	if prev != nil && next != nil && *prev == *next {
		p.nextToken = nil
	}
	return out, nil
}
