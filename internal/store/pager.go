package store

import "context"

// Pager walks every page of one kind, in the style of bufio.Scanner: Next
// fetches the following page and reports whether there is one to consume,
// Items returns it, Err surfaces the failure that stopped the walk.
//
//	pager := store.NewPager(st, store.KindFile, prefix, pageSize)
//	for pager.Next(ctx) {
//	    for _, item := range pager.Items() { ... }
//	}
//	if err := pager.Err(); err != nil { ... }
type Pager struct {
	client   Client
	kind     Kind
	filter   string
	pageSize int

	cursor string
	items  []Item
	done   bool
	err    error
}

func NewPager(client Client, kind Kind, filter string, pageSize int) *Pager {
	return &Pager{
		client:   client,
		kind:     kind,
		filter:   filter,
		pageSize: pageSize,
	}
}

// Next advances to the next page. It returns false once the enumeration is
// exhausted or a fetch fails; an empty page ends the walk even if the store
// claims more pages, so a misbehaving cursor cannot loop forever.
func (p *Pager) Next(ctx context.Context) bool {
	if p.done || p.err != nil {
		return false
	}
	page, err := p.client.QueryPage(ctx, p.kind, p.filter, p.pageSize, p.cursor)
	if err != nil {
		p.err = err
		return false
	}
	p.items = page.Items
	p.cursor = page.EndCursor
	if !page.HasNextPage || len(page.Items) == 0 {
		p.done = true
	}
	return len(page.Items) > 0
}

// Items returns the page fetched by the last successful Next.
func (p *Pager) Items() []Item {
	return p.items
}

// Err returns the error that terminated the walk, if any.
func (p *Pager) Err() error {
	return p.err
}
