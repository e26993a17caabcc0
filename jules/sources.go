package jules

import (
	"context"
	"iter"
	"net/http"
)

// GetSource fetches a source by its full resource name (e.g. sources/abc123).
func (c *Client) GetSource(ctx context.Context, name string) (*Source, error) {
	return call[Source](ctx, c, "sources.get", http.MethodGet, name, nil, nil)
}

// ListSources fetches one page of connected repositories. filter is an
// optional server-side filter expression; empty means no filter.
func (c *Client) ListSources(ctx context.Context, filter string, opts *ListOptions) (*ListSourcesResponse, error) {
	q := opts.values()
	if filter != "" {
		q.Set("filter", filter)
	}
	return call[ListSourcesResponse](ctx, c, "sources.list", http.MethodGet, "sources", q, nil)
}

// SourcePager returns a pager over sources matching filter.
func (c *Client) SourcePager(filter string) *Pager[Source] {
	return newPager(func(ctx context.Context, pageToken string) ([]Source, string, error) {
		resp, err := c.ListSources(ctx, filter, &ListOptions{PageSize: streamPageSize, PageToken: pageToken})
		if err != nil {
			return nil, "", err
		}
		return resp.Sources, resp.NextPageToken, nil
	})
}

// StreamSources iterates over all sources matching filter across pages.
func (c *Client) StreamSources(ctx context.Context, filter string) iter.Seq2[Source, error] {
	return c.SourcePager(filter).All(ctx)
}
