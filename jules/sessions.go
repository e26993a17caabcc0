package jules

import (
	"context"
	"iter"
	"net/http"
)

// CreateSession creates a new coding session. The server assigns identity
// (name, ID) and timestamps; any such fields set on the input are hints,
// not guarantees. The returned session is the server's record.
func (c *Client) CreateSession(ctx context.Context, session *Session) (*Session, error) {
	return call[Session](ctx, c, "sessions.create", http.MethodPost, "sessions", nil, session)
}

// GetSession fetches a session by its full resource name
// (e.g. sessions/abc123).
func (c *Client) GetSession(ctx context.Context, name string) (*Session, error) {
	return call[Session](ctx, c, "sessions.get", http.MethodGet, name, nil, nil)
}

// DeleteSession deletes a session by its full resource name. Success is an
// empty acknowledgement.
func (c *Client) DeleteSession(ctx context.Context, name string) error {
	_, err := call[empty](ctx, c, "sessions.delete", http.MethodDelete, name, nil, nil)
	return err
}

// ListSessions fetches one page of sessions. Pass the previous response's
// NextPageToken in opts to continue; use StreamSessions to walk all pages.
func (c *Client) ListSessions(ctx context.Context, opts *ListOptions) (*ListSessionsResponse, error) {
	return call[ListSessionsResponse](ctx, c, "sessions.list", http.MethodGet, "sessions", opts.values(), nil)
}

// SendMessage sends a message to an active session, providing additional
// context or answering the agent's questions. The server decides whether
// the session's state permits it; the client does not pre-validate.
func (c *Client) SendMessage(ctx context.Context, name, prompt string) error {
	body := sendMessageRequest{Prompt: prompt}
	_, err := call[empty](ctx, c, "sessions.sendMessage", http.MethodPost, name+":sendMessage", nil, body)
	return err
}

// ApprovePlan approves the current plan of a session in the
// AWAITING_PLAN_APPROVAL state, letting the agent proceed.
func (c *Client) ApprovePlan(ctx context.Context, name string) error {
	_, err := call[empty](ctx, c, "sessions.approvePlan", http.MethodPost, name+":approvePlan", nil, approvePlanRequest{})
	return err
}

// SessionPager returns a pager over all sessions, fetching pages on demand.
func (c *Client) SessionPager() *Pager[Session] {
	return newPager(func(ctx context.Context, pageToken string) ([]Session, string, error) {
		resp, err := c.ListSessions(ctx, &ListOptions{PageSize: streamPageSize, PageToken: pageToken})
		if err != nil {
			return nil, "", err
		}
		return resp.Sessions, resp.NextPageToken, nil
	})
}

// StreamSessions iterates over all sessions across pages. Pagination is
// transparent: each page is fetched only when the previous one is consumed,
// and breaking out of the range stops all further fetching.
func (c *Client) StreamSessions(ctx context.Context) iter.Seq2[Session, error] {
	return c.SessionPager().All(ctx)
}
