package jules

import (
	"context"
	"iter"
	"net/http"
)

// GetActivity fetches an activity by its full resource name
// (e.g. sessions/abc123/activities/def456).
func (c *Client) GetActivity(ctx context.Context, name string) (*Activity, error) {
	return call[Activity](ctx, c, "activities.get", http.MethodGet, name, nil, nil)
}

// ListActivities fetches one page of a session's activities.
func (c *Client) ListActivities(ctx context.Context, sessionName string, opts *ListOptions) (*ListActivitiesResponse, error) {
	return call[ListActivitiesResponse](ctx, c, "activities.list", http.MethodGet, sessionName+"/activities", opts.values(), nil)
}

// ActivityPager returns a pager over a session's activities.
func (c *Client) ActivityPager(sessionName string) *Pager[Activity] {
	return newPager(func(ctx context.Context, pageToken string) ([]Activity, string, error) {
		resp, err := c.ListActivities(ctx, sessionName, &ListOptions{PageSize: streamPageSize, PageToken: pageToken})
		if err != nil {
			return nil, "", err
		}
		return resp.Activities, resp.NextPageToken, nil
	})
}

// StreamActivities iterates over all of a session's activities across pages.
func (c *Client) StreamActivities(ctx context.Context, sessionName string) iter.Seq2[Activity, error] {
	return c.ActivityPager(sessionName).All(ctx)
}
