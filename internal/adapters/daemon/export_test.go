package daemon

import "context"

// Do sends a raw method request. Test-only: exercises protocol-level errors
// that the typed client surface cannot produce.
func (c *Client) Do(ctx context.Context, method string) error {
	_, err := c.roundTrip(ctx, &Request{Method: method})
	return err
}
