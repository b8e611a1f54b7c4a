// Package cookifysdk holds the JSON wire types of the Cookify API and a
// small client for it.
//
// The server writes its responses with these types, so a client built on
// this package always matches the deployed API:
//
//	c := cookifysdk.NewClient("http://localhost:8080")
//	if _, err := c.Register(ctx, "alice@example.com", "s3cret"); err != nil { ... }
//	s, err := c.Login(ctx, "alice@example.com", "s3cret")
//	me, err := s.Me(ctx)
//
// Non-2xx responses are returned as *APIError.
package cookifysdk
