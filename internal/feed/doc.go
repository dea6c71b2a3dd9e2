// Package feed provides an HTTP client for the item feed flip displays.
//
// # Overview
//
// The feed is a single JSON endpoint:
//
//	GET /api/items  ->  {"items": [{"id": 1, "title": "...", "status": "...", "updatedAt": "..."}]}
//
// Client wraps it with a 5 second timeout, a User-Agent and Accept header,
// and base URL normalisation so api_bind may be given as "host:port" or as a
// full URL.
//
// # Errors
//
//   - ErrNilClient: a method was called on a nil *Client
//   - *StatusError: the feed answered with a 4xx/5xx status
//   - wrapped transport and decode errors
//
// # Testing
//
// Code that only needs items should accept the Fetcher interface so tests
// can substitute a stub instead of an httptest.Server.
package feed
