// Package api is the HTTP client for the control-plane REST API.
//
// The client knows nothing about resource kinds: callers pass paths relative
// to the base URL (see Path) and receive decoded record.Value documents with
// their key order intact. Non-2xx responses become *StatusError; 401 and 403
// additionally match ErrUnauthorized via errors.Is.
package api
