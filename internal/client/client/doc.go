// Package client talks to the FundUnity Content API and bootstraps the
// console's local database.
//
// # Overview
//
//  1. HTTPClient wraps net/http and attaches "Authorization: Bearer <token>"
//     to every request, reading the token from a TokenSource on each call.
//  2. AuthClient performs the login exchange and account updates.
//  3. ResourceClient[T] is the CRUD client shared by all content types. A
//     Resource descriptor fixes its base URL and body encoding.
//  4. InitDatabase opens the SQLite file and applies embedded goose
//     migrations.
//
// # Error Handling
//
// Transport failures match ErrUnavailable. Any non-2xx answer is a
// *StatusError matching ErrRequestFailed; 401 and 403 also match
// ErrUnauthorized. Nothing is retried.
package client
