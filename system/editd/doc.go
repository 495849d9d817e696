// Package editd contains the edit coordination daemon: a JSON-RPC
// service exposing validate, merge, and apply to edit-producing
// agents.  The server speaks the same protocol over stdio or TCP.
package editd
