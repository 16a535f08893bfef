// Package api defines the request and response messages of the tripsplit
// RPC services. Messages are plain structs encoded as JSON; amounts travel
// as decimal strings so no precision is lost between client and server.
package api
