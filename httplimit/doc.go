// Package httplimit wires lengthlimit into net/http.
//
// It provides a server middleware that guards request bodies and a client
// middleware that guards response bodies,
// so a service never reads an unbounded amount of streamed data from
// either direction.
package httplimit
