// Package httpmodel provides an immutable, strongly-typed model of HTTP/1.x
// message headers.
//
// The header package contains the typed header catalogue and the shared
// Header capability. All header values are immutable once constructed and
// safe for concurrent use without synchronization.
package httpmodel
