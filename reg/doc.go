// Package reg provides ergonomic bindings for the live Windows registry:
// an exclusively-owned Key handle over HKEY, typed value access through
// the tagged types.Value union, and index-driven enumeration cursors.
//
// All operations are synchronous, direct OS calls with no retries and no
// cancellation; the underlying primitives are not cancellable. A Key is
// not safe for concurrent use without external synchronization, mirroring
// the native API's own contract. Distinct Keys are independently safe.
//
// The package compiles to an empty package on non-Windows platforms.
package reg
