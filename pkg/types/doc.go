// Package types defines the shared vocabulary of regkit: the registry
// value type tags, the tagged Value union carried between the binding
// layer and callers, and the typed error taxonomy used across packages.
//
// Everything here is platform-independent. The raw bytes inside a Value
// are exactly what the operating system stores (little-endian integers,
// UTF-16LE strings), so values read on Windows can be inspected or
// constructed on any platform.
package types
