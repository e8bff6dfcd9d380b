// Package winenc contains the wire codecs for registry value data:
// UTF-16LE string encoding as stored by the W-series registry APIs, the
// REG_MULTI_SZ list framing, and endian-safe integer helpers.
package winenc
