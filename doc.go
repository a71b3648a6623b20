// Package coap provides value codecs for CoAP options.
//
// The packages here implement the wire form of individual option
// values, not message parsing or transport. Package option handles the
// generic variable-length unsigned integer option format. Package
// block builds on it to implement the Block option used for block-wise
// transfers (RFC 7959).
package coap
