package curve

import "errors"

// ErrParse is returned when a public key byte string is malformed: not
// 33 bytes, a bad tag byte, or an x-coordinate with no corresponding
// point on the curve. Only compressed SEC1 encoding is accepted (the
// spec scopes pubkey parsing to that one wire form).
var ErrParse = errors.New("curve: invalid compressed public key encoding")
