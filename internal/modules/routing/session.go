package routing

import (
	"strconv"
	"unicode/utf16"
)

const (
	sessionIDModulus = 90_000_000
	sessionIDOffset  = 10_000_000
)

// SessionTypeID derives the 8-digit session type id external systems store for a
// (routing, product) pair. It is a 31-multiplier string hash over the UTF-16
// code units of "<routingID>-<productID>" with 32-bit signed wraparound, so ids
// already stored by earlier clients stay valid.
func SessionTypeID(routingID, productID string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(routingID + "-" + productID)) {
		h = h*31 + int32(c)
	}
	// widen before negating: -MinInt32 does not fit in int32
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return strconv.FormatInt(v%sessionIDModulus+sessionIDOffset, 10)
}
