package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"routesync/internal/pkg/errs"
)

const (
	// trackingTokenPrefix is the fixed prefix of every tracking token.
	trackingTokenPrefix = "RT-"
	// trackingTokenDigits is the minimum width of the zero-padded numeric
	// suffix. Ids with more digits widen the token; that is not an error.
	trackingTokenDigits = 6
)

// ErrTrackingTokenIsNotConstructed indicates a TrackingToken that was not
// created via NewTrackingToken or ParseTrackingToken.
var ErrTrackingTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"TrackingToken must be created via NewTrackingToken or ParseTrackingToken",
)

// TrackingToken is a value object representing the human-readable encoding of
// a route record id: the fixed prefix "RT-" followed by the id as a
// zero-padded decimal of at least six digits.
//
// The mapping is deterministic and invertible: for every valid non-negative
// id, ParseTrackingToken(NewTrackingToken(id).String()) yields id again.
//
// Example:
//
//	token, _ := kernel.NewTrackingToken(123)
//	fmt.Println(token.String()) // "RT-000123"
//
//	parsed, err := kernel.ParseTrackingToken("RT-000123")
//	if err != nil {
//	    // not a valid token; treat as "no route linkage"
//	}
//	fmt.Println(parsed.RouteID()) // 123
type TrackingToken struct {
	routeID       int64
	isConstructed bool
}

// NewTrackingToken encodes a route record id into a tracking token.
// The id must be non-negative; ids beyond six digits widen the token.
func NewTrackingToken(routeID int64) (TrackingToken, error) {
	if routeID < 0 {
		return TrackingToken{}, errs.NewValueIsInvalidError("routeID")
	}

	return TrackingToken{routeID: routeID, isConstructed: true}, nil
}

// ParseTrackingToken decodes a token string back into a TrackingToken.
//
// The string must consist of the "RT-" prefix followed by one or more decimal
// digits. Anything else is rejected with a TrackingTokenIsInvalidError; the
// parser never silently coerces malformed input.
func ParseTrackingToken(s string) (TrackingToken, error) {
	suffix, found := strings.CutPrefix(s, trackingTokenPrefix)
	if !found {
		return TrackingToken{}, errs.NewTrackingTokenIsInvalidError(s)
	}
	if suffix == "" {
		return TrackingToken{}, errs.NewTrackingTokenIsInvalidError(s)
	}

	for _, r := range suffix {
		if r < '0' || r > '9' {
			return TrackingToken{}, errs.NewTrackingTokenIsInvalidError(s)
		}
	}

	routeID, err := strconv.ParseInt(suffix, 10, 64)
	if err != nil {
		return TrackingToken{}, errs.NewTrackingTokenIsInvalidErrorWithCause(s, err)
	}

	return TrackingToken{routeID: routeID, isConstructed: true}, nil
}

// RouteID returns the decoded route record id.
func (t TrackingToken) RouteID() int64 {
	return t.routeID
}

// String returns the canonical token form: "RT-" plus the id zero-padded to
// at least six digits.
func (t TrackingToken) String() string {
	return fmt.Sprintf("%s%0*d", trackingTokenPrefix, trackingTokenDigits, t.routeID)
}

// IsEqual compares two tokens by their decoded route ids.
func (t TrackingToken) IsEqual(other TrackingToken) bool {
	return t.routeID == other.routeID
}

// Validate checks that the token was created through one of the constructor
// functions.
func (t TrackingToken) Validate() error {
	if !t.isConstructed {
		return ErrTrackingTokenIsNotConstructed
	}
	return nil
}
