package draft

import "errors"

// ErrSubmitInFlight is returned when a submit starts while another one
// has not resolved yet.
var ErrSubmitInFlight = errors.New("partner draft submit already in flight")
