package transit

import "errors"

// ErrUnavailable is the single failure mode of the real-time feed. Callers
// cannot distinguish sub-causes (network, timeout, malformed body) and must
// present one generic unavailable message.
var ErrUnavailable = errors.New("wiener linien monitor unavailable")
