package sequence

import "errors"

var ErrInvalidSequenceName = errors.New("invalid sequence name")
