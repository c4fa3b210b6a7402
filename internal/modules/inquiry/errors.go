package inquiry

import "errors"

var ErrValidation = errors.New("validation error")
