package patient

import "errors"

var ErrPatientDoesNotExist = errors.New("patient does not exist")
