package employee

import "errors"

var (
	ErrInvalidID       = errors.New("employee: invalid id")
	ErrInvalidSalary   = errors.New("employee: invalid salary")
	ErrMalformedRecord = errors.New("employee: malformed record")
	ErrReportingCycle  = errors.New("employee: reporting line contains a cycle")
)
