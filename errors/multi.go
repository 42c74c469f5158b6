package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If no errors are provided or all of them are nil, the result is nil.
// A single non nil error is returned as it is.
func Append(errs ...error) error {
	var res multiErr
	for _, err := range errs {
		if isNilErr(err) {
			continue
		}
		if m, ok := err.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, err)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

type unpacker interface {
	Unpack() []error
}

// multiErr is a list of errors. The first error determines the ABCI code, so
// that the result is consistent with fail fast validation.
type multiErr []error

func (m multiErr) Unpack() []error {
	return []error(m)
}

func (m multiErr) Error() string {
	if len(m) == 1 {
		return m[0].Error()
	}
	points := make([]string, len(m))
	for i, err := range m {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(m), strings.Join(points, "\n\t"))
}

func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}

var (
	_ unpacker = multiErr(nil)
	_ coder    = multiErr(nil)
)
