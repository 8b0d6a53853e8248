package model

import (
	"fmt"

	"github.com/taro-engine/taro/errs"
)

// contractErr wraps errs.ErrModelContract with a dotted field path and a
// human-readable detail, never stringifying the sentinel itself at the
// definition site.
func contractErr(field, format string, args ...interface{}) *errs.ModelContractError {
	detail := fmt.Errorf(format, args...)
	return errs.NewModelContractError(field, fmt.Errorf("%w: %s", errs.ErrModelContract, detail.Error()))
}
