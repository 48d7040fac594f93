// Package expr evaluates integer expressions for instruction immediates.
//
// Expressions are Starlark expressions over integers, such as '0x10',
// '2 * 10' or 'BASE + 1', with named values supplied by the caller.
package expr

import (
	"maps"
	"math"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/mdpu/translate"
)

var f = translate.From

// ErrExpression is an expression that does not evaluate to an integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrRange is an expression whose value does not fit in 32 bits.
type ErrRange string

func (err ErrRange) Error() string {
	return f("$(%v) does not fit in 32 bits", string(err))
}

// Eval evaluates expr with the named defines in scope.
//
// Values from math.MinInt32 to math.MaxUint32 are accepted; values above
// math.MaxInt32 wrap to their two's complement 32-bit representation.
func Eval(expr string, defines map[string]int64) (value int32, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range maps.All(defines) {
		pred[key] = starlark.MakeInt64(val)
	}

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = ErrExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < math.MinInt32 || st_int64 > math.MaxUint32 {
		err = ErrRange(expr)
		return
	}

	value = int32(uint32(st_int64))
	return
}
