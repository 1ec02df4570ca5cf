// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"regexp"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/eepasm/isa"
)

var reExpression = regexp.MustCompile(`\$\([^\$]*\)`)

// expand replaces each $(...) in a line with its value.
func (asm *Assembler) expand(line string, pc int, labels isa.Labels) (out string, err error) {
	out = reExpression.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], pc, labels)
		if _err != nil && err == nil {
			err = _err
		}
		return fmt.Sprintf("%#x", value)
	})

	return
}

// parenEval does compile-time $(...) evaluations.
//
// The names visible to the expression are 'pc', the labels bound so far, and
// the numeric predefines.
func (asm *Assembler) parenEval(expr string, pc int, labels isa.Labels) (value uint16, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.predefine {
		var number uint16
		number, err = isa.ParseNumber(str)
		if err != nil {
			// Ignore non-integer predefines.
			err = nil
			continue
		}
		pred[key] = starlark.MakeInt(int(number))
	}
	for label, addr := range labels {
		pred[label] = starlark.MakeInt(addr)
	}
	pred["pc"] = starlark.MakeInt(pc)

	prog := "rc=" + isa.Fold(expr) + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = uint16(st_int64)

	return
}
