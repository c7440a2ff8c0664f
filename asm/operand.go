package asm

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ParseCommaOperand strips one trailing comma from an operand.
func ParseCommaOperand(word string) string {
	return strings.TrimSuffix(word, ",")
}

// ParseRegister parses an "R<n>" register reference.
func ParseRegister(word string) (reg int, err error) {
	if len(word) < 2 || word[0] != 'R' {
		err = ErrParseRegister(word)
		return
	}

	reg, err = strconv.Atoi(word[1:])
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if reg < 0 || reg > REGISTER_MAX {
		err = ErrOutOfRange{Value: reg, Min: 0, Max: REGISTER_MAX}
		return
	}

	return
}

// ParseNumber parses a base 10 integer, or a $(...) compile time expression.
func ParseNumber(word string) (value int, err error) {
	return parseNumber(word, nil)
}

// parseNumber is ParseNumber with predeclared names for expressions.
func parseNumber(word string, predeclared starlark.StringDict) (value int, err error) {
	if strings.HasPrefix(word, "$(") && strings.HasSuffix(word, ")") {
		return parenEval(word[2:len(word)-1], predeclared)
	}

	value, err = strconv.Atoi(word)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	return
}

// parenEval does compile-time $(...) evaluations
func parenEval(expr string, predeclared starlark.StringDict) (value int, err error) {
	thread := starlark.Thread{Name: "expr"}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, predeclared)
	if err != nil {
		err = ErrParseExpression(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// ParseMemoryOperand splits an "imm(Rn)" operand into its immediate and
// base register. Without a base register the operand is a bare immediate
// addressed from R0.
func ParseMemoryOperand(word string) (imm string, reg string) {
	open := strings.LastIndexByte(word, '(')
	if open < 0 || !strings.HasSuffix(word, ")") || !strings.HasPrefix(word[open+1:], "R") {
		imm = word
		reg = "R0"
		return
	}

	imm = word[:open]
	reg = word[open+1 : len(word)-1]
	return
}

// lineDict predeclares LINENO, the 0-based line of the expression.
func lineDict(lineno int) starlark.StringDict {
	return starlark.StringDict{
		"LINENO": starlark.MakeInt(lineno),
	}
}
