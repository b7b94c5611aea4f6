package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func Print(val Expr) string {
	switch t := val.(type) {
	case float64:
		return printNumber(t)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return "null"
	case unspecified:
		return "undefined"
	case Symbol:
		return string(t)
	case List:
		arr := make([]string, len(t))
		for i, v := range t {
			arr[i] = Print(v)
		}
		return fmt.Sprintf("(%s)", strings.Join(arr, " "))
	default:
		return fmt.Sprintf("%v", val)
	}
}

func printNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if abs := math.Abs(f); f != 0 && (abs >= 1e21 || abs < 1e-6) {
		return printExponent(f)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// printExponent drops Go's zero padding of the exponent: 1.5e-7, not 1.5e-07.
func printExponent(f float64) string {
	mantissa, exp, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	return mantissa + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
}
