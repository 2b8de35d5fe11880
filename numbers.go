package parsby

import (
	"strconv"
	"strings"
)

// Integer parses an optional leading '-' followed by one or more decimal
// digits, yielding an int.
func Integer() Parser[int] {
	return As(Map(integerDigits(), func(s string) (int, error) {
		v, err := strconv.Atoi(s)
		if err != nil {
			return 0, err
		}
		return v, nil
	}), "<integer>")
}

// Decimal parses an optional leading '-', one or more digits, and an
// optional '.'-delimited fractional part, yielding a float64. It is not
// this parser's role to ensure the value fits a 64-bit float.
func Decimal() Parser[float64] {
	digits := integerDigits()
	fraction := Optional(KeepRight(Literal("."), Many1(Digit())))

	combined := NewParser("", func(ctx *Context) (string, error) {
		whole, err := digits.Invoke(ctx)
		if err != nil {
			return "", err
		}
		frac, err := fraction.Invoke(ctx)
		if err != nil {
			return "", err
		}
		if frac == nil {
			return whole, nil
		}
		return whole + "." + strings.Join(*frac, ""), nil
	})

	return As(Map(combined, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}), "<decimal>")
}

// integerDigits parses an optional leading '-' plus one or more digits,
// returning the matched text without interpreting it.
func integerDigits() Parser[string] {
	sign := Optional(Literal("-"))
	digits := Many1(Digit())

	return NewParser("", func(ctx *Context) (string, error) {
		s, err := sign.Invoke(ctx)
		if err != nil {
			return "", err
		}
		ds, err := digits.Invoke(ctx)
		if err != nil {
			return "", err
		}
		prefix := ""
		if s != nil {
			prefix = *s
		}
		return prefix + strings.Join(ds, ""), nil
	})
}
