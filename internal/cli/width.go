package cli

import "strconv"

// widthValue is a pflag.Value for --width: a plain integer, but
// rejecting zero/negative widths at flag-parse time rather than
// silently falling back to the renderer's own default.
type widthValue struct {
	n int
}

func newWidthValue(defaultN int) *widthValue {
	return &widthValue{n: defaultN}
}

func (w *widthValue) String() string { return strconv.Itoa(w.n) }

func (w *widthValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errWidthMustBePositive
	}
	w.n = n
	return nil
}

func (w *widthValue) Type() string { return "width" }

var errWidthMustBePositive = widthError("width must be a positive integer")

type widthError string

func (e widthError) Error() string { return string(e) }
