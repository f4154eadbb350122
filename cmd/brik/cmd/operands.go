package cmd

import (
	"fmt"
	"strconv"

	"github.com/nazcamedia/brik/internal/output"
)

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, output.WrapExitError(output.ExitCommandError, fmt.Sprintf("invalid integer %q", s), err)
	}
	return n, nil
}

// parseFloat accepts anything strconv does, including "NaN" and "Inf".
func parseFloat(s string) (float64, error) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, output.WrapExitError(output.ExitCommandError, fmt.Sprintf("invalid number %q", s), err)
	}
	return x, nil
}
