package menu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// stdin is swapped out by tests that script the console.
var stdin *bufio.Reader = bufio.NewReader(os.Stdin)

// SetInput redirects console reads, for tests.
func SetInput(r io.Reader) {
	stdin = bufio.NewReader(r)
}

func readLine(prompt string) string {
	if prompt != "" {
		fmt.Print(prompt)
	}
	s, _ := stdin.ReadString('\n')
	return strings.TrimSpace(s)
}

// readChoice reads one menu option number. A non-numeric line is an input
// error, not a fatal one.
func readChoice() (int, error) {
	s, err := stdin.ReadString('\n')
	if err != nil && strings.TrimSpace(s) == "" {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(s))
}

// readAmount reads one decimal amount. Malformed input fails fast with the
// parse error; the caller reports it and the session continues.
func readAmount(prompt string) (decimal.Decimal, error) {
	raw := readLine(prompt)
	raw = strings.ReplaceAll(raw, ",", ".")
	amt, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", raw, err)
	}
	return amt, nil
}
