// Package fizzbuzz implements the classic counting game.
package fizzbuzz

import (
	"io"
	"strconv"
)

// FizzBuzz returns "FizzBuzz" for multiples of 15, "Fizz" for multiples of 3,
// "Buzz" for multiples of 5 and the decimal form of n otherwise.
func FizzBuzz(n uint32) string {
	switch {
	case n%15 == 0:
		return "FizzBuzz"
	case n%3 == 0:
		return "Fizz"
	case n%5 == 0:
		return "Buzz"
	default:
		return strconv.FormatUint(uint64(n), 10)
	}
}

// Write prints FizzBuzz(i) for i in 1..count, one per line.
func Write(w io.Writer, count uint32) error {
	buf := make([]byte, 0, 16)
	for i := uint32(1); i <= count && i != 0; i++ {
		buf = append(buf[:0], FizzBuzz(i)...)
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}
