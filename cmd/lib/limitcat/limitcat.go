// Package limitcat implements the limitcat tool,
// a cat(1)-alike that refuses to pass through more than a configured
// number of bytes.
package limitcat

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/streamguard/lengthlimit"
)

// Run runs limitcat, copying stdin to stdout under the configured limit.
//
// It returns 0 to indicate success,
// and non-zero to indicate failure.
//
// Your main function usually should look like:
//
//	func main() {
//		os.Exit(limitcat.Run())
//	}
func Run() (ret int) {
	if err := RunArgs(os.Args, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// RunArgs is the more customizable/testable version of Run.
//
// In production code it expects you to pass in os.Args as the args.
func RunArgs(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	limit := lengthlimit.Megabyte
	fs.Var(
		&limit,
		"limit",
		`The maximum number of bytes to pass through (exclusive), e.g. "512", "4kb", "10mb".`,
	)
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	if _, err := io.Copy(stdout, lengthlimit.New(stdin, limit.Bytes())); err != nil {
		if errors.Is(err, lengthlimit.ErrLengthLimitExceeded) {
			return fmt.Errorf("limitcat: input exceeded the %v limit", limit)
		}
		return fmt.Errorf("limitcat: %w", err)
	}
	return nil
}
