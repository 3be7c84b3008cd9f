// Command o65dump prints an annotated dump of one or more .o65 object
// files: header fields, options, segment contents, symbol tables, and
// relocation tables, for every image chained in each file.
//
// Usage:
//
//	o65dump file1 [file2 ...]
//
// The dump goes to standard output and diagnostics to standard error.
// Files are processed independently; a failure on one file does not
// stop the batch but does make the exit status 1.
package main

import (
	"fmt"
	"io"
	"os"

	o65 "github.com/appsworld/go-o65"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintf(stderr, "Usage: %s file1 ...\n", os.Args[0])
		return 1
	}
	d := o65.NewDumper(stdout)
	status := 0
	for i, name := range args {
		if i > 0 {
			fmt.Fprintln(stdout)
		}
		if len(args) > 1 {
			fmt.Fprintf(stdout, "%s:\n\n", name)
		}
		if err := d.DumpFile(name); err != nil {
			fmt.Fprintln(stderr, err)
			status = 1
		}
	}
	return status
}
