// bookcovers — Placeholder cover generation for the book library.
//
// Usage:
//
//	bookcovers [generate] [--out <dir>] [--manifest <file>] [options]
//	bookcovers verify [--out <dir>] [--manifest <file>]
//	bookcovers init [--manifest covers.yml]
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
