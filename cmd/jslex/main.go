// Command jslex reads a single source file and prints its token stream,
// one debug representation per line, to standard output.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/repr"

	"github.com/dmitryvk/jslex/lexer"
)

func main() {
	log.SetFlags(0)

	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <file>", os.Args[0])
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		log.Fatalf("reading %s: %v", os.Args[1], err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	l := lexer.NewFromString(string(data))
	for {
		tok, ok := l.Next()
		if !ok {
			break
		}
		fmt.Fprintln(w, repr.String(tok))
	}
}
