// Command giftcardctl edits gift cards in the store from a terminal. It uses
// the same configuration and store adapter as the service.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(defaultStreams()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
