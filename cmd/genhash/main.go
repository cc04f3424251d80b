// genhash prints a bcrypt hash for the password given as the first argument.
// Useful for seeding accounts by hand.
package main

import (
	"fmt"
	"os"

	"github.com/Ncongwana-808/autorepair-erp/internal/auth"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: genhash <password>")
		os.Exit(1)
	}
	hash, err := auth.HashPassword(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	fmt.Println(hash)
}
