// Command taskctl is the operator CLI: schema migration, admin role
// management and trash purging against the configured database.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
