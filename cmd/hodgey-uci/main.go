// Command hodgey-uci wires the search core to a UCI front end on
// stdin/stdout.
package main

import (
	"log"
	"os"

	"github.com/Jixen124/hodgey-chess-engine/internal/uci"
)

func main() {
	log.SetOutput(os.Stderr)
	log.Printf("[UCI] hodgey-uci starting")

	protocol := uci.New(os.Stdout)
	protocol.Run(os.Stdin)
}
