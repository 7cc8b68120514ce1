// termcube - a virtual Rubik's cube you drive from the terminal.
package main

import (
	"github.com/seamusw/termcube/internal/cli"
)

func main() {
	cli.Execute()
}
