package theme

import (
	"fmt"
	"io"
)

// Banner returns the wayfare banner.
func Banner() string {
	const cyan = "\033[36m"
	const yellow = "\033[33m"
	const reset = "\033[0m"

	art := "" +
		cyan + "  ╦ ╦╔═╗╦ ╦╔═╗╔═╗╦═╗╔═╗\n" + reset +
		cyan + "  ║║║╠═╣╚╦╝╠╣ ╠═╣╠╦╝║╣ \n" + reset +
		cyan + "  ╚╩╝╩ ╩ ╩ ╚  ╩ ╩╩╚═╚═╝\n" + reset +
		yellow + "  ───────────────────────\n" + reset +
		"  rank destinations by cost, rating and visa\n"
	return art
}

// PrintBanner prints the banner to w.
func PrintBanner(w io.Writer) {
	fmt.Fprint(w, Banner())
}
