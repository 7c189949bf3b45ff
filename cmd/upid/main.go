// Command upid mints UPIDs from the command line.
//
// Usage:
//
//	upid [-n count] [prefix]
//	upid -parse user_aaccvpp5guht4dts56je5a
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/carderne/upid"
)

func main() {
	n := flag.Int("n", 1, "number of identifiers to mint")
	parse := flag.String("parse", "", "inspect an existing identifier instead of minting")
	flag.Parse()

	if *parse != "" {
		id, err := upid.Parse(*parse)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("prefix  %s\n", id.Prefix())
		fmt.Printf("time    %s\n", id.Time().Format(time.RFC3339Nano))
		fmt.Printf("hex     %s\n", id.Hex())
		fmt.Printf("uuid    %s\n", id.UUID())
		return
	}

	prefix := flag.Arg(0)
	for i := 0; i < *n; i++ {
		fmt.Println(upid.New(prefix))
	}
}
