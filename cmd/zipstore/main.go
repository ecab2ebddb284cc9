package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/zipstore"
)

const description = "zipstore packages a project directory into an uncompressed zip archive."

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, description)
		fmt.Fprintln(os.Stderr, "\nUsage: zipstore [flags] <archive path> <project dir>")
		flag.PrintDefaults()
	}

	var concurrency int
	flag.IntVar(&concurrency, "concurrency", runtime.GOMAXPROCS(0), "allow up to n file reader and checksum routines")

	flag.Parse()

	args := flag.Args()

	if len(args) < 2 {
		flag.Usage()
		os.Exit(2)
	}

	cli := zipstore.ArchiverCLI{ArchivePath: args[0], Dir: args[1], Concurrency: concurrency}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Archive(ctx); err != nil {
		log.Fatal(err)
	}
}
