// Command figurine-frames renders a character as a numbered frame sequence,
// one JSON scene dump or SVG document per frame.
//
// Configuration comes from the environment, overridable by flags:
//
//	FIGURINE_CHARACTER  path to a Character JSON file (default: built-in presenter)
//	FIGURINE_SCRIPT     path to a cue script JSON file
//	FIGURINE_TALK       text spoken from time zero when no cue script is given
//	FIGURINE_PRESET     reel, promo or talking-head
//	FIGURINE_OUT_DIR    output directory (default "frames")
//	FIGURINE_FORMAT     json or svg (default json)
//	FIGURINE_FPS        frames per second (default 25)
//	FIGURINE_DURATION   sequence length in seconds without a cue script (default 10)
//	FIGURINE_CAPTURE    freeze animation loops (default true)
//	FIGURINE_VERBOSE    log trait fallbacks to stderr
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
)

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := Run(ctx, cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}
