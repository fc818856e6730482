package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"github.com/fwojciec/pagemirror"
)

// Run executes the mirror command.
func (c *MirrorCmd) Run(deps *Dependencies) error {
	var progress pagemirror.ProgressFunc
	if c.Verbose {
		progress = func(p pagemirror.Progress) {
			switch {
			case p.Asset == "":
				fmt.Fprintf(deps.Stdout, "Saved %s (%s)\n", p.Path, humanize.Bytes(uint64(p.Bytes)))
			case p.Cached:
				fmt.Fprintf(deps.Stdout, "  %s -> %s (already downloaded)\n", p.Asset, p.Path)
			default:
				fmt.Fprintf(deps.Stdout, "  %s -> %s (%s)\n", p.Asset, p.Path, humanize.Bytes(uint64(p.Bytes)))
			}
		}
	}

	result, err := deps.Mirrorer.Run(deps.Ctx, c.URLs, progress)
	if err != nil {
		return err
	}

	if c.Verbose {
		fmt.Fprintf(deps.Stdout, "Mirrored %s with %s (%d reused), %s written\n",
			english.Plural(result.Pages, "page", ""),
			english.Plural(result.Assets, "asset", ""),
			result.Cached, humanize.Bytes(uint64(result.Bytes)),
		)
	}
	return nil
}
