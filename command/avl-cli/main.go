// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/internal/orderedtree"
)

type metadata struct {
	tree    orderedtree.Tree
	numeric bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "build a tree from the KEYs given on the command line and examine it"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e
	app.Metadata = make(map[string]interface{})

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "unbalanced, u",
			Usage: " use the unbalanced search tree instead of the AVL tree",
		},
		cli.BoolFlag{
			Name:  "numeric, n",
			Usage: " compare keys as integers instead of strings",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "print",
			Usage:     "draw the tree",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " include values and balance factors",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "walk",
			Usage:     "list keys and values in order",
			ArgsUsage: "KEY...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "reverse, r",
					Usage: " descending order",
				},
			},
			Action: runWalk,
		},
		{
			Name:      "find",
			Usage:     "look up a key and show its neighbours",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*key to find `KEY`",
				},
			},
			Action: runFind,
		},
		{
			Name:      "remove",
			Usage:     "remove keys then draw the tree",
			ArgsUsage: "KEY...\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringSliceFlag{
					Name:  "key, k",
					Usage: "*key to remove, may be repeated `KEY`",
				},
			},
			Action: runRemove,
		},
		{
			Name:      "stats",
			Usage:     "show size, height and restructuring counts as JSON",
			ArgsUsage: "KEY...",
			Action:    runStats,
		},
	}

	// create the empty tree for the selected command
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")
		unbalanced := c.GlobalBool("unbalanced")

		tree := orderedtree.New(unbalanced)
		if verbose {
			fmt.Fprintf(e, "unbalanced: %v  numeric: %v\n", unbalanced, c.GlobalBool("numeric"))
		}

		c.App.Metadata["config"] = &metadata{
			tree:    tree,
			numeric: c.GlobalBool("numeric"),
			verbose: verbose,
			e:       e,
			w:       w,
		}
		return nil
	}

	return app
}
