// Copyright 2014 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// abicodec is a command line tool for the Ethereum contract ABI encoding.
package main

import (
	"fmt"
	"os"

	"github.com/sunyihoo/abicodec/internal/debug"
	"github.com/sunyihoo/abicodec/internal/flags"
	"github.com/urfave/cli/v2"
)

var app = newApp()

func newApp() *cli.App {
	app := flags.NewApp("the ABI codec command line interface")
	app.Flags = append([]cli.Flag{
		configFileFlag,
		packedFlag,
		wordsFlag,
		fourByteFlag,
	}, debug.Flags...)
	app.Commands = []*cli.Command{
		// see commands.go:
		encodeCommand,
		decodeCommand,
		callCommand,
		decodeCallCommand,
		selectorCommand,
		revertCommand,
		lookupCommand,
		registerCommand,
		versionCommand,
		// see config.go
		dumpConfigCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		return debug.Setup(ctx)
	}
	app.After = func(ctx *cli.Context) error {
		debug.Exit()
		return nil
	}
	return app
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
