// Copyright 2025 The go-ethereum Authors
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

package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/sunyihoo/abicodec/accounts/abi"
	"github.com/sunyihoo/abicodec/common/hexutil"
	"github.com/sunyihoo/abicodec/internal/version"
	"github.com/sunyihoo/abicodec/log"
	"github.com/sunyihoo/abicodec/signer/fourbyte"
	"github.com/urfave/cli/v2"
)

var (
	encodeCommand = &cli.Command{
		Action:    encode,
		Name:      "encode",
		Usage:     "Encode a tuple value",
		ArgsUsage: "<types> <values>",
		Description: `
The encode command encodes a tuple literal such as '(69,true)' as a value of
the tuple type given by the first argument, e.g. '(uint32,bool)'. The output is
the standard encoding in hex, or the packed encoding when --packed is set.`,
	}
	decodeCommand = &cli.Command{
		Action:    decode,
		Name:      "decode",
		Usage:     "Decode a tuple value",
		ArgsUsage: "<types> <hexdata>",
		Description: `
The decode command decodes hex data as a value of the given tuple type and
prints it as a tuple literal.`,
	}
	callCommand = &cli.Command{
		Action:    encodeCall,
		Name:      "call",
		Usage:     "Encode call data for a function",
		ArgsUsage: "<signature> <values>",
		Description: `
The call command prints the selector of the function followed by the encoded
arguments, e.g. abicodec call 'transfer(address,uint)' '(0x...,1)'.`,
	}
	decodeCallCommand = &cli.Command{
		Action:    decodeCall,
		Name:      "decodecall",
		Usage:     "Decode call data of a function",
		ArgsUsage: "<signature> <hexdata>",
	}
	selectorCommand = &cli.Command{
		Action:    selector,
		Name:      "selector",
		Usage:     "Print the selector and canonical signature of a function",
		ArgsUsage: "<signature>",
	}
	revertCommand = &cli.Command{
		Action:    revert,
		Name:      "revert",
		Usage:     "Print the reason carried by revert data",
		ArgsUsage: "<hexdata>",
	}
	lookupCommand = &cli.Command{
		Action:    lookup,
		Name:      "lookup",
		Usage:     "Decode call data using the selector database",
		ArgsUsage: "<hexdata>",
		Description: `
The lookup command resolves the selector of the call data against the built-in
and custom (--4bytedb) selector databases, decodes the arguments and checks
that the data is canonically encoded.`,
	}
	versionCommand = &cli.Command{
		Action:    printVersion,
		Name:      "version",
		Usage:     "Print version numbers",
		ArgsUsage: " ",
	}
	registerCommand = &cli.Command{
		Action:    register,
		Name:      "register",
		Usage:     "Add a function signature to the custom selector database",
		ArgsUsage: "<signature>",
	}
)

func encode(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	typ, values, err := parseTuple(ctx.Args().Get(0), ctx.Args().Get(1))
	if err != nil {
		return err
	}
	var enc []byte
	if cfg.Codec.Packed {
		enc, err = typ.EncodePacked(values)
	} else {
		enc, err = typ.Encode(values)
	}
	if err != nil {
		return err
	}
	log.Debug("Encoded tuple", "type", typ, "packed", cfg.Codec.Packed, "size", len(enc))
	if cfg.Codec.Words {
		out, err := abi.Format(enc)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(ctx.App.Writer, out)
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hexutil.Encode(enc))
	return err
}

func decode(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	typ, err := abi.ParseTupleType(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(ctx.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}
	var values abi.Tuple
	if cfg.Codec.Packed {
		values, err = typ.DecodePacked(data)
	} else {
		values, err = typ.Decode(data)
	}
	if err != nil {
		return err
	}
	log.Debug("Decoded tuple", "type", typ, "packed", cfg.Codec.Packed, "size", len(data))
	_, err = fmt.Fprintln(ctx.App.Writer, typ.FormatLiteral(values))
	return err
}

func encodeCall(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	if cfg.Codec.Packed {
		return errors.New("call data always uses the standard encoding")
	}
	fn, err := abi.ParseFunction(ctx.Args().Get(0), "")
	if err != nil {
		return err
	}
	args, err := fn.Inputs.ParseLiteral(ctx.Args().Get(1))
	if err != nil {
		return err
	}
	data, err := fn.EncodeCall(args.(abi.Tuple))
	if err != nil {
		return err
	}
	log.Debug("Encoded call", "function", fn.Sig, "size", len(data))
	if cfg.Codec.Words {
		out, err := abi.FormatCall(data)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(ctx.App.Writer, out)
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hexutil.Encode(data))
	return err
}

func decodeCall(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	fn, err := abi.ParseFunction(ctx.Args().Get(0), "")
	if err != nil {
		return err
	}
	data, err := hexutil.Decode(ctx.Args().Get(1))
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}
	args, err := fn.DecodeCall(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, fn.Inputs.FormatLiteral(args))
	return err
}

func selector(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	fn, err := abi.ParseFunction(ctx.Args().Get(0), "")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, hexutil.Encode(fn.ID), fn.Sig)
	return err
}

func revert(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	data, err := hexutil.Decode(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}
	reason, err := abi.UnpackRevert(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, reason)
	return err
}

// parseTuple parses a tuple type signature and a literal of that type.
func parseTuple(types, literal string) (*abi.Type, abi.Tuple, error) {
	typ, err := abi.ParseTupleType(types)
	if err != nil {
		return nil, nil, err
	}
	v, err := typ.ParseLiteral(literal)
	if err != nil {
		return nil, nil, err
	}
	return typ, v.(abi.Tuple), nil
}

// openSelectorDB opens the built-in selectors together with the configured
// custom database file, if any.
func openSelectorDB(ctx *cli.Context) (*fourbyte.Database, string, error) {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return nil, "", err
	}
	file := cfg.Selectors.Database
	db, err := fourbyte.NewWithFile(file)
	if err != nil {
		return nil, "", err
	}
	embedded, custom := db.Size()
	log.Debug("Opened selector database", "embedded", embedded, "custom", custom, "file", file)
	return db, file, nil
}

func lookup(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	data, err := hexutil.Decode(ctx.Args().Get(0))
	if err != nil {
		return fmt.Errorf("invalid hex data: %v", err)
	}
	db, _, err := openSelectorDB(ctx)
	if err != nil {
		return err
	}
	call, err := db.DecodeCall(data)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(ctx.App.Writer, call)
	return err
}

func register(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return fmt.Errorf("usage: %s %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	db, file, err := openSelectorDB(ctx)
	if err != nil {
		return err
	}
	sig, err := db.AddSelector(ctx.Args().Get(0))
	if err != nil {
		return err
	}
	if file == "" {
		log.Warn("Selector database is not persisted", "hint", "use --"+fourByteFlag.Name)
	}
	_, err = fmt.Fprintln(ctx.App.Writer, sig)
	return err
}

func printVersion(ctx *cli.Context) error {
	git, _ := version.VCS()
	w := ctx.App.Writer
	fmt.Fprintln(w, ctx.App.Name)
	fmt.Fprintln(w, "Version:", version.WithMeta)
	if git.Commit != "" {
		fmt.Fprintln(w, "Git Commit:", git.Commit)
	}
	if git.Date != "" {
		fmt.Fprintln(w, "Git Commit Date:", git.Date)
	}
	fmt.Fprintln(w, "Architecture:", runtime.GOARCH)
	fmt.Fprintln(w, "Go Version:", runtime.Version())
	fmt.Fprintln(w, "Operating System:", runtime.GOOS)
	return nil
}
