// Copyright 2017 The go-ethereum Authors
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
	"bufio"
	"errors"
	"fmt"
	"os"
	"reflect"
	"unicode"

	"github.com/naoina/toml"
	"github.com/sunyihoo/abicodec/internal/flags"
	"github.com/sunyihoo/abicodec/log"
	"github.com/urfave/cli/v2"
)

var (
	dumpConfigCommand = &cli.Command{
		Action:      dumpConfig,
		Name:        "dumpconfig",
		Usage:       "Export configuration values in a TOML format",
		ArgsUsage:   "<dumpfile (optional)>",
		Description: `Export configuration values in TOML format (to stdout by default).`,
	}

	configFileFlag = &flags.PathFlag{
		Name:     "config",
		Usage:    "TOML configuration file",
		Category: flags.CodecCategory,
	}
	packedFlag = &cli.BoolFlag{
		Name:     "packed",
		Usage:    "Use the non-standard packed encoding",
		Category: flags.CodecCategory,
	}
	wordsFlag = &cli.BoolFlag{
		Name:     "words",
		Usage:    "Print standard encodings one 32 byte word per line",
		Category: flags.CodecCategory,
	}
	fourByteFlag = &flags.PathFlag{
		Name:     "4bytedb",
		Usage:    "File used for selectors registered with the register command",
		Category: flags.CodecCategory,
	}
)

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		var link string
		if unicode.IsUpper(rune(rt.Name()[0])) && rt.PkgPath() != "main" {
			link = fmt.Sprintf(", see https://godoc.org/%s#%s for available fields", rt.PkgPath(), rt.Name())
		}
		return fmt.Errorf("field '%s' is not defined in %s%s", field, rt.String(), link)
	},
}

// codecConfig selects the encoding used by the encode and decode commands.
type codecConfig struct {
	Packed bool // 使用紧凑编码 use the packed encoding
	Words  bool // 按字输出标准编码 print standard encodings word by word
}

// selectorConfig locates the custom 4byte selector database.
type selectorConfig struct {
	Database string `toml:",omitempty"` // 自定义选择器数据库文件 custom selector database file
}

type abicodecConfig struct {
	Codec     codecConfig
	Selectors selectorConfig
}

func loadConfig(file string, cfg *abicodecConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// makeConfig loads the configuration file, if any, and applies the command
// line flags on top of it.
// makeConfig 加载配置文件（如有），并在其上应用命令行标志。
func makeConfig(ctx *cli.Context) (abicodecConfig, error) {
	var cfg abicodecConfig
	if file := flags.Path(ctx, configFileFlag.Name); file != "" {
		if err := loadConfig(file, &cfg); err != nil {
			return cfg, err
		}
		log.Debug("Loaded configuration", "file", file)
	}
	if err := flags.CheckExclusive(ctx, packedFlag, wordsFlag); err != nil {
		return cfg, err
	}
	if ctx.IsSet(packedFlag.Name) {
		cfg.Codec.Packed = ctx.Bool(packedFlag.Name)
	}
	if ctx.IsSet(wordsFlag.Name) {
		cfg.Codec.Words = ctx.Bool(wordsFlag.Name)
	}
	if file := flags.Path(ctx, fourByteFlag.Name); file != "" {
		cfg.Selectors.Database = file
	}
	if cfg.Codec.Packed && cfg.Codec.Words {
		return cfg, errors.New("packed encodings have no word layout")
	}
	return cfg, nil
}

// dumpConfig is the dumpconfig command.
func dumpConfig(ctx *cli.Context) error {
	cfg, err := makeConfig(ctx)
	if err != nil {
		return err
	}
	out, err := tomlSettings.Marshal(&cfg)
	if err != nil {
		return err
	}

	dump := ctx.App.Writer
	if ctx.NArg() > 0 {
		f, err := os.OpenFile(ctx.Args().Get(0), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		dump = f
	}
	_, err = dump.Write(out)
	return err
}
