// Copyright 2016 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

// Package debug configures logging for the command line tools.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/sunyihoo/abicodec/internal/flags"
	"github.com/sunyihoo/abicodec/log"
	"github.com/urfave/cli/v2"
)

var (
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		// 日志详细级别：0=静默，1=错误，2=警告，3=信息，4=调试，5=详细。
		Value:    3,
		Category: flags.LoggingCategory,
	}
	logFormatFlag = &cli.StringFlag{
		Name:  "log.format",
		Usage: "Log format to use (json|terminal)",
		// 要使用的日志格式（json|终端）。
		Category: flags.LoggingCategory,
	}
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "Write logs to a file",
		// 将日志写入文件。
		Category: flags.LoggingCategory,
	}
	logColorFlag = &cli.BoolFlag{
		Name:  "log.nocolor",
		Usage: "Disable colored terminal output",
		// 禁用终端彩色输出。
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for debugging.
// Flags 包含所有用于调试的命令行标志。
var Flags = []cli.Flag{
	verbosityFlag,
	logFormatFlag,
	logFileFlag,
	logColorFlag,
}

var logOutputFile io.WriteCloser

// Setup initializes logging based on the CLI flags.
// It should be called as early as possible in the program.
// Setup 根据 CLI 标志初始化日志记录。应尽可能早地在程序中调用。
func Setup(ctx *cli.Context) error {
	var (
		handler   slog.Handler
		output    = ctx.App.ErrWriter
		logFmt    = ctx.String(logFormatFlag.Name)
		logFile   = ctx.String(logFileFlag.Name)
		verbosity = log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	)
	if output == nil {
		output = os.Stderr
	}
	if logFile != "" {
		if err := validateLogLocation(filepath.Dir(logFile)); err != nil {
			return fmt.Errorf("failed to initialize file logger: %v", err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return err
		}
		logOutputFile = f
		output = io.MultiWriter(f, output)
	}
	switch logFmt {
	case "json":
		handler = log.JSONHandlerWithLevel(output, verbosity)
	case "", "terminal":
		useColor := logOutputFile == nil && !ctx.Bool(logColorFlag.Name) && isTerminal(output) && os.Getenv("TERM") != "dumb"
		handler = log.NewTerminalHandlerWithLevel(output, verbosity, useColor)
	default:
		// Unknown log format specified
		// 指定了未知的日志格式。
		return fmt.Errorf("unknown log format: %v", logFmt)
	}
	log.SetDefault(log.NewLogger(handler))
	if logFile != "" {
		log.Info("Logging configured", "format", logFmt, "location", logFile)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Exit flushes and closes the log file, if any.
// Exit 刷新并关闭日志文件（如有）。
func Exit() {
	if logOutputFile != nil {
		logOutputFile.Close()
		logOutputFile = nil
	}
	log.SetDefault(log.NewLogger(log.DiscardHandler()))
}

// validateLogLocation checks if the log directory is valid and writable.
// validateLogLocation 检查日志目录是否有效且可写。
func validateLogLocation(path string) error {
	if err := os.MkdirAll(path, os.ModePerm); err != nil {
		return fmt.Errorf("error creating the directory: %w", err)
	}
	// Check if the path is writable by trying to create a temporary file
	// 通过尝试创建临时文件来检查路径是否可写。
	tmp := filepath.Join(path, "tmp")
	if f, err := os.Create(tmp); err != nil {
		return err
	} else {
		f.Close()
	}
	return os.Remove(tmp)
}
