// Copyright 2015 The go-ethereum Authors
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

// Package log is floodledger's structured, leveled logger. Call sites pass
// a message followed by alternating key/value pairs, the same convention
// used throughout the go-ethereum family this module is built from:
//
//	log.Info("accepted connection", "remote", addr, "id", connID)
package log

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// Level is a logging severity.
type Level int

const (
	LevelCrit Level = iota
	LevelError
	LevelWarn
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelCrit:
		return "CRIT"
	case LevelError:
		return "ERROR"
	case LevelWarn:
		return "WARN"
	case LevelInfo:
		return "INFO"
	case LevelDebug:
		return "DEBUG"
	default:
		return "????"
	}
}

var levelColor = map[Level]*color.Color{
	LevelCrit:  color.New(color.FgMagenta, color.Bold),
	LevelError: color.New(color.FgRed, color.Bold),
	LevelWarn:  color.New(color.FgYellow),
	LevelInfo:  color.New(color.FgGreen),
	LevelDebug: color.New(color.FgCyan),
}

// Logger writes leveled, key-value lines to an underlying writer.
type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	colorize bool
	min      Level
}

var root = New(os.Stderr)

// New builds a Logger around w, auto-detecting color support when w is a
// terminal (via mattn/go-isatty) and wrapping it for ANSI passthrough on
// Windows consoles (via mattn/go-colorable).
func New(w io.Writer) *Logger {
	colorize := false
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		w = colorable.NewColorable(f)
		colorize = true
	}
	return &Logger{out: w, colorize: colorize, min: LevelInfo}
}

// Root returns the process-wide default logger.
func Root() *Logger { return root }

// SetLevel sets the minimum level that is actually written.
func (l *Logger) SetLevel(lv Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min = lv
}

func (l *Logger) log(lv Level, msg string, ctx []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if lv > l.min {
		return
	}
	ts := time.Now().Format("2006-01-02T15:04:05.000")
	tag := lv.String()
	if l.colorize {
		tag = levelColor[lv].Sprint(tag)
	}
	fmt.Fprintf(l.out, "%s [%s] %s", ts, tag, msg)
	for i := 0; i+1 < len(ctx); i += 2 {
		fmt.Fprintf(l.out, " %v=%v", ctx[i], ctx[i+1])
	}
	if len(ctx)%2 == 1 {
		fmt.Fprintf(l.out, " %v=MISSING", ctx[len(ctx)-1])
	}
	fmt.Fprintln(l.out)
}

// Crit logs at LevelCrit and then terminates the process, matching the
// go-ethereum convention that Crit is reserved for unrecoverable startup
// and I/O failures (spec: "an unrecoverable I/O panic terminates the
// process").
func (l *Logger) Crit(msg string, ctx ...interface{}) {
	l.log(LevelCrit, msg, ctx)
	os.Exit(1)
}
func (l *Logger) Error(msg string, ctx ...interface{}) { l.log(LevelError, msg, ctx) }
func (l *Logger) Warn(msg string, ctx ...interface{})  { l.log(LevelWarn, msg, ctx) }
func (l *Logger) Info(msg string, ctx ...interface{})  { l.log(LevelInfo, msg, ctx) }
func (l *Logger) Debug(msg string, ctx ...interface{}) { l.log(LevelDebug, msg, ctx) }

// Package-level helpers delegate to the root logger, mirroring the
// free-function call sites (log.Info(...), log.Error(...)) used across the
// codebase this module is built from.
func SetLevel(lv Level)                    { root.SetLevel(lv) }
func Crit(msg string, ctx ...interface{})  { root.Crit(msg, ctx...) }
func Error(msg string, ctx ...interface{}) { root.Error(msg, ctx...) }
func Warn(msg string, ctx ...interface{})  { root.Warn(msg, ctx...) }
func Info(msg string, ctx ...interface{})  { root.Info(msg, ctx...) }
func Debug(msg string, ctx ...interface{}) { root.Debug(msg, ctx...) }
