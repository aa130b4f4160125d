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

// floodnode is floodledger's node binary: it boots one peer, binds its
// listener, and reads operator commands from stdin.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/floodledger/floodledger/config"
	"github.com/floodledger/floodledger/internal/log"
	"github.com/floodledger/floodledger/node"
)

func main() {
	app := &cli.App{
		Name:  "floodnode",
		Usage: "run a floodledger peer",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a TOML config file; flags below override it",
			},
			&cli.UintFlag{
				Name:  "port",
				Usage: "TCP port to bind the listener on",
			},
			&cli.BoolFlag{
				Name:  "boot-node",
				Usage: "run as a boot node (empty initial contact list)",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.IsSet("port") {
		cfg.Port = uint16(c.Uint("port"))
	}
	if c.IsSet("boot-node") {
		cfg.BootNode = c.Bool("boot-node")
	}

	n, err := node.New(cfg)
	if err != nil {
		return err
	}
	defer n.Close()

	log.Info("floodnode started", "addr", n.Addr(), "boot_node", cfg.BootNode)

	go func() {
		if err := n.Serve(); err != nil {
			log.Error("listener stopped", "err", err)
		}
	}()

	n.RunCommands(os.Stdin)
	return nil
}
