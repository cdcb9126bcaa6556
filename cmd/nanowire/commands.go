package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/nanohq/nano-engine/pkg/codec"
	"github.com/nanohq/nano-engine/pkg/field"
	"github.com/nanohq/nano-engine/pkg/log"
	"github.com/nanohq/nano-engine/pkg/nctype"
	"github.com/nanohq/nano-engine/pkg/network"
)

func codecFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "type descriptor of the value, e.g. 'dict[str, Amount]'",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "network",
			Value: "mainnet",
			Usage: "builtin network name (mainnet, testnet, privatenet)",
		},
		&cli.StringFlag{
			Name:  "network-file",
			Usage: "YAML file with a custom network definition",
		},
	}
}

func resolveNetwork(c *cli.Context) (*network.Network, error) {
	if path := c.String("network-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return network.FromYAML(data)
	}
	return network.ByName(c.String("network"))
}

func getEncodeCommand(logger log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "encode a JSON user value to its hex wire form",
		ArgsUsage: "<value-json>",
		Flags:     codecFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one value argument")
			}
			net, err := resolveNetwork(c)
			if err != nil {
				return err
			}
			var userValue any
			if err := json.Unmarshal([]byte(c.Args().First()), &userValue); err != nil {
				return fmt.Errorf("value is not valid JSON: %w", err)
			}
			f, err := field.ForType(c.String("type"), net)
			if err != nil {
				return err
			}
			value, err := f.FromUser(userValue)
			if err != nil {
				return err
			}
			writer := codec.NewWriter()
			if err := f.Encode(writer, value); err != nil {
				return err
			}
			logger.Debugf("encoded %d bytes as %s", writer.Size(), c.String("type"))
			fmt.Fprintln(c.App.Writer, hex.EncodeToString(writer.Result()))
			return nil
		},
	}
}

func getDecodeCommand(logger log.Logger) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "decode a hex wire value to its JSON user form",
		ArgsUsage: "<hex>",
		Flags:     codecFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one hex argument")
			}
			net, err := resolveNetwork(c)
			if err != nil {
				return err
			}
			data, err := hex.DecodeString(c.Args().First())
			if err != nil {
				return fmt.Errorf("input is not valid hex: %w", err)
			}
			f, err := field.ForType(c.String("type"), net)
			if err != nil {
				return err
			}
			reader := codec.NewReader(data)
			value, err := f.Decode(reader)
			if err != nil {
				return err
			}
			if reader.HasUnreadBytes() {
				logger.Warningf("%d trailing bytes were not consumed", len(data)-reader.BytesRead())
			}
			user, err := f.ToUser(value)
			if err != nil {
				return err
			}
			output, err := json.Marshal(user)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, string(output))
			return nil
		},
	}
}

func getParseTypeCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse-type",
		Usage:     "parse a type descriptor and print its canonical form",
		ArgsUsage: "<type>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("expected exactly one type argument")
			}
			node, err := nctype.Parse(c.Args().First())
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, node.String())
			return nil
		},
	}
}
