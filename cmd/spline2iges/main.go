// seehuhn.de/go/iges - a library for writing IGES files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Spline2iges converts fitted B-spline surface files (JSON) into a
// single IGES file.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"seehuhn.de/go/iges/spline"
)

var log *zap.SugaredLogger

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()
	log = logger.Sugar()

	app := &cli.App{
		Name:  "spline2iges",
		Usage: "convert fitted B-spline surfaces to IGES",
		Commands: []*cli.Command{
			convertCommand(),
			seriesCommand(),
			showCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

// outputFlags are shared by the convert and series commands.
func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    "IGES file to write",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "product-id",
			Usage: "product identification embedded in the IGES file",
		},
		&cli.StringFlag{
			Name:  "file-name",
			Usage: "file name embedded in the IGES file (default: output base name)",
		},
		&cli.StringFlag{
			Name:  "label-prefix",
			Value: "part",
			Usage: "prefix for the per-surface entity labels",
		},
	}
}

func options(c *cli.Context) *spline.ConvertOptions {
	output := c.String("output")
	fileName := c.String("file-name")
	if fileName == "" {
		fileName = filepath.Base(output)
	}
	productID := c.String("product-id")
	if productID == "" {
		productID = strings.TrimSuffix(fileName, filepath.Ext(fileName))
	}
	return &spline.ConvertOptions{
		ProductID:   productID,
		FileName:    fileName,
		LabelPrefix: c.String("label-prefix"),
	}
}

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "convert the given surface files to one IGES file",
		ArgsUsage: "surface.json ...",
		Flags:     outputFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("no surface files given")
			}
			return convert(c.String("output"), options(c), c.Args().Slice())
		},
	}
}

func seriesCommand() *cli.Command {
	flags := append(outputFlags(),
		&cli.StringFlag{
			Name:  "dir",
			Value: ".",
			Usage: "directory to search for surface files",
		},
		&cli.StringFlag{
			Name:  "pattern",
			Value: "part_%d.json",
			Usage: "file name pattern with one %d verb",
		},
		&cli.IntFlag{
			Name:  "first",
			Usage: "first index of the series",
		},
	)
	return &cli.Command{
		Name:  "series",
		Usage: "convert a numbered series of surface files to one IGES file",
		Flags: flags,
		Action: func(c *cli.Context) error {
			names, err := spline.FindSeries(
				c.String("dir"), c.String("pattern"), c.Int("first"))
			if err != nil {
				return err
			}
			return convert(c.String("output"), options(c), names)
		},
	}
}

func convert(output string, opt *spline.ConvertOptions, names []string) error {
	for _, name := range names {
		log.Infow("reading surface file", "file", name)
	}
	if err := spline.ConvertFiles(output, opt, names...); err != nil {
		return err
	}
	log.Infow("wrote IGES file",
		"file", output,
		"surfaces", len(names),
		"product", opt.ProductID)
	return nil
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print a summary of one surface file",
		ArgsUsage: "surface.json",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return fmt.Errorf("need exactly one surface file")
			}
			name := c.Args().First()
			s, err := spline.ReadFile(name)
			if err != nil {
				return err
			}

			fmt.Println(name + ":")
			fmt.Printf("  degrees: pu=%d pv=%d\n", s.DegU, s.DegV)
			fmt.Printf("  knots: mu=%d mv=%d\n", len(s.U), len(s.V))
			fmt.Printf("  control net: %d x %d\n", s.NumV(), s.NumU())
			d := s.Domain()
			fmt.Printf("  domain: u in [%g, %g], v in [%g, %g]\n",
				d.LLx, d.URx, d.LLy, d.URy)
			ref := s.RefBounds()
			fmt.Printf("  reference bbox: %v .. %v\n", ref.Min, ref.Max)
			rw := s.RealBounds()
			fmt.Printf("  real-world bbox: %v .. %v (span %g m)\n",
				rw.Min, rw.Max, rw.MaxSpan())
			return nil
		},
	}
}
