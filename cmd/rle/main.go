package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli/v2"

	"github.com/owez/rle"
)

func main() {
	app := cli.App{
		Usage: "Compress and decompress files with EOT run-length encoding",
		Commands: []*cli.Command{
			{
				Name:      "pack",
				Usage:     "Compress each FILE to FILE.rle and print its xxhash64 digest",
				Action:    packFiles,
				ArgsUsage: "FILE...",
			},
			{
				Name:      "unpack",
				Usage:     "Decompress each FILE, stripping a .rle suffix from the output name",
				Action:    unpackFiles,
				ArgsUsage: "FILE...",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "sum",
						Usage: "expected xxhash64 digest of the decoded output, as printed by pack",
					},
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

func packFiles(context *cli.Context) error {
	var allErrors *multierror.Error
	for _, path := range context.Args().Slice() {
		if err := packOneFile(path); err != nil {
			allErrors = multierror.Append(allErrors, fmt.Errorf("%s: %w", path, err))
		}
	}
	return allErrors.ErrorOrNil()
}

func packOneFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	packed := rle.Compress(data)
	if err := os.WriteFile(path+".rle", packed, 0o644); err != nil {
		return err
	}

	fmt.Printf(
		"%s: %d -> %d bytes, xxh64 %016x\n",
		path, len(data), len(packed), xxhash.Sum64(data),
	)
	return nil
}

func unpackFiles(context *cli.Context) error {
	expectedSum := context.String("sum")

	var allErrors *multierror.Error
	for _, path := range context.Args().Slice() {
		if err := unpackOneFile(path, expectedSum); err != nil {
			allErrors = multierror.Append(allErrors, fmt.Errorf("%s: %w", path, err))
		}
	}
	return allErrors.ErrorOrNil()
}

func unpackOneFile(path string, expectedSum string) error {
	packed, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	data, err := rle.Decompress(packed)
	if err != nil {
		return err
	}

	if expectedSum != "" {
		want, err := strconv.ParseUint(expectedSum, 16, 64)
		if err != nil {
			return fmt.Errorf("invalid --sum value %q: %w", expectedSum, err)
		}
		if got := xxhash.Sum64(data); got != want {
			return fmt.Errorf("digest mismatch: expected %016x, got %016x", want, got)
		}
	}

	return os.WriteFile(unpackedPath(path), data, 0o644)
}

// unpackedPath picks the output name for a decompressed file. pack always
// appends ".rle", so strip that when present; otherwise don't guess,
// just tack on ".out" rather than overwrite the input.
func unpackedPath(path string) string {
	if strings.HasSuffix(path, ".rle") {
		return strings.TrimSuffix(path, ".rle")
	}
	return path + ".out"
}
