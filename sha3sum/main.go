package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/bwesterb/go-sha3"

	"github.com/edsrzf/mmap-go"
	"github.com/hashicorp/go-multierror"
	"github.com/urfave/cli"
)

func cmdAlgs(c *cli.Context) error {
	for _, name := range sha3.ListNames() {
		fmt.Printf("%s\n", name)
	}

	return nil
}

func cmdSelfTest(c *cli.Context) error {
	if err := sha3.SelfTest(); err != nil {
		return err
	}
	fmt.Println("selftest passed")
	return nil
}

// hashFile prints the digest of the named file under params.  The file is
// mapped into memory and hashed in one call; "-" reads standard input.
func hashFile(params *sha3.Params, path string) error {
	if path == "-" {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("stdin: %v", err)
		}
		fmt.Printf("%x  -\n", params.Sum(data))
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	if fi.Size() == 0 {
		// mmap of an empty file fails; the empty digest is well defined.
		fmt.Printf("%x  %s\n", params.Sum(nil), path)
		return nil
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return fmt.Errorf("%s: mmap: %v", path, err)
	}
	defer data.Unmap()

	fmt.Printf("%x  %s\n", params.Sum(data), path)
	return nil
}

func cmdSum(c *cli.Context) error {
	name := c.GlobalString("algorithm")
	params := sha3.ParamsFromName(name)
	if params == nil {
		return fmt.Errorf("unknown algorithm %q; see the algs command", name)
	}

	args := c.Args()
	if len(args) == 0 {
		args = []string{"-"}
	}

	var result *multierror.Error
	for _, path := range args {
		if err := hashFile(params, path); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func main() {
	app := cli.NewApp()
	app.Name = "sha3sum"
	app.Usage = "Print SHA-3 digests of files (or standard input)"
	app.ArgsUsage = "[files...]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "algorithm, a",
			Value: "SHA3-256",
			Usage: "SHA-3 instance to use",
		},
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: "Log library internals",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("verbose") {
			sha3.EnableLogging()
		}
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:   "algs",
			Usage:  "List SHA-3 instances",
			Action: cmdAlgs,
		},
		{
			Name:   "selftest",
			Usage:  "Check the implementation against known-answer vectors",
			Action: cmdSelfTest,
		},
	}
	app.Action = cmdSum

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "sha3sum: %v\n", err)
		os.Exit(1)
	}
}
