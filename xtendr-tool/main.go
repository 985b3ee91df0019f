// xtendr-tool gets, sets, lists and removes extended attributes from the
// command line.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rfjakob/xtendr"
	"github.com/rfjakob/xtendr/internal/exitcodes"
	"github.com/rfjakob/xtendr/internal/tlog"
)

const myName = "xtendr-tool"

func main() {
	args, err := parseCliOpts(os.Args)
	if err != nil {
		tlog.Fatal.Println(err)
		exitcodes.Exit(err)
	}
	if args.version {
		printVersion()
		os.Exit(0)
	}
	tlog.Debug.Enabled = args.debug
	if args.quiet {
		tlog.Info.Enabled = false
	}
	tlog.Debug.Printf("cli args: %#v", args)
	err = run(&args, os.Stdout)
	if err != nil {
		tlog.Fatal.Println(err)
		exitcodes.Exit(err)
	}
}

// run executes the subcommand in "args" and writes its output to "w".
func run(args *argContainer, w io.Writer) error {
	p := xtendr.Path(args.path)
	flags := args.flags()
	switch args.cmd {
	case "get":
		return doGet(args, p, w)
	case "set":
		return xtendr.Set(p, args.name, []byte(args.value), flags)
	case "list":
		names, err := xtendr.List(p, flags)
		if err != nil {
			return err
		}
		if args.json {
			if names == nil {
				names = []string{}
			}
			fmt.Fprintln(w, tlog.JSONDump(names))
			return nil
		}
		for _, n := range names {
			fmt.Fprintln(w, n)
		}
		return nil
	case "dump":
		return doDump(args, w)
	case "rm":
		return xtendr.Remove(p, args.name, flags)
	case "rmall":
		n := 0
		err := walk(args, func(path string) error {
			tlog.Debug.Printf("rmall %q", path)
			n++
			return xtendr.RemoveAll(xtendr.Path(path), flags)
		})
		if err == nil && args.recursive {
			tlog.Info.Printf("Removed all attributes from %d paths", n)
		}
		return err
	}
	return exitcodes.NewErr("unknown command "+args.cmd, exitcodes.Usage)
}

func doGet(args *argContainer, p xtendr.Path, w io.Writer) error {
	var val []byte
	var err error
	if args.hasDefault() {
		val, err = xtendr.GetOrDefault(p, args.name, []byte(args.def), args.flags())
	} else {
		val, err = xtendr.Get(p, args.name, args.flags())
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(w, formatValue(val, args.hex))
	return nil
}

// dumpEntry is one line of "dump" output.
type dumpEntry struct {
	Path  string
	Name  string
	Value string
}

func doDump(args *argContainer, w io.Writer) error {
	var entries []dumpEntry
	err := walk(args, func(path string) error {
		attrs, err := xtendr.Dump(xtendr.Path(path), args.flags())
		if err != nil {
			return err
		}
		for _, a := range attrs {
			e := dumpEntry{Path: path, Name: a.Name, Value: formatValue(a.Value, args.hex)}
			if args.json {
				entries = append(entries, e)
			} else {
				fmt.Fprintf(w, "%s: %s=%q\n", e.Path, e.Name, e.Value)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	if args.json {
		if entries == nil {
			entries = []dumpEntry{}
		}
		fmt.Fprintln(w, tlog.JSONDump(entries))
	}
	return nil
}

func formatValue(val []byte, asHex bool) string {
	if asHex {
		return hex.EncodeToString(val)
	}
	return string(val)
}

// walk calls "fn" for args.path, and with "-r", for everything below it
// that is not excluded. Symlinks below the root are only visited with
// "-nofollow", they may point anywhere.
func walk(args *argContainer, fn func(path string) error) error {
	if !args.recursive {
		return fn(args.path)
	}
	excluder, err := prepareExcluder(args)
	if err != nil {
		return err
	}
	return filepath.WalkDir(args.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(args.path, path)
		if err != nil {
			return err
		}
		if isExcluded(excluder, filepath.ToSlash(rel)) {
			tlog.Debug.Printf("walk: excluding %q", rel)
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if rel != "." && d.Type()&fs.ModeSymlink != 0 && !args.nofollow {
			return nil
		}
		return fn(path)
	})
}
