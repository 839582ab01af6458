// Package main implements combine, a command-line tool that multiplexes
// several snapshot files into one SandwichDB-structured destination
// snapshot: each source becomes a named part of the destination, so a
// single file can later be reopened and the sources addressed separately
// by name.
//
// Example usage:
//
//	combine dest.gob alpha.gob beta.gob
//	combine -s.snapshot dest.gob alpha beta   # opens alpha.snapshot, beta.snapshot
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/ony/leveldb-tl/internal/memdb"
	"github.com/ony/leveldb-tl/internal/sandwich"
	"github.com/ony/leveldb-tl/internal/sequence"
	"github.com/ony/leveldb-tl/internal/snapshot"
)

// exitArgError and exitIOError match the original combine tool's exit code
// convention: 0 success, 1 argument errors, 2 I/O errors.
const (
	exitOK = iota
	exitArgError
	exitIOError
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: combine [options...] <DEST> <PART...>")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "    -s<SUFFIX>  Append <SUFFIX> to each part path when opening it")
}

// parseArgs replicates the original's hand-rolled argv loop: flag.Parse
// can't express "-s<SUFFIX>" as one concatenated token, so flags and
// positional arguments are recognized by hand exactly as combine's C++
// ancestor did.
func parseArgs(args []string) (dest string, parts []string, suffix string, err error) {
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "-s"):
			suffix = arg[2:]
		case strings.HasPrefix(arg, "-"):
			return "", nil, "", fmt.Errorf("wrong argument %s", arg)
		case dest == "":
			dest = arg
		default:
			parts = append(parts, arg)
		}
	}
	if dest == "" {
		return "", nil, "", fmt.Errorf("at least destination database should be provided")
	}
	return dest, parts, suffix, nil
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	dest, parts, suffix, err := parseArgs(args)
	if err != nil {
		log.Println(err)
		usage()
		return exitArgError
	}

	if snapshot.Exists(dest) {
		log.Printf("Failed to open destination database %s: already exists", dest)
		return exitIOError
	}

	destDB := memdb.New()
	sw := sandwich.New[uint16](destDB, 2, sequence.DefaultPageSize)

	for _, part := range parts {
		log.Printf("Processing part %s", part)

		srcDB, err := snapshot.Load(part + suffix)
		if err != nil {
			log.Printf("Failed to open source database %s: %v", part+suffix, err)
			return exitIOError
		}

		dst, err := sw.UseName([]byte(part))
		if err != nil {
			log.Printf("Failed to allocate part %s: %v", part, err)
			return exitIOError
		}

		cur := srcDB.NewCursor()
		for cur.SeekToFirst(); cur.Valid(); cur.Next() {
			if err := dst.Put(cur.Key(), cur.Value()); err != nil {
				log.Printf("Failed to copy key from %s: %v", part, err)
				return exitIOError
			}
		}
	}

	if err := sw.Sync(); err != nil {
		log.Printf("Failed to sync destination database %s: %v", dest, err)
		return exitIOError
	}
	if err := snapshot.Save(dest, destDB); err != nil {
		log.Printf("Failed to write destination database %s: %v", dest, err)
		return exitIOError
	}

	log.Println("Done")
	return exitOK
}
