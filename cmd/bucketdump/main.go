// Package main provides a command-line utility to inspect a bucket
// file's header and directory without going through the operation
// engine, for debugging a file whose on-disk state is in question.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/manhavn/blockbucket/internal/directory"
	"github.com/manhavn/blockbucket/internal/rafile"
)

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: bucketdump <file.bucket>")
		flag.PrintDefaults()
		return
	}

	f, err := rafile.Open(args[0], rafile.CreateIfMissing)
	if err != nil {
		log.Fatalf("Failed to open file: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Failed to close file: %v", err)
		}
	}()

	dirOffset, length := directory.ReadHeader(f)
	fmt.Printf("directory_offset: %d\n", dirOffset)
	fmt.Printf("directory_length: %d\n", length)

	body := directory.ReadBody(f, dirOffset, length)
	descs := directory.DecodeAll(body)
	fmt.Printf("descriptors: %d\n\n", len(descs))

	for i, d := range descs {
		key := make([]byte, d.SizeKey)
		if _, err := f.ReadAt(key, int64(d.Start)); err != nil {
			fmt.Printf("%4d: start=%d size_key=%d sum_key=%d sum_md5=%d size_data=%d key=<unreadable: %v>\n",
				i, d.Start, d.SizeKey, d.SumKey, d.SumMD5, d.SizeData, err)
			continue
		}
		fmt.Printf("%4d: start=%d size_key=%d sum_key=%d sum_md5=%d size_data=%d key=%q\n",
			i, d.Start, d.SizeKey, d.SumKey, d.SumMD5, d.SizeData, printable(key))
	}
}

func printable(b []byte) string {
	out := make([]byte, len(b))
	for i, c := range b {
		if c >= 32 && c <= 126 {
			out[i] = c
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
