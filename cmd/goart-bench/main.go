// Command goart-bench builds an Adaptive Radix Tree from newline-delimited
// keys and reports basic timing and traversal output for it. It is a thin
// driver over the art package, not a library in its own right.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	art "github.com/blackwithwhite666/goart"
)

func main() {
	file := flag.String("file", "", "read keys from this file instead of stdin")
	prefix := flag.String("prefix", "", "after the timed passes, print only keys with this prefix")
	dump := flag.Bool("dump", false, "print every key after building the tree")
	flag.Parse()

	log.SetFlags(log.Lmicroseconds)

	keys, err := readKeys(*file)
	if err != nil {
		log.Fatalf("goart-bench: %v", err)
	}

	t := art.NewTree[int]()

	ts := time.Now()
	for i, key := range keys {
		if _, _, err := t.Insert(key, i); err != nil {
			log.Fatalf("goart-bench: insert %q: %v", key, err)
		}
	}
	insertElapsed := time.Since(ts)

	ts = time.Now()
	for _, key := range keys {
		if _, err := t.Search(key); err != nil {
			log.Fatalf("goart-bench: search %q: %v", key, err)
		}
	}
	searchElapsed := time.Since(ts)

	log.Printf("inserted %d keys in %v", t.Len(), insertElapsed)
	log.Printf("searched %d keys in %v", len(keys), searchElapsed)

	if minKey, _, err := t.Minimum(); err == nil {
		log.Printf("minimum: %q", minKey)
	}

	if maxKey, _, err := t.Maximum(); err == nil {
		log.Printf("maximum: %q", maxKey)
	}

	ts = time.Now()
	deleted := 0
	for _, key := range keys {
		if _, err := t.Delete(key); err == nil {
			deleted++
		}
	}
	log.Printf("deleted %d keys in %v", deleted, time.Since(ts))

	if *dump || *prefix != "" {
		t2 := art.NewTree[int]()
		for i, key := range keys {
			_, _, _ = t2.Insert(key, i)
		}

		visit := func(key []byte, value int) error {
			fmt.Printf("%s\t%d\n", key, value)

			return nil
		}

		if *prefix != "" {
			if err := t2.VisitPrefix([]byte(*prefix), visit); err != nil {
				log.Fatalf("goart-bench: visit prefix: %v", err)
			}
		} else {
			if err := t2.Visit(visit); err != nil {
				log.Fatalf("goart-bench: visit: %v", err)
			}
		}
	}
}

func readKeys(path string) ([][]byte, error) {
	r := os.Stdin

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()

		r = f
	}

	var keys [][]byte

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		key := make([]byte, len(line))
		copy(key, line)
		keys = append(keys, key)
	}

	if err := scanner.Err(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("read keys: %w", err)
	}

	return keys, nil
}
