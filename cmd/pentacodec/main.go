// Command pentacodec is a small line-oriented smoke tool for the
// PentaCodec symbol codec: with -decode it reads hex ciphers on stdin and
// prints the decoded symbol; by default it reads symbols and prints their
// cipher (in hex) or, when a symbol isn't cipherable, its wire bytes.
package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dxfeed/pentacodec"
	"github.com/dxfeed/pentacodec/bufsrc"
)

func main() {
	decode := flag.Bool("decode", false, "treat stdin lines as hex ciphers to decode")
	flag.Parse()

	scanner := bufio.NewScanner(os.Stdin)
	var exitCode int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if *decode {
			if err := decodeLine(line); err != nil {
				fmt.Fprintf(os.Stderr, "pentacodec: %v\n", err)
				exitCode = 1
			}
			continue
		}
		if err := encodeLine(line); err != nil {
			fmt.Fprintf(os.Stderr, "pentacodec: %v\n", err)
			exitCode = 1
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "pentacodec: reading stdin: %v\n", err)
		exitCode = 1
	}
	os.Exit(exitCode)
}

func decodeLine(hexCipher string) error {
	v, err := strconv.ParseUint(hexCipher, 16, 32)
	if err != nil {
		return fmt.Errorf("parsing %q as hex cipher: %w", hexCipher, err)
	}
	s, err := pentacodec.DecodeCipher(uint32(v))
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func encodeLine(symbol string) error {
	if cipher := pentacodec.Encode(&symbol); cipher != 0 {
		fmt.Printf("%08x\n", cipher)
		return nil
	}
	var buf bytes.Buffer
	sink := bufsrc.NewSink(&buf)
	if err := pentacodec.WriteSymbol(sink, &symbol); err != nil {
		return err
	}
	if err := sink.Flush(); err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(buf.Bytes()))
	return nil
}
