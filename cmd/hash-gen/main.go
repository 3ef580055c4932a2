// Command hash-gen prints a bcrypt hash suitable for ADMIN_PASSWORD_HASH.
//
//	hash-gen <password>
//	echo -n <password> | hash-gen
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"interact-club.backend/pkg/crypto"
)

var (
	printfFn       = fmt.Printf
	generateHashFn = crypto.HashPassword
	fatalfFn       = log.Fatalf
)

var stdin io.Reader = os.Stdin

func resolvePassword(args []string, in io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("usage: hash-gen <password> (or pipe the password on stdin)")
	}
	return password, nil
}

func main() {
	password, err := resolvePassword(os.Args[1:], stdin)
	if err != nil {
		fatalfFn("%v", err)
		return
	}

	hash, err := generateHashFn(password)
	if err != nil {
		fatalfFn("Failed to hash password: %v", err)
		return
	}

	printfFn("ADMIN_PASSWORD_HASH=%s\n", hash)
}
