// Command snapfest-token issues a signed session token for local
// development and testing against the dashboard API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/snapfest/snapfest/internal/session"
)

func main() {
	_ = godotenv.Load()

	email := flag.String("email", "", "user identifier (required)")
	name := flag.String("name", "", "profile name claim")
	mobile := flag.String("mobile", "", "profile mobile claim")
	key := flag.String("key", os.Getenv("JWT_KEY"), "HS256 signing key (defaults to JWT_KEY)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *email == "" || *key == "" {
		fmt.Fprintln(os.Stderr, "usage: snapfest-token -email user@example.com [-key ...]")
		os.Exit(2)
	}

	tok, err := session.IssueToken([]byte(*key), session.Session{
		Identifier: *email,
		Name:       *name,
		Mobile:     *mobile,
	}, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, "issue token:", err)
		os.Exit(1)
	}
	fmt.Println(tok)
}
