package main

import (
	"flag"
	"fmt"

	"github.com/xw1nchester/stylequiz-backend/internal/auth/password"
	"go.uber.org/zap"
)

// Generates the bcrypt hash expected in the admin password_hash config field.
func main() {
	var pass string

	flag.StringVar(&pass, "password", "", "admin password to hash")
	flag.Parse()

	if pass == "" {
		panic("password is empty")
	}

	log, _ := zap.NewDevelopment()

	hash, err := password.New(log).GenerateHashFromPassword([]byte(pass))
	if err != nil {
		panic(err)
	}

	fmt.Println(string(hash))
}
