package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log"
)

// Prints a random value suitable for JWT_SECRET.
func main() {
	buf := make([]byte, 48)
	if _, err := rand.Read(buf); err != nil {
		log.Fatal("Error generating secret:", err)
	}

	fmt.Printf("JWT_SECRET=%s\n", base64.RawURLEncoding.EncodeToString(buf))
}
