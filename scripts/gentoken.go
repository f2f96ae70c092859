package main

import (
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generates a bearer token for the API when API_JWT_SECRET is set.
// Usage: API_JWT_SECRET=... go run scripts/gentoken.go
func main() {
	secret := os.Getenv("API_JWT_SECRET")
	if secret == "" {
		fmt.Println("API_JWT_SECRET is not set")
		os.Exit(1)
	}

	claims := jwt.MapClaims{
		"sub": "linkgen-user",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(30 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}

	fmt.Println(signed)
}
