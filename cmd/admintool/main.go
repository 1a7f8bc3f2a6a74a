// admintool seeds or updates an admin account with a bcrypt-hashed password
// and can install the landing hero image.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"ngoportal/internal/adapter/repo"
	"ngoportal/internal/sqlinline"
)

func main() {
	_ = godotenv.Load()

	username := flag.String("username", "admin", "admin username")
	email := flag.String("email", "", "admin contact email")
	heroPath := flag.String("hero-image", "", "path to an image file to install as the landing hero")
	flag.Parse()

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" && *heroPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: set ADMIN_PASSWORD to seed an admin, or pass -hero-image")
		os.Exit(1)
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "hash password: %v\n", err)
			os.Exit(1)
		}

		// The marker line on the constant is a plain SQL comment, so it can
		// run on a raw connection without the logging runner.
		_, err = conn.Exec(ctx, sqlinline.QUpsertAdminUser, *username, string(hash), *email)
		if err != nil {
			fmt.Fprintf(os.Stderr, "upsert admin: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("admin user %q ready\n", *username)
	}

	if *heroPath != "" {
		img, err := os.ReadFile(*heroPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read hero image: %v\n", err)
			os.Exit(1)
		}
		if err := repo.NewSettingsRepository(conn).SetHeroImage(ctx, img); err != nil {
			fmt.Fprintf(os.Stderr, "set hero image: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("hero image installed (%d bytes)\n", len(img))
	}
}
