// Command adduser provisions an operator account for the dashboard.
// Accounts are created from the command line only; the HTTP surface has no
// registration endpoint.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"orderboard/internal/adapters/out/postgres/userrepo"
	"orderboard/internal/core/application/usecases/commands"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	username := flag.String("username", "", "login name for the new account")
	password := flag.String("password", "", "password for the new account")
	flag.Parse()

	cmd, err := commands.NewRegisterUserCommand(*username, *password)
	if err != nil {
		flag.Usage()
		log.Fatalf("Invalid account data: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.Open(dsnFromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	handler := commands.NewRegisterUserCommandHandler(userrepo.NewGormUserRepository(gormDB))
	if err := handler.Handle(context.Background(), cmd); err != nil {
		log.Fatalf("Failed to register user: %v", err)
	}

	log.Infof("User %q registered", *username)
}

func dsnFromEnv() string {
	if err := godotenv.Load(".env"); err != nil {
		log.Fatalf("Error loading .env file")
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_SSLMODE"),
	)
}
