// Command seed creates the initial administrator account.
//
// Flags fall back to ADMIN_SEED_NAME, ADMIN_SEED_EMAIL and ADMIN_SEED_PASSWORD.
// When no password is given a random one is generated and printed once.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/aussiebroadwan/nexusadmin/internal/admin/app"
	"github.com/aussiebroadwan/nexusadmin/internal/admin/service"
	"github.com/aussiebroadwan/nexusadmin/pkg/cryptox"
	"github.com/aussiebroadwan/nexusadmin/pkg/slogx"
)

func main() {
	cfg := app.LoadConfig()

	name := flag.String("name", cfg.AdminSeedName, "admin display name")
	email := flag.String("email", cfg.AdminSeedEmail, "admin email address")
	password := flag.String("password", cfg.AdminSeedPassword, "admin password (generated when empty)")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "an email is required: pass -email or set ADMIN_SEED_EMAIL")
		os.Exit(2)
	}

	generated := false
	if *password == "" {
		p, err := cryptox.GeneratePassword()
		if err != nil {
			log.Fatalf("failed to generate password: %v", err)
		}
		*password = p
		generated = true
	}

	db, err := app.OpenStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	logger := slogx.New(slogx.Config{
		Service: "nexusadmin-seed",
		Version: app.BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  "text",
	})
	ctx := slogx.WithContext(context.Background(), logger)

	bootstrap := &service.BootstrapService{Store: db}
	u, created, err := bootstrap.SeedAdmin(ctx, *name, *email, *password)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	if !created {
		fmt.Printf("Admin already exists, nothing to do.\n  Email: %s\n", u.Email)
		return
	}

	fmt.Printf("Admin created.\n  ID:    %s\n  Email: %s\n  Role:  %s\n", u.ID, u.Email, u.Role)
	if generated {
		fmt.Printf("  Password: %s\n\nStore this password now, it is not shown again.\n", *password)
	}
}
