// Command createadmin seeds an administrator account so the API has a first
// superadmin to log in with.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"

	"github.com/omashasarra/hasbani-backend/internal/config"
	"github.com/omashasarra/hasbani-backend/internal/models"
	"github.com/omashasarra/hasbani-backend/internal/repo"
	"github.com/omashasarra/hasbani-backend/internal/service"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	role := flag.String("role", string(models.RoleSuperadmin), "admin or superadmin")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("email and password are required")
	}

	cfg := config.Load()
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	svc := &service.AdminService{Repo: &repo.GormRepo{DB: db}}

	id, err := svc.CreateAdmin(context.Background(), *email, *password, models.Role(strings.ToLower(*role)))
	switch {
	case errors.Is(err, repo.ErrEmailTaken):
		log.Printf("admin %s already exists, nothing to do", *email)
	case errors.Is(err, service.ErrValidation):
		log.Fatalf("invalid role %q: must be admin or superadmin", *role)
	case err != nil:
		log.Fatalf("create admin: %v", err)
	default:
		log.Printf("created %s admin %s (id=%d)", *role, *email, id)
	}
}
