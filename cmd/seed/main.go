package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"user-admin-service/config"
	"user-admin-service/internal/domain/entity"
	"user-admin-service/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Ensure base roles exist
	roles := map[string]string{
		entity.RoleSystemAdmin: "Full system administration",
		entity.RoleUserAdmin:   "User account administration",
		entity.RoleEmployee:    "Regular employee",
	}
	roleIDs := make(map[string]int64, len(roles))
	for name, desc := range roles {
		var id int64
		err := db.QueryRow(`
			INSERT INTO roles (role_name, description) VALUES ($1, $2)
			ON CONFLICT (role_name) DO UPDATE SET description = EXCLUDED.description
			RETURNING role_id
		`, name, desc).Scan(&id)
		if err != nil {
			log.Fatalf("failed to upsert role %s: %v", name, err)
		}
		roleIDs[name] = id
	}
	fmt.Printf("roles ensured: %v\n", roleIDs)

	// Bootstrap admin account
	username := "testadmin"
	email := "admin@example.com"
	password := "changeme123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (username, email, password, created_by, updated_by)
		VALUES ($1, $2, $3, 0, 0)
		ON CONFLICT (email) DO UPDATE SET username = EXCLUDED.username
		RETURNING user_id
	`, username, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}
	fmt.Printf("seeded admin: id=%d username=%s email=%s password=%s\n", userID, username, email, password)

	if _, err := db.Exec(`
		INSERT INTO user_roles (user_id, role_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, role_id) DO NOTHING
	`, userID, roleIDs[entity.RoleSystemAdmin]); err != nil {
		log.Fatalf("failed to assign admin role: %v", err)
	}
	fmt.Println("assigned SYSTEM_ADMIN role to seeded admin")
}
