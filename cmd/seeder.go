package cmd

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with a demo tenant and users for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"recognitions", "company_values", "feedbacks", "worklogs", "users", "tenants"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		tenantID := seedTenant(db, "acme")

		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)

		adminID := seedUser(db, tenantID, "Alice", "Admin", "alice@acme.test", string(hash), "ADMIN", nil, 100)
		managerID := seedUser(db, tenantID, "Mark", "Manager", "mark@acme.test", string(hash), "MANAGER", nil, 80)
		seedUser(db, tenantID, "Eva", "Employee", "eva@acme.test", string(hash), "EMPLOYEE", &managerID, 50)

		values := []struct {
			Title string
			Desc  string
		}{
			{"Integrity", "Do the right thing even when nobody is watching"},
			{"Craft", "Sweat the details of everything we ship"},
			{"Candor", "Share feedback early and directly"},
		}
		for _, v := range values {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM company_values WHERE tenant_id = $1 AND title = $2", tenantID, v.Title).Scan(&exists); err == nil {
				continue
			}
			if _, err := db.Exec(
				"INSERT INTO company_values (tenant_id, title, description, created_at, updated_at) VALUES ($1, $2, $3, now(), now())",
				tenantID, v.Title, v.Desc); err != nil {
				log.Fatalf("failed to insert company value %s: %v", v.Title, err)
			}
			fmt.Printf("Seeded company value: %s\n", v.Title)
		}

		fmt.Printf("Seeded tenant %q with admin user id %d\n", "acme", adminID)
	},
}

func seedTenant(db *sqlx.DB, subdomain string) int64 {
	var id int64
	if err := db.QueryRow("SELECT id FROM tenants WHERE subdomain = $1", subdomain).Scan(&id); err == nil {
		fmt.Printf("Tenant %q already exists\n", subdomain)
		return id
	}

	if err := db.QueryRow(
		"INSERT INTO tenants (subdomain, enabled, created_at, updated_at) VALUES ($1, true, now(), now()) RETURNING id",
		subdomain).Scan(&id); err != nil {
		log.Fatalf("failed to insert tenant: %v", err)
	}
	fmt.Printf("Seeded tenant: %s\n", subdomain)
	return id
}

func seedUser(db *sqlx.DB, tenantID int64, firstName, lastName, email, passwordHash, role string, managerID *int64, hourlyRate float64) int64 {
	var id int64
	if err := db.QueryRow("SELECT id FROM users WHERE email = $1", email).Scan(&id); err == nil {
		fmt.Printf("User %s already exists\n", email)
		return id
	}

	if err := db.QueryRow(
		`INSERT INTO users (tenant_id, first_name, last_name, email, password_hash, role, status, manager_id, hourly_rate, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, 'ACTIVE', $7, $8, now(), now()) RETURNING id`,
		tenantID, firstName, lastName, email, passwordHash, role, managerID, hourlyRate).Scan(&id); err != nil {
		log.Fatalf("failed to insert user %s: %v", email, err)
	}
	fmt.Printf("Seeded user: %s (%s)\n", email, role)
	return id
}
