package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
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
			for _, table := range []string{"approvals", "timesheet_entries", "projects", "employees"} {
				if _, err := db.Exec("DELETE FROM " + table); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		seedEmployees := []struct {
			EmpID      string
			FullName   string
			Email      string
			Department string
			Role       string
		}{
			{"EMP001", "Root Admin", "admin@mail.com", "Digital Technology", "admin"},
			{"EMP002", "Asha Nair", "asha@mail.com", "Digital Technology", "employee"},
			{"EMP003", "Binod Rao", "binod@mail.com", "Predictive Engineering", "employee"},
		}

		for _, e := range seedEmployees {
			var exists int
			err := db.QueryRow(db.Rebind("SELECT 1 FROM employees WHERE email = ?"), e.Email).Scan(&exists)
			if err == nil {
				fmt.Println("employee already exists:", e.Email)
				continue
			}

			_, err = db.Exec(db.Rebind(`INSERT INTO employees
				(emp_id, full_name, email, department, role, password_hash, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, now(), now())`),
				e.EmpID, e.FullName, e.Email, e.Department, e.Role, string(hash))
			if err != nil {
				log.Fatalf("failed to insert employee %s: %v", e.Email, err)
			}
			fmt.Println("Seeded employee:", e.Email)
		}

		var projectExists int
		err = db.QueryRow(db.Rebind("SELECT 1 FROM projects WHERE project_name = ?"), "Apollo").Scan(&projectExists)
		if err != nil {
			_, err = db.Exec(db.Rebind(`INSERT INTO projects
				(project_name, client_name, project_type, description, departments, status, assigned_member_ids, phases, created_at, updated_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, now(), now())`),
				"Apollo", "Acme Corp", "billable", "Sample project",
				`["Digital Technology"]`, "ongoing", `[2,3]`,
				`[{"phaseName":"Development","tasks":[{"taskName":"Backend","assignedTo":2}]}]`)
			if err != nil {
				log.Fatalf("failed to insert sample project: %v", err)
			}
			fmt.Println("Seeded project: Apollo")
		}

		fmt.Println("Seeding complete. Default password:", password)
	},
}
