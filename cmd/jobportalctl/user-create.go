package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/doodlesbykumbi/jobportal-in-go/pkg/db"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/identity"
	"github.com/doodlesbykumbi/jobportal-in-go/pkg/model"
	gormstore "github.com/doodlesbykumbi/jobportal-in-go/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a user account",
	Long: `Create a user account directly in the database.

This is useful for bootstrapping an environment where public signup is
disabled. The password is hashed before it is stored.

Example:
  jobportalctl user create --email admin@example.com --password secret \
    --role EMPLOYER --first-name Ada --last-name Lovelace`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := createUser(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().String("email", "", "Email address (required)")
	userCreateCmd.Flags().String("password", "", "Password (required)")
	userCreateCmd.Flags().String("role", identity.RoleJobSeeker.String(), "Role (JOB_SEEKER or EMPLOYER)")
	userCreateCmd.Flags().String("first-name", "", "First name")
	userCreateCmd.Flags().String("last-name", "", "Last name")
	_ = userCreateCmd.MarkFlagRequired("email")
	_ = userCreateCmd.MarkFlagRequired("password")
}

func createUser(cmd *cobra.Command) error {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	roleName, _ := cmd.Flags().GetString("role")
	firstName, _ := cmd.Flags().GetString("first-name")
	lastName, _ := cmd.Flags().GetString("last-name")

	role, err := identity.RoleString(roleName)
	if err != nil {
		return fmt.Errorf("unknown role %q, expected one of %v", roleName, identity.RoleStrings())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	database, err := db.Connect(db.Config{URL: os.Getenv("DATABASE_URL")})
	if err != nil {
		return err
	}

	user := &model.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  string(hash),
		Role:      role,
	}

	if err := gormstore.NewUsersStore(database).CreateUser(user); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created user '%s' with role %s\n", email, role)
	return nil
}
