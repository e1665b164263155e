// Creates a demo login user for local testing.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio/dao/model"
	"portfolio/dao/query"
)

func main() {
	var username, password string

	rootCmd := &cobra.Command{
		Use:   "demo-user",
		Short: "Create a demo user for local testing",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := query.InitDB(); err != nil {
				return fmt.Errorf("connect to postgres: %w", err)
			}

			var existing model.User
			err := query.DB.Where("username = ?", username).First(&existing).Error
			if err == nil {
				fmt.Printf("user %q already exists\n", username)
				return nil
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user := model.User{Username: username, Password: string(hash)}
			if err := query.DB.Create(&user).Error; err != nil {
				return err
			}
			fmt.Printf("created demo user %q\n", username)
			return nil
		},
	}
	rootCmd.Flags().StringVar(&username, "username", "demo", "login name for the demo user")
	rootCmd.Flags().StringVar(&password, "password", "Demo123!", "password for the demo user")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
