package main

import (
	"fmt"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"driveconn/app/config"
	"driveconn/app/database"
)

var apiBaseURL string

type ResponseError struct {
	Message string `json:"message"`
}

var apiClient = func() *resty.Client {
	return resty.New().
		SetBaseURL(apiBaseURL).
		SetHeader("Accept", "application/json").
		SetError(&ResponseError{}).
		OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				return fmt.Errorf("%s", resp.Error().(*ResponseError).Message)
			}

			return nil
		})
}

var rootCmd = &cobra.Command{
	Use:   "driveconn",
	Short: "Driveconn admin CLI",
}

var roleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage roles",
}

// Roles are read-only for the service; they are maintained here, directly
// against the store.
var roleSeedCmd = &cobra.Command{
	Use:   "seed [name...]",
	Short: "Create roles if they do not exist",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}

		if err := db.AutoMigrate(&database.Role{}, &database.User{}); err != nil {
			return err
		}

		for _, name := range args {
			var role database.Role
			result := db.FirstOrCreate(&role, database.Role{Name: name})
			if result.Error != nil {
				return result.Error
			}
			fmt.Printf("role %q: %s\n", role.Name, role.ID)
		}

		return nil
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a new user through the API",
	RunE: func(cmd *cobra.Command, args []string) error {
		fullName, _ := cmd.Flags().GetString("full-name")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		roleName, _ := cmd.Flags().GetString("role")

		var result struct {
			AccessToken string `json:"accessToken"`
		}

		_, err := apiClient().R().
			SetBody(map[string]string{
				"fullName": fullName,
				"email":    email,
				"password": password,
				"roleName": roleName,
			}).
			SetResult(&result).
			Post("/register")
		if err != nil {
			return err
		}

		fmt.Println(result.AccessToken)
		return nil
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print an access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")

		var result struct {
			AccessToken string `json:"accessToken"`
		}

		_, err := apiClient().R().
			SetBody(map[string]string{"email": email, "password": password}).
			SetResult(&result).
			Post("/login")
		if err != nil {
			return err
		}

		fmt.Println(result.AccessToken)
		return nil
	},
}

var userForgotCmd = &cobra.Command{
	Use:   "forgot-password",
	Short: "Trigger an OTP reset challenge for an email",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")

		resp, err := apiClient().R().
			SetBody(map[string]string{"email": email}).
			Post("/forgotPassword")
		if err != nil {
			return err
		}

		fmt.Println(resp.String())
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiBaseURL, "api", "http://localhost:5000", "API base URL")

	userRegisterCmd.Flags().String("full-name", "", "Full name")
	userRegisterCmd.Flags().String("email", "", "Email address")
	userRegisterCmd.Flags().String("password", "", "Password")
	userRegisterCmd.Flags().String("role", "Customer", "Role name")
	userRegisterCmd.MarkFlagRequired("email")
	userRegisterCmd.MarkFlagRequired("password")

	userLoginCmd.Flags().String("email", "", "Email address")
	userLoginCmd.Flags().String("password", "", "Password")
	userLoginCmd.MarkFlagRequired("email")
	userLoginCmd.MarkFlagRequired("password")

	userForgotCmd.Flags().String("email", "", "Email address")
	userForgotCmd.MarkFlagRequired("email")

	roleCmd.AddCommand(roleSeedCmd)
	userCmd.AddCommand(userRegisterCmd, userLoginCmd, userForgotCmd)
	rootCmd.AddCommand(roleCmd, userCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
