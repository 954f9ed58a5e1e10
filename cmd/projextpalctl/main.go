// projextpalctl is a small operator CLI for administrative tasks that
// are awkward to do by hand against the HTTP API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	serverURL string
	authToken string
)

func main() {
	root := &cobra.Command{
		Use:   "projextpalctl",
		Short: "Administrative CLI for the ProjeXtPal backend",
	}
	root.PersistentFlags().StringVar(&serverURL, "server", envOr("PROJEXTPAL_SERVER", "http://localhost:7010"), "Base URL of the backend")
	root.PersistentFlags().StringVar(&authToken, "token", os.Getenv("PROJEXTPAL_TOKEN"), "Admin JWT (defaults to PROJEXTPAL_TOKEN)")

	root.AddCommand(linkUserCompanyCmd())
	root.AddCommand(sendNotificationCmd())
	root.AddCommand(recalculateAnalyticsCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func linkUserCompanyCmd() *cobra.Command {
	var email, company string
	cmd := &cobra.Command{
		Use:   "link-user-company",
		Short: "Attach a user to a company, creating the company if needed",
		RunE: func(cmd *cobra.Command, args []string) error {
			return post("/api/v1/users/link-company", map[string]string{
				"email":        email,
				"company_name": company,
			})
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "User email")
	cmd.Flags().StringVar(&company, "company", "", "Company name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("company")
	return cmd
}

func sendNotificationCmd() *cobra.Command {
	var companyID, title, message string
	cmd := &cobra.Command{
		Use:   "send-notification",
		Short: "Broadcast a notification to connected clients",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]interface{}{
				"title":   title,
				"message": message,
			}
			if companyID != "" {
				body["company_id"] = companyID
			}
			return post("/api/v1/notifications/broadcast", body)
		},
	}
	cmd.Flags().StringVar(&companyID, "company-id", "", "Target company UUID (super admin only; empty broadcasts everywhere)")
	cmd.Flags().StringVar(&title, "title", "", "Notification title")
	cmd.Flags().StringVar(&message, "message", "", "Notification message")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("message")
	return cmd
}

func recalculateAnalyticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recalculate-analytics",
		Short: "Recompute the analytics summary and refresh its cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			return post("/api/v1/analytics/summary/recalculate", nil)
		},
	}
}

func post(path string, body interface{}) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}

	req, err := http.NewRequest(http.MethodPost, serverURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s: %s", resp.Status, bytes.TrimSpace(payload))
	}
	fmt.Println(string(bytes.TrimSpace(payload)))
	return nil
}
