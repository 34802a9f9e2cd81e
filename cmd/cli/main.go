package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/iho/nexusbank/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration

	bcryptGenerate = bcrypt.GenerateFromPassword
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "nexusbank-cli",
		Short:         "NexusBank CLI tool",
		Long:          `A command line interface for interacting with the NexusBank API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the NexusBank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		userCmd(),
		accountCmd(),
		moveCmd("deposit", "Deposit money into an account"),
		moveCmd("withdraw", "Withdraw money from an account"),
		transferCmd(),
		hashPasswordCmd(),
		migrateCmd(),
	)

	return rootCmd
}

// apiError is returned for non-2xx API responses.
type apiError struct {
	Status  int
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *apiError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s (status %d)", e.Code, e.Status)
}

type requestOptions struct {
	body           any
	idempotencyKey string
}

func call(ctx context.Context, method, path string, opts requestOptions) (json.RawMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if opts.body != nil {
		payload, err := json.Marshal(opts.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(baseURL, "/")+path, body)
	if err != nil {
		return nil, err
	}
	if opts.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if opts.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", opts.idempotencyKey)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &apiError{Status: resp.StatusCode}
		if err := json.Unmarshal(raw, apiErr); err != nil || apiErr.Code == "" {
			apiErr.Code = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}

	return raw, nil
}

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User operations",
	}

	var name, email, password string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := call(cmd.Context(), http.MethodPost, "/api/v1/users", requestOptions{
				body: map[string]string{"name": name, "email": email, "password": password},
			})
			if err != nil {
				return err
			}
			printJSON(raw)
			return nil
		},
	}
	createCmd.Flags().StringVar(&name, "name", "", "Full name")
	createCmd.Flags().StringVar(&email, "email", "", "Email address")
	createCmd.Flags().StringVar(&password, "password", "", "Password")
	for _, f := range []string{"name", "email", "password"} {
		_ = createCmd.MarkFlagRequired(f)
	}

	getCmd := &cobra.Command{
		Use:   "get USER_ID",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(cmd, "/api/v1/users/"+args[0])
		},
	}

	cmd.AddCommand(createCmd, getCmd)
	return cmd
}

func accountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}

	var userID, initialDeposit string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Open an account for a user",
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"userId": userID}
			if initialDeposit != "" {
				amount, err := parseAmount(initialDeposit)
				if err != nil {
					return err
				}
				body["initialDeposit"] = amount
			}
			raw, err := call(cmd.Context(), http.MethodPost, "/api/v1/accounts", requestOptions{body: body})
			if err != nil {
				return err
			}
			printJSON(raw)
			return nil
		},
	}
	createCmd.Flags().StringVar(&userID, "user", "", "Owner user ID")
	createCmd.Flags().StringVar(&initialDeposit, "initial-deposit", "", "Opening balance")
	_ = createCmd.MarkFlagRequired("user")

	getCmd := &cobra.Command{
		Use:   "get ACCOUNT_ID",
		Short: "Show an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return getAndPrint(cmd, "/api/v1/accounts/"+args[0])
		},
	}

	listCmd := &cobra.Command{
		Use:   "list USER_ID",
		Short: "List a user's accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := call(cmd.Context(), http.MethodGet, "/api/v1/accounts/user/"+args[0], requestOptions{})
			if err != nil {
				return err
			}
			return printAccounts(raw)
		},
	}

	var limit, offset int
	transactionsCmd := &cobra.Command{
		Use:   "transactions ACCOUNT_ID",
		Short: "List transactions originated by an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/accounts/%s/transactions?limit=%d&offset=%d", args[0], limit, offset)
			return getAndPrint(cmd, path)
		},
	}
	transactionsCmd.Flags().IntVar(&limit, "limit", 20, "Page size")
	transactionsCmd.Flags().IntVar(&offset, "offset", 0, "Page offset")

	cmd.AddCommand(createCmd, getCmd, listCmd, transactionsCmd,
		statusCmd("activate", "Activate an account"),
		statusCmd("deactivate", "Deactivate an account"),
	)
	return cmd
}

func statusCmd(action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   action + " ACCOUNT_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := call(cmd.Context(), http.MethodPost, "/api/v1/accounts/"+args[0]+"/"+action, requestOptions{})
			if err != nil {
				return err
			}
			printJSON(raw)
			return nil
		},
	}
}

func moveCmd(action, short string) *cobra.Command {
	var idempotencyKey string
	cmd := &cobra.Command{
		Use:   action + " ACCOUNT_ID AMOUNT",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[1])
			if err != nil {
				return err
			}
			raw, err := call(cmd.Context(), http.MethodPost, "/api/v1/transactions/accounts/"+args[0]+"/"+action, requestOptions{
				body:           map[string]any{"amount": amount},
				idempotencyKey: idempotencyKey,
			})
			if err != nil {
				return err
			}
			printJSON(raw)
			return nil
		},
	}
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency-Key header value")
	return cmd
}

func transferCmd() *cobra.Command {
	var idempotencyKey string
	cmd := &cobra.Command{
		Use:   "transfer SOURCE_ACCOUNT_ID TARGET_ACCOUNT_ID AMOUNT",
		Short: "Transfer money between accounts",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[2])
			if err != nil {
				return err
			}
			raw, err := call(cmd.Context(), http.MethodPost, "/api/v1/transactions/accounts/"+args[0]+"/transfer", requestOptions{
				body:           map[string]any{"targetAccountId": args[1], "amount": amount},
				idempotencyKey: idempotencyKey,
			})
			if err != nil {
				return err
			}
			printJSON(raw)
			return nil
		},
	}
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency-Key header value")
	return cmd
}

func hashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password PASSWORD",
		Short: "Print a bcrypt hash of PASSWORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcryptGenerate([]byte(args[0]), cost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			fmt.Println(string(hash))
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL string
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema migrations",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if databaseURL == "" {
				databaseURL = os.Getenv("DATABASE_URL")
			}
			if databaseURL == "" {
				return errors.New("--database-url or DATABASE_URL is required")
			}
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (defaults to $DATABASE_URL)")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrations(databaseURL)
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.RunMigrationsDown(databaseURL, steps)
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "Number of migrations to roll back")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the current schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			version, dirty, err := postgres.MigrationVersion(databaseURL)
			if err != nil {
				return err
			}
			fmt.Printf("Version: %d\nDirty: %v\n", version, dirty)
			return nil
		},
	}

	cmd.AddCommand(upCmd, downCmd, versionCmd)
	return cmd
}

func getAndPrint(cmd *cobra.Command, path string) error {
	raw, err := call(cmd.Context(), http.MethodGet, path, requestOptions{})
	if err != nil {
		return err
	}
	printJSON(raw)
	return nil
}

func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be positive, got %s", s)
	}
	return amount, nil
}

type accountRow struct {
	ID      string `json:"id"`
	Active  bool   `json:"active"`
	Balance struct {
		Amount   string `json:"amount"`
		Currency string `json:"currency"`
	} `json:"balance"`
}

func printAccounts(raw json.RawMessage) error {
	var accounts []accountRow
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tBALANCE\tCURRENCY\tACTIVE")
	for _, a := range accounts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", truncate(a.ID, 26), a.Balance.Amount, a.Balance.Currency, a.Active)
	}
	return w.Flush()
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("%v\n", v)
		return
	}
	fmt.Println(string(out))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
