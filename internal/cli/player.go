package cli

import (
	"github.com/spf13/cobra"
)

func newEnrollCmd() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "enroll",
		Short: "Enroll with the tournament, optionally via a referral token",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{}
			if token != "" {
				req["referral_token"] = token
			}
			var result EnrollResult

			if err := client.Post("/api/v1/enroll", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Referral token (e.g. promo_12345)")

	return cmd
}

func newJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join",
		Short: "Join the next open table",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result JoinResult

			if err := client.Post("/api/v1/tables/join", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your player and promoter stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result StatusResult

			if err := client.Get("/api/v1/players/me/status", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newPromoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promo",
		Short: "Get your promoter details and referral token",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result PromoResult

			if err := client.Get("/api/v1/promoters/me", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
