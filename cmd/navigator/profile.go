package main

import (
	"fmt"

	"github.com/hacktx/financial-navigator/internal/config"
	"github.com/hacktx/financial-navigator/internal/service"
	"github.com/spf13/cobra"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage stored profiles",
		Long:  `Save, inspect, analyze and delete profiles kept in the configured repository.`,
	}

	cmd.AddCommand(profileSaveCmd())
	cmd.AddCommand(profileShowCmd())
	cmd.AddCommand(profileReportCmd())
	cmd.AddCommand(profileDeleteCmd())
	cmd.AddCommand(profileListCmd())

	return cmd
}

// withNavigator runs fn against a cache-less navigator and closes it afterwards.
func withNavigator(fn func(nav *service.Navigator) error) error {
	nav, err := newNavigator(false)
	if err != nil {
		return err
	}
	defer func() {
		if err := nav.Close(); err != nil {
			logger.Warn("failed to close navigator", "error", err)
		}
	}()
	return fn(nav)
}

func profileSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <user-id> <profile.yaml>",
		Short: "Store a profile under a user id",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := config.NewInputParser().LoadProfile(args[1])
			if err != nil {
				return err
			}
			return withNavigator(func(nav *service.Navigator) error {
				if err := nav.SaveProfile(cmd.Context(), args[0], profile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved profile %s\n", args[0])
				return nil
			})
		},
	}
}

func profileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <user-id>",
		Short: "Print a stored profile as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNavigator(func(nav *service.Navigator) error {
				profile, err := nav.LoadProfile(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				data, err := config.NewInputParser().MarshalProfile(profile)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			})
		},
	}
}

func profileReportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "report <user-id>",
		Short: "Analyze a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNavigator(func(nav *service.Navigator) error {
				report, err := nav.AnalyzeUser(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeReport(cmd, report, format, "")
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format")
	return cmd
}

func profileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a stored profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withNavigator(func(nav *service.Navigator) error {
				if err := nav.DeleteProfile(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted profile %s\n", args[0])
				return nil
			})
		},
	}
}

func profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored user ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withNavigator(func(nav *service.Navigator) error {
				ids, err := nav.ListProfiles(cmd.Context())
				if err != nil {
					return err
				}
				if len(ids) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No stored profiles")
					return nil
				}
				for _, id := range ids {
					fmt.Fprintln(cmd.OutOrStdout(), id)
				}
				return nil
			})
		},
	}
}
