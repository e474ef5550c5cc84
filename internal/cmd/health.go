package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapphire-forecast/sapphire-cli/internal/api"
	"github.com/sapphire-forecast/sapphire-cli/internal/validation"
)

func newHealthCmd() *cobra.Command {
	var service string
	var ready bool

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check whether a SAPPHIRE service is up",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validation.Enum(service, []string{"preprocessing", "postprocessing"}, "service"); err != nil {
				return err
			}

			cfg, err := apiConfig()
			if err != nil {
				return err
			}

			var client *api.Client
			switch service {
			case "postprocessing":
				pc, err := api.NewPostprocessing(cfg)
				if err != nil {
					return err
				}
				client = pc.Client
			default:
				pc, err := api.NewPreprocessing(cfg)
				if err != nil {
					return err
				}
				client = pc.Client
			}
			client.UserAgent = "sapphire-cli/" + version

			ok := false
			label := "healthy"
			if ready {
				ok = client.ReadinessCheck(cmd.Context())
				label = "ready"
			} else {
				ok = client.HealthCheck(cmd.Context())
			}
			if !ok {
				return fmt.Errorf("%s service is not %s", service, label)
			}
			cmd.Printf("%s service is %s\n", service, label)
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "preprocessing", "Service to check: preprocessing or postprocessing")
	cmd.Flags().BoolVar(&ready, "ready", false, "Check readiness instead of liveness")
	return cmd
}
