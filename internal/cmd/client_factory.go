package cmd

import (
	"github.com/sapphire-forecast/sapphire-cli/internal/api"
	"github.com/sapphire-forecast/sapphire-cli/internal/config"
)

// resolveAccount merges flag overrides with stored credentials. A --api-url
// flag makes the stored account optional, so ad-hoc usage against a local
// service works without running auth login first.
func resolveAccount() (config.Account, error) {
	if flags.APIURL != "" {
		return config.Account{BaseURL: flags.APIURL, AuthToken: flags.Token}, nil
	}
	acct, err := config.LoadAccount()
	if err != nil {
		return config.Account{}, err
	}
	if flags.Token != "" {
		acct.AuthToken = flags.Token
	}
	return acct, nil
}

func apiConfig() (api.Config, error) {
	acct, err := resolveAccount()
	if err != nil {
		return api.Config{}, err
	}
	cfg := api.DefaultConfig(acct.BaseURL)
	cfg.AuthToken = acct.AuthToken
	if flags.Timeout > 0 {
		cfg.Timeout = flags.Timeout
	}
	if flags.MaxRetries > 0 {
		cfg.MaxRetries = flags.MaxRetries
	}
	if flags.BatchSize > 0 {
		cfg.BatchSize = flags.BatchSize
	}
	return cfg, nil
}

func getPreprocessingClient() (*api.PreprocessingClient, error) {
	cfg, err := apiConfig()
	if err != nil {
		return nil, err
	}
	client, err := api.NewPreprocessing(cfg)
	if err != nil {
		return nil, err
	}
	client.UserAgent = "sapphire-cli/" + version
	return client, nil
}

func getPostprocessingClient() (*api.PostprocessingClient, error) {
	cfg, err := apiConfig()
	if err != nil {
		return nil, err
	}
	client, err := api.NewPostprocessing(cfg)
	if err != nil {
		return nil, err
	}
	client.UserAgent = "sapphire-cli/" + version
	return client, nil
}
