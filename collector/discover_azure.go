package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ftahirops/logradar/model"
)

// DiscoverAzure lists Container Apps via `az containerapp list -o json`.
func DiscoverAzure(ctx context.Context) ([]model.AzureContainerApp, error) {
	cmd := exec.CommandContext(ctx, "az", "containerapp", "list", "-o", "json")
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("az CLI not found: %w", err)
	}

	var raw []map[string]any
	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("parsing az output: %w", err)
	}

	apps := make([]model.AzureContainerApp, 0, len(raw))
	for _, item := range raw {
		name, _ := item["name"].(string)
		if name == "" {
			continue
		}
		rg, _ := item["resourceGroup"].(string)
		state := "Unknown"
		if props, ok := item["properties"].(map[string]any); ok {
			if s, ok := props["provisioningState"].(string); ok {
				state = s
			}
		}
		sub := ""
		if id, ok := item["id"].(string); ok {
			// /subscriptions/{sub}/resourceGroups/{rg}/providers/... -> parts[2]
			parts := strings.Split(id, "/")
			if len(parts) > 2 {
				sub = parts[2]
			}
		}
		apps = append(apps, model.AzureContainerApp{
			Name:              name,
			ResourceGroup:     rg,
			SubscriptionID:    sub,
			ProvisioningState: state,
		})
	}
	return apps, nil
}

// FetchAzureToken runs `az account get-access-token` to obtain a
// management-plane bearer token ahead of time, so AzureProducer's fast
// REST path can start without a second `az` CLI round trip.
func FetchAzureToken(ctx context.Context) (string, error) {
	cmd := exec.CommandContext(ctx, "az", "account", "get-access-token",
		"--resource", "https://management.azure.com/", "-o", "json")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("az token: %w", err)
	}
	var resp struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(out, &resp); err != nil {
		return "", fmt.Errorf("token parse: %w", err)
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("no accessToken in response")
	}
	return resp.AccessToken, nil
}
