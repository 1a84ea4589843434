package collector

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/ftahirops/logradar/model"
)

const azureAPIVersion = "api-version=2024-03-01"

// AzureProducer streams logs for one Azure Container App. It first tries
// the REST fast path using a pre-fetched management-plane bearer token
// (six chained calls resolving app -> environment -> revision -> replica ->
// log-stream token -> the log stream itself), and falls back, without
// retrying the fast path, to the `az containerapp logs show` CLI on any
// failure along that chain — including having no token at all.
type AzureProducer struct {
	AppName        string
	ResourceGroup  string
	SubscriptionID string
	Token          string // management-plane bearer token; "" to skip the fast path
}

func (a AzureProducer) Run(ctx context.Context, sourceID string, events chan<- model.SourceEvent) {
	if a.Token != "" && a.SubscriptionID != "" {
		if a.runFast(ctx, sourceID, events) {
			return
		}
	}
	a.runCLI(ctx, sourceID, events)
}

// runFast returns false if any of steps 1-5 fails, or if the step-6 stream
// command fails before any output arrives (a Status:Error event has then
// already been sent, but no log line); the caller falls back to the CLI
// path. Once the stream has produced output, or has ended cleanly, it
// returns true.
func (a AzureProducer) runFast(ctx context.Context, sourceID string, events chan<- model.SourceEvent) bool {
	base := fmt.Sprintf(
		"https://management.azure.com/subscriptions/%s/resourceGroups/%s/providers/Microsoft.App/containerApps/%s",
		a.SubscriptionID, a.ResourceGroup, a.AppName)
	authHeader := "Bearer " + a.Token

	appJSON, err := azureGetJSON(ctx, base+"?"+azureAPIVersion, authHeader)
	if err != nil {
		return false
	}
	envID, ok := jsonString(appJSON, "properties", "managedEnvironmentId")
	if !ok {
		return false
	}

	envJSON, err := azureGetJSON(ctx, "https://management.azure.com"+envID+"?"+azureAPIVersion, authHeader)
	if err != nil {
		return false
	}
	envDomain, ok := jsonString(envJSON, "properties", "defaultDomain")
	if !ok {
		return false
	}

	revisionsJSON, err := azureGetJSON(ctx, base+"/revisions?"+azureAPIVersion, authHeader)
	if err != nil {
		return false
	}
	latestRev, ok := jsonFirstName(revisionsJSON)
	if !ok {
		return false
	}

	replicasJSON, err := azureGetJSON(ctx, fmt.Sprintf("%s/revisions/%s/replicas?%s", base, latestRev, azureAPIVersion), authHeader)
	if err != nil {
		return false
	}
	replica, ok := jsonFirstName(replicasJSON)
	if !ok {
		return false
	}

	authJSON, err := azurePostJSON(ctx, fmt.Sprintf("%s/getAuthToken?%s", base, azureAPIVersion), authHeader)
	if err != nil {
		return false
	}
	logToken, ok := jsonString(authJSON, "properties", "token")
	if !ok {
		return false
	}

	logURL := fmt.Sprintf(
		"https://%s/subscriptions/%s/resourceGroups/%s/containerApps/%s/revisions/%s/replicas/%s/logstream?follow=true&tailLines=100&output=text",
		envDomain, a.SubscriptionID, a.ResourceGroup, a.AppName, latestRev, replica)

	// curl -f makes an HTTP error status (e.g. a rejected log-stream token)
	// a nonzero exit with no output at all; streamCommand's return value
	// tells us that happened, so a step-6 failure falls back to the CLI
	// exactly like a failure in steps 1-5 already does.
	return streamCommand(ctx, sourceID, events, false, false, "curl", "-N", "-s", "-f", "-H", "Authorization: Bearer "+logToken, logURL)
}

func (a AzureProducer) runCLI(ctx context.Context, sourceID string, events chan<- model.SourceEvent) {
	streamCommand(ctx, sourceID, events, false, false, "az", "containerapp", "logs", "show",
		"-n", a.AppName, "-g", a.ResourceGroup, "--type", "console", "--follow")
}

func azureGetJSON(ctx context.Context, url, authHeader string) (map[string]any, error) {
	return azureRequest(ctx, http.MethodGet, url, authHeader)
}

func azurePostJSON(ctx context.Context, url, authHeader string) (map[string]any, error) {
	return azureRequest(ctx, http.MethodPost, url, authHeader)
}

func azureRequest(ctx context.Context, method, url, authHeader string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", authHeader)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("azure API %s %s: status %d", method, url, resp.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(bufio.NewReader(resp.Body)).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func jsonString(obj map[string]any, path ...string) (string, bool) {
	var cur any = obj
	for _, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = m[key]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}

func jsonFirstName(obj map[string]any) (string, bool) {
	value, ok := obj["value"].([]any)
	if !ok || len(value) == 0 {
		return "", false
	}
	first, ok := value[0].(map[string]any)
	if !ok {
		return "", false
	}
	return jsonString(first, "name")
}
