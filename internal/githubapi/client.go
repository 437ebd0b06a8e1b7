// Package githubapi implements the LabelService over the GitHub REST
// API. It is the only package that talks to the network; everything the
// engine needs is expressed through pkg/types.
package githubapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v68/github"

	"github.com/mesh-intelligence/labelstate/pkg/types"
)

// Client adapts a go-github client to types.LabelService.
type Client struct {
	gh *github.Client
}

// New creates a Client authenticated with a personal access token. An
// empty token yields an unauthenticated client, which works for public
// repositories with reduced rate limits.
func New(token string) *Client {
	gh := github.NewClient(nil)
	if token != "" {
		gh = gh.WithAuthToken(token)
	}
	return &Client{gh: gh}
}

// NewFromClient wraps an existing go-github client. Used by tests to
// point the adapter at a local server.
func NewFromClient(gh *github.Client) *Client {
	return &Client{gh: gh}
}

// listPageSize is the page size for exhaustive label listing.
const listPageSize = 100

// ListLabels returns every label attached to the entity, following
// pagination to exhaustion.
func (c *Client) ListLabels(ctx context.Context, owner, repo string, number int) ([]types.Label, error) {
	opts := &github.ListOptions{PerPage: listPageSize}
	var labels []types.Label
	for {
		page, resp, err := c.gh.Issues.ListLabelsByIssue(ctx, owner, repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("list labels: %w", err)
		}
		for _, l := range page {
			labels = append(labels, toLabel(l))
		}
		if resp.NextPage == 0 {
			return labels, nil
		}
		opts.Page = resp.NextPage
	}
}

// ReplaceLabels replaces the entity's full label list. GitHub creates
// missing catalog entries as a side effect, so a brand-new state label
// needs no separate registration step.
func (c *Client) ReplaceLabels(ctx context.Context, owner, repo string, number int, names []string) ([]types.Label, error) {
	if names == nil {
		// The API treats a null body as "remove nothing"; an empty list
		// must always be sent explicitly.
		names = []string{}
	}
	applied, _, err := c.gh.Issues.ReplaceLabelsForIssue(ctx, owner, repo, number, names)
	if err != nil {
		return nil, fmt.Errorf("replace labels: %w", err)
	}
	labels := make([]types.Label, len(applied))
	for i, l := range applied {
		labels[i] = toLabel(l)
	}
	return labels, nil
}

// DeleteLabel removes a label from the repository catalog. A 404 maps to
// types.ErrLabelNotFound so callers can tell "already gone" apart from a
// real failure.
func (c *Client) DeleteLabel(ctx context.Context, owner, repo, name string) error {
	resp, err := c.gh.Issues.DeleteLabel(ctx, owner, repo, name)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return fmt.Errorf("delete label %q: %w", name, types.ErrLabelNotFound)
		}
		return fmt.Errorf("delete label %q: %w", name, err)
	}
	return nil
}

// ListEntitiesByLabel returns one page of issues and pull requests
// carrying the named label, any state. The server performs the filter.
func (c *Client) ListEntitiesByLabel(ctx context.Context, owner, repo, name string, page, perPage int) ([]types.Entity, error) {
	opts := &github.IssueListByRepoOptions{
		Labels:      []string{name},
		State:       "all",
		ListOptions: github.ListOptions{Page: page, PerPage: perPage},
	}
	issues, _, err := c.gh.Issues.ListByRepo(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("list entities by label: %w", err)
	}
	entities := make([]types.Entity, 0, len(issues))
	for _, is := range issues {
		entities = append(entities, types.Entity{Number: is.GetNumber()})
	}
	return entities, nil
}

func toLabel(l *github.Label) types.Label {
	return types.Label{
		Name:        l.GetName(),
		Color:       l.GetColor(),
		Description: l.GetDescription(),
	}
}
