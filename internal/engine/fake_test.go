// In-memory LabelService fake for engine tests. Records every call so
// tests can assert on exactly which external mutations happened.
package engine

import (
	"context"
	"errors"

	"github.com/mesh-intelligence/labelstate/pkg/types"
)

type replaceCall struct {
	owner, repo string
	number      int
	names       []string
}

type usageCall struct {
	name          string
	page, perPage int
}

type fakeService struct {
	// entitiesByLabel maps a label name to the full entity set carrying
	// it; ListEntitiesByLabel slices out the requested page.
	entitiesByLabel map[string][]types.Entity

	replaceErr error
	deleteErr  error
	listErr    error
	usageErr   error

	replaceCalls []replaceCall
	deleteCalls  []string
	usageCalls   []usageCall
}

func newFakeService() *fakeService {
	return &fakeService{entitiesByLabel: make(map[string][]types.Entity)}
}

func (f *fakeService) ListLabels(ctx context.Context, owner, repo string, number int) ([]types.Label, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return nil, errors.New("not used by engine tests")
}

func (f *fakeService) ReplaceLabels(ctx context.Context, owner, repo string, number int, names []string) ([]types.Label, error) {
	f.replaceCalls = append(f.replaceCalls, replaceCall{owner: owner, repo: repo, number: number, names: names})
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	labels := make([]types.Label, len(names))
	for i, n := range names {
		labels[i] = types.Label{Name: n}
	}
	return labels, nil
}

func (f *fakeService) DeleteLabel(ctx context.Context, owner, repo, name string) error {
	f.deleteCalls = append(f.deleteCalls, name)
	return f.deleteErr
}

func (f *fakeService) ListEntitiesByLabel(ctx context.Context, owner, repo, name string, page, perPage int) ([]types.Entity, error) {
	f.usageCalls = append(f.usageCalls, usageCall{name: name, page: page, perPage: perPage})
	if f.usageErr != nil {
		return nil, f.usageErr
	}

	all := f.entitiesByLabel[name]
	start := (page - 1) * perPage
	if start >= len(all) {
		return nil, nil
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}
