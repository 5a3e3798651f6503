// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/npc-tracker/internal/entities"
	libraryrepo "github.com/KirkDiggler/npc-tracker/internal/repositories/library"
	librarymock "github.com/KirkDiggler/npc-tracker/internal/repositories/library/mock"
)

// ExpectEmptyLoad sets up a load from an empty store followed by the save
// that makes the seeded library durable
func ExpectEmptyLoad(ctx context.Context, repo *librarymock.MockRepository) {
	ExpectLoad(ctx, repo, &libraryrepo.LoadOutput{Source: libraryrepo.SourceEmpty})
}

// ExpectLoad sets up a load returning out followed by the hydration save
func ExpectLoad(ctx context.Context, repo *librarymock.MockRepository, out *libraryrepo.LoadOutput) {
	gomock.InOrder(
		repo.EXPECT().Load(ctx).Return(out, nil),
		repo.EXPECT().Save(ctx, gomock.Any()).Return(&libraryrepo.SaveOutput{}, nil),
	)
}

// ExpectSave sets up one save and records its input into captured
func ExpectSave(ctx context.Context, repo *librarymock.MockRepository, captured *libraryrepo.SaveInput) *gomock.Call {
	return repo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *libraryrepo.SaveInput) (*libraryrepo.SaveOutput, error) {
			*captured = libraryrepo.SaveInput{
				Records:  entities.CloneAll(input.Records),
				ActiveID: input.ActiveID,
			}
			return &libraryrepo.SaveOutput{}, nil
		})
}

// ExpectSaveError sets up one save failing with err
func ExpectSaveError(ctx context.Context, repo *librarymock.MockRepository, err error) *gomock.Call {
	return repo.EXPECT().Save(ctx, gomock.Any()).Return(nil, err)
}
