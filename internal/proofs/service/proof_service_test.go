package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/patch"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/proofs/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/memory"
)

func TestProofService(t *testing.T) {
	ctx := context.Background()
	log, hook := test.NewNullLogger()
	svc := NewProofService(memory.NewProofStore(), log)

	p, err := svc.Create(ctx, domain.ProofInput{ProjectID: 999, Title: "Orphan", Description: "d", ImageURL: "u"})
	require.NoError(t, err, "the referenced project is never checked")
	assert.Equal(t, int64(999), p.ProjectID)

	hook.Reset()
	verified, err := svc.Update(ctx, p.ID, domain.ProofPatch{Verified: patch.Of(true)})
	require.NoError(t, err)
	assert.True(t, verified.Verified)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "proof verification changed", hook.LastEntry().Message)
	assert.Equal(t, true, hook.LastEntry().Data["verified"])

	hook.Reset()
	_, err = svc.Update(ctx, p.ID, domain.ProofPatch{Title: patch.Of("Renamed")})
	require.NoError(t, err)
	assert.Empty(t, hook.AllEntries(), "only verification changes are logged")

	items, err := svc.ListByProject(ctx, 999)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Renamed", items[0].Title)

	require.NoError(t, svc.Delete(ctx, p.ID))
	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
