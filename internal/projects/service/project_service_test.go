package service

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/siteproof-backend/internal/patch"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/siteproof-backend/internal/storage/memory"
)

func TestProjectService(t *testing.T) {
	ctx := context.Background()
	log, hook := test.NewNullLogger()
	svc := NewProjectService(memory.NewProjectStore(), log)

	p, err := svc.Create(ctx, domain.ProjectInput{Name: "Tower", Location: "Pier 4", Status: domain.StatusActive})
	require.NoError(t, err)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "project created", entry.Message)
	assert.Equal(t, p.ID, entry.Data["project_id"])
	assert.Equal(t, "projects", entry.Data["component"])

	updated, err := svc.Update(ctx, p.ID, domain.ProjectPatch{Name: patch.Of("Tower B")})
	require.NoError(t, err)
	assert.Equal(t, "Tower B", updated.Name)
	assert.Equal(t, "Pier 4", updated.Location)

	_, err = svc.Update(ctx, 99, domain.ProjectPatch{Name: patch.Of("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, p.ID))
	_, err = svc.Get(ctx, p.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	items, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, items)
}
