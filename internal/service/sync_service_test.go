package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friber/move-to-go/internal/client"
	"github.com/friber/move-to-go/internal/models"
	"github.com/friber/move-to-go/internal/repository"
)

type fakeSender struct {
	sent   []*models.SchemaPayload
	failOn map[string]error
	onSend func()
}

func (f *fakeSender) Send(ctx context.Context, p *models.SchemaPayload) (*client.Receipt, error) {
	if f.onSend != nil {
		f.onSend()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err, ok := f.failOn[p.TypeName]; ok {
		return nil, err
	}
	f.sent = append(f.sent, p)
	return &client.Receipt{RemoteID: fmt.Sprintf("r-%d", len(f.sent)), TypeName: p.TypeName}, nil
}

func newTestService(t *testing.T, sender client.PayloadSender) (*SyncService, *repository.EntitySyncRepository) {
	t.Helper()
	db, err := repository.InitDB(filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	entities := repository.NewEntitySyncRepository(db)
	svc := NewSyncService(sender, repository.NewSyncRunRepository(db), entities, time.Minute, logr.Discard())
	return svc, entities
}

func sampleEntities(t *testing.T) []models.Entity {
	t.Helper()
	coworker := models.NewCoworker(models.CoworkerOptions{IntegrationID: "c-1", FirstName: "Billy", LastName: "Bob"})
	org := models.NewOrganization(models.OrganizationOptions{IntegrationID: "o-1", Name: "Lundalogik"})
	require.NoError(t, org.SetResponsibleCoworker(coworker))
	nameless := models.NewDeal(models.DealOptions{IntegrationID: "d-1"})
	return []models.Entity{coworker, org, nameless}
}

func TestPush_RecordsEveryEntity(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(t, sender)

	run, err := svc.Push(context.Background(), "test", sampleEntities(t))
	require.NoError(t, err)

	assert.Equal(t, repository.RunStatusCompletedWithErrors, run.Status)
	assert.Equal(t, 3, run.Total)
	assert.Equal(t, 2, run.Succeeded)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, 0, run.Skipped)
	require.NotNil(t, run.CompletedAt)

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "Coworker", sender.sent[0].TypeName)
	assert.Equal(t, "Organization", sender.sent[1].TypeName)

	records, err := svc.RunEntities(run.ID)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, repository.EntityStatusSent, records[0].Status)
	assert.Equal(t, "r-1", records[0].RemoteID)
	assert.NotEmpty(t, records[0].Fingerprint)
	assert.Equal(t, repository.EntityStatusInvalid, records[2].Status)
	assert.Contains(t, records[2].Message, "A name is required for deal.")
	assert.Contains(t, records[2].Message, `"integration_id":"d-1"`)
}

func TestPush_SkipsUnchanged(t *testing.T) {
	sender := &fakeSender{}
	svc, _ := newTestService(t, sender)
	entities := sampleEntities(t)[:2]

	_, err := svc.Push(context.Background(), "first", entities)
	require.NoError(t, err)
	require.Len(t, sender.sent, 2)

	run, err := svc.Push(context.Background(), "second", entities)
	require.NoError(t, err)
	assert.Equal(t, repository.RunStatusCompleted, run.Status)
	assert.Equal(t, 2, run.Skipped)
	assert.Len(t, sender.sent, 2)

	entities[1].(*models.Organization).Name = "Lundalogik AB"
	run, err = svc.Push(context.Background(), "third", entities)
	require.NoError(t, err)
	assert.Equal(t, 1, run.Skipped)
	assert.Equal(t, 1, run.Succeeded)
	assert.Len(t, sender.sent, 3)
}

func TestPush_FingerprintSurvivesRestart(t *testing.T) {
	sender := &fakeSender{}
	db, err := repository.InitDB(filepath.Join(t.TempDir(), "sync.db"))
	require.NoError(t, err)
	defer db.Close()

	newSvc := func() *SyncService {
		return NewSyncService(sender, repository.NewSyncRunRepository(db), repository.NewEntitySyncRepository(db), time.Minute, logr.Discard())
	}
	entities := sampleEntities(t)[:1]

	_, err = newSvc().Push(context.Background(), "first", entities)
	require.NoError(t, err)

	run, err := newSvc().Push(context.Background(), "second", entities)
	require.NoError(t, err)
	assert.Equal(t, 1, run.Skipped)
	assert.Len(t, sender.sent, 1)
}

func TestPush_RemoteFailureIsRecorded(t *testing.T) {
	sender := &fakeSender{failOn: map[string]error{"Organization": errors.New("rejected")}}
	svc, entitySyncs := newTestService(t, sender)

	run, err := svc.Push(context.Background(), "test", sampleEntities(t)[:2])
	require.NoError(t, err)
	assert.Equal(t, repository.RunStatusCompletedWithErrors, run.Status)
	assert.Equal(t, 1, run.Failed)

	records, err := entitySyncs.GetByRun(run.ID)
	require.NoError(t, err)
	assert.Equal(t, repository.EntityStatusFailed, records[1].Status)
	assert.Equal(t, "rejected", records[1].Message)

	_, err = entitySyncs.LastFingerprint("Organization", "o-1")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestPush_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sender := &fakeSender{onSend: cancel}
	svc, _ := newTestService(t, sender)

	run, err := svc.Push(ctx, "test", sampleEntities(t))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, repository.RunStatusCanceled, run.Status)
	assert.Empty(t, sender.sent)
}

func TestPush_NoSender(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := svc.Push(context.Background(), "test", nil)
	assert.True(t, errors.Is(err, ErrNoSender))
}

func TestRuns(t *testing.T) {
	svc, _ := newTestService(t, &fakeSender{})

	_, err := svc.GetRun("missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))
	_, err = svc.RunEntities("missing")
	assert.True(t, errors.Is(err, repository.ErrNotFound))

	run, err := svc.Push(context.Background(), "empty", nil)
	require.NoError(t, err)
	assert.Equal(t, repository.RunStatusCompleted, run.Status)

	runs, err := svc.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.ID, runs[0].ID)
}

func TestFingerprint_Stable(t *testing.T) {
	a, err := models.Serialize(models.NewPerson(models.PersonOptions{FirstName: "Ann"}))
	require.NoError(t, err)
	b, err := models.Serialize(models.NewPerson(models.PersonOptions{FirstName: "Ann"}))
	require.NoError(t, err)
	c, err := models.Serialize(models.NewPerson(models.PersonOptions{FirstName: "Anna"}))
	require.NoError(t, err)

	fa, _ := Fingerprint(a)
	fb, _ := Fingerprint(b)
	fc, _ := Fingerprint(c)
	assert.Len(t, fa, 16)
	assert.Equal(t, fa, fb)
	assert.NotEqual(t, fa, fc)
}

func TestValidateAllAndSerializeAll(t *testing.T) {
	entities := sampleEntities(t)

	reports := ValidateAll(entities)
	require.Len(t, reports, 3)
	assert.True(t, reports[0].Valid)
	assert.Equal(t, "o-1", reports[1].IntegrationID)
	assert.False(t, reports[2].Valid)
	assert.NotEmpty(t, reports[2].Message)

	payloads, err := SerializeAll(entities)
	require.NoError(t, err)
	require.Len(t, payloads, 3)
	assert.Equal(t, "Deal", payloads[2].TypeName)
}
