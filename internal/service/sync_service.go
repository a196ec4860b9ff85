package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	"github.com/patrickmn/go-cache"
	"github.com/zeebo/xxh3"

	"github.com/friber/move-to-go/internal/client"
	"github.com/friber/move-to-go/internal/models"
	"github.com/friber/move-to-go/internal/repository"
)

var ErrNoSender = errors.New("no remote configured")

type SyncService struct {
	sender         client.PayloadSender
	runRepo        *repository.SyncRunRepository
	entitySyncRepo *repository.EntitySyncRepository
	fingerprints   *cache.Cache
	log            logr.Logger
}

// NewSyncService wires the service. sender may be nil when only runs are read back.
func NewSyncService(
	sender client.PayloadSender,
	runRepo *repository.SyncRunRepository,
	entitySyncRepo *repository.EntitySyncRepository,
	fingerprintTTL time.Duration,
	log logr.Logger,
) *SyncService {
	return &SyncService{
		sender:         sender,
		runRepo:        runRepo,
		entitySyncRepo: entitySyncRepo,
		fingerprints:   cache.New(fingerprintTTL, 2*fingerprintTTL),
		log:            log.WithName("sync"),
	}
}

type counters struct {
	succeeded, failed, skipped int
}

// Push sends entities to the remote system in order and records the outcome of each one.
// Invalid entities and remote rejections are recorded, not returned. The returned error is
// reserved for store failures and cancellation; the run is returned in both cases when it
// was created.
func (s *SyncService) Push(ctx context.Context, source string, entities []models.Entity) (repository.SyncRun, error) {
	if s.sender == nil {
		return repository.SyncRun{}, ErrNoSender
	}

	runID, err := s.runRepo.Create(&repository.SyncRun{Source: source, Total: len(entities)})
	if err != nil {
		return repository.SyncRun{}, fmt.Errorf("create run: %w", err)
	}
	log := s.log.WithValues("run", runID)
	log.Info("starting sync", "source", source, "total", len(entities))

	var c counters
	for _, e := range entities {
		if err := ctx.Err(); err != nil {
			return s.finish(runID, repository.RunStatusCanceled, c, err)
		}

		record, err := s.pushOne(ctx, runID, e)
		if err != nil {
			status := repository.RunStatusFailed
			if ctx.Err() != nil {
				status = repository.RunStatusCanceled
			}
			return s.finish(runID, status, c, err)
		}

		switch record.Status {
		case repository.EntityStatusSent:
			c.succeeded++
			log.V(1).Info("sent", "type", record.TypeName, "integrationID", record.IntegrationID, "remoteID", record.RemoteID)
		case repository.EntityStatusUnchanged:
			c.skipped++
			log.V(1).Info("unchanged", "type", record.TypeName, "integrationID", record.IntegrationID)
		case repository.EntityStatusInvalid:
			c.failed++
			log.Info("invalid entity", "type", record.TypeName, "integrationID", record.IntegrationID, "message", record.Message)
		default:
			c.failed++
			log.Error(errors.New(record.Message), "send failed", "type", record.TypeName, "integrationID", record.IntegrationID)
		}

		if err := s.runRepo.UpdateProgress(runID, c.succeeded, c.failed, c.skipped); err != nil {
			return s.finish(runID, repository.RunStatusFailed, c, err)
		}
	}

	status := repository.RunStatusCompleted
	if c.failed > 0 {
		status = repository.RunStatusCompletedWithErrors
	}
	log.Info("sync finished", "status", status, "succeeded", c.succeeded, "failed", c.failed, "skipped", c.skipped)
	return s.finish(runID, status, c, nil)
}

// finish closes the run and reads it back. cause is returned unchanged when set.
func (s *SyncService) finish(runID, status string, c counters, cause error) (repository.SyncRun, error) {
	if cause != nil {
		s.log.Error(cause, "sync aborted", "run", runID, "status", status)
		_ = s.runRepo.UpdateProgress(runID, c.succeeded, c.failed, c.skipped)
	}
	if err := s.runRepo.Complete(runID, status); err != nil {
		return repository.SyncRun{ID: runID, Status: status}, errors.Join(cause, err)
	}
	run, err := s.runRepo.GetRun(runID)
	if err != nil {
		return repository.SyncRun{ID: runID, Status: status}, errors.Join(cause, err)
	}
	return run, cause
}

func (s *SyncService) pushOne(ctx context.Context, runID string, e models.Entity) (*repository.EntitySync, error) {
	record := &repository.EntitySync{
		RunID:         runID,
		TypeName:      e.SerializeName(),
		IntegrationID: IntegrationID(e),
	}

	if msg := models.Validate(e); msg != "" {
		record.Status = repository.EntityStatusInvalid
		record.Message = msg
		return record, s.entitySyncRepo.Create(record)
	}

	payload, err := models.Serialize(e)
	if err != nil {
		record.Status = repository.EntityStatusInvalid
		record.Message = err.Error()
		return record, s.entitySyncRepo.Create(record)
	}

	record.Fingerprint, err = Fingerprint(payload)
	if err != nil {
		return nil, err
	}

	last, err := s.lastFingerprint(record.TypeName, record.IntegrationID)
	if err != nil {
		return nil, err
	}
	if last != "" && last == record.Fingerprint {
		record.Status = repository.EntityStatusUnchanged
		return record, s.entitySyncRepo.Create(record)
	}

	receipt, err := s.sender.Send(ctx, payload)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		record.Status = repository.EntityStatusFailed
		record.Message = err.Error()
		return record, s.entitySyncRepo.Create(record)
	}

	record.Status = repository.EntityStatusSent
	record.RemoteID = receipt.RemoteID
	if err := s.entitySyncRepo.Create(record); err != nil {
		return nil, err
	}
	if record.IntegrationID != "" {
		s.fingerprints.SetDefault(fingerprintKey(record.TypeName, record.IntegrationID), record.Fingerprint)
	}
	return record, nil
}

// lastFingerprint consults the cache, then the store. Entities without an integration id
// are never considered unchanged.
func (s *SyncService) lastFingerprint(typeName, integrationID string) (string, error) {
	if integrationID == "" {
		return "", nil
	}
	key := fingerprintKey(typeName, integrationID)
	if v, ok := s.fingerprints.Get(key); ok {
		return v.(string), nil
	}

	fp, err := s.entitySyncRepo.LastFingerprint(typeName, integrationID)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	s.fingerprints.SetDefault(key, fp)
	return fp, nil
}

func fingerprintKey(typeName, integrationID string) string {
	return typeName + "/" + integrationID
}

// Fingerprint hashes the JSON form of a payload.
func Fingerprint(p *models.SchemaPayload) (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode payload: %w", err)
	}
	return fmt.Sprintf("%016x", xxh3.Hash(data)), nil
}

// IntegrationID reads the integration_id attribute, or "" when the entity has none.
func IntegrationID(e models.Entity) string {
	v, ok := e.Attribute("integration_id")
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

func (s *SyncService) GetRun(id string) (repository.SyncRun, error) {
	run, err := s.runRepo.GetRun(id)
	if err != nil {
		return repository.SyncRun{}, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}

func (s *SyncService) ListRuns(limit int) ([]repository.SyncRun, error) {
	runs, err := s.runRepo.GetRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

func (s *SyncService) RunEntities(runID string) ([]repository.EntitySync, error) {
	if _, err := s.runRepo.GetRun(runID); err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	syncs, err := s.entitySyncRepo.GetByRun(runID)
	if err != nil {
		return nil, fmt.Errorf("get run entities: %w", err)
	}
	return syncs, nil
}
