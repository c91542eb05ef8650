package services

import (
	"context"
	"fmt"
	"github.com/coopgretz/HomeStorage/internal/config"
	"github.com/coopgretz/HomeStorage/internal/metrics"
	"github.com/coopgretz/HomeStorage/internal/repository"
	"github.com/coopgretz/HomeStorage/internal/storage"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"sync"
	"time"
)

// sweptPrefixes are the key spaces the application writes to.
var sweptPrefixes = []string{imageKeySpaces[UploadTargetBox], imageKeySpaces[UploadTargetItem], qrKeySpace}

// Janitor removes stored images no box or item points at any more, e.g. the
// leftovers of a failed best-effort delete.
type Janitor struct {
	boxRepo       repository.BoxRepository
	itemRepo      repository.ItemRepository
	store         storage.ObjectStore
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	boxRepo repository.BoxRepository,
	itemRepo repository.ItemRepository,
	store storage.ObjectStore,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		boxRepo:       boxRepo,
		itemRepo:      itemRepo,
		store:         store,
		logService:    logService,
		cleaning:      false,
		mutex:         sync.Mutex{},
		configuration: configuration,
		cron:          cron.New(),
	}
}

// ForceStartCleanCycle runs a sweep in the background right away.
func (j *Janitor) ForceStartCleanCycle() error {
	if !j.tryStart() {
		return newError(ErrCleaningRunning, "Cleaning is already in progress")
	}
	go func() {
		defer j.finish()
		j.startClean(true)
	}()
	return nil
}

// StartCleanCycle registers the sweep on the configured cron schedule.
func (j *Janitor) StartCleanCycle() error {
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	j.logService.Log.WithField("cron", cronSchedule).Debug("starting cleaning job")
	_, err := j.cron.AddFunc(cronSchedule, func() {
		if !j.tryStart() {
			return
		}
		defer j.finish()
		j.startClean(false)
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return err
	}
	j.cron.Start()
	return nil
}

// StopClean stops the schedule and waits for a running sweep to finish.
func (j *Janitor) StopClean() {
	<-j.cron.Stop().Done()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) tryStart() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cleaning {
		return false
	}
	j.cleaning = true
	return true
}

func (j *Janitor) finish() {
	j.mutex.Lock()
	j.cleaning = false
	j.mutex.Unlock()
}

func (j *Janitor) startClean(forced bool) {
	logFields := logrus.Fields{"job": "clean", "status": "start", "cron": j.configuration.Server.CleanConfig.Schedule}
	if forced {
		logFields = logrus.Fields{"job": "clean", "status": "forced"}
	}
	j.logService.Log.WithFields(logFields).Debug("sweeping orphaned images")

	removed, err := j.Sweep(context.Background())
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "error",
			"error":  err.Error(),
		}).Error("Failed to sweep orphaned images")
		return
	}
	if removed > 0 {
		j.logService.Log.WithFields(logrus.Fields{
			"job":    "clean",
			"status": "success",
			"count":  removed,
		}).Info("cleaning job finished")
	}
}

// Sweep removes every object under the application prefixes that is not
// referenced by a box or item and is older than the grace period. Fresh
// objects are kept so an upload between Put and the row update survives.
func (j *Janitor) Sweep(ctx context.Context) (int, error) {
	boxAssets, err := j.boxRepo.AllAssetPaths()
	if err != nil {
		return 0, fmt.Errorf("load box assets: %w", err)
	}
	itemImages, err := j.itemRepo.AllImagePaths()
	if err != nil {
		return 0, fmt.Errorf("load item images: %w", err)
	}
	referenced := make(map[string]struct{}, len(boxAssets)+len(itemImages))
	for _, key := range append(boxAssets, itemImages...) {
		referenced[key] = struct{}{}
	}

	cutoff := time.Now().Add(-j.configuration.Server.CleanConfig.GracePeriod)
	var removed int
	for _, prefix := range sweptPrefixes {
		objects, err := j.store.List(ctx, prefix)
		if err != nil {
			return removed, fmt.Errorf("list %s: %w", prefix, err)
		}
		for _, object := range objects {
			if _, ok := referenced[object.Key]; ok || object.LastModified.After(cutoff) {
				continue
			}
			if err := j.store.Remove(ctx, object.Key); err != nil {
				metrics.StorageCleanupFailures.WithLabelValues("janitor").Inc()
				j.logService.Log.WithFields(logrus.Fields{
					"job":   "clean",
					"key":   object.Key,
					"error": err.Error(),
				}).Warn("Failed to remove orphaned image")
				continue
			}
			j.logService.Log.WithFields(logrus.Fields{
				"job": "clean",
				"key": object.Key,
			}).Debug("removed orphaned image")
			metrics.JanitorObjectsRemoved.Inc()
			removed++
		}
	}
	return removed, nil
}
