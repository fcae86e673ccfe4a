package download

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/ytget/ytpick/internal/config"
	"github.com/ytget/ytpick/internal/model"
	"github.com/ytget/ytpick/internal/platform"
)

// TaskIDPrefix prefixes every generated task ID
const TaskIDPrefix = "task-"

// Service handles listing and download operations
type Service struct {
	extractor      Extractor
	downloadDir    string
	outputTemplate string
	tasks          []*model.DownloadTask
	tasksMutex     sync.RWMutex
	onUpdate       func(*model.DownloadTask) // callback for UI updates
}

// NewService creates a new download service writing into downloadDir
func NewService(extractor Extractor, downloadDir string) *Service {
	return &Service{
		extractor:      extractor,
		downloadDir:    downloadDir,
		outputTemplate: config.OutputTemplate(downloadDir),
	}
}

// SetUpdateCallback sets the callback function for task updates. The
// callback runs with the task lock held and must not call back into the
// service.
func (s *Service) SetUpdateCallback(callback func(*model.DownloadTask)) {
	s.onUpdate = callback
}

// OutputTemplate returns the output path template
func (s *Service) OutputTemplate() string {
	return s.outputTemplate
}

// DownloadDirectory returns the download directory
func (s *Service) DownloadDirectory() string {
	return s.downloadDir
}

// ListVideos resolves url with flat extraction
func (s *Service) ListVideos(ctx context.Context, url string) (*model.MetadataResult, error) {
	log.Printf("Resolving metadata for URL: %s", url)

	result, err := s.extractor.Resolve(ctx, url, true)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", url)
	}
	if result == nil {
		return nil, errors.Newf("no metadata returned for %s", url)
	}

	if result.IsPlaylist() {
		log.Printf("Playlist %q with %d entries", result.Title, result.EntryCount())
	} else {
		log.Printf("Single video %q", result.Title)
	}
	return result, nil
}

// DownloadVideos issues one download call for url when selected is nil, or
// one call per selected entry in list order. The first failure aborts the
// remaining calls; the returned tasks reflect how far the batch got.
func (s *Service) DownloadVideos(ctx context.Context, url, format string, selected []*model.Entry) ([]*model.DownloadTask, error) {
	if err := platform.CreateDirectoryIfNotExists(s.downloadDir); err != nil {
		return nil, errors.Wrapf(err, "failed to create download directory %s", s.downloadDir)
	}

	tasks := s.newBatch(url, format, selected)

	for _, task := range tasks {
		if err := s.runTask(ctx, task); err != nil {
			return tasks, err
		}
	}
	return tasks, nil
}

// GetAllTasks returns the tasks of the last batch
func (s *Service) GetAllTasks() []*model.DownloadTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.DownloadTask, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// newBatch builds the pending tasks for a download request
func (s *Service) newBatch(url, format string, selected []*model.Entry) []*model.DownloadTask {
	var tasks []*model.DownloadTask
	if selected == nil {
		tasks = append(tasks, s.newTask(url, "", format))
	} else {
		for _, entry := range selected {
			tasks = append(tasks, s.newTask(entry.URL, entry.Title, format))
		}
	}

	for i, task := range tasks {
		task.Index = i + 1
		task.BatchSize = len(tasks)
	}

	s.tasksMutex.Lock()
	s.tasks = tasks
	s.tasksMutex.Unlock()

	return tasks
}

func (s *Service) newTask(url, title, format string) *model.DownloadTask {
	return &model.DownloadTask{
		ID:             generateTaskID(),
		URL:            url,
		Title:          title,
		Format:         format,
		OutputTemplate: s.outputTemplate,
		Status:         model.TaskStatusPending,
		ETASec:         -1,
	}
}

// runTask performs a single blocking download call
func (s *Service) runTask(ctx context.Context, task *model.DownloadTask) error {
	s.tasksMutex.Lock()
	task.Status = model.TaskStatusDownloading
	task.StartedAt = time.Now()
	s.notifyUpdate(task)
	s.tasksMutex.Unlock()

	log.Printf("Starting task %s [%d/%d]: %s (format %q)", task.ID, task.Index, task.BatchSize, task.URL, task.Format)

	err := s.extractor.Download(ctx, []string{task.URL}, task.Format, task.OutputTemplate, func(p model.Progress) {
		s.updateTaskProgress(task, p)
	})

	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task.FinishedAt = time.Now()
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
		s.notifyUpdate(task)
		log.Printf("Task %s failed: %v", task.ID, err)
		return errors.Wrapf(err, "download of %s failed", task.GetDisplayTitle())
	}

	task.Status = model.TaskStatusCompleted
	task.Progress = 1.0
	task.Percent = 100
	s.notifyUpdate(task)
	log.Printf("Task %s completed in %s", task.ID, task.FinishedAt.Sub(task.StartedAt).Round(time.Millisecond))
	return nil
}

// updateTaskProgress updates task progress from a backend report
func (s *Service) updateTaskProgress(task *model.DownloadTask, p model.Progress) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task.ApplyProgress(p)
	s.notifyUpdate(task)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(task *model.DownloadTask) {
	if s.onUpdate != nil {
		s.onUpdate(task)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
