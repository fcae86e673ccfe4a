package model

// TaskStatus represents the status of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is created but the download call has not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusDownloading means the download call is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusCompleted means the download call returned without error
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the download call failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusDownloading
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
