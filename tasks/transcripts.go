package tasks

import (
	"auramed.com/copilot/redis"
)

const TranscriptsDB redis.DB = 2

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// TranscriptTask tracks the co-pilot's processing of a single transcript.
type TranscriptTask struct {
	DocID        string                 `json:"document_id"`
	JobID        string                 `json:"job_id"`
	TextFileKey  string                 `json:"text_file_key"`
	TaskStatuses TranscriptTaskStatuses `json:"task_statuses"`
}

type TranscriptTaskStatuses struct {
	Copilot TranscriptTaskInfo `json:"copilot"`
}

type TranscriptTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	ErrorMessages  []string   `json:"error_messages"`
}

type TranscriptTasks struct {
	client redis.Client
}

func (tasks TranscriptTasks) Get(redisKey string) (*TranscriptTask, error) {
	var task TranscriptTask
	err := tasks.client.GetDocument(redisKey, &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks TranscriptTasks) Update(redisKey string, updateFunc func(task *TranscriptTask)) error {
	var task TranscriptTask
	return tasks.client.UpdateDocument(redisKey, &task, func() {
		updateFunc(&task)
	})
}
