package worker

import (
	"fmt"

	"auramed.com/copilot/tasks"
)

type redisTransactions interface {
	getTranscriptTask(redisKey string) (*tasks.TranscriptTask, error)
	getJobTask(task *Task) (*tasks.JobTask, error)
	getDocTask(task *Task) (*tasks.DocumentTask, error)
	onTaskStarted(task *Task) error
	onTaskCancelled(task *Task, errorMessages ...string) error
	onTaskExceededRetries(task *Task, maxRetries int) error
	onTaskFailedWithError(task *Task, err error) error
	onTaskComplete(task *Task) error
	close()
}

type redisClientWrapper struct {
	tasksClient *tasks.Client
}

func (wrapper *redisClientWrapper) close() {
	wrapper.tasksClient.Close()
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	err := wrapper.tasksClient.Transcripts.Update(task.redisKey, func(task *tasks.TranscriptTask) {
		task.TaskStatuses.Copilot.Status = tasks.TaskStatusStarted
		task.TaskStatuses.Copilot.Attempts += 1
		task.TaskStatuses.Copilot.StartedAt = getFormattedNow()
		task.TaskStatuses.Copilot.CompletedAt = nil
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskCancelled(task *Task, errorMessages ...string) error {
	err := wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		transcriptTask.TaskStatuses.Copilot.Status = tasks.TaskStatusCanceled
		transcriptTask.TaskStatuses.Copilot.StartedAt = getFormattedNow()
		transcriptTask.TaskStatuses.Copilot.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.Copilot.Attempts += 1
		transcriptTask.TaskStatuses.Copilot.ErrorMessages = append(
			transcriptTask.TaskStatuses.Copilot.ErrorMessages,
			errorMessages...,
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task, maxRetries int) error {
	err := wrapper.tasksClient.Documents.Update(task.transcriptTask.DocID, func(docTask *tasks.DocumentTask) {
		docTask.FailedTasks = append(docTask.FailedTasks, "copilot")
		docTask.FailedTranscripts[task.redisKey] = append(docTask.FailedTranscripts[task.redisKey], "copilot")
	})
	if err != nil {
		return err
	}
	err = wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		transcriptTask.TaskStatuses.Copilot.Status = tasks.TaskStatusCompletedFailure
		transcriptTask.TaskStatuses.Copilot.StartedAt = getFormattedNow()
		transcriptTask.TaskStatuses.Copilot.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.Copilot.Attempts += 1
		transcriptTask.TaskStatuses.Copilot.ErrorMessages = append(
			transcriptTask.TaskStatuses.Copilot.ErrorMessages,
			fmt.Sprintf(
				"Task has exceeded retries. (Attempts: %d, max retries: %d )",
				transcriptTask.TaskStatuses.Copilot.Attempts,
				maxRetries,
			),
		)
	})
	return err
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, err error) error {
	return wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		transcriptTask.TaskStatuses.Copilot.Status = tasks.TaskStatusFailed
		transcriptTask.TaskStatuses.Copilot.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.Copilot.ErrorMessages = append(transcriptTask.TaskStatuses.Copilot.ErrorMessages, err.Error())
	})
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	return wrapper.tasksClient.Transcripts.Update(task.redisKey, func(transcriptTask *tasks.TranscriptTask) {
		if !transcriptTask.TaskStatuses.Copilot.Status.Complete() {
			transcriptTask.TaskStatuses.Copilot.Status = tasks.TaskStatusCompletedSuccess
		}
		transcriptTask.TaskStatuses.Copilot.CompletedAt = getFormattedNow()
		transcriptTask.TaskStatuses.Copilot.ResultsFileKey = getResultsFileKey(task)
	})
}

func (wrapper *redisClientWrapper) getTranscriptTask(redisKey string) (*tasks.TranscriptTask, error) {
	return wrapper.tasksClient.Transcripts.Get(redisKey)
}

func (wrapper *redisClientWrapper) getJobTask(task *Task) (*tasks.JobTask, error) {
	return wrapper.tasksClient.Jobs.GetCached(task.transcriptTask.JobID)
}

func (wrapper *redisClientWrapper) getDocTask(task *Task) (*tasks.DocumentTask, error) {
	return wrapper.tasksClient.Documents.GetCached(task.transcriptTask.DocID)
}
