package tasks

import (
	"auramed.com/copilot/redis"
)

const DocumentsDB redis.DB = 0

type DocumentTask struct {
	FailedTasks       []string            `json:"failed_tasks"`
	FailedTranscripts map[string][]string `json:"failed_transcripts"`
}

type DocumentTasks struct {
	client redis.Client
}

func (tasks DocumentTasks) GetCached(redisKey string) (*DocumentTask, error) {
	var task DocumentTask
	err := tasks.client.GetDocument(cachedPropertiesKey(redisKey), &task)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (tasks DocumentTasks) Update(redisKey string, updateFunc func(task *DocumentTask)) error {
	var task DocumentTask
	return tasks.client.UpdateDocument(redisKey, &task, func() {
		if task.FailedTranscripts == nil {
			task.FailedTranscripts = make(map[string][]string)
		}
		updateFunc(&task)
	})
}
