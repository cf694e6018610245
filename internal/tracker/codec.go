package tracker

import (
	"encoding/json"
	"fmt"
	"strconv"

	"paymentcore/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

func toJSONString(v map[string]any) (string, error) {
	if v == nil {
		return "{}", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeTask reconstructs a ports.TrackerTask from one stream entry's
// string-valued field map, the shape XADD/XReadGroup round-trips
// through go-redis.
func decodeTask(msg goredis.XMessage) (ports.TrackerTask, error) {
	task := ports.TrackerTask{ID: fieldString(msg.Values, "id")}
	task.TaskType = fieldString(msg.Values, "task_type")
	task.ReferenceID = fieldString(msg.Values, "reference_id")
	task.ConnectorName = fieldString(msg.Values, "connector_name")
	task.Status = fieldString(msg.Values, "status")

	retryCount, err := strconv.Atoi(fieldString(msg.Values, "retry_count"))
	if err != nil {
		return task, fmt.Errorf("parsing retry_count for stream entry %s: %w", msg.ID, err)
	}
	task.RetryCount = retryCount

	payload := fieldString(msg.Values, "payload")
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &task.Payload); err != nil {
			return task, fmt.Errorf("unmarshal payload for stream entry %s: %w", msg.ID, err)
		}
	}
	return task, nil
}

func fieldString(values map[string]any, key string) string {
	v, ok := values[key]
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}
