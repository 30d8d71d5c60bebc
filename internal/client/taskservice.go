package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"boardsvc/internal/service"

	"github.com/google/uuid"
)

// TaskServiceClient calls the sibling task service over HTTP.
type TaskServiceClient struct {
	baseURL string
	client  *http.Client
}

var _ service.TaskNotifier = (*TaskServiceClient)(nil)

func NewTaskServiceClient(baseURL string, timeout time.Duration) *TaskServiceClient {
	return &TaskServiceClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// DeleteBoardTasks asks the task service to remove all records scoped to
// the board. The client timeout bounds how long a board deletion can wait
// on the remote side.
func (c *TaskServiceClient) DeleteBoardTasks(ctx context.Context, boardID uuid.UUID) error {
	url := fmt.Sprintf("%s/tasks/board/%s", c.baseURL, boardID)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("task service returned %s", resp.Status)
	}
	return nil
}
