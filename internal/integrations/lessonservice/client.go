package lessonservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент каталога занятий
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента каталога занятий
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetLesson получает занятие по ID
func (c *Client) GetLesson(ctx context.Context, lessonID int64) (*Lesson, error) {
	url := fmt.Sprintf("%s/internal/lessons/%d", c.baseURL, lessonID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("LessonService: GET %s failed: %v", url, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrLessonNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var lesson Lesson
	if err := json.NewDecoder(resp.Body).Decode(&lesson); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &lesson, nil
}

// GetPublishedLesson получает занятие и проверяет, что оно опубликовано.
// Неопубликованное занятие для бронирования не существует.
func (c *Client) GetPublishedLesson(ctx context.Context, lessonID int64) (*Lesson, error) {
	lesson, err := c.GetLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	if !lesson.IsPublished {
		c.log.Info("LessonService: lesson id=%d is not published", lessonID)
		return nil, ErrLessonNotFound
	}

	return lesson, nil
}
