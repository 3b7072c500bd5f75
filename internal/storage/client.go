// Пакет storage — HTTP-клиент объектного хранилища файлов.
// Операции: Upload (POST /storage/v1/object/{bucket}/{path}),
// Remove (DELETE /storage/v1/object/{bucket}/{path}), публичные URL.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured — параметры хранилища не заданы.
// Сервис стартует без них; ошибка возникает только при
// фактической попытке обращения к хранилищу.
var ErrNotConfigured = errors.New("хранилище не сконфигурировано: не заданы URL и ключ доступа")

// Client — клиент объектного хранилища.
type Client struct {
	httpClient *http.Client
	baseURL    string
	bucket     string
	accessKey  string
	logger     *slog.Logger
}

// New создаёт клиент хранилища.
// baseURL и accessKey могут быть пустыми: в этом случае клиент
// создаётся, но каждая операция возвращает ErrNotConfigured.
func New(baseURL, accessKey, bucket string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		bucket:     bucket,
		accessKey:  accessKey,
		logger:     logger.With(slog.String("component", "storage_client")),
	}
}

// configured проверяет наличие обязательных параметров.
func (c *Client) configured() bool {
	return c.baseURL != "" && c.accessKey != ""
}

// objectURL строит URL объекта для операций записи и удаления.
func (c *Client) objectURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, c.bucket, path)
}

// PublicURL возвращает публичный URL объекта по его пути в бакете.
func (c *Client) PublicURL(path string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, c.bucket, path)
}

// Upload загружает объект в бакет и возвращает его публичный URL.
func (c *Client) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	if !c.configured() {
		return "", ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(path), body)
	if err != nil {
		return "", fmt.Errorf("создание запроса Upload: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessKey)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("загрузка объекта %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("хранилище вернуло статус %d для %s: %s",
			resp.StatusCode, path, string(respBody))
	}

	c.logger.Debug("Объект загружен в хранилище",
		slog.String("path", path),
		slog.String("content_type", contentType),
	)

	return c.PublicURL(path), nil
}

// Remove удаляет объекты по списку путей. Отсутствующий объект (404)
// не считается ошибкой: цель — чтобы объекта не стало.
func (c *Client) Remove(ctx context.Context, paths []string) error {
	if !c.configured() {
		return ErrNotConfigured
	}

	for _, path := range paths {
		if err := c.removeOne(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) removeOne(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(path), nil)
	if err != nil {
		return fmt.Errorf("создание запроса Remove: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("удаление объекта %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusNoContent:
		c.logger.Debug("Объект удалён из хранилища", slog.String("path", path))
		return nil
	case resp.StatusCode == http.StatusNotFound:
		c.logger.Debug("Объект отсутствует в хранилище", slog.String("path", path))
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("хранилище вернуло статус %d при удалении %s: %s",
			resp.StatusCode, path, string(respBody))
	}
}
