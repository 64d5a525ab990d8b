package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	userapp "github.com/oksasatya/nexus-admin/internal/application/user"
	repo "github.com/oksasatya/nexus-admin/internal/domain/repository"
)

const (
	exportPageSize    = 100
	ndjsonContentType = "application/x-ndjson"
)

// ObjectUploader stores a blob and returns where it can be fetched from.
type ObjectUploader interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

var ErrUploaderNotConfigured = errors.New("export storage not configured")

type Result struct {
	Object string    `json:"object"`
	URL    string    `json:"url"`
	Count  int       `json:"count"`
	At     time.Time `json:"at"`
}

// ExportUsers writes a newline-delimited JSON snapshot of every user.
// Pages are read one after another without a snapshot, so users written
// during an export may be missed or repeated.
type ExportUsers struct {
	Repo     repo.UserRepository
	Uploader ObjectUploader
	Logger   *logrus.Logger
	Now      func() time.Time
}

func NewExportUsers(r repo.UserRepository, up ObjectUploader, logger *logrus.Logger) *ExportUsers {
	return &ExportUsers{Repo: r, Uploader: up, Logger: logger, Now: func() time.Time { return time.Now().UTC() }}
}

func (uc *ExportUsers) Execute(ctx context.Context) (Result, error) {
	if uc.Uploader == nil {
		return Result{}, ErrUploaderNotConfigured
	}
	at := uc.Now()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	count := 0
	for page := 1; ; page++ {
		users, err := uc.Repo.ListPage(ctx, page, exportPageSize)
		if err != nil {
			return Result{}, fmt.Errorf("export page %d: %w", page, err)
		}
		for _, u := range users {
			if err := enc.Encode(userapp.NewUserResponse(u)); err != nil {
				return Result{}, err
			}
			count++
		}
		if len(users) < exportPageSize {
			break
		}
	}

	object := fmt.Sprintf("exports/users-%s.ndjson", at.Format("20060102T150405Z"))
	url, err := uc.Uploader.Upload(ctx, object, ndjsonContentType, &buf)
	if err != nil {
		return Result{}, fmt.Errorf("upload %s: %w", object, err)
	}
	if uc.Logger != nil {
		uc.Logger.WithFields(logrus.Fields{"object": object, "count": count}).Info("users exported")
	}
	return Result{Object: object, URL: url, Count: count, At: at}, nil
}
