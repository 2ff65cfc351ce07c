package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/laibam4/reelico/internal/models"
	"github.com/laibam4/reelico/internal/repository"
	"github.com/laibam4/reelico/internal/storage"
)

type stubStore struct {
	uploads     int
	failUploads bool
	lastKey     string
	lastType    string
}

func (s *stubStore) Upload(_ context.Context, key, contentType string, body io.Reader) error {
	if s.failUploads {
		return errors.New("bucket on fire")
	}
	_, _ = io.Copy(io.Discard, body)
	s.uploads++
	s.lastKey = key
	s.lastType = contentType
	return nil
}

func (s *stubStore) Head(context.Context, string) (storage.ObjectInfo, error) {
	return storage.ObjectInfo{}, errors.New("not implemented")
}

func (s *stubStore) Get(context.Context, string, string) (io.ReadCloser, error) {
	return nil, errors.New("not implemented")
}

type stubRepo struct {
	inserted []*models.Video
}

func (r *stubRepo) Insert(_ context.Context, v *models.Video) error {
	v.ID = primitive.NewObjectID()
	r.inserted = append(r.inserted, v)
	return nil
}

func (r *stubRepo) Find(context.Context, repository.VideoFilter) ([]models.VideoWithCreator, error) {
	return nil, nil
}

func uploadInput() UploadInput {
	return UploadInput{
		CreatorID: primitive.NewObjectID().Hex(),
		Title:     "t", Publisher: "p", Producer: "pr",
		Filename: "clip.mp4",
		Body:     bytes.NewReader([]byte("data")),
		Size:     4,
	}
}

func TestUploadWritesBlobBeforeRecord(t *testing.T) {
	store := &stubStore{failUploads: true}
	repo := &stubRepo{}
	svc := NewVideoService(repo, store, zap.NewNop().Sugar())

	if _, err := svc.Upload(context.Background(), uploadInput()); err == nil {
		t.Fatal("want error when blob write fails")
	}
	if len(repo.inserted) != 0 {
		t.Fatal("record inserted despite failed blob write; it would dangle")
	}
}

func TestUploadDefaultsContentType(t *testing.T) {
	store := &stubStore{}
	repo := &stubRepo{}
	svc := NewVideoService(repo, store, zap.NewNop().Sugar())

	video, err := svc.Upload(context.Background(), uploadInput())
	if err != nil {
		t.Fatal(err)
	}
	if store.lastType != "video/mp4" {
		t.Errorf("content type = %q, want video/mp4 default", store.lastType)
	}
	if video.MimeType != "video/mp4" {
		t.Errorf("record mime type = %q", video.MimeType)
	}
	if video.StorageKey != store.lastKey {
		t.Errorf("record key %q != stored key %q", video.StorageKey, store.lastKey)
	}
	if !strings.HasSuffix(video.StorageKey, "clip.mp4") {
		t.Errorf("key %q does not carry the filename slug", video.StorageKey)
	}
}

func TestUploadRejectsBadCreator(t *testing.T) {
	svc := NewVideoService(&stubRepo{}, &stubStore{}, zap.NewNop().Sugar())
	in := uploadInput()
	in.CreatorID = "not-an-object-id"
	if _, err := svc.Upload(context.Background(), in); !errors.Is(err, ErrBadCreatorID) {
		t.Errorf("err = %v, want ErrBadCreatorID", err)
	}
}

func TestListRejectsBadCreatorFilter(t *testing.T) {
	svc := NewVideoService(&stubRepo{}, nil, zap.NewNop().Sugar())
	if _, err := svc.List(context.Background(), "", "zzz"); !errors.Is(err, ErrBadCreatorID) {
		t.Errorf("err = %v, want ErrBadCreatorID", err)
	}
}

func TestStatAndOpenWithoutStore(t *testing.T) {
	svc := NewVideoService(&stubRepo{}, nil, zap.NewNop().Sugar())
	if _, err := svc.Stat(context.Background(), "k"); !errors.Is(err, ErrStorageNotConfigured) {
		t.Errorf("Stat err = %v, want ErrStorageNotConfigured", err)
	}
	if _, err := svc.Open(context.Background(), "k", ""); !errors.Is(err, ErrStorageNotConfigured) {
		t.Errorf("Open err = %v, want ErrStorageNotConfigured", err)
	}
}
