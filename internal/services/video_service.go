package services

import (
	"context"
	"io"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/laibam4/reelico/internal/models"
	"github.com/laibam4/reelico/internal/repository"
	"github.com/laibam4/reelico/internal/storage"
	"github.com/laibam4/reelico/internal/utils"
)

const defaultContentType = "video/mp4"

// UploadInput carries one validated multipart upload.
type UploadInput struct {
	CreatorID   string
	Title       string
	Publisher   string
	Producer    string
	Genre       string
	AgeRating   string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// VideoService orchestrates the blob store and the catalog. store may be
// nil when the blob credential is absent; upload/stream then fail with
// ErrStorageNotConfigured while catalog reads keep working.
type VideoService struct {
	repo   repository.VideoRepository
	store  storage.BlobStore
	logger *zap.SugaredLogger
}

func NewVideoService(repo repository.VideoRepository, store storage.BlobStore, logger *zap.SugaredLogger) *VideoService {
	return &VideoService{repo: repo, store: store, logger: logger}
}

// Upload writes the binary first, then the metadata record referencing it.
// A record is never created for a blob that was not accepted.
func (s *VideoService) Upload(ctx context.Context, in UploadInput) (*models.Video, error) {
	if s.store == nil {
		return nil, ErrStorageNotConfigured
	}
	creator, err := primitive.ObjectIDFromHex(in.CreatorID)
	if err != nil {
		return nil, ErrBadCreatorID
	}

	key := utils.StorageKey(in.Filename)
	ct := in.ContentType
	if ct == "" {
		ct = defaultContentType
	}
	if err := s.store.Upload(ctx, key, ct, in.Body); err != nil {
		s.logger.Errorw("blob upload failed", "key", key, "err", err)
		return nil, err
	}

	video := &models.Video{
		Title:      in.Title,
		Publisher:  in.Publisher,
		Producer:   in.Producer,
		Genre:      in.Genre,
		AgeRating:  in.AgeRating,
		StorageKey: key,
		CreatorID:  creator,
		Size:       in.Size,
		MimeType:   ct,
	}
	if err := s.repo.Insert(ctx, video); err != nil {
		s.logger.Errorw("video insert failed", "key", key, "err", err)
		return nil, err
	}
	return video, nil
}

// List queries the catalog. creatorID, when set, must be a hex ObjectID.
func (s *VideoService) List(ctx context.Context, search, creatorID string) ([]models.VideoWithCreator, error) {
	f := repository.VideoFilter{Search: search}
	if creatorID != "" {
		oid, err := primitive.ObjectIDFromHex(creatorID)
		if err != nil {
			return nil, ErrBadCreatorID
		}
		f.CreatorID = oid
	}
	return s.repo.Find(ctx, f)
}

// Stat resolves object metadata for streaming. All storage failures are
// collapsed to ErrNotFound for the caller; the cause stays in the log.
func (s *VideoService) Stat(ctx context.Context, key string) (storage.ObjectInfo, error) {
	if s.store == nil {
		return storage.ObjectInfo{}, ErrStorageNotConfigured
	}
	info, err := s.store.Head(ctx, key)
	if err != nil {
		s.logger.Warnw("blob head failed", "key", key, "err", err)
		return storage.ObjectInfo{}, ErrNotFound
	}
	if info.ContentType == "" {
		info.ContentType = defaultContentType
	}
	return info, nil
}

// Open starts reading the object, optionally restricted to byteRange
// ("bytes=start-end"). The caller closes the stream.
func (s *VideoService) Open(ctx context.Context, key, byteRange string) (io.ReadCloser, error) {
	if s.store == nil {
		return nil, ErrStorageNotConfigured
	}
	rc, err := s.store.Get(ctx, key, byteRange)
	if err != nil {
		s.logger.Warnw("blob get failed", "key", key, "range", byteRange, "err", err)
		return nil, ErrNotFound
	}
	return rc, nil
}
