package handlers

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/laibam4/reelico/internal/middleware"
	"github.com/laibam4/reelico/internal/services"
	"github.com/laibam4/reelico/internal/utils"
)

const streamPath = "/api/videos/stream/"

type VideoHandler struct {
	svc    *services.VideoService
	logger *zap.SugaredLogger
}

func NewVideoHandler(svc *services.VideoService, logger *zap.SugaredLogger) *VideoHandler {
	return &VideoHandler{svc: svc, logger: logger}
}

// Upload handles POST /api/videos/upload (multipart/form-data, 'video' part
// plus text fields). Runs behind the JWT middleware; validation happens
// before any store write so a rejected request has no side effects.
func (h *VideoHandler) Upload(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	if userID == "" {
		return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	fileHeader, err := c.FormFile("video")
	if err != nil {
		return utils.JSONError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	title := c.FormValue("title")
	publisher := c.FormValue("publisher")
	producer := c.FormValue("producer")
	if title == "" || publisher == "" || producer == "" {
		return utils.JSONError(c, fiber.StatusBadRequest, "Title, publisher and producer are required")
	}

	f, err := fileHeader.Open()
	if err != nil {
		return utils.JSONInternal(c, "Upload failed", err)
	}
	defer f.Close()

	video, err := h.svc.Upload(c.Context(), services.UploadInput{
		CreatorID:   userID,
		Title:       title,
		Publisher:   publisher,
		Producer:    producer,
		Genre:       c.FormValue("genre"),
		AgeRating:   c.FormValue("ageRating"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(fiber.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        f,
	})
	if err != nil {
		if errors.Is(err, services.ErrStorageNotConfigured) {
			return utils.JSONError(c, fiber.StatusServiceUnavailable, "Storage not configured")
		}
		if errors.Is(err, services.ErrBadCreatorID) {
			return utils.JSONError(c, fiber.StatusUnauthorized, "Unauthorized")
		}
		return utils.JSONInternal(c, "Upload failed", err)
	}

	video.StreamURL = streamURL(c, video.StorageKey)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Video uploaded successfully",
		"video":   video,
	})
}

// List handles GET /api/videos (?search=, ?creator=). Public.
func (h *VideoHandler) List(c *fiber.Ctx) error {
	videos, err := h.svc.List(c.Context(), c.Query("search"), c.Query("creator"))
	if err != nil {
		if errors.Is(err, services.ErrBadCreatorID) {
			return utils.JSONError(c, fiber.StatusBadRequest, "Invalid creator id")
		}
		return utils.JSONInternal(c, "Failed to fetch videos", err)
	}
	for i := range videos {
		videos[i].StreamURL = streamURL(c, videos[i].StorageKey)
	}
	return c.JSON(videos)
}

// Stream handles GET /api/videos/stream/:key with optional byte-range
// playback. Public; any storage failure is reported as 404.
func (h *VideoHandler) Stream(c *fiber.Ctx) error {
	key, err := url.PathUnescape(c.Params("key"))
	if err != nil || key == "" {
		return utils.JSONError(c, fiber.StatusNotFound, "Video not found")
	}

	info, err := h.svc.Stat(c.Context(), key)
	if err != nil {
		if errors.Is(err, services.ErrStorageNotConfigured) {
			return utils.JSONError(c, fiber.StatusServiceUnavailable, "Storage not configured")
		}
		return utils.JSONError(c, fiber.StatusNotFound, "Video not found")
	}

	c.Set(fiber.HeaderAcceptRanges, "bytes")
	c.Set(fiber.HeaderContentType, info.ContentType)

	rangeHeader := c.Get(fiber.HeaderRange)
	if rangeHeader == "" {
		body, err := h.svc.Open(c.Context(), key, "")
		if err != nil {
			return utils.JSONError(c, fiber.StatusNotFound, "Video not found")
		}
		return c.SendStream(body, int(info.Size))
	}

	start, end, err := parseRange(rangeHeader, info.Size)
	if err != nil {
		c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes */%d", info.Size))
		return utils.JSONError(c, fiber.StatusRequestedRangeNotSatisfiable, "Invalid range")
	}

	byteRange := fmt.Sprintf("bytes=%d-%d", start, end)
	body, err := h.svc.Open(c.Context(), key, byteRange)
	if err != nil {
		return utils.JSONError(c, fiber.StatusNotFound, "Video not found")
	}
	c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes %d-%d/%d", start, end, info.Size))
	c.Status(fiber.StatusPartialContent)
	return c.SendStream(body, int(end-start+1))
}

// streamURL derives the playback URL from the current request origin, so
// stored keys stay valid across host changes.
func streamURL(c *fiber.Ctx, key string) string {
	return c.BaseURL() + streamPath + url.PathEscape(key)
}
