package uploaderimpl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mirrorworks/instamirror/internal/domain"
	"github.com/mirrorworks/instamirror/internal/identity"
	"github.com/mirrorworks/instamirror/internal/store"
)

func (u *UploaderImpl) UploadPostMedia(ctx context.Context, st store.Client, post domain.RemotePost, username string) domain.UploadOutcome {
	var outcome domain.UploadOutcome
	for _, media := range post.Media() {
		fileID, err := u.uploadOne(ctx, st, post.ID, media, username)
		if err != nil {
			u.logger.Warn("Media upload failed",
				"post_id", post.ID,
				"child_id", media.ID,
				"error", err,
			)
			outcome.Failures = append(outcome.Failures, describeFailure(post.ID, media.ID, err))
			continue
		}
		outcome.FileIDs = append(outcome.FileIDs, fileID)
	}
	return outcome
}

func (u *UploaderImpl) uploadOne(ctx context.Context, st store.Client, postID string, media domain.RemoteMedia, username string) (string, error) {
	altTag := identity.FileAltTag(username, postID, media.ID)
	if media.IsVideo() {
		return u.uploadVideo(ctx, st, altTag, media)
	}
	return u.uploadImage(ctx, st, altTag, media)
}

// uploadImage hands the provider URL to the store and lets it fetch the bytes
// itself.
func (u *UploaderImpl) uploadImage(ctx context.Context, st store.Client, altTag string, media domain.RemoteMedia) (string, error) {
	result, err := st.CreateFileFromURL(ctx, media.MediaURL, store.FileContentImage, altTag)
	if err != nil {
		return "", err
	}
	return fileIDFrom(result)
}

// uploadVideo runs the staged path. The provider URL is signed and short
// lived, so the bytes are pulled first; only then is a target requested,
// sized to exactly what was fetched.
func (u *UploaderImpl) uploadVideo(ctx context.Context, st store.Client, altTag string, media domain.RemoteMedia) (string, error) {
	data, mimeType, err := u.fetchMedia(ctx, media.MediaURL)
	if err != nil {
		return "", fmt.Errorf("fetch video bytes: %w", err)
	}

	filename := altTag + extensionFor(mimeType)
	target, err := st.CreateStagedUpload(ctx, filename, mimeType, int64(len(data)))
	if err != nil {
		return "", err
	}

	if err := st.UploadStagedBytes(ctx, target, filename, data); err != nil {
		return "", err
	}

	result, err := st.CreateFileFromURL(ctx, target.ResourceURL, store.FileContentVideo, altTag)
	if err != nil {
		return "", err
	}
	return fileIDFrom(result)
}

func (u *UploaderImpl) fetchMedia(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("media origin returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	mimeType, _, _ := strings.Cut(resp.Header.Get("Content-Type"), ";")
	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = "video/mp4"
	}
	return data, mimeType, nil
}

func fileIDFrom(result *store.FileResult) (string, error) {
	if len(result.UserErrors) > 0 {
		return "", fmt.Errorf("store rejected file: %s", result.UserErrors[0].Message)
	}
	if result.FileID == "" {
		return "", errors.New("store returned no file id")
	}
	return result.FileID, nil
}

func extensionFor(mimeType string) string {
	switch {
	case strings.HasSuffix(mimeType, "quicktime"):
		return ".mov"
	case strings.HasSuffix(mimeType, "webm"):
		return ".webm"
	default:
		return ".mp4"
	}
}

func describeFailure(postID, childID string, err error) string {
	if childID != "" {
		return fmt.Sprintf("media %s of post %s: %v", childID, postID, err)
	}
	return fmt.Sprintf("post %s: %v", postID, err)
}
