package uploaderimpl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mirrorworks/instamirror/internal/domain"
	"github.com/mirrorworks/instamirror/internal/store"
	storemocks "github.com/mirrorworks/instamirror/internal/store/mocks"
	"github.com/mirrorworks/instamirror/pkg/config"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUploader(t *testing.T) *UploaderImpl {
	t.Helper()
	cfg := &config.Config{}
	cfg.Instagram.RequestsPerSecond = 1000
	cfg.Instagram.Burst = 1000
	return New(UploaderImplOpts{
		Config: cfg,
		Logger: logger.New(logger.Opts{Env: "development"}),
	})
}

func TestUploadImagePost(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)

	st.EXPECT().
		CreateFileFromURL(gomock.Any(), "https://cdn/a.jpg", store.FileContentImage, "alice-post_111").
		Return(&store.FileResult{FileID: "gid://f1"}, nil)

	outcome := newUploader(t).UploadPostMedia(context.Background(), st, domain.RemotePost{
		ID:        "111",
		MediaType: domain.MediaTypeImage,
		MediaURL:  "https://cdn/a.jpg",
	}, "alice")

	assert.Equal(t, []string{"gid://f1"}, outcome.FileIDs)
	assert.Empty(t, outcome.Failures)
	assert.False(t, outcome.Failed())
}

func TestUploadVideoPostStagedPath(t *testing.T) {
	payload := []byte("mp4-bytes-here")
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4; charset=binary")
		_, _ = w.Write(payload)
	}))
	defer origin.Close()

	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	target := &store.StagedTarget{
		UploadURL:   "https://upload.example.com/bucket",
		ResourceURL: "https://upload.example.com/bucket/key",
	}

	gomock.InOrder(
		st.EXPECT().
			CreateStagedUpload(gomock.Any(), "alice-post_222.mp4", "video/mp4", int64(len(payload))).
			Return(target, nil),
		st.EXPECT().
			UploadStagedBytes(gomock.Any(), target, "alice-post_222.mp4", payload).
			Return(nil),
		st.EXPECT().
			CreateFileFromURL(gomock.Any(), target.ResourceURL, store.FileContentVideo, "alice-post_222").
			Return(&store.FileResult{FileID: "gid://f2"}, nil),
	)

	outcome := newUploader(t).UploadPostMedia(context.Background(), st, domain.RemotePost{
		ID:        "222",
		MediaType: domain.MediaTypeVideo,
		MediaURL:  origin.URL + "/signed/clip.mp4",
	}, "alice")

	assert.Equal(t, []string{"gid://f2"}, outcome.FileIDs)
	assert.Empty(t, outcome.Failures)
}

func TestUploadVideoFetchFailureSkipsStagedSteps(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "signature expired", http.StatusForbidden)
	}))
	defer origin.Close()

	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	// No store expectations: a dead source URL must not consume a staged
	// target.

	outcome := newUploader(t).UploadPostMedia(context.Background(), st, domain.RemotePost{
		ID:        "222",
		MediaType: domain.MediaTypeVideo,
		MediaURL:  origin.URL + "/signed/clip.mp4",
	}, "alice")

	assert.Empty(t, outcome.FileIDs)
	require.Len(t, outcome.Failures, 1)
	assert.Contains(t, outcome.Failures[0], "post 222")
	assert.Contains(t, outcome.Failures[0], "403")
	assert.True(t, outcome.Failed())
}

func TestUploadCarouselPreservesOrderOnPartialFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("clip"))
	}))
	defer origin.Close()

	st.EXPECT().
		CreateFileFromURL(gomock.Any(), "https://cdn/c1.jpg", store.FileContentImage, "alice-post_333_c1").
		Return(&store.FileResult{FileID: "gid://f1"}, nil)
	st.EXPECT().
		CreateStagedUpload(gomock.Any(), "alice-post_333_c2.mp4", "video/mp4", int64(4)).
		Return(nil, errors.New("store unavailable"))
	st.EXPECT().
		CreateFileFromURL(gomock.Any(), "https://cdn/c3.jpg", store.FileContentImage, "alice-post_333_c3").
		Return(&store.FileResult{FileID: "gid://f3"}, nil)

	outcome := newUploader(t).UploadPostMedia(context.Background(), st, domain.RemotePost{
		ID:        "333",
		MediaType: domain.MediaTypeCarousel,
		Children: []domain.RemoteMedia{
			{ID: "c1", MediaType: domain.MediaTypeImage, MediaURL: "https://cdn/c1.jpg"},
			{ID: "c2", MediaType: domain.MediaTypeVideo, MediaURL: origin.URL + "/c2.mp4"},
			{ID: "c3", MediaType: domain.MediaTypeImage, MediaURL: "https://cdn/c3.jpg"},
		},
	}, "alice")

	assert.Equal(t, []string{"gid://f1", "gid://f3"}, outcome.FileIDs)
	require.Len(t, outcome.Failures, 1)
	assert.Contains(t, outcome.Failures[0], "media c2 of post 333")
	assert.False(t, outcome.Failed())
}

func TestUploadImageRejectedByStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)

	st.EXPECT().
		CreateFileFromURL(gomock.Any(), gomock.Any(), store.FileContentImage, "alice-post_444").
		Return(&store.FileResult{
			UserErrors: []store.UserError{{Field: "files.originalSource", Message: "source unreachable"}},
		}, nil)

	outcome := newUploader(t).UploadPostMedia(context.Background(), st, domain.RemotePost{
		ID:        "444",
		MediaType: domain.MediaTypeImage,
		MediaURL:  "https://cdn/gone.jpg",
	}, "alice")

	assert.True(t, outcome.Failed())
	require.Len(t, outcome.Failures, 1)
	assert.Contains(t, outcome.Failures[0], "source unreachable")
}

func TestUploadVideoRegistrationUserErrors(t *testing.T) {
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "video/mp4")
		_, _ = w.Write([]byte("clip"))
	}))
	defer origin.Close()

	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	target := &store.StagedTarget{UploadURL: "https://u", ResourceURL: "https://r"}

	gomock.InOrder(
		st.EXPECT().CreateStagedUpload(gomock.Any(), gomock.Any(), "video/mp4", int64(4)).Return(target, nil),
		st.EXPECT().UploadStagedBytes(gomock.Any(), target, gomock.Any(), []byte("clip")).Return(nil),
		st.EXPECT().CreateFileFromURL(gomock.Any(), "https://r", store.FileContentVideo, "alice-post_555").
			Return(&store.FileResult{
				UserErrors: []store.UserError{{Field: "files", Message: "unsupported codec"}},
			}, nil),
	)

	outcome := newUploader(t).UploadPostMedia(context.Background(), st, domain.RemotePost{
		ID:        "555",
		MediaType: domain.MediaTypeVideo,
		MediaURL:  origin.URL + "/clip.mp4",
	}, "alice")

	assert.True(t, outcome.Failed())
	require.Len(t, outcome.Failures, 1)
	assert.Contains(t, outcome.Failures[0], "unsupported codec")
}
