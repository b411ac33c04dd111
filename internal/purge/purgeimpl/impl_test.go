package purgeimpl

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mirrorworks/instamirror/internal/store"
	storemocks "github.com/mirrorworks/instamirror/internal/store/mocks"
	"github.com/mirrorworks/instamirror/pkg/config"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newPurge(t *testing.T, pageSize, batchSize int) *PurgeImpl {
	t.Helper()
	cfg := &config.Config{}
	cfg.Store.PageSize = pageSize
	cfg.Store.DeleteBatchSize = batchSize
	return New(PurgeImplOpts{
		Config: cfg,
		Logger: logger.New(logger.Opts{Env: "development"}),
	})
}

func fileItems(start, n int) []store.Item {
	items := make([]store.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, store.Item{
			ID:  fmt.Sprintf("gid://f%d", start+i),
			Alt: fmt.Sprintf("alice-post_%d", start+i),
		})
	}
	return items
}

func TestPurgeAccountPagesAndBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	p := newPurge(t, 250, 250)

	st.EXPECT().QueryPage(gomock.Any(), store.KindPost, "", 250, "").Return(&store.Page{}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindListing, "", 250, "").Return(&store.Page{}, nil)

	// 600 matching files arrive over three pages.
	st.EXPECT().QueryPage(gomock.Any(), store.KindFile, "alice-post_", 250, "").
		Return(&store.Page{Items: fileItems(0, 250), HasNextPage: true, EndCursor: "c1"}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindFile, "alice-post_", 250, "c1").
		Return(&store.Page{Items: fileItems(250, 250), HasNextPage: true, EndCursor: "c2"}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindFile, "alice-post_", 250, "c2").
		Return(&store.Page{Items: fileItems(500, 100), HasNextPage: false}, nil)

	var batchSizes []int
	st.EXPECT().DeleteBatch(gomock.Any(), store.KindFile, gomock.Any()).Times(3).
		DoAndReturn(func(_ context.Context, _ store.Kind, ids []string) (*store.DeleteResult, error) {
			batchSizes = append(batchSizes, len(ids))
			return &store.DeleteResult{DeletedIDs: ids}, nil
		})

	report, err := p.PurgeAccount(context.Background(), st, "alice")
	require.NoError(t, err)
	assert.Equal(t, []int{250, 250, 100}, batchSizes)
	assert.Equal(t, 600, report.FilesDeleted)
	assert.Zero(t, report.PostsDeleted)
	assert.Zero(t, report.ListingsDeleted)
	assert.Empty(t, report.Errors)
}

func TestPurgeAccountScopesToUsername(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	p := newPurge(t, 250, 250)

	st.EXPECT().QueryPage(gomock.Any(), store.KindPost, "", 250, "").Return(&store.Page{Items: []store.Item{
		{ID: "gid://p1", Handle: "alice-post-1"},
		{ID: "gid://p2", Handle: "bob-post-1"},
		{ID: "gid://p3", Handle: "alice-post-2"},
	}}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindListing, "", 250, "").Return(&store.Page{Items: []store.Item{
		{ID: "gid://l1", Handle: "alice-feed-list"},
		{ID: "gid://l2", Handle: "bob-feed-list"},
	}}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindFile, "alice-post_", 250, "").Return(&store.Page{Items: []store.Item{
		{ID: "gid://f1", Alt: "alice-post_1"},
		{ID: "gid://f2", Alt: "malice-post_9"},
	}}, nil)

	st.EXPECT().DeleteBatch(gomock.Any(), store.KindPost, []string{"gid://p1", "gid://p3"}).
		Return(&store.DeleteResult{DeletedIDs: []string{"gid://p1", "gid://p3"}}, nil)
	st.EXPECT().DeleteBatch(gomock.Any(), store.KindListing, []string{"gid://l1"}).
		Return(&store.DeleteResult{DeletedIDs: []string{"gid://l1"}}, nil)
	st.EXPECT().DeleteBatch(gomock.Any(), store.KindFile, []string{"gid://f1"}).
		Return(&store.DeleteResult{DeletedIDs: []string{"gid://f1"}}, nil)

	report, err := p.PurgeAccount(context.Background(), st, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, report.PostsDeleted)
	assert.Equal(t, 1, report.ListingsDeleted)
	assert.Equal(t, 1, report.FilesDeleted)
}

func TestPurgeAccountZeroMatchesIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	p := newPurge(t, 250, 250)

	st.EXPECT().QueryPage(gomock.Any(), gomock.Any(), gomock.Any(), 250, "").
		Times(3).Return(&store.Page{}, nil)
	// No DeleteBatch expectations: nothing to remove.

	report, err := p.PurgeAccount(context.Background(), st, "alice")
	require.NoError(t, err)
	assert.Zero(t, report.PostsDeleted)
	assert.Zero(t, report.ListingsDeleted)
	assert.Zero(t, report.FilesDeleted)
	assert.Empty(t, report.Errors)
}

func TestPurgeAccountBatchFailureContinues(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	p := newPurge(t, 250, 2)

	st.EXPECT().QueryPage(gomock.Any(), store.KindPost, "", 250, "").Return(&store.Page{}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindListing, "", 250, "").Return(&store.Page{}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindFile, "alice-post_", 250, "").
		Return(&store.Page{Items: fileItems(0, 4)}, nil)

	gomock.InOrder(
		st.EXPECT().DeleteBatch(gomock.Any(), store.KindFile, []string{"gid://f0", "gid://f1"}).
			Return(nil, errors.New("store unavailable")),
		st.EXPECT().DeleteBatch(gomock.Any(), store.KindFile, []string{"gid://f2", "gid://f3"}).
			Return(&store.DeleteResult{DeletedIDs: []string{"gid://f2", "gid://f3"}}, nil),
	)

	report, err := p.PurgeAccount(context.Background(), st, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, report.FilesDeleted)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "store unavailable")
}

func TestPurgeAccountEnumerationFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	p := newPurge(t, 250, 250)

	st.EXPECT().QueryPage(gomock.Any(), store.KindPost, "", 250, "").
		Return(nil, errors.New("store unavailable"))

	_, err := p.PurgeAccount(context.Background(), st, "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enumerate instagram_post")
}

func TestPurgeAccountCountsPartialBatchResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	p := newPurge(t, 250, 250)

	st.EXPECT().QueryPage(gomock.Any(), store.KindPost, "", 250, "").Return(&store.Page{Items: []store.Item{
		{ID: "gid://p1", Handle: "alice-post-1"},
		{ID: "gid://p2", Handle: "alice-post-2"},
	}}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindListing, "", 250, "").Return(&store.Page{}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindFile, "alice-post_", 250, "").Return(&store.Page{}, nil)

	st.EXPECT().DeleteBatch(gomock.Any(), store.KindPost, []string{"gid://p1", "gid://p2"}).
		Return(&store.DeleteResult{
			DeletedIDs: []string{"gid://p1"},
			UserErrors: []store.UserError{{Field: "id", Message: "record locked"}},
		}, nil)

	report, err := p.PurgeAccount(context.Background(), st, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1, report.PostsDeleted)
	require.Len(t, report.Errors, 1)
	assert.Contains(t, report.Errors[0], "record locked")
}

func TestPurgeAllSweepsEveryAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storemocks.NewMockClient(ctrl)
	p := newPurge(t, 250, 250)

	st.EXPECT().QueryPage(gomock.Any(), store.KindPost, "", 250, "").Return(&store.Page{Items: []store.Item{
		{ID: "gid://p1", Handle: "alice-post-1"},
		{ID: "gid://p2", Handle: "bob-post-1"},
	}}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindListing, "", 250, "").Return(&store.Page{Items: []store.Item{
		{ID: "gid://l1", Handle: "alice-feed-list"},
		{ID: "gid://l2", Handle: "bob-feed-list"},
	}}, nil)
	st.EXPECT().QueryPage(gomock.Any(), store.KindFile, "-post_", 250, "").Return(&store.Page{Items: []store.Item{
		{ID: "gid://f1", Alt: "alice-post_1"},
		{ID: "gid://f2", Alt: "bob-post_7_c1"},
		{ID: "gid://f3", Alt: "summer-banner"},
	}}, nil)

	st.EXPECT().DeleteBatch(gomock.Any(), store.KindPost, []string{"gid://p1", "gid://p2"}).
		Return(&store.DeleteResult{DeletedIDs: []string{"gid://p1", "gid://p2"}}, nil)
	st.EXPECT().DeleteBatch(gomock.Any(), store.KindListing, []string{"gid://l1", "gid://l2"}).
		Return(&store.DeleteResult{DeletedIDs: []string{"gid://l1", "gid://l2"}}, nil)
	st.EXPECT().DeleteBatch(gomock.Any(), store.KindFile, []string{"gid://f1", "gid://f2"}).
		Return(&store.DeleteResult{DeletedIDs: []string{"gid://f1", "gid://f2"}}, nil)

	report, err := p.PurgeAll(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, 2, report.PostsDeleted)
	assert.Equal(t, 2, report.ListingsDeleted)
	assert.Equal(t, 2, report.FilesDeleted)
}
