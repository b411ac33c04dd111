package purgeimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/mirrorworks/instamirror/internal/domain"
	"github.com/mirrorworks/instamirror/internal/identity"
	"github.com/mirrorworks/instamirror/internal/purge"
	"github.com/mirrorworks/instamirror/internal/store"
	"github.com/mirrorworks/instamirror/pkg/config"
	apperrors "github.com/mirrorworks/instamirror/pkg/errors"
	"github.com/mirrorworks/instamirror/pkg/logger"
	"go.uber.org/fx"
)

// fileAltSignature marks a file as mirror-created regardless of account. Alt
// tags have the shape "{username}-post_{postId}".
const fileAltSignature = "-post_"

type PurgeImpl struct {
	pageSize  int
	batchSize int
	logger    logger.Logger
}

type PurgeImplOpts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

func New(opts PurgeImplOpts) *PurgeImpl {
	return &PurgeImpl{
		pageSize:  opts.Config.Store.PageSize,
		batchSize: opts.Config.Store.DeleteBatchSize,
		logger:    opts.Logger.WithComponent("Purge"),
	}
}

var _ purge.Client = (*PurgeImpl)(nil)

func (p *PurgeImpl) PurgeAccount(ctx context.Context, st store.Client, username string) (*domain.PurgeReport, error) {
	postPrefix := identity.PostKeyPrefix(username)
	listingKey := identity.ListingKey(username)
	altPrefix := identity.FileAltPrefix(username)

	report, err := p.run(ctx, st, []space{
		{kind: store.KindPost, match: func(item store.Item) bool {
			return strings.HasPrefix(item.Handle, postPrefix)
		}},
		{kind: store.KindListing, match: func(item store.Item) bool {
			return item.Handle == listingKey
		}},
		{kind: store.KindFile, filter: altPrefix, match: func(item store.Item) bool {
			return strings.HasPrefix(item.Alt, altPrefix)
		}},
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("Account purge finished",
		"username", username,
		"posts", report.PostsDeleted,
		"listings", report.ListingsDeleted,
		"files", report.FilesDeleted,
		"errors", len(report.Errors),
	)
	return report, nil
}

func (p *PurgeImpl) PurgeAll(ctx context.Context, st store.Client) (*domain.PurgeReport, error) {
	report, err := p.run(ctx, st, []space{
		{kind: store.KindPost},
		{kind: store.KindListing},
		{kind: store.KindFile, filter: fileAltSignature, match: func(item store.Item) bool {
			return strings.Contains(item.Alt, fileAltSignature)
		}},
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("Full purge finished",
		"posts", report.PostsDeleted,
		"listings", report.ListingsDeleted,
		"files", report.FilesDeleted,
		"errors", len(report.Errors),
	)
	return report, nil
}

// space is one object space to sweep: which kind, the coarse server filter,
// and the exact client-side match.
type space struct {
	kind   store.Kind
	filter string
	match  func(store.Item) bool
}

// run sweeps each space in two phases. Enumeration completes before the first
// delete so removals cannot shift the cursor under the walk; a failed
// enumeration aborts the purge, a failed delete batch does not.
func (p *PurgeImpl) run(ctx context.Context, st store.Client, spaces []space) (*domain.PurgeReport, error) {
	report := &domain.PurgeReport{}
	for _, sp := range spaces {
		ids, err := p.collectIDs(ctx, st, sp)
		if err != nil {
			return nil, apperrors.Wrap(err, fmt.Sprintf("enumerate %s", sp.kind))
		}
		deleted := p.deleteAll(ctx, st, sp.kind, ids, report)

		switch sp.kind {
		case store.KindPost:
			report.PostsDeleted = deleted
		case store.KindListing:
			report.ListingsDeleted = deleted
		case store.KindFile:
			report.FilesDeleted = deleted
		}
	}
	return report, nil
}

func (p *PurgeImpl) collectIDs(ctx context.Context, st store.Client, sp space) ([]string, error) {
	var ids []string
	pager := store.NewPager(st, sp.kind, sp.filter, p.pageSize)
	for pager.Next(ctx) {
		for _, item := range pager.Items() {
			if sp.match == nil || sp.match(item) {
				ids = append(ids, item.ID)
			}
		}
	}
	if err := pager.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (p *PurgeImpl) deleteAll(ctx context.Context, st store.Client, kind store.Kind, ids []string, report *domain.PurgeReport) int {
	deleted := 0
	for start := 0; start < len(ids); start += p.batchSize {
		end := min(start+p.batchSize, len(ids))
		result, err := st.DeleteBatch(ctx, kind, ids[start:end])
		if err != nil {
			p.logger.Warn("Delete batch failed", "kind", kind, "size", end-start, "error", err)
			report.Errors = append(report.Errors, fmt.Sprintf("delete %s batch: %v", kind, err))
			continue
		}
		deleted += len(result.DeletedIDs)
		for _, ue := range result.UserErrors {
			report.Errors = append(report.Errors, fmt.Sprintf("delete %s: %s", kind, ue.Message))
		}
	}
	return deleted
}
