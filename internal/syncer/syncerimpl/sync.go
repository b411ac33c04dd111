package syncerimpl

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mirrorworks/instamirror/internal/domain"
	"github.com/mirrorworks/instamirror/internal/identity"
	"github.com/mirrorworks/instamirror/internal/repositories/connection"
	"github.com/mirrorworks/instamirror/internal/store"
	apperrors "github.com/mirrorworks/instamirror/pkg/errors"
)

func (s *SyncerImpl) SyncAccount(ctx context.Context, shop string) (*domain.SyncReport, error) {
	result, err, shared := s.group.Do(shop, func() (any, error) {
		return s.syncAccount(ctx, shop)
	})
	if err != nil {
		return nil, err
	}
	report := result.(*domain.SyncReport)
	if shared {
		s.Logger.Debug("Joined in-flight sync run", "shop", shop, "run_id", report.RunID)
	}
	return report, nil
}

// syncAccount is the run boundary. Everything below it either finishes the
// run or surfaces here, where the outcome is recorded as an audit row and,
// on failure, pushed to the ops channel.
func (s *SyncerImpl) syncAccount(ctx context.Context, shop string) (report *domain.SyncReport, err error) {
	startedAt := time.Now().UTC()
	runID := uuid.NewString()

	conn, err := s.ConnectionRepo.GetByShop(ctx, shop)
	if err != nil {
		if errors.Is(err, connection.ErrNotFound) {
			return nil, apperrors.ErrShopNotConnected
		}
		return nil, apperrors.Wrap(err, "load connection")
	}

	s.Logger.Info("Sync run starting", "shop", shop, "run_id", runID, "username", conn.Username)

	username := conn.Username
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("sync run panicked: %v", r)
			report = nil
		}
		finishedAt := time.Now().UTC()

		if err != nil {
			s.recordRun(ctx, &domain.SyncRun{
				RunID:        runID,
				Shop:         shop,
				Username:     username,
				Status:       domain.SyncRunStatusFailed,
				ErrorMessage: err.Error(),
				StartedAt:    startedAt,
				FinishedAt:   finishedAt,
			})
			if apperrors.IsReconnectRequired(err) {
				s.Notifier.ReconnectRequired(shop, err.Error())
			} else {
				s.Notifier.RunFailed(shop, err)
			}
			return
		}

		report.FinishedAt = finishedAt
		s.recordRun(ctx, &domain.SyncRun{
			RunID:        runID,
			Shop:         shop,
			Username:     report.Username,
			Status:       domain.SyncRunStatusSuccess,
			PostsCreated: report.PostsCreated,
			PostsUpdated: report.PostsUpdated,
			PostsSkipped: report.PostsSkipped,
			StartedAt:    startedAt,
			FinishedAt:   finishedAt,
		})
		s.Logger.Info("Sync run finished",
			"shop", shop,
			"run_id", runID,
			"created", report.PostsCreated,
			"updated", report.PostsUpdated,
			"skipped", report.PostsSkipped,
			"item_errors", len(report.ItemErrors),
		)
	}()

	if conn.TokenExpired(time.Now()) {
		return nil, apperrors.Wrap(apperrors.ErrReconnectRequired, "provider token expired")
	}

	st := s.StoreFactory.ForShop(conn.Shop, conn.StoreToken)

	profile, err := s.Instagram.FetchProfile(ctx, conn.AccessToken)
	if err != nil {
		return nil, err
	}
	username = profile.Username

	posts, err := s.Instagram.FetchPosts(ctx, conn.AccessToken)
	if err != nil {
		return nil, err
	}

	report = &domain.SyncReport{
		RunID:     runID,
		Shop:      shop,
		Username:  profile.Username,
		StartedAt: startedAt,
	}

	if err = s.admitAccount(ctx, st, conn, profile, report); err != nil {
		return nil, err
	}

	postIDs := s.reconcileAll(ctx, st, posts, profile.Username, report)

	if err = s.upsertListing(ctx, st, posts, postIDs, profile, report); err != nil {
		return nil, err
	}

	return report, nil
}

// admitAccount enforces the one-account-per-store rule. A changed username
// means the store still holds the previous account's mirror: purge it fully,
// then persist the new username. The persist comes last so a failed purge
// leaves the old username on record and the next run detects the switch
// again.
func (s *SyncerImpl) admitAccount(ctx context.Context, st store.Client, conn *domain.ConnectionRecord, profile *domain.Profile, report *domain.SyncReport) error {
	if conn.Username == profile.Username {
		return nil
	}

	if conn.Username != "" {
		report.AccountSwitched = true
		s.Logger.Info("Account switch detected",
			"shop", conn.Shop,
			"previous", conn.Username,
			"current", profile.Username,
		)
		purgeReport, err := s.Purge.PurgeAccount(ctx, st, conn.Username)
		if err != nil {
			return apperrors.Wrap(err, "purge prior account")
		}
		if len(purgeReport.Errors) > 0 {
			s.Logger.Warn("Prior account purge finished with errors",
				"shop", conn.Shop,
				"username", conn.Username,
				"errors", len(purgeReport.Errors),
			)
		}
	}

	if err := s.ConnectionRepo.UpdateUsername(ctx, conn.Shop, profile.Username); err != nil {
		return apperrors.Wrap(err, "persist username")
	}
	return nil
}

// reconcileAll walks the fetched posts in provider order. A failed item is
// skipped and the run continues; the returned object IDs, in run order, are
// what the listing will reference.
func (s *SyncerImpl) reconcileAll(ctx context.Context, st store.Client, posts []domain.RemotePost, username string, report *domain.SyncReport) []string {
	postIDs := make([]string, 0, len(posts))
	for _, post := range posts {
		objectID, ok := s.reconcilePost(ctx, st, post, username, report)
		if !ok {
			report.PostsSkipped++
			continue
		}
		postIDs = append(postIDs, objectID)
	}
	return postIDs
}

// reconcilePost creates or updates one mirrored post. Existing posts keep
// their uploaded files and only get their mutable fields refreshed; new posts
// upload media first and are only written when at least one file made it.
func (s *SyncerImpl) reconcilePost(ctx context.Context, st store.Client, post domain.RemotePost, username string, report *domain.SyncReport) (string, bool) {
	key := identity.PostKey(username, post.ID)

	existing, err := st.GetObject(ctx, store.KindPost, key)
	if err != nil {
		s.itemError(report, post.ID, "lookup", err)
		return "", false
	}

	sourceData, err := domain.EncodePayload(post)
	if err != nil {
		s.itemError(report, post.ID, "encode post", err)
		return "", false
	}

	fields := map[string]string{
		"source_data":    sourceData.String(),
		"caption":        post.Caption,
		"like_count":     strconv.Itoa(post.LikeCount),
		"comments_count": strconv.Itoa(post.CommentsCount),
	}

	created := existing == nil
	if created || s.Config.Sync.ReuploadOnUpdate {
		outcome := s.Uploader.UploadPostMedia(ctx, st, post, username)
		for _, failure := range outcome.Failures {
			s.itemError(report, post.ID, "media upload", errors.New(failure))
		}
		if outcome.Failed() {
			if len(outcome.Failures) == 0 {
				s.itemError(report, post.ID, "media upload", errors.New("post has no uploadable media"))
			}
			return "", false
		}
		mediaIDs, err := domain.EncodePayload(outcome.FileIDs)
		if err != nil {
			s.itemError(report, post.ID, "encode file ids", err)
			return "", false
		}
		fields["media_file_ids"] = mediaIDs.String()
	}

	obj, err := st.UpsertObject(ctx, store.KindPost, key, fields)
	if err != nil {
		s.itemError(report, post.ID, "upsert", err)
		return "", false
	}
	if len(obj.UserErrors) > 0 {
		s.itemError(report, post.ID, "upsert", errors.New(obj.UserErrors[0].Message))
		return "", false
	}

	if created {
		report.PostsCreated++
	} else {
		report.PostsUpdated++
	}
	return obj.ID, true
}

// upsertListing writes the account's aggregate object exactly once, after
// the post loop, so it reflects the run's final state rather than an
// intermediate one.
func (s *SyncerImpl) upsertListing(ctx context.Context, st store.Client, posts []domain.RemotePost, postIDs []string, profile *domain.Profile, report *domain.SyncReport) error {
	envelope, err := domain.EncodePayload(domain.FetchEnvelope{Data: posts})
	if err != nil {
		return apperrors.Wrap(err, "encode fetch envelope")
	}
	idsPayload, err := domain.EncodePayload(postIDs)
	if err != nil {
		return apperrors.Wrap(err, "encode post ids")
	}

	obj, err := st.UpsertObject(ctx, store.KindListing, identity.ListingKey(profile.Username), map[string]string{
		"source_data":  envelope.String(),
		"post_ids":     idsPayload.String(),
		"username":     profile.Username,
		"display_name": profile.DisplayName,
	})
	if err != nil {
		return apperrors.Wrap(err, "upsert listing")
	}
	if len(obj.UserErrors) > 0 {
		return apperrors.New("listing rejected: " + obj.UserErrors[0].Message)
	}

	report.ListingID = obj.ID
	return nil
}

func (s *SyncerImpl) itemError(report *domain.SyncReport, postID, stage string, err error) {
	s.Logger.Warn("Post reconcile error",
		"shop", report.Shop,
		"post_id", postID,
		"stage", stage,
		"error", err,
	)
	report.ItemErrors = append(report.ItemErrors, domain.ItemError{
		PostID:  postID,
		Message: fmt.Sprintf("%s: %v", stage, err),
	})
}

func (s *SyncerImpl) recordRun(ctx context.Context, run *domain.SyncRun) {
	if err := s.SyncRunRepo.Create(ctx, run); err != nil {
		s.Logger.Error("Failed to record sync run",
			"shop", run.Shop,
			"run_id", run.RunID,
			"error", err,
		)
	}
}
