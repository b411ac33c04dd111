package instagramimpl

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/mirrorworks/instamirror/internal/domain"
	apperrors "github.com/mirrorworks/instamirror/pkg/errors"
)

const mediaFields = "id,media_type,media_url,thumbnail_url,caption,permalink,timestamp,like_count,comments_count,children{id,media_type,media_url,thumbnail_url}"

// graphTimeLayout covers the provider's ISO8601 variant with a colon-less
// zone offset, which the stock RFC3339 layout rejects.
const graphTimeLayout = "2006-01-02T15:04:05-0700"

type mediaNode struct {
	ID            string `json:"id"`
	MediaType     string `json:"media_type"`
	MediaURL      string `json:"media_url"`
	ThumbnailURL  string `json:"thumbnail_url"`
	Caption       string `json:"caption"`
	Permalink     string `json:"permalink"`
	Timestamp     string `json:"timestamp"`
	LikeCount     int    `json:"like_count"`
	CommentsCount int    `json:"comments_count"`
	Children      struct {
		Data []mediaNode `json:"data"`
	} `json:"children"`
}

type mediaPage struct {
	Data   []mediaNode `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
}

func (c *InstaImpl) FetchProfile(ctx context.Context, accessToken string) (*domain.Profile, error) {
	params := url.Values{}
	params.Set("fields", "username,name")
	params.Set("access_token", accessToken)

	var profile domain.Profile
	if err := c.getJSON(ctx, c.baseURL+"/me?"+params.Encode(), &profile); err != nil {
		return nil, apperrors.Wrap(err, "fetch profile")
	}
	if profile.Username == "" {
		return nil, apperrors.New("provider returned a profile without a username")
	}
	return &profile, nil
}

func (c *InstaImpl) FetchPosts(ctx context.Context, accessToken string) ([]domain.RemotePost, error) {
	params := url.Values{}
	params.Set("fields", mediaFields)
	params.Set("limit", strconv.Itoa(c.maxPosts))
	params.Set("access_token", accessToken)
	next := c.baseURL + "/me/media?" + params.Encode()

	posts := make([]domain.RemotePost, 0, c.maxPosts)
	for next != "" && len(posts) < c.maxPosts {
		var page mediaPage
		if err := c.getJSON(ctx, next, &page); err != nil {
			return nil, apperrors.Wrap(err, "fetch media page")
		}
		for _, node := range page.Data {
			posts = append(posts, c.toPost(node))
		}
		next = page.Paging.Next
	}

	if len(posts) > c.maxPosts {
		posts = posts[:c.maxPosts]
	}
	c.logger.Debug("Fetched provider media", "count", len(posts))
	return posts, nil
}

func (c *InstaImpl) toPost(node mediaNode) domain.RemotePost {
	post := domain.RemotePost{
		ID:            node.ID,
		MediaType:     domain.MediaType(node.MediaType),
		MediaURL:      node.MediaURL,
		ThumbnailURL:  node.ThumbnailURL,
		Caption:       node.Caption,
		Permalink:     node.Permalink,
		LikeCount:     node.LikeCount,
		CommentsCount: node.CommentsCount,
	}
	if node.Timestamp != "" {
		ts, err := time.Parse(graphTimeLayout, node.Timestamp)
		if err != nil {
			c.logger.Warn("Unparseable media timestamp", "post_id", node.ID, "timestamp", node.Timestamp)
		} else {
			post.Timestamp = ts
		}
	}
	for _, child := range node.Children.Data {
		post.Children = append(post.Children, domain.RemoteMedia{
			ID:           child.ID,
			MediaType:    domain.MediaType(child.MediaType),
			MediaURL:     child.MediaURL,
			ThumbnailURL: child.ThumbnailURL,
		})
	}
	return post
}
