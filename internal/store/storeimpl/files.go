package storeimpl

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/mirrorworks/instamirror/internal/store"
)

const createFileMutation = `mutation CreateFile($files: [FileCreateInput!]!) {
  fileCreate(files: $files) {
    files { id }
    userErrors { field message }
  }
}`

const stagedUploadsMutation = `mutation CreateStagedUpload($input: [StagedUploadInput!]!) {
  stagedUploadsCreate(input: $input) {
    stagedTargets {
      url
      resourceUrl
      parameters { name value }
    }
    userErrors { field message }
  }
}`

const listFilesQuery = `query ListFiles($query: String, $first: Int!, $after: String) {
  files(query: $query, first: $first, after: $after) {
    nodes { id alt }
    pageInfo { hasNextPage endCursor }
  }
}`

func (c *StoreImpl) CreateFileFromURL(ctx context.Context, sourceURL string, content store.FileContent, altTag string) (*store.FileResult, error) {
	var result struct {
		FileCreate struct {
			Files []struct {
				ID string `json:"id"`
			} `json:"files"`
			UserErrors []gqlUserError `json:"userErrors"`
		} `json:"fileCreate"`
	}
	err := c.execute(ctx, "fileCreate", createFileMutation, map[string]any{
		"files": []map[string]string{{
			"originalSource": sourceURL,
			"contentType":    string(content),
			"alt":            altTag,
		}},
	}, &result)
	if err != nil {
		return nil, err
	}

	out := &store.FileResult{UserErrors: toUserErrors(result.FileCreate.UserErrors)}
	if len(result.FileCreate.Files) > 0 {
		out.FileID = result.FileCreate.Files[0].ID
	}
	return out, nil
}

func (c *StoreImpl) CreateStagedUpload(ctx context.Context, filename, mimeType string, size int64) (*store.StagedTarget, error) {
	resource := "IMAGE"
	if strings.HasPrefix(mimeType, "video/") {
		resource = "VIDEO"
	}

	var result struct {
		StagedUploadsCreate struct {
			StagedTargets []struct {
				URL         string `json:"url"`
				ResourceURL string `json:"resourceUrl"`
				Parameters  []struct {
					Name  string `json:"name"`
					Value string `json:"value"`
				} `json:"parameters"`
			} `json:"stagedTargets"`
			UserErrors []gqlUserError `json:"userErrors"`
		} `json:"stagedUploadsCreate"`
	}
	err := c.execute(ctx, "stagedUploadsCreate", stagedUploadsMutation, map[string]any{
		"input": []map[string]string{{
			"resource":   resource,
			"filename":   filename,
			"mimeType":   mimeType,
			"fileSize":   strconv.FormatInt(size, 10),
			"httpMethod": http.MethodPost,
		}},
	}, &result)
	if err != nil {
		return nil, err
	}

	if errs := result.StagedUploadsCreate.UserErrors; len(errs) > 0 {
		return nil, fmt.Errorf("stagedUploadsCreate: %s", errs[0].Message)
	}
	if len(result.StagedUploadsCreate.StagedTargets) == 0 {
		return nil, fmt.Errorf("stagedUploadsCreate: no target issued")
	}

	raw := result.StagedUploadsCreate.StagedTargets[0]
	target := &store.StagedTarget{
		UploadURL:   raw.URL,
		ResourceURL: raw.ResourceURL,
	}
	for _, p := range raw.Parameters {
		target.Parameters = append(target.Parameters, store.StagedParameter{Name: p.Name, Value: p.Value})
	}
	return target, nil
}

// UploadStagedBytes posts the payload as multipart form data straight to the
// issued target, not to the admin endpoint. The target's parameters must
// precede the file part.
func (c *StoreImpl) UploadStagedBytes(ctx context.Context, target *store.StagedTarget, filename string, data []byte) error {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	for _, p := range target.Parameters {
		if err := form.WriteField(p.Name, p.Value); err != nil {
			return fmt.Errorf("staged upload: write field %s: %w", p.Name, err)
		}
	}
	filePart, err := form.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("staged upload: %w", err)
	}
	if _, err := filePart.Write(data); err != nil {
		return fmt.Errorf("staged upload: %w", err)
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("staged upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.UploadURL, &body)
	if err != nil {
		return fmt.Errorf("staged upload: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("staged upload transfer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return fmt.Errorf("staged upload target returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	return nil
}

func (c *StoreImpl) queryFilePage(ctx context.Context, filter string, pageSize int, cursor string) (*store.Page, error) {
	variables := map[string]any{
		"first": pageSize,
	}
	if filter != "" {
		variables["query"] = filter
	}
	if cursor != "" {
		variables["after"] = cursor
	}

	var result struct {
		Files struct {
			Nodes []struct {
				ID  string `json:"id"`
				Alt string `json:"alt"`
			} `json:"nodes"`
			PageInfo gqlPageInfo `json:"pageInfo"`
		} `json:"files"`
	}
	if err := c.execute(ctx, "files", listFilesQuery, variables, &result); err != nil {
		return nil, err
	}

	page := &store.Page{
		Items:       make([]store.Item, 0, len(result.Files.Nodes)),
		HasNextPage: result.Files.PageInfo.HasNextPage,
		EndCursor:   result.Files.PageInfo.EndCursor,
	}
	for _, node := range result.Files.Nodes {
		page.Items = append(page.Items, store.Item{ID: node.ID, Alt: node.Alt})
	}
	return page, nil
}
