package storeimpl

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mirrorworks/instamirror/internal/store"
)

const upsertObjectMutation = `mutation UpsertObject($handle: MetaobjectHandleInput!, $metaobject: MetaobjectUpsertInput!) {
  metaobjectUpsert(handle: $handle, metaobject: $metaobject) {
    metaobject { id handle }
    userErrors { field message }
  }
}`

const getObjectQuery = `query GetObject($handle: MetaobjectHandleInput!) {
  metaobjectByHandle(handle: $handle) {
    id
    handle
    fields { key value }
  }
}`

const listObjectsQuery = `query ListObjects($type: String!, $first: Int!, $after: String) {
  metaobjects(type: $type, first: $first, after: $after) {
    nodes { id handle }
    pageInfo { hasNextPage endCursor }
  }
}`

type gqlField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type gqlMetaobject struct {
	ID     string     `json:"id"`
	Handle string     `json:"handle"`
	Fields []gqlField `json:"fields"`
}

func (m *gqlMetaobject) toObject() *store.Object {
	obj := &store.Object{
		ID:     m.ID,
		Handle: m.Handle,
	}
	if len(m.Fields) > 0 {
		obj.Fields = make(map[string]string, len(m.Fields))
		for _, f := range m.Fields {
			obj.Fields[f.Key] = f.Value
		}
	}
	return obj
}

func (c *StoreImpl) UpsertObject(ctx context.Context, kind store.Kind, handle string, fields map[string]string) (*store.Object, error) {
	fieldInputs := make([]map[string]string, 0, len(fields))
	for key, value := range fields {
		fieldInputs = append(fieldInputs, map[string]string{"key": key, "value": value})
	}

	var result struct {
		MetaobjectUpsert struct {
			Metaobject *gqlMetaobject `json:"metaobject"`
			UserErrors []gqlUserError `json:"userErrors"`
		} `json:"metaobjectUpsert"`
	}
	err := c.execute(ctx, "metaobjectUpsert", upsertObjectMutation, map[string]any{
		"handle":     map[string]string{"type": string(kind), "handle": handle},
		"metaobject": map[string]any{"fields": fieldInputs},
	}, &result)
	if err != nil {
		return nil, err
	}

	obj := &store.Object{Handle: handle}
	if result.MetaobjectUpsert.Metaobject != nil {
		obj = result.MetaobjectUpsert.Metaobject.toObject()
	}
	obj.UserErrors = toUserErrors(result.MetaobjectUpsert.UserErrors)
	return obj, nil
}

func (c *StoreImpl) GetObject(ctx context.Context, kind store.Kind, handle string) (*store.Object, error) {
	var result struct {
		MetaobjectByHandle *gqlMetaobject `json:"metaobjectByHandle"`
	}
	err := c.execute(ctx, "metaobjectByHandle", getObjectQuery, map[string]any{
		"handle": map[string]string{"type": string(kind), "handle": handle},
	}, &result)
	if err != nil {
		return nil, err
	}
	if result.MetaobjectByHandle == nil {
		return nil, nil
	}
	return result.MetaobjectByHandle.toObject(), nil
}

func (c *StoreImpl) QueryPage(ctx context.Context, kind store.Kind, filter string, pageSize int, cursor string) (*store.Page, error) {
	if kind == store.KindFile {
		return c.queryFilePage(ctx, filter, pageSize, cursor)
	}

	variables := map[string]any{
		"type":  string(kind),
		"first": pageSize,
	}
	if cursor != "" {
		variables["after"] = cursor
	}

	var result struct {
		Metaobjects struct {
			Nodes    []gqlMetaobject `json:"nodes"`
			PageInfo gqlPageInfo     `json:"pageInfo"`
		} `json:"metaobjects"`
	}
	if err := c.execute(ctx, "metaobjects", listObjectsQuery, variables, &result); err != nil {
		return nil, err
	}

	page := &store.Page{
		Items:       make([]store.Item, 0, len(result.Metaobjects.Nodes)),
		HasNextPage: result.Metaobjects.PageInfo.HasNextPage,
		EndCursor:   result.Metaobjects.PageInfo.EndCursor,
	}
	for _, node := range result.Metaobjects.Nodes {
		page.Items = append(page.Items, store.Item{ID: node.ID, Handle: node.Handle})
	}
	return page, nil
}

type gqlPageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

const deleteFilesMutation = `mutation DeleteFiles($fileIds: [ID!]!) {
  fileDelete(fileIds: $fileIds) {
    deletedFileIds
    userErrors { field message }
  }
}`

func (c *StoreImpl) DeleteBatch(ctx context.Context, kind store.Kind, ids []string) (*store.DeleteResult, error) {
	if len(ids) == 0 {
		return &store.DeleteResult{}, nil
	}
	if kind == store.KindFile {
		return c.deleteFileBatch(ctx, ids)
	}
	return c.deleteObjectBatch(ctx, ids)
}

func (c *StoreImpl) deleteFileBatch(ctx context.Context, ids []string) (*store.DeleteResult, error) {
	var result struct {
		FileDelete struct {
			DeletedFileIDs []string       `json:"deletedFileIds"`
			UserErrors     []gqlUserError `json:"userErrors"`
		} `json:"fileDelete"`
	}
	err := c.execute(ctx, "fileDelete", deleteFilesMutation, map[string]any{"fileIds": ids}, &result)
	if err != nil {
		return nil, err
	}
	return &store.DeleteResult{
		DeletedIDs: result.FileDelete.DeletedFileIDs,
		UserErrors: toUserErrors(result.FileDelete.UserErrors),
	}, nil
}

// deleteObjectBatch folds the whole batch into one aliased document, so a
// 250-ID batch still costs a single round trip.
func (c *StoreImpl) deleteObjectBatch(ctx context.Context, ids []string) (*store.DeleteResult, error) {
	var doc strings.Builder
	doc.WriteString("mutation DeleteObjects {\n")
	for i, id := range ids {
		fmt.Fprintf(&doc, "  d%d: metaobjectDelete(id: %s) { deletedId userErrors { field message } }\n", i, strconv.Quote(id))
	}
	doc.WriteString("}")

	type deletePayload struct {
		DeletedID  string         `json:"deletedId"`
		UserErrors []gqlUserError `json:"userErrors"`
	}
	result := map[string]deletePayload{}
	if err := c.execute(ctx, "metaobjectDelete", doc.String(), nil, &result); err != nil {
		return nil, err
	}

	out := &store.DeleteResult{}
	for i := range ids {
		payload, ok := result[fmt.Sprintf("d%d", i)]
		if !ok {
			continue
		}
		if payload.DeletedID != "" {
			out.DeletedIDs = append(out.DeletedIDs, payload.DeletedID)
		}
		out.UserErrors = append(out.UserErrors, toUserErrors(payload.UserErrors)...)
	}
	return out, nil
}
