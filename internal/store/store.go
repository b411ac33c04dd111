// Package store defines the client contract for the shop's structured-object
// store: handle-keyed object upserts, cursor pagination, batched deletes and
// the two file-creation paths (direct by URL, staged). The sync engine only
// ever sees this interface; the admin-API wiring lives in storeimpl.
package store

import "context"

// Kind selects the object space a call operates on. Posts and listings are
// typed metaobjects; files live in the store's file space and are addressed
// by ID plus alt text instead of a handle.
type Kind string

const (
	KindPost    Kind = "instagram_post"
	KindListing Kind = "instagram_feed"
	KindFile    Kind = "file"
)

// UserError is a store-side validation failure. A call that returns user
// errors still succeeded at the transport level, so callers must check both.
type UserError struct {
	Field   string
	Message string
}

// Object is a handle-keyed store object. After a mutation it additionally
// carries the user errors the store reported for that input.
type Object struct {
	ID         string
	Handle     string
	Fields     map[string]string
	UserErrors []UserError
}

// Item is one element of a query page: a metaobject (Handle set) or a file
// (Alt set).
type Item struct {
	ID     string
	Handle string
	Alt    string
	Fields map[string]string
}

// Page is one bounded slice of a paginated enumeration.
type Page struct {
	Items       []Item
	HasNextPage bool
	EndCursor   string
}

// DeleteResult reports which IDs a batch delete removed and any per-item
// user errors. User errors do not fail the call.
type DeleteResult struct {
	DeletedIDs []string
	UserErrors []UserError
}

// FileContent is the media category of a file creation.
type FileContent string

const (
	FileContentImage FileContent = "IMAGE"
	FileContentVideo FileContent = "VIDEO"
)

// FileResult is the outcome of a file creation. FileID is empty when the
// store rejected the input, in which case UserErrors says why.
type FileResult struct {
	FileID     string
	UserErrors []UserError
}

// StagedTarget is an upload destination issued by the store for exactly one
// staged transfer: POST the bytes (with Parameters as form fields) to
// UploadURL, then register ResourceURL as the file's source.
type StagedTarget struct {
	UploadURL   string
	ResourceURL string
	Parameters  []StagedParameter
}

// StagedParameter is one form field the staged target requires verbatim.
type StagedParameter struct {
	Name  string
	Value string
}

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock.go -package=mocks
type Client interface {
	// UpsertObject creates or updates the object with the given handle. Only
	// the passed fields are written; absent fields keep their stored values.
	UpsertObject(ctx context.Context, kind Kind, handle string, fields map[string]string) (*Object, error)

	// GetObject returns the object with the given handle, or (nil, nil) when
	// no such object exists.
	GetObject(ctx context.Context, kind Kind, handle string) (*Object, error)

	// QueryPage returns one page of the kind's objects. The filter is a
	// coarse server-side substring match where the space supports one (the
	// file space does; metaobject spaces do not and ignore it), so callers
	// needing exact scoping filter the returned items themselves.
	QueryPage(ctx context.Context, kind Kind, filter string, pageSize int, cursor string) (*Page, error)

	// DeleteBatch removes up to the store's per-call limit of IDs in one
	// call. Per-item failures surface as user errors, not as an error.
	DeleteBatch(ctx context.Context, kind Kind, ids []string) (*DeleteResult, error)

	// CreateFileFromURL registers a store file sourced from a URL the store
	// can fetch: a public media URL, or the resource URL of a completed
	// staged upload.
	CreateFileFromURL(ctx context.Context, sourceURL string, content FileContent, altTag string) (*FileResult, error)

	// CreateStagedUpload requests an upload target sized to exactly size
	// bytes.
	CreateStagedUpload(ctx context.Context, filename, mimeType string, size int64) (*StagedTarget, error)

	// UploadStagedBytes transfers the payload to a staged target.
	UploadStagedBytes(ctx context.Context, target *StagedTarget, filename string, data []byte) error
}

// Factory builds a shop-scoped client. Sync runs receive the client as an
// explicit capability and thread it through every engine operation.
type Factory interface {
	ForShop(shop, accessToken string) Client
}
