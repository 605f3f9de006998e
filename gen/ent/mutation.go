// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
	"github.com/mholloway/ptr-tracker/gen/ent/filinglist"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
	"github.com/mholloway/ptr-tracker/gen/ent/parseissue"
	"github.com/mholloway/ptr-tracker/gen/ent/predicate"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDownload    = "Download"
	TypeFiling      = "Filing"
	TypeFilingList  = "FilingList"
	TypeOcrResult   = "OcrResult"
	TypeParseIssue  = "ParseIssue"
	TypeReport      = "Report"
	TypeTransaction = "Transaction"
)

// DownloadMutation represents an operation that mutates the Download nodes in the graph.
type DownloadMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	doc_id             *string
	etag               *string
	storage_uri        *string
	fetched_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	ocr_results        map[int]struct{}
	removedocr_results map[int]struct{}
	clearedocr_results bool
	done               bool
	oldValue           func(context.Context) (*Download, error)
	predicates         []predicate.Download
}

var _ ent.Mutation = (*DownloadMutation)(nil)

// downloadOption allows management of the mutation configuration using functional options.
type downloadOption func(*DownloadMutation)

// newDownloadMutation creates new mutation for the Download entity.
func newDownloadMutation(c config, op Op, opts ...downloadOption) *DownloadMutation {
	m := &DownloadMutation{
		config:        c,
		op:            op,
		typ:           TypeDownload,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDownloadID sets the ID field of the mutation.
func withDownloadID(id int) downloadOption {
	return func(m *DownloadMutation) {
		var (
			err   error
			once  sync.Once
			value *Download
		)
		m.oldValue = func(ctx context.Context) (*Download, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Download.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDownload sets the old Download of the mutation.
func withDownload(node *Download) downloadOption {
	return func(m *DownloadMutation) {
		m.oldValue = func(context.Context) (*Download, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DownloadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DownloadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DownloadMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DownloadMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Download.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *DownloadMutation) SetDocID(s string) {
	m.doc_id = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *DownloadMutation) DocID() (r string, exists bool) {
	v := m.doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the Download entity.
// If the Download object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *DownloadMutation) ResetDocID() {
	m.doc_id = nil
}

// SetEtag sets the "etag" field.
func (m *DownloadMutation) SetEtag(s string) {
	m.etag = &s
}

// Etag returns the value of the "etag" field in the mutation.
func (m *DownloadMutation) Etag() (r string, exists bool) {
	v := m.etag
	if v == nil {
		return
	}
	return *v, true
}

// OldEtag returns the old "etag" field's value of the Download entity.
// If the Download object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadMutation) OldEtag(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtag: %w", err)
	}
	return oldValue.Etag, nil
}

// ClearEtag clears the value of the "etag" field.
func (m *DownloadMutation) ClearEtag() {
	m.etag = nil
	m.clearedFields[download.FieldEtag] = struct{}{}
}

// EtagCleared returns if the "etag" field was cleared in this mutation.
func (m *DownloadMutation) EtagCleared() bool {
	_, ok := m.clearedFields[download.FieldEtag]
	return ok
}

// ResetEtag resets all changes to the "etag" field.
func (m *DownloadMutation) ResetEtag() {
	m.etag = nil
	delete(m.clearedFields, download.FieldEtag)
}

// SetStorageURI sets the "storage_uri" field.
func (m *DownloadMutation) SetStorageURI(s string) {
	m.storage_uri = &s
}

// StorageURI returns the value of the "storage_uri" field in the mutation.
func (m *DownloadMutation) StorageURI() (r string, exists bool) {
	v := m.storage_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageURI returns the old "storage_uri" field's value of the Download entity.
// If the Download object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadMutation) OldStorageURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageURI: %w", err)
	}
	return oldValue.StorageURI, nil
}

// ResetStorageURI resets all changes to the "storage_uri" field.
func (m *DownloadMutation) ResetStorageURI() {
	m.storage_uri = nil
}

// SetFetchedAt sets the "fetched_at" field.
func (m *DownloadMutation) SetFetchedAt(t time.Time) {
	m.fetched_at = &t
}

// FetchedAt returns the value of the "fetched_at" field in the mutation.
func (m *DownloadMutation) FetchedAt() (r time.Time, exists bool) {
	v := m.fetched_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchedAt returns the old "fetched_at" field's value of the Download entity.
// If the Download object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadMutation) OldFetchedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchedAt: %w", err)
	}
	return oldValue.FetchedAt, nil
}

// ResetFetchedAt resets all changes to the "fetched_at" field.
func (m *DownloadMutation) ResetFetchedAt() {
	m.fetched_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DownloadMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DownloadMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Download entity.
// If the Download object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DownloadMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DownloadMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddOcrResultIDs adds the "ocr_results" edge to the OcrResult entity by ids.
func (m *DownloadMutation) AddOcrResultIDs(ids ...int) {
	if m.ocr_results == nil {
		m.ocr_results = make(map[int]struct{})
	}
	for i := range ids {
		m.ocr_results[ids[i]] = struct{}{}
	}
}

// ClearOcrResults clears the "ocr_results" edge to the OcrResult entity.
func (m *DownloadMutation) ClearOcrResults() {
	m.clearedocr_results = true
}

// OcrResultsCleared reports if the "ocr_results" edge to the OcrResult entity was cleared.
func (m *DownloadMutation) OcrResultsCleared() bool {
	return m.clearedocr_results
}

// RemoveOcrResultIDs removes the "ocr_results" edge to the OcrResult entity by IDs.
func (m *DownloadMutation) RemoveOcrResultIDs(ids ...int) {
	if m.removedocr_results == nil {
		m.removedocr_results = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.ocr_results, ids[i])
		m.removedocr_results[ids[i]] = struct{}{}
	}
}

// RemovedOcrResults returns the removed IDs of the "ocr_results" edge to the OcrResult entity.
func (m *DownloadMutation) RemovedOcrResultsIDs() (ids []int) {
	for id := range m.removedocr_results {
		ids = append(ids, id)
	}
	return
}

// OcrResultsIDs returns the "ocr_results" edge IDs in the mutation.
func (m *DownloadMutation) OcrResultsIDs() (ids []int) {
	for id := range m.ocr_results {
		ids = append(ids, id)
	}
	return
}

// ResetOcrResults resets all changes to the "ocr_results" edge.
func (m *DownloadMutation) ResetOcrResults() {
	m.ocr_results = nil
	m.clearedocr_results = false
	m.removedocr_results = nil
}

// Where appends a list predicates to the DownloadMutation builder.
func (m *DownloadMutation) Where(ps ...predicate.Download) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DownloadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DownloadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Download, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DownloadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DownloadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Download).
func (m *DownloadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DownloadMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.doc_id != nil {
		fields = append(fields, download.FieldDocID)
	}
	if m.etag != nil {
		fields = append(fields, download.FieldEtag)
	}
	if m.storage_uri != nil {
		fields = append(fields, download.FieldStorageURI)
	}
	if m.fetched_at != nil {
		fields = append(fields, download.FieldFetchedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, download.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DownloadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case download.FieldDocID:
		return m.DocID()
	case download.FieldEtag:
		return m.Etag()
	case download.FieldStorageURI:
		return m.StorageURI()
	case download.FieldFetchedAt:
		return m.FetchedAt()
	case download.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DownloadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case download.FieldDocID:
		return m.OldDocID(ctx)
	case download.FieldEtag:
		return m.OldEtag(ctx)
	case download.FieldStorageURI:
		return m.OldStorageURI(ctx)
	case download.FieldFetchedAt:
		return m.OldFetchedAt(ctx)
	case download.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Download field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DownloadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case download.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case download.FieldEtag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtag(v)
		return nil
	case download.FieldStorageURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageURI(v)
		return nil
	case download.FieldFetchedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchedAt(v)
		return nil
	case download.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Download field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DownloadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DownloadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DownloadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Download numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DownloadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(download.FieldEtag) {
		fields = append(fields, download.FieldEtag)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DownloadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DownloadMutation) ClearField(name string) error {
	switch name {
	case download.FieldEtag:
		m.ClearEtag()
		return nil
	}
	return fmt.Errorf("unknown Download nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DownloadMutation) ResetField(name string) error {
	switch name {
	case download.FieldDocID:
		m.ResetDocID()
		return nil
	case download.FieldEtag:
		m.ResetEtag()
		return nil
	case download.FieldStorageURI:
		m.ResetStorageURI()
		return nil
	case download.FieldFetchedAt:
		m.ResetFetchedAt()
		return nil
	case download.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Download field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DownloadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.ocr_results != nil {
		edges = append(edges, download.EdgeOcrResults)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DownloadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case download.EdgeOcrResults:
		ids := make([]ent.Value, 0, len(m.ocr_results))
		for id := range m.ocr_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DownloadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedocr_results != nil {
		edges = append(edges, download.EdgeOcrResults)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DownloadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case download.EdgeOcrResults:
		ids := make([]ent.Value, 0, len(m.removedocr_results))
		for id := range m.removedocr_results {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DownloadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedocr_results {
		edges = append(edges, download.EdgeOcrResults)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DownloadMutation) EdgeCleared(name string) bool {
	switch name {
	case download.EdgeOcrResults:
		return m.clearedocr_results
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DownloadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Download unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DownloadMutation) ResetEdge(name string) error {
	switch name {
	case download.EdgeOcrResults:
		m.ResetOcrResults()
		return nil
	}
	return fmt.Errorf("unknown Download edge %s", name)
}

// FilingMutation represents an operation that mutates the Filing nodes in the graph.
type FilingMutation struct {
	config
	op            Op
	typ           string
	id            *int
	doc_id        *string
	prefix        *string
	last          *string
	first         *string
	suffix        *string
	filing_type   *string
	state_dst     *string
	year          *int
	addyear       *int
	filing_date   *time.Time
	raw_row       *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Filing, error)
	predicates    []predicate.Filing
}

var _ ent.Mutation = (*FilingMutation)(nil)

// filingOption allows management of the mutation configuration using functional options.
type filingOption func(*FilingMutation)

// newFilingMutation creates new mutation for the Filing entity.
func newFilingMutation(c config, op Op, opts ...filingOption) *FilingMutation {
	m := &FilingMutation{
		config:        c,
		op:            op,
		typ:           TypeFiling,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFilingID sets the ID field of the mutation.
func withFilingID(id int) filingOption {
	return func(m *FilingMutation) {
		var (
			err   error
			once  sync.Once
			value *Filing
		)
		m.oldValue = func(ctx context.Context) (*Filing, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Filing.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFiling sets the old Filing of the mutation.
func withFiling(node *Filing) filingOption {
	return func(m *FilingMutation) {
		m.oldValue = func(context.Context) (*Filing, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FilingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FilingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FilingMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FilingMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Filing.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *FilingMutation) SetDocID(s string) {
	m.doc_id = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *FilingMutation) DocID() (r string, exists bool) {
	v := m.doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *FilingMutation) ResetDocID() {
	m.doc_id = nil
}

// SetPrefix sets the "prefix" field.
func (m *FilingMutation) SetPrefix(s string) {
	m.prefix = &s
}

// Prefix returns the value of the "prefix" field in the mutation.
func (m *FilingMutation) Prefix() (r string, exists bool) {
	v := m.prefix
	if v == nil {
		return
	}
	return *v, true
}

// OldPrefix returns the old "prefix" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldPrefix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrefix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrefix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrefix: %w", err)
	}
	return oldValue.Prefix, nil
}

// ClearPrefix clears the value of the "prefix" field.
func (m *FilingMutation) ClearPrefix() {
	m.prefix = nil
	m.clearedFields[filing.FieldPrefix] = struct{}{}
}

// PrefixCleared returns if the "prefix" field was cleared in this mutation.
func (m *FilingMutation) PrefixCleared() bool {
	_, ok := m.clearedFields[filing.FieldPrefix]
	return ok
}

// ResetPrefix resets all changes to the "prefix" field.
func (m *FilingMutation) ResetPrefix() {
	m.prefix = nil
	delete(m.clearedFields, filing.FieldPrefix)
}

// SetLast sets the "last" field.
func (m *FilingMutation) SetLast(s string) {
	m.last = &s
}

// Last returns the value of the "last" field in the mutation.
func (m *FilingMutation) Last() (r string, exists bool) {
	v := m.last
	if v == nil {
		return
	}
	return *v, true
}

// OldLast returns the old "last" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldLast(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLast is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLast requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLast: %w", err)
	}
	return oldValue.Last, nil
}

// ResetLast resets all changes to the "last" field.
func (m *FilingMutation) ResetLast() {
	m.last = nil
}

// SetFirst sets the "first" field.
func (m *FilingMutation) SetFirst(s string) {
	m.first = &s
}

// First returns the value of the "first" field in the mutation.
func (m *FilingMutation) First() (r string, exists bool) {
	v := m.first
	if v == nil {
		return
	}
	return *v, true
}

// OldFirst returns the old "first" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldFirst(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirst is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirst requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirst: %w", err)
	}
	return oldValue.First, nil
}

// ClearFirst clears the value of the "first" field.
func (m *FilingMutation) ClearFirst() {
	m.first = nil
	m.clearedFields[filing.FieldFirst] = struct{}{}
}

// FirstCleared returns if the "first" field was cleared in this mutation.
func (m *FilingMutation) FirstCleared() bool {
	_, ok := m.clearedFields[filing.FieldFirst]
	return ok
}

// ResetFirst resets all changes to the "first" field.
func (m *FilingMutation) ResetFirst() {
	m.first = nil
	delete(m.clearedFields, filing.FieldFirst)
}

// SetSuffix sets the "suffix" field.
func (m *FilingMutation) SetSuffix(s string) {
	m.suffix = &s
}

// Suffix returns the value of the "suffix" field in the mutation.
func (m *FilingMutation) Suffix() (r string, exists bool) {
	v := m.suffix
	if v == nil {
		return
	}
	return *v, true
}

// OldSuffix returns the old "suffix" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldSuffix(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuffix is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuffix requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuffix: %w", err)
	}
	return oldValue.Suffix, nil
}

// ClearSuffix clears the value of the "suffix" field.
func (m *FilingMutation) ClearSuffix() {
	m.suffix = nil
	m.clearedFields[filing.FieldSuffix] = struct{}{}
}

// SuffixCleared returns if the "suffix" field was cleared in this mutation.
func (m *FilingMutation) SuffixCleared() bool {
	_, ok := m.clearedFields[filing.FieldSuffix]
	return ok
}

// ResetSuffix resets all changes to the "suffix" field.
func (m *FilingMutation) ResetSuffix() {
	m.suffix = nil
	delete(m.clearedFields, filing.FieldSuffix)
}

// SetFilingType sets the "filing_type" field.
func (m *FilingMutation) SetFilingType(s string) {
	m.filing_type = &s
}

// FilingType returns the value of the "filing_type" field in the mutation.
func (m *FilingMutation) FilingType() (r string, exists bool) {
	v := m.filing_type
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingType returns the old "filing_type" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldFilingType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingType: %w", err)
	}
	return oldValue.FilingType, nil
}

// ResetFilingType resets all changes to the "filing_type" field.
func (m *FilingMutation) ResetFilingType() {
	m.filing_type = nil
}

// SetStateDst sets the "state_dst" field.
func (m *FilingMutation) SetStateDst(s string) {
	m.state_dst = &s
}

// StateDst returns the value of the "state_dst" field in the mutation.
func (m *FilingMutation) StateDst() (r string, exists bool) {
	v := m.state_dst
	if v == nil {
		return
	}
	return *v, true
}

// OldStateDst returns the old "state_dst" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldStateDst(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStateDst is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStateDst requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStateDst: %w", err)
	}
	return oldValue.StateDst, nil
}

// ClearStateDst clears the value of the "state_dst" field.
func (m *FilingMutation) ClearStateDst() {
	m.state_dst = nil
	m.clearedFields[filing.FieldStateDst] = struct{}{}
}

// StateDstCleared returns if the "state_dst" field was cleared in this mutation.
func (m *FilingMutation) StateDstCleared() bool {
	_, ok := m.clearedFields[filing.FieldStateDst]
	return ok
}

// ResetStateDst resets all changes to the "state_dst" field.
func (m *FilingMutation) ResetStateDst() {
	m.state_dst = nil
	delete(m.clearedFields, filing.FieldStateDst)
}

// SetYear sets the "year" field.
func (m *FilingMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *FilingMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *FilingMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *FilingMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *FilingMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetFilingDate sets the "filing_date" field.
func (m *FilingMutation) SetFilingDate(t time.Time) {
	m.filing_date = &t
}

// FilingDate returns the value of the "filing_date" field in the mutation.
func (m *FilingMutation) FilingDate() (r time.Time, exists bool) {
	v := m.filing_date
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingDate returns the old "filing_date" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldFilingDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingDate: %w", err)
	}
	return oldValue.FilingDate, nil
}

// ResetFilingDate resets all changes to the "filing_date" field.
func (m *FilingMutation) ResetFilingDate() {
	m.filing_date = nil
}

// SetRawRow sets the "raw_row" field.
func (m *FilingMutation) SetRawRow(s string) {
	m.raw_row = &s
}

// RawRow returns the value of the "raw_row" field in the mutation.
func (m *FilingMutation) RawRow() (r string, exists bool) {
	v := m.raw_row
	if v == nil {
		return
	}
	return *v, true
}

// OldRawRow returns the old "raw_row" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldRawRow(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawRow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawRow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawRow: %w", err)
	}
	return oldValue.RawRow, nil
}

// ResetRawRow resets all changes to the "raw_row" field.
func (m *FilingMutation) ResetRawRow() {
	m.raw_row = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *FilingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FilingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Filing entity.
// If the Filing object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FilingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the FilingMutation builder.
func (m *FilingMutation) Where(ps ...predicate.Filing) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FilingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FilingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Filing, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FilingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FilingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Filing).
func (m *FilingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FilingMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.doc_id != nil {
		fields = append(fields, filing.FieldDocID)
	}
	if m.prefix != nil {
		fields = append(fields, filing.FieldPrefix)
	}
	if m.last != nil {
		fields = append(fields, filing.FieldLast)
	}
	if m.first != nil {
		fields = append(fields, filing.FieldFirst)
	}
	if m.suffix != nil {
		fields = append(fields, filing.FieldSuffix)
	}
	if m.filing_type != nil {
		fields = append(fields, filing.FieldFilingType)
	}
	if m.state_dst != nil {
		fields = append(fields, filing.FieldStateDst)
	}
	if m.year != nil {
		fields = append(fields, filing.FieldYear)
	}
	if m.filing_date != nil {
		fields = append(fields, filing.FieldFilingDate)
	}
	if m.raw_row != nil {
		fields = append(fields, filing.FieldRawRow)
	}
	if m.created_at != nil {
		fields = append(fields, filing.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FilingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filing.FieldDocID:
		return m.DocID()
	case filing.FieldPrefix:
		return m.Prefix()
	case filing.FieldLast:
		return m.Last()
	case filing.FieldFirst:
		return m.First()
	case filing.FieldSuffix:
		return m.Suffix()
	case filing.FieldFilingType:
		return m.FilingType()
	case filing.FieldStateDst:
		return m.StateDst()
	case filing.FieldYear:
		return m.Year()
	case filing.FieldFilingDate:
		return m.FilingDate()
	case filing.FieldRawRow:
		return m.RawRow()
	case filing.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FilingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filing.FieldDocID:
		return m.OldDocID(ctx)
	case filing.FieldPrefix:
		return m.OldPrefix(ctx)
	case filing.FieldLast:
		return m.OldLast(ctx)
	case filing.FieldFirst:
		return m.OldFirst(ctx)
	case filing.FieldSuffix:
		return m.OldSuffix(ctx)
	case filing.FieldFilingType:
		return m.OldFilingType(ctx)
	case filing.FieldStateDst:
		return m.OldStateDst(ctx)
	case filing.FieldYear:
		return m.OldYear(ctx)
	case filing.FieldFilingDate:
		return m.OldFilingDate(ctx)
	case filing.FieldRawRow:
		return m.OldRawRow(ctx)
	case filing.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Filing field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filing.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case filing.FieldPrefix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrefix(v)
		return nil
	case filing.FieldLast:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLast(v)
		return nil
	case filing.FieldFirst:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirst(v)
		return nil
	case filing.FieldSuffix:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuffix(v)
		return nil
	case filing.FieldFilingType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingType(v)
		return nil
	case filing.FieldStateDst:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStateDst(v)
		return nil
	case filing.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case filing.FieldFilingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingDate(v)
		return nil
	case filing.FieldRawRow:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawRow(v)
		return nil
	case filing.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Filing field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FilingMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, filing.FieldYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FilingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case filing.FieldYear:
		return m.AddedYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case filing.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	}
	return fmt.Errorf("unknown Filing numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FilingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filing.FieldPrefix) {
		fields = append(fields, filing.FieldPrefix)
	}
	if m.FieldCleared(filing.FieldFirst) {
		fields = append(fields, filing.FieldFirst)
	}
	if m.FieldCleared(filing.FieldSuffix) {
		fields = append(fields, filing.FieldSuffix)
	}
	if m.FieldCleared(filing.FieldStateDst) {
		fields = append(fields, filing.FieldStateDst)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FilingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FilingMutation) ClearField(name string) error {
	switch name {
	case filing.FieldPrefix:
		m.ClearPrefix()
		return nil
	case filing.FieldFirst:
		m.ClearFirst()
		return nil
	case filing.FieldSuffix:
		m.ClearSuffix()
		return nil
	case filing.FieldStateDst:
		m.ClearStateDst()
		return nil
	}
	return fmt.Errorf("unknown Filing nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FilingMutation) ResetField(name string) error {
	switch name {
	case filing.FieldDocID:
		m.ResetDocID()
		return nil
	case filing.FieldPrefix:
		m.ResetPrefix()
		return nil
	case filing.FieldLast:
		m.ResetLast()
		return nil
	case filing.FieldFirst:
		m.ResetFirst()
		return nil
	case filing.FieldSuffix:
		m.ResetSuffix()
		return nil
	case filing.FieldFilingType:
		m.ResetFilingType()
		return nil
	case filing.FieldStateDst:
		m.ResetStateDst()
		return nil
	case filing.FieldYear:
		m.ResetYear()
		return nil
	case filing.FieldFilingDate:
		m.ResetFilingDate()
		return nil
	case filing.FieldRawRow:
		m.ResetRawRow()
		return nil
	case filing.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Filing field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FilingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FilingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FilingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FilingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FilingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FilingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FilingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Filing unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FilingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Filing edge %s", name)
}

// FilingListMutation represents an operation that mutates the FilingList nodes in the graph.
type FilingListMutation struct {
	config
	op            Op
	typ           string
	id            *int
	year          *int
	addyear       *int
	etag          *string
	storage_uri   *string
	parsed        *bool
	parsed_at     *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*FilingList, error)
	predicates    []predicate.FilingList
}

var _ ent.Mutation = (*FilingListMutation)(nil)

// filinglistOption allows management of the mutation configuration using functional options.
type filinglistOption func(*FilingListMutation)

// newFilingListMutation creates new mutation for the FilingList entity.
func newFilingListMutation(c config, op Op, opts ...filinglistOption) *FilingListMutation {
	m := &FilingListMutation{
		config:        c,
		op:            op,
		typ:           TypeFilingList,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFilingListID sets the ID field of the mutation.
func withFilingListID(id int) filinglistOption {
	return func(m *FilingListMutation) {
		var (
			err   error
			once  sync.Once
			value *FilingList
		)
		m.oldValue = func(ctx context.Context) (*FilingList, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FilingList.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFilingList sets the old FilingList of the mutation.
func withFilingList(node *FilingList) filinglistOption {
	return func(m *FilingListMutation) {
		m.oldValue = func(context.Context) (*FilingList, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FilingListMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FilingListMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FilingListMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FilingListMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FilingList.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetYear sets the "year" field.
func (m *FilingListMutation) SetYear(i int) {
	m.year = &i
	m.addyear = nil
}

// Year returns the value of the "year" field in the mutation.
func (m *FilingListMutation) Year() (r int, exists bool) {
	v := m.year
	if v == nil {
		return
	}
	return *v, true
}

// OldYear returns the old "year" field's value of the FilingList entity.
// If the FilingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingListMutation) OldYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYear: %w", err)
	}
	return oldValue.Year, nil
}

// AddYear adds i to the "year" field.
func (m *FilingListMutation) AddYear(i int) {
	if m.addyear != nil {
		*m.addyear += i
	} else {
		m.addyear = &i
	}
}

// AddedYear returns the value that was added to the "year" field in this mutation.
func (m *FilingListMutation) AddedYear() (r int, exists bool) {
	v := m.addyear
	if v == nil {
		return
	}
	return *v, true
}

// ResetYear resets all changes to the "year" field.
func (m *FilingListMutation) ResetYear() {
	m.year = nil
	m.addyear = nil
}

// SetEtag sets the "etag" field.
func (m *FilingListMutation) SetEtag(s string) {
	m.etag = &s
}

// Etag returns the value of the "etag" field in the mutation.
func (m *FilingListMutation) Etag() (r string, exists bool) {
	v := m.etag
	if v == nil {
		return
	}
	return *v, true
}

// OldEtag returns the old "etag" field's value of the FilingList entity.
// If the FilingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingListMutation) OldEtag(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEtag is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEtag requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEtag: %w", err)
	}
	return oldValue.Etag, nil
}

// ClearEtag clears the value of the "etag" field.
func (m *FilingListMutation) ClearEtag() {
	m.etag = nil
	m.clearedFields[filinglist.FieldEtag] = struct{}{}
}

// EtagCleared returns if the "etag" field was cleared in this mutation.
func (m *FilingListMutation) EtagCleared() bool {
	_, ok := m.clearedFields[filinglist.FieldEtag]
	return ok
}

// ResetEtag resets all changes to the "etag" field.
func (m *FilingListMutation) ResetEtag() {
	m.etag = nil
	delete(m.clearedFields, filinglist.FieldEtag)
}

// SetStorageURI sets the "storage_uri" field.
func (m *FilingListMutation) SetStorageURI(s string) {
	m.storage_uri = &s
}

// StorageURI returns the value of the "storage_uri" field in the mutation.
func (m *FilingListMutation) StorageURI() (r string, exists bool) {
	v := m.storage_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageURI returns the old "storage_uri" field's value of the FilingList entity.
// If the FilingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingListMutation) OldStorageURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageURI: %w", err)
	}
	return oldValue.StorageURI, nil
}

// ResetStorageURI resets all changes to the "storage_uri" field.
func (m *FilingListMutation) ResetStorageURI() {
	m.storage_uri = nil
}

// SetParsed sets the "parsed" field.
func (m *FilingListMutation) SetParsed(b bool) {
	m.parsed = &b
}

// Parsed returns the value of the "parsed" field in the mutation.
func (m *FilingListMutation) Parsed() (r bool, exists bool) {
	v := m.parsed
	if v == nil {
		return
	}
	return *v, true
}

// OldParsed returns the old "parsed" field's value of the FilingList entity.
// If the FilingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingListMutation) OldParsed(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsed: %w", err)
	}
	return oldValue.Parsed, nil
}

// ResetParsed resets all changes to the "parsed" field.
func (m *FilingListMutation) ResetParsed() {
	m.parsed = nil
}

// SetParsedAt sets the "parsed_at" field.
func (m *FilingListMutation) SetParsedAt(t time.Time) {
	m.parsed_at = &t
}

// ParsedAt returns the value of the "parsed_at" field in the mutation.
func (m *FilingListMutation) ParsedAt() (r time.Time, exists bool) {
	v := m.parsed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldParsedAt returns the old "parsed_at" field's value of the FilingList entity.
// If the FilingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingListMutation) OldParsedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParsedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParsedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParsedAt: %w", err)
	}
	return oldValue.ParsedAt, nil
}

// ClearParsedAt clears the value of the "parsed_at" field.
func (m *FilingListMutation) ClearParsedAt() {
	m.parsed_at = nil
	m.clearedFields[filinglist.FieldParsedAt] = struct{}{}
}

// ParsedAtCleared returns if the "parsed_at" field was cleared in this mutation.
func (m *FilingListMutation) ParsedAtCleared() bool {
	_, ok := m.clearedFields[filinglist.FieldParsedAt]
	return ok
}

// ResetParsedAt resets all changes to the "parsed_at" field.
func (m *FilingListMutation) ResetParsedAt() {
	m.parsed_at = nil
	delete(m.clearedFields, filinglist.FieldParsedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *FilingListMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FilingListMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FilingList entity.
// If the FilingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingListMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FilingListMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FilingListMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FilingListMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FilingList entity.
// If the FilingList object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FilingListMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FilingListMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the FilingListMutation builder.
func (m *FilingListMutation) Where(ps ...predicate.FilingList) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FilingListMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FilingListMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FilingList, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FilingListMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FilingListMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FilingList).
func (m *FilingListMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FilingListMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.year != nil {
		fields = append(fields, filinglist.FieldYear)
	}
	if m.etag != nil {
		fields = append(fields, filinglist.FieldEtag)
	}
	if m.storage_uri != nil {
		fields = append(fields, filinglist.FieldStorageURI)
	}
	if m.parsed != nil {
		fields = append(fields, filinglist.FieldParsed)
	}
	if m.parsed_at != nil {
		fields = append(fields, filinglist.FieldParsedAt)
	}
	if m.created_at != nil {
		fields = append(fields, filinglist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, filinglist.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FilingListMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filinglist.FieldYear:
		return m.Year()
	case filinglist.FieldEtag:
		return m.Etag()
	case filinglist.FieldStorageURI:
		return m.StorageURI()
	case filinglist.FieldParsed:
		return m.Parsed()
	case filinglist.FieldParsedAt:
		return m.ParsedAt()
	case filinglist.FieldCreatedAt:
		return m.CreatedAt()
	case filinglist.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FilingListMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filinglist.FieldYear:
		return m.OldYear(ctx)
	case filinglist.FieldEtag:
		return m.OldEtag(ctx)
	case filinglist.FieldStorageURI:
		return m.OldStorageURI(ctx)
	case filinglist.FieldParsed:
		return m.OldParsed(ctx)
	case filinglist.FieldParsedAt:
		return m.OldParsedAt(ctx)
	case filinglist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case filinglist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown FilingList field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingListMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filinglist.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYear(v)
		return nil
	case filinglist.FieldEtag:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEtag(v)
		return nil
	case filinglist.FieldStorageURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageURI(v)
		return nil
	case filinglist.FieldParsed:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsed(v)
		return nil
	case filinglist.FieldParsedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParsedAt(v)
		return nil
	case filinglist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case filinglist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown FilingList field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FilingListMutation) AddedFields() []string {
	var fields []string
	if m.addyear != nil {
		fields = append(fields, filinglist.FieldYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FilingListMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case filinglist.FieldYear:
		return m.AddedYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FilingListMutation) AddField(name string, value ent.Value) error {
	switch name {
	case filinglist.FieldYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddYear(v)
		return nil
	}
	return fmt.Errorf("unknown FilingList numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FilingListMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(filinglist.FieldEtag) {
		fields = append(fields, filinglist.FieldEtag)
	}
	if m.FieldCleared(filinglist.FieldParsedAt) {
		fields = append(fields, filinglist.FieldParsedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FilingListMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FilingListMutation) ClearField(name string) error {
	switch name {
	case filinglist.FieldEtag:
		m.ClearEtag()
		return nil
	case filinglist.FieldParsedAt:
		m.ClearParsedAt()
		return nil
	}
	return fmt.Errorf("unknown FilingList nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FilingListMutation) ResetField(name string) error {
	switch name {
	case filinglist.FieldYear:
		m.ResetYear()
		return nil
	case filinglist.FieldEtag:
		m.ResetEtag()
		return nil
	case filinglist.FieldStorageURI:
		m.ResetStorageURI()
		return nil
	case filinglist.FieldParsed:
		m.ResetParsed()
		return nil
	case filinglist.FieldParsedAt:
		m.ResetParsedAt()
		return nil
	case filinglist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case filinglist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown FilingList field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FilingListMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FilingListMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FilingListMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FilingListMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FilingListMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FilingListMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FilingListMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown FilingList unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FilingListMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown FilingList edge %s", name)
}

// OcrResultMutation represents an operation that mutates the OcrResult nodes in the graph.
type OcrResultMutation struct {
	config
	op              Op
	typ             string
	id              *int
	doc_id          *string
	storage_uri     *string
	created_at      *time.Time
	clearedFields   map[string]struct{}
	download        *int
	cleareddownload bool
	done            bool
	oldValue        func(context.Context) (*OcrResult, error)
	predicates      []predicate.OcrResult
}

var _ ent.Mutation = (*OcrResultMutation)(nil)

// ocrresultOption allows management of the mutation configuration using functional options.
type ocrresultOption func(*OcrResultMutation)

// newOcrResultMutation creates new mutation for the OcrResult entity.
func newOcrResultMutation(c config, op Op, opts ...ocrresultOption) *OcrResultMutation {
	m := &OcrResultMutation{
		config:        c,
		op:            op,
		typ:           TypeOcrResult,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withOcrResultID sets the ID field of the mutation.
func withOcrResultID(id int) ocrresultOption {
	return func(m *OcrResultMutation) {
		var (
			err   error
			once  sync.Once
			value *OcrResult
		)
		m.oldValue = func(ctx context.Context) (*OcrResult, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().OcrResult.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withOcrResult sets the old OcrResult of the mutation.
func withOcrResult(node *OcrResult) ocrresultOption {
	return func(m *OcrResultMutation) {
		m.oldValue = func(context.Context) (*OcrResult, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m OcrResultMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m OcrResultMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *OcrResultMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *OcrResultMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().OcrResult.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *OcrResultMutation) SetDocID(s string) {
	m.doc_id = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *OcrResultMutation) DocID() (r string, exists bool) {
	v := m.doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *OcrResultMutation) ResetDocID() {
	m.doc_id = nil
}

// SetDownloadID sets the "download_id" field.
func (m *OcrResultMutation) SetDownloadID(i int) {
	m.download = &i
}

// DownloadID returns the value of the "download_id" field in the mutation.
func (m *OcrResultMutation) DownloadID() (r int, exists bool) {
	v := m.download
	if v == nil {
		return
	}
	return *v, true
}

// OldDownloadID returns the old "download_id" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldDownloadID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDownloadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDownloadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDownloadID: %w", err)
	}
	return oldValue.DownloadID, nil
}

// ResetDownloadID resets all changes to the "download_id" field.
func (m *OcrResultMutation) ResetDownloadID() {
	m.download = nil
}

// SetStorageURI sets the "storage_uri" field.
func (m *OcrResultMutation) SetStorageURI(s string) {
	m.storage_uri = &s
}

// StorageURI returns the value of the "storage_uri" field in the mutation.
func (m *OcrResultMutation) StorageURI() (r string, exists bool) {
	v := m.storage_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageURI returns the old "storage_uri" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldStorageURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageURI: %w", err)
	}
	return oldValue.StorageURI, nil
}

// ResetStorageURI resets all changes to the "storage_uri" field.
func (m *OcrResultMutation) ResetStorageURI() {
	m.storage_uri = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *OcrResultMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *OcrResultMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the OcrResult entity.
// If the OcrResult object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *OcrResultMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *OcrResultMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearDownload clears the "download" edge to the Download entity.
func (m *OcrResultMutation) ClearDownload() {
	m.cleareddownload = true
	m.clearedFields[ocrresult.FieldDownloadID] = struct{}{}
}

// DownloadCleared reports if the "download" edge to the Download entity was cleared.
func (m *OcrResultMutation) DownloadCleared() bool {
	return m.cleareddownload
}

// DownloadIDs returns the "download" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DownloadID instead. It exists only for internal usage by the builders.
func (m *OcrResultMutation) DownloadIDs() (ids []int) {
	if id := m.download; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDownload resets all changes to the "download" edge.
func (m *OcrResultMutation) ResetDownload() {
	m.download = nil
	m.cleareddownload = false
}

// Where appends a list predicates to the OcrResultMutation builder.
func (m *OcrResultMutation) Where(ps ...predicate.OcrResult) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the OcrResultMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *OcrResultMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.OcrResult, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *OcrResultMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *OcrResultMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (OcrResult).
func (m *OcrResultMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *OcrResultMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.doc_id != nil {
		fields = append(fields, ocrresult.FieldDocID)
	}
	if m.download != nil {
		fields = append(fields, ocrresult.FieldDownloadID)
	}
	if m.storage_uri != nil {
		fields = append(fields, ocrresult.FieldStorageURI)
	}
	if m.created_at != nil {
		fields = append(fields, ocrresult.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *OcrResultMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ocrresult.FieldDocID:
		return m.DocID()
	case ocrresult.FieldDownloadID:
		return m.DownloadID()
	case ocrresult.FieldStorageURI:
		return m.StorageURI()
	case ocrresult.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *OcrResultMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ocrresult.FieldDocID:
		return m.OldDocID(ctx)
	case ocrresult.FieldDownloadID:
		return m.OldDownloadID(ctx)
	case ocrresult.FieldStorageURI:
		return m.OldStorageURI(ctx)
	case ocrresult.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown OcrResult field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrResultMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ocrresult.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case ocrresult.FieldDownloadID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDownloadID(v)
		return nil
	case ocrresult.FieldStorageURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageURI(v)
		return nil
	case ocrresult.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown OcrResult field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *OcrResultMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *OcrResultMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *OcrResultMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown OcrResult numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *OcrResultMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *OcrResultMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *OcrResultMutation) ClearField(name string) error {
	return fmt.Errorf("unknown OcrResult nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *OcrResultMutation) ResetField(name string) error {
	switch name {
	case ocrresult.FieldDocID:
		m.ResetDocID()
		return nil
	case ocrresult.FieldDownloadID:
		m.ResetDownloadID()
		return nil
	case ocrresult.FieldStorageURI:
		m.ResetStorageURI()
		return nil
	case ocrresult.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown OcrResult field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *OcrResultMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.download != nil {
		edges = append(edges, ocrresult.EdgeDownload)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *OcrResultMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ocrresult.EdgeDownload:
		if id := m.download; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *OcrResultMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *OcrResultMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *OcrResultMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddownload {
		edges = append(edges, ocrresult.EdgeDownload)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *OcrResultMutation) EdgeCleared(name string) bool {
	switch name {
	case ocrresult.EdgeDownload:
		return m.cleareddownload
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *OcrResultMutation) ClearEdge(name string) error {
	switch name {
	case ocrresult.EdgeDownload:
		m.ClearDownload()
		return nil
	}
	return fmt.Errorf("unknown OcrResult unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *OcrResultMutation) ResetEdge(name string) error {
	switch name {
	case ocrresult.EdgeDownload:
		m.ResetDownload()
		return nil
	}
	return fmt.Errorf("unknown OcrResult edge %s", name)
}

// ParseIssueMutation represents an operation that mutates the ParseIssue nodes in the graph.
type ParseIssueMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	doc_id        *string
	severity      *string
	category      *string
	message       *string
	details       *string
	location      *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ParseIssue, error)
	predicates    []predicate.ParseIssue
}

var _ ent.Mutation = (*ParseIssueMutation)(nil)

// parseissueOption allows management of the mutation configuration using functional options.
type parseissueOption func(*ParseIssueMutation)

// newParseIssueMutation creates new mutation for the ParseIssue entity.
func newParseIssueMutation(c config, op Op, opts ...parseissueOption) *ParseIssueMutation {
	m := &ParseIssueMutation{
		config:        c,
		op:            op,
		typ:           TypeParseIssue,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withParseIssueID sets the ID field of the mutation.
func withParseIssueID(id uuid.UUID) parseissueOption {
	return func(m *ParseIssueMutation) {
		var (
			err   error
			once  sync.Once
			value *ParseIssue
		)
		m.oldValue = func(ctx context.Context) (*ParseIssue, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ParseIssue.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withParseIssue sets the old ParseIssue of the mutation.
func withParseIssue(node *ParseIssue) parseissueOption {
	return func(m *ParseIssueMutation) {
		m.oldValue = func(context.Context) (*ParseIssue, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ParseIssueMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ParseIssueMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ParseIssue entities.
func (m *ParseIssueMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ParseIssueMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ParseIssueMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ParseIssue.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *ParseIssueMutation) SetDocID(s string) {
	m.doc_id = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *ParseIssueMutation) DocID() (r string, exists bool) {
	v := m.doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the ParseIssue entity.
// If the ParseIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseIssueMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *ParseIssueMutation) ResetDocID() {
	m.doc_id = nil
}

// SetSeverity sets the "severity" field.
func (m *ParseIssueMutation) SetSeverity(s string) {
	m.severity = &s
}

// Severity returns the value of the "severity" field in the mutation.
func (m *ParseIssueMutation) Severity() (r string, exists bool) {
	v := m.severity
	if v == nil {
		return
	}
	return *v, true
}

// OldSeverity returns the old "severity" field's value of the ParseIssue entity.
// If the ParseIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseIssueMutation) OldSeverity(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeverity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeverity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeverity: %w", err)
	}
	return oldValue.Severity, nil
}

// ResetSeverity resets all changes to the "severity" field.
func (m *ParseIssueMutation) ResetSeverity() {
	m.severity = nil
}

// SetCategory sets the "category" field.
func (m *ParseIssueMutation) SetCategory(s string) {
	m.category = &s
}

// Category returns the value of the "category" field in the mutation.
func (m *ParseIssueMutation) Category() (r string, exists bool) {
	v := m.category
	if v == nil {
		return
	}
	return *v, true
}

// OldCategory returns the old "category" field's value of the ParseIssue entity.
// If the ParseIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseIssueMutation) OldCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategory: %w", err)
	}
	return oldValue.Category, nil
}

// ResetCategory resets all changes to the "category" field.
func (m *ParseIssueMutation) ResetCategory() {
	m.category = nil
}

// SetMessage sets the "message" field.
func (m *ParseIssueMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *ParseIssueMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the ParseIssue entity.
// If the ParseIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseIssueMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *ParseIssueMutation) ResetMessage() {
	m.message = nil
}

// SetDetails sets the "details" field.
func (m *ParseIssueMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *ParseIssueMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the ParseIssue entity.
// If the ParseIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseIssueMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *ParseIssueMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[parseissue.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *ParseIssueMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[parseissue.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *ParseIssueMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, parseissue.FieldDetails)
}

// SetLocation sets the "location" field.
func (m *ParseIssueMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *ParseIssueMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the ParseIssue entity.
// If the ParseIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseIssueMutation) OldLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *ParseIssueMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[parseissue.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *ParseIssueMutation) LocationCleared() bool {
	_, ok := m.clearedFields[parseissue.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *ParseIssueMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, parseissue.FieldLocation)
}

// SetCreatedAt sets the "created_at" field.
func (m *ParseIssueMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ParseIssueMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ParseIssue entity.
// If the ParseIssue object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ParseIssueMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ParseIssueMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the ParseIssueMutation builder.
func (m *ParseIssueMutation) Where(ps ...predicate.ParseIssue) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ParseIssueMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ParseIssueMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ParseIssue, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ParseIssueMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ParseIssueMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ParseIssue).
func (m *ParseIssueMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ParseIssueMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.doc_id != nil {
		fields = append(fields, parseissue.FieldDocID)
	}
	if m.severity != nil {
		fields = append(fields, parseissue.FieldSeverity)
	}
	if m.category != nil {
		fields = append(fields, parseissue.FieldCategory)
	}
	if m.message != nil {
		fields = append(fields, parseissue.FieldMessage)
	}
	if m.details != nil {
		fields = append(fields, parseissue.FieldDetails)
	}
	if m.location != nil {
		fields = append(fields, parseissue.FieldLocation)
	}
	if m.created_at != nil {
		fields = append(fields, parseissue.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ParseIssueMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case parseissue.FieldDocID:
		return m.DocID()
	case parseissue.FieldSeverity:
		return m.Severity()
	case parseissue.FieldCategory:
		return m.Category()
	case parseissue.FieldMessage:
		return m.Message()
	case parseissue.FieldDetails:
		return m.Details()
	case parseissue.FieldLocation:
		return m.Location()
	case parseissue.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ParseIssueMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case parseissue.FieldDocID:
		return m.OldDocID(ctx)
	case parseissue.FieldSeverity:
		return m.OldSeverity(ctx)
	case parseissue.FieldCategory:
		return m.OldCategory(ctx)
	case parseissue.FieldMessage:
		return m.OldMessage(ctx)
	case parseissue.FieldDetails:
		return m.OldDetails(ctx)
	case parseissue.FieldLocation:
		return m.OldLocation(ctx)
	case parseissue.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ParseIssue field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseIssueMutation) SetField(name string, value ent.Value) error {
	switch name {
	case parseissue.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case parseissue.FieldSeverity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeverity(v)
		return nil
	case parseissue.FieldCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategory(v)
		return nil
	case parseissue.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case parseissue.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case parseissue.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case parseissue.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ParseIssue field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ParseIssueMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ParseIssueMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ParseIssueMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ParseIssue numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ParseIssueMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(parseissue.FieldDetails) {
		fields = append(fields, parseissue.FieldDetails)
	}
	if m.FieldCleared(parseissue.FieldLocation) {
		fields = append(fields, parseissue.FieldLocation)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ParseIssueMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ParseIssueMutation) ClearField(name string) error {
	switch name {
	case parseissue.FieldDetails:
		m.ClearDetails()
		return nil
	case parseissue.FieldLocation:
		m.ClearLocation()
		return nil
	}
	return fmt.Errorf("unknown ParseIssue nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ParseIssueMutation) ResetField(name string) error {
	switch name {
	case parseissue.FieldDocID:
		m.ResetDocID()
		return nil
	case parseissue.FieldSeverity:
		m.ResetSeverity()
		return nil
	case parseissue.FieldCategory:
		m.ResetCategory()
		return nil
	case parseissue.FieldMessage:
		m.ResetMessage()
		return nil
	case parseissue.FieldDetails:
		m.ResetDetails()
		return nil
	case parseissue.FieldLocation:
		m.ResetLocation()
		return nil
	case parseissue.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ParseIssue field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ParseIssueMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ParseIssueMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ParseIssueMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ParseIssueMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ParseIssueMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ParseIssueMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ParseIssueMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ParseIssue unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ParseIssueMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ParseIssue edge %s", name)
}

// ReportMutation represents an operation that mutates the Report nodes in the graph.
type ReportMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	doc_id              *string
	filer_name          *string
	filer_status        *string
	state               *string
	district            *int
	adddistrict         *int
	source_url          *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	transactions        map[uuid.UUID]struct{}
	removedtransactions map[uuid.UUID]struct{}
	clearedtransactions bool
	done                bool
	oldValue            func(context.Context) (*Report, error)
	predicates          []predicate.Report
}

var _ ent.Mutation = (*ReportMutation)(nil)

// reportOption allows management of the mutation configuration using functional options.
type reportOption func(*ReportMutation)

// newReportMutation creates new mutation for the Report entity.
func newReportMutation(c config, op Op, opts ...reportOption) *ReportMutation {
	m := &ReportMutation{
		config:        c,
		op:            op,
		typ:           TypeReport,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReportID sets the ID field of the mutation.
func withReportID(id uuid.UUID) reportOption {
	return func(m *ReportMutation) {
		var (
			err   error
			once  sync.Once
			value *Report
		)
		m.oldValue = func(ctx context.Context) (*Report, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Report.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReport sets the old Report of the mutation.
func withReport(node *Report) reportOption {
	return func(m *ReportMutation) {
		m.oldValue = func(context.Context) (*Report, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReportMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReportMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Report entities.
func (m *ReportMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReportMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReportMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Report.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocID sets the "doc_id" field.
func (m *ReportMutation) SetDocID(s string) {
	m.doc_id = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *ReportMutation) DocID() (r string, exists bool) {
	v := m.doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *ReportMutation) ResetDocID() {
	m.doc_id = nil
}

// SetFilerName sets the "filer_name" field.
func (m *ReportMutation) SetFilerName(s string) {
	m.filer_name = &s
}

// FilerName returns the value of the "filer_name" field in the mutation.
func (m *ReportMutation) FilerName() (r string, exists bool) {
	v := m.filer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFilerName returns the old "filer_name" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldFilerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilerName: %w", err)
	}
	return oldValue.FilerName, nil
}

// ResetFilerName resets all changes to the "filer_name" field.
func (m *ReportMutation) ResetFilerName() {
	m.filer_name = nil
}

// SetFilerStatus sets the "filer_status" field.
func (m *ReportMutation) SetFilerStatus(s string) {
	m.filer_status = &s
}

// FilerStatus returns the value of the "filer_status" field in the mutation.
func (m *ReportMutation) FilerStatus() (r string, exists bool) {
	v := m.filer_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFilerStatus returns the old "filer_status" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldFilerStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilerStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilerStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilerStatus: %w", err)
	}
	return oldValue.FilerStatus, nil
}

// ResetFilerStatus resets all changes to the "filer_status" field.
func (m *ReportMutation) ResetFilerStatus() {
	m.filer_status = nil
}

// SetState sets the "state" field.
func (m *ReportMutation) SetState(s string) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *ReportMutation) State() (r string, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ReportMutation) ResetState() {
	m.state = nil
}

// SetDistrict sets the "district" field.
func (m *ReportMutation) SetDistrict(i int) {
	m.district = &i
	m.adddistrict = nil
}

// District returns the value of the "district" field in the mutation.
func (m *ReportMutation) District() (r int, exists bool) {
	v := m.district
	if v == nil {
		return
	}
	return *v, true
}

// OldDistrict returns the old "district" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldDistrict(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistrict is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistrict requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistrict: %w", err)
	}
	return oldValue.District, nil
}

// AddDistrict adds i to the "district" field.
func (m *ReportMutation) AddDistrict(i int) {
	if m.adddistrict != nil {
		*m.adddistrict += i
	} else {
		m.adddistrict = &i
	}
}

// AddedDistrict returns the value that was added to the "district" field in this mutation.
func (m *ReportMutation) AddedDistrict() (r int, exists bool) {
	v := m.adddistrict
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistrict resets all changes to the "district" field.
func (m *ReportMutation) ResetDistrict() {
	m.district = nil
	m.adddistrict = nil
}

// SetSourceURL sets the "source_url" field.
func (m *ReportMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *ReportMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *ReportMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ReportMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ReportMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Report entity.
// If the Report object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReportMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ReportMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by ids.
func (m *ReportMutation) AddTransactionIDs(ids ...uuid.UUID) {
	if m.transactions == nil {
		m.transactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.transactions[ids[i]] = struct{}{}
	}
}

// ClearTransactions clears the "transactions" edge to the Transaction entity.
func (m *ReportMutation) ClearTransactions() {
	m.clearedtransactions = true
}

// TransactionsCleared reports if the "transactions" edge to the Transaction entity was cleared.
func (m *ReportMutation) TransactionsCleared() bool {
	return m.clearedtransactions
}

// RemoveTransactionIDs removes the "transactions" edge to the Transaction entity by IDs.
func (m *ReportMutation) RemoveTransactionIDs(ids ...uuid.UUID) {
	if m.removedtransactions == nil {
		m.removedtransactions = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.transactions, ids[i])
		m.removedtransactions[ids[i]] = struct{}{}
	}
}

// RemovedTransactions returns the removed IDs of the "transactions" edge to the Transaction entity.
func (m *ReportMutation) RemovedTransactionsIDs() (ids []uuid.UUID) {
	for id := range m.removedtransactions {
		ids = append(ids, id)
	}
	return
}

// TransactionsIDs returns the "transactions" edge IDs in the mutation.
func (m *ReportMutation) TransactionsIDs() (ids []uuid.UUID) {
	for id := range m.transactions {
		ids = append(ids, id)
	}
	return
}

// ResetTransactions resets all changes to the "transactions" edge.
func (m *ReportMutation) ResetTransactions() {
	m.transactions = nil
	m.clearedtransactions = false
	m.removedtransactions = nil
}

// Where appends a list predicates to the ReportMutation builder.
func (m *ReportMutation) Where(ps ...predicate.Report) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReportMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReportMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Report, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReportMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReportMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Report).
func (m *ReportMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReportMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.doc_id != nil {
		fields = append(fields, report.FieldDocID)
	}
	if m.filer_name != nil {
		fields = append(fields, report.FieldFilerName)
	}
	if m.filer_status != nil {
		fields = append(fields, report.FieldFilerStatus)
	}
	if m.state != nil {
		fields = append(fields, report.FieldState)
	}
	if m.district != nil {
		fields = append(fields, report.FieldDistrict)
	}
	if m.source_url != nil {
		fields = append(fields, report.FieldSourceURL)
	}
	if m.created_at != nil {
		fields = append(fields, report.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReportMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case report.FieldDocID:
		return m.DocID()
	case report.FieldFilerName:
		return m.FilerName()
	case report.FieldFilerStatus:
		return m.FilerStatus()
	case report.FieldState:
		return m.State()
	case report.FieldDistrict:
		return m.District()
	case report.FieldSourceURL:
		return m.SourceURL()
	case report.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReportMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case report.FieldDocID:
		return m.OldDocID(ctx)
	case report.FieldFilerName:
		return m.OldFilerName(ctx)
	case report.FieldFilerStatus:
		return m.OldFilerStatus(ctx)
	case report.FieldState:
		return m.OldState(ctx)
	case report.FieldDistrict:
		return m.OldDistrict(ctx)
	case report.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case report.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Report field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) SetField(name string, value ent.Value) error {
	switch name {
	case report.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case report.FieldFilerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilerName(v)
		return nil
	case report.FieldFilerStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilerStatus(v)
		return nil
	case report.FieldState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case report.FieldDistrict:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistrict(v)
		return nil
	case report.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case report.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReportMutation) AddedFields() []string {
	var fields []string
	if m.adddistrict != nil {
		fields = append(fields, report.FieldDistrict)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReportMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case report.FieldDistrict:
		return m.AddedDistrict()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReportMutation) AddField(name string, value ent.Value) error {
	switch name {
	case report.FieldDistrict:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistrict(v)
		return nil
	}
	return fmt.Errorf("unknown Report numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReportMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReportMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReportMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Report nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReportMutation) ResetField(name string) error {
	switch name {
	case report.FieldDocID:
		m.ResetDocID()
		return nil
	case report.FieldFilerName:
		m.ResetFilerName()
		return nil
	case report.FieldFilerStatus:
		m.ResetFilerStatus()
		return nil
	case report.FieldState:
		m.ResetState()
		return nil
	case report.FieldDistrict:
		m.ResetDistrict()
		return nil
	case report.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case report.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Report field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReportMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.transactions != nil {
		edges = append(edges, report.EdgeTransactions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReportMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.transactions))
		for id := range m.transactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReportMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedtransactions != nil {
		edges = append(edges, report.EdgeTransactions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReportMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case report.EdgeTransactions:
		ids := make([]ent.Value, 0, len(m.removedtransactions))
		for id := range m.removedtransactions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReportMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtransactions {
		edges = append(edges, report.EdgeTransactions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReportMutation) EdgeCleared(name string) bool {
	switch name {
	case report.EdgeTransactions:
		return m.clearedtransactions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReportMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Report unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReportMutation) ResetEdge(name string) error {
	switch name {
	case report.EdgeTransactions:
		m.ResetTransactions()
		return nil
	}
	return fmt.Errorf("unknown Report edge %s", name)
}

// TransactionMutation represents an operation that mutates the Transaction nodes in the graph.
type TransactionMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	doc_id            *string
	position          *int
	addposition       *int
	owner             *string
	asset_name        *string
	asset_type        *string
	filing_status     *string
	trade_type        *string
	amount_range      *string
	trade_date        *time.Time
	notification_date *time.Time
	source_url        *string
	created_at        *time.Time
	clearedFields     map[string]struct{}
	report            *uuid.UUID
	clearedreport     bool
	done              bool
	oldValue          func(context.Context) (*Transaction, error)
	predicates        []predicate.Transaction
}

var _ ent.Mutation = (*TransactionMutation)(nil)

// transactionOption allows management of the mutation configuration using functional options.
type transactionOption func(*TransactionMutation)

// newTransactionMutation creates new mutation for the Transaction entity.
func newTransactionMutation(c config, op Op, opts ...transactionOption) *TransactionMutation {
	m := &TransactionMutation{
		config:        c,
		op:            op,
		typ:           TypeTransaction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTransactionID sets the ID field of the mutation.
func withTransactionID(id uuid.UUID) transactionOption {
	return func(m *TransactionMutation) {
		var (
			err   error
			once  sync.Once
			value *Transaction
		)
		m.oldValue = func(ctx context.Context) (*Transaction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Transaction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTransaction sets the old Transaction of the mutation.
func withTransaction(node *Transaction) transactionOption {
	return func(m *TransactionMutation) {
		m.oldValue = func(context.Context) (*Transaction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TransactionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TransactionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Transaction entities.
func (m *TransactionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TransactionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TransactionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Transaction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetReportID sets the "report_id" field.
func (m *TransactionMutation) SetReportID(u uuid.UUID) {
	m.report = &u
}

// ReportID returns the value of the "report_id" field in the mutation.
func (m *TransactionMutation) ReportID() (r uuid.UUID, exists bool) {
	v := m.report
	if v == nil {
		return
	}
	return *v, true
}

// OldReportID returns the old "report_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldReportID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReportID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReportID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReportID: %w", err)
	}
	return oldValue.ReportID, nil
}

// ResetReportID resets all changes to the "report_id" field.
func (m *TransactionMutation) ResetReportID() {
	m.report = nil
}

// SetDocID sets the "doc_id" field.
func (m *TransactionMutation) SetDocID(s string) {
	m.doc_id = &s
}

// DocID returns the value of the "doc_id" field in the mutation.
func (m *TransactionMutation) DocID() (r string, exists bool) {
	v := m.doc_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocID returns the old "doc_id" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldDocID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocID: %w", err)
	}
	return oldValue.DocID, nil
}

// ResetDocID resets all changes to the "doc_id" field.
func (m *TransactionMutation) ResetDocID() {
	m.doc_id = nil
}

// SetPosition sets the "position" field.
func (m *TransactionMutation) SetPosition(i int) {
	m.position = &i
	m.addposition = nil
}

// Position returns the value of the "position" field in the mutation.
func (m *TransactionMutation) Position() (r int, exists bool) {
	v := m.position
	if v == nil {
		return
	}
	return *v, true
}

// OldPosition returns the old "position" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldPosition(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosition is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosition requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosition: %w", err)
	}
	return oldValue.Position, nil
}

// AddPosition adds i to the "position" field.
func (m *TransactionMutation) AddPosition(i int) {
	if m.addposition != nil {
		*m.addposition += i
	} else {
		m.addposition = &i
	}
}

// AddedPosition returns the value that was added to the "position" field in this mutation.
func (m *TransactionMutation) AddedPosition() (r int, exists bool) {
	v := m.addposition
	if v == nil {
		return
	}
	return *v, true
}

// ResetPosition resets all changes to the "position" field.
func (m *TransactionMutation) ResetPosition() {
	m.position = nil
	m.addposition = nil
}

// SetOwner sets the "owner" field.
func (m *TransactionMutation) SetOwner(s string) {
	m.owner = &s
}

// Owner returns the value of the "owner" field in the mutation.
func (m *TransactionMutation) Owner() (r string, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldOwner returns the old "owner" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwner: %w", err)
	}
	return oldValue.Owner, nil
}

// ClearOwner clears the value of the "owner" field.
func (m *TransactionMutation) ClearOwner() {
	m.owner = nil
	m.clearedFields[transaction.FieldOwner] = struct{}{}
}

// OwnerCleared returns if the "owner" field was cleared in this mutation.
func (m *TransactionMutation) OwnerCleared() bool {
	_, ok := m.clearedFields[transaction.FieldOwner]
	return ok
}

// ResetOwner resets all changes to the "owner" field.
func (m *TransactionMutation) ResetOwner() {
	m.owner = nil
	delete(m.clearedFields, transaction.FieldOwner)
}

// SetAssetName sets the "asset_name" field.
func (m *TransactionMutation) SetAssetName(s string) {
	m.asset_name = &s
}

// AssetName returns the value of the "asset_name" field in the mutation.
func (m *TransactionMutation) AssetName() (r string, exists bool) {
	v := m.asset_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetName returns the old "asset_name" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAssetName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetName: %w", err)
	}
	return oldValue.AssetName, nil
}

// ResetAssetName resets all changes to the "asset_name" field.
func (m *TransactionMutation) ResetAssetName() {
	m.asset_name = nil
}

// SetAssetType sets the "asset_type" field.
func (m *TransactionMutation) SetAssetType(s string) {
	m.asset_type = &s
}

// AssetType returns the value of the "asset_type" field in the mutation.
func (m *TransactionMutation) AssetType() (r string, exists bool) {
	v := m.asset_type
	if v == nil {
		return
	}
	return *v, true
}

// OldAssetType returns the old "asset_type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAssetType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssetType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssetType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssetType: %w", err)
	}
	return oldValue.AssetType, nil
}

// ClearAssetType clears the value of the "asset_type" field.
func (m *TransactionMutation) ClearAssetType() {
	m.asset_type = nil
	m.clearedFields[transaction.FieldAssetType] = struct{}{}
}

// AssetTypeCleared returns if the "asset_type" field was cleared in this mutation.
func (m *TransactionMutation) AssetTypeCleared() bool {
	_, ok := m.clearedFields[transaction.FieldAssetType]
	return ok
}

// ResetAssetType resets all changes to the "asset_type" field.
func (m *TransactionMutation) ResetAssetType() {
	m.asset_type = nil
	delete(m.clearedFields, transaction.FieldAssetType)
}

// SetFilingStatus sets the "filing_status" field.
func (m *TransactionMutation) SetFilingStatus(s string) {
	m.filing_status = &s
}

// FilingStatus returns the value of the "filing_status" field in the mutation.
func (m *TransactionMutation) FilingStatus() (r string, exists bool) {
	v := m.filing_status
	if v == nil {
		return
	}
	return *v, true
}

// OldFilingStatus returns the old "filing_status" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldFilingStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilingStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilingStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilingStatus: %w", err)
	}
	return oldValue.FilingStatus, nil
}

// ResetFilingStatus resets all changes to the "filing_status" field.
func (m *TransactionMutation) ResetFilingStatus() {
	m.filing_status = nil
}

// SetTradeType sets the "trade_type" field.
func (m *TransactionMutation) SetTradeType(s string) {
	m.trade_type = &s
}

// TradeType returns the value of the "trade_type" field in the mutation.
func (m *TransactionMutation) TradeType() (r string, exists bool) {
	v := m.trade_type
	if v == nil {
		return
	}
	return *v, true
}

// OldTradeType returns the old "trade_type" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldTradeType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTradeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTradeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTradeType: %w", err)
	}
	return oldValue.TradeType, nil
}

// ResetTradeType resets all changes to the "trade_type" field.
func (m *TransactionMutation) ResetTradeType() {
	m.trade_type = nil
}

// SetAmountRange sets the "amount_range" field.
func (m *TransactionMutation) SetAmountRange(s string) {
	m.amount_range = &s
}

// AmountRange returns the value of the "amount_range" field in the mutation.
func (m *TransactionMutation) AmountRange() (r string, exists bool) {
	v := m.amount_range
	if v == nil {
		return
	}
	return *v, true
}

// OldAmountRange returns the old "amount_range" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldAmountRange(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmountRange is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmountRange requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmountRange: %w", err)
	}
	return oldValue.AmountRange, nil
}

// ResetAmountRange resets all changes to the "amount_range" field.
func (m *TransactionMutation) ResetAmountRange() {
	m.amount_range = nil
}

// SetTradeDate sets the "trade_date" field.
func (m *TransactionMutation) SetTradeDate(t time.Time) {
	m.trade_date = &t
}

// TradeDate returns the value of the "trade_date" field in the mutation.
func (m *TransactionMutation) TradeDate() (r time.Time, exists bool) {
	v := m.trade_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTradeDate returns the old "trade_date" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldTradeDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTradeDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTradeDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTradeDate: %w", err)
	}
	return oldValue.TradeDate, nil
}

// ResetTradeDate resets all changes to the "trade_date" field.
func (m *TransactionMutation) ResetTradeDate() {
	m.trade_date = nil
}

// SetNotificationDate sets the "notification_date" field.
func (m *TransactionMutation) SetNotificationDate(t time.Time) {
	m.notification_date = &t
}

// NotificationDate returns the value of the "notification_date" field in the mutation.
func (m *TransactionMutation) NotificationDate() (r time.Time, exists bool) {
	v := m.notification_date
	if v == nil {
		return
	}
	return *v, true
}

// OldNotificationDate returns the old "notification_date" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldNotificationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotificationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotificationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotificationDate: %w", err)
	}
	return oldValue.NotificationDate, nil
}

// ClearNotificationDate clears the value of the "notification_date" field.
func (m *TransactionMutation) ClearNotificationDate() {
	m.notification_date = nil
	m.clearedFields[transaction.FieldNotificationDate] = struct{}{}
}

// NotificationDateCleared returns if the "notification_date" field was cleared in this mutation.
func (m *TransactionMutation) NotificationDateCleared() bool {
	_, ok := m.clearedFields[transaction.FieldNotificationDate]
	return ok
}

// ResetNotificationDate resets all changes to the "notification_date" field.
func (m *TransactionMutation) ResetNotificationDate() {
	m.notification_date = nil
	delete(m.clearedFields, transaction.FieldNotificationDate)
}

// SetSourceURL sets the "source_url" field.
func (m *TransactionMutation) SetSourceURL(s string) {
	m.source_url = &s
}

// SourceURL returns the value of the "source_url" field in the mutation.
func (m *TransactionMutation) SourceURL() (r string, exists bool) {
	v := m.source_url
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceURL returns the old "source_url" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldSourceURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceURL: %w", err)
	}
	return oldValue.SourceURL, nil
}

// ResetSourceURL resets all changes to the "source_url" field.
func (m *TransactionMutation) ResetSourceURL() {
	m.source_url = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TransactionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TransactionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Transaction entity.
// If the Transaction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TransactionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TransactionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearReport clears the "report" edge to the Report entity.
func (m *TransactionMutation) ClearReport() {
	m.clearedreport = true
	m.clearedFields[transaction.FieldReportID] = struct{}{}
}

// ReportCleared reports if the "report" edge to the Report entity was cleared.
func (m *TransactionMutation) ReportCleared() bool {
	return m.clearedreport
}

// ReportIDs returns the "report" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ReportID instead. It exists only for internal usage by the builders.
func (m *TransactionMutation) ReportIDs() (ids []uuid.UUID) {
	if id := m.report; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetReport resets all changes to the "report" edge.
func (m *TransactionMutation) ResetReport() {
	m.report = nil
	m.clearedreport = false
}

// Where appends a list predicates to the TransactionMutation builder.
func (m *TransactionMutation) Where(ps ...predicate.Transaction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TransactionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TransactionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Transaction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TransactionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TransactionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Transaction).
func (m *TransactionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TransactionMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.report != nil {
		fields = append(fields, transaction.FieldReportID)
	}
	if m.doc_id != nil {
		fields = append(fields, transaction.FieldDocID)
	}
	if m.position != nil {
		fields = append(fields, transaction.FieldPosition)
	}
	if m.owner != nil {
		fields = append(fields, transaction.FieldOwner)
	}
	if m.asset_name != nil {
		fields = append(fields, transaction.FieldAssetName)
	}
	if m.asset_type != nil {
		fields = append(fields, transaction.FieldAssetType)
	}
	if m.filing_status != nil {
		fields = append(fields, transaction.FieldFilingStatus)
	}
	if m.trade_type != nil {
		fields = append(fields, transaction.FieldTradeType)
	}
	if m.amount_range != nil {
		fields = append(fields, transaction.FieldAmountRange)
	}
	if m.trade_date != nil {
		fields = append(fields, transaction.FieldTradeDate)
	}
	if m.notification_date != nil {
		fields = append(fields, transaction.FieldNotificationDate)
	}
	if m.source_url != nil {
		fields = append(fields, transaction.FieldSourceURL)
	}
	if m.created_at != nil {
		fields = append(fields, transaction.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TransactionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldReportID:
		return m.ReportID()
	case transaction.FieldDocID:
		return m.DocID()
	case transaction.FieldPosition:
		return m.Position()
	case transaction.FieldOwner:
		return m.Owner()
	case transaction.FieldAssetName:
		return m.AssetName()
	case transaction.FieldAssetType:
		return m.AssetType()
	case transaction.FieldFilingStatus:
		return m.FilingStatus()
	case transaction.FieldTradeType:
		return m.TradeType()
	case transaction.FieldAmountRange:
		return m.AmountRange()
	case transaction.FieldTradeDate:
		return m.TradeDate()
	case transaction.FieldNotificationDate:
		return m.NotificationDate()
	case transaction.FieldSourceURL:
		return m.SourceURL()
	case transaction.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TransactionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case transaction.FieldReportID:
		return m.OldReportID(ctx)
	case transaction.FieldDocID:
		return m.OldDocID(ctx)
	case transaction.FieldPosition:
		return m.OldPosition(ctx)
	case transaction.FieldOwner:
		return m.OldOwner(ctx)
	case transaction.FieldAssetName:
		return m.OldAssetName(ctx)
	case transaction.FieldAssetType:
		return m.OldAssetType(ctx)
	case transaction.FieldFilingStatus:
		return m.OldFilingStatus(ctx)
	case transaction.FieldTradeType:
		return m.OldTradeType(ctx)
	case transaction.FieldAmountRange:
		return m.OldAmountRange(ctx)
	case transaction.FieldTradeDate:
		return m.OldTradeDate(ctx)
	case transaction.FieldNotificationDate:
		return m.OldNotificationDate(ctx)
	case transaction.FieldSourceURL:
		return m.OldSourceURL(ctx)
	case transaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Transaction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldReportID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReportID(v)
		return nil
	case transaction.FieldDocID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocID(v)
		return nil
	case transaction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosition(v)
		return nil
	case transaction.FieldOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwner(v)
		return nil
	case transaction.FieldAssetName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetName(v)
		return nil
	case transaction.FieldAssetType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssetType(v)
		return nil
	case transaction.FieldFilingStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilingStatus(v)
		return nil
	case transaction.FieldTradeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTradeType(v)
		return nil
	case transaction.FieldAmountRange:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmountRange(v)
		return nil
	case transaction.FieldTradeDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTradeDate(v)
		return nil
	case transaction.FieldNotificationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotificationDate(v)
		return nil
	case transaction.FieldSourceURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceURL(v)
		return nil
	case transaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TransactionMutation) AddedFields() []string {
	var fields []string
	if m.addposition != nil {
		fields = append(fields, transaction.FieldPosition)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TransactionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case transaction.FieldPosition:
		return m.AddedPosition()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TransactionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case transaction.FieldPosition:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPosition(v)
		return nil
	}
	return fmt.Errorf("unknown Transaction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TransactionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(transaction.FieldOwner) {
		fields = append(fields, transaction.FieldOwner)
	}
	if m.FieldCleared(transaction.FieldAssetType) {
		fields = append(fields, transaction.FieldAssetType)
	}
	if m.FieldCleared(transaction.FieldNotificationDate) {
		fields = append(fields, transaction.FieldNotificationDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TransactionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TransactionMutation) ClearField(name string) error {
	switch name {
	case transaction.FieldOwner:
		m.ClearOwner()
		return nil
	case transaction.FieldAssetType:
		m.ClearAssetType()
		return nil
	case transaction.FieldNotificationDate:
		m.ClearNotificationDate()
		return nil
	}
	return fmt.Errorf("unknown Transaction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TransactionMutation) ResetField(name string) error {
	switch name {
	case transaction.FieldReportID:
		m.ResetReportID()
		return nil
	case transaction.FieldDocID:
		m.ResetDocID()
		return nil
	case transaction.FieldPosition:
		m.ResetPosition()
		return nil
	case transaction.FieldOwner:
		m.ResetOwner()
		return nil
	case transaction.FieldAssetName:
		m.ResetAssetName()
		return nil
	case transaction.FieldAssetType:
		m.ResetAssetType()
		return nil
	case transaction.FieldFilingStatus:
		m.ResetFilingStatus()
		return nil
	case transaction.FieldTradeType:
		m.ResetTradeType()
		return nil
	case transaction.FieldAmountRange:
		m.ResetAmountRange()
		return nil
	case transaction.FieldTradeDate:
		m.ResetTradeDate()
		return nil
	case transaction.FieldNotificationDate:
		m.ResetNotificationDate()
		return nil
	case transaction.FieldSourceURL:
		m.ResetSourceURL()
		return nil
	case transaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Transaction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TransactionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.report != nil {
		edges = append(edges, transaction.EdgeReport)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TransactionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case transaction.EdgeReport:
		if id := m.report; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TransactionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TransactionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TransactionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedreport {
		edges = append(edges, transaction.EdgeReport)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TransactionMutation) EdgeCleared(name string) bool {
	switch name {
	case transaction.EdgeReport:
		return m.clearedreport
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TransactionMutation) ClearEdge(name string) error {
	switch name {
	case transaction.EdgeReport:
		m.ClearReport()
		return nil
	}
	return fmt.Errorf("unknown Transaction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TransactionMutation) ResetEdge(name string) error {
	switch name {
	case transaction.EdgeReport:
		m.ResetReport()
		return nil
	}
	return fmt.Errorf("unknown Transaction edge %s", name)
}
