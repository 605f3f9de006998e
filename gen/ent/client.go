// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/mholloway/ptr-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/mholloway/ptr-tracker/gen/ent/download"
	"github.com/mholloway/ptr-tracker/gen/ent/filing"
	"github.com/mholloway/ptr-tracker/gen/ent/filinglist"
	"github.com/mholloway/ptr-tracker/gen/ent/ocrresult"
	"github.com/mholloway/ptr-tracker/gen/ent/parseissue"
	"github.com/mholloway/ptr-tracker/gen/ent/report"
	"github.com/mholloway/ptr-tracker/gen/ent/transaction"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Download is the client for interacting with the Download builders.
	Download *DownloadClient
	// Filing is the client for interacting with the Filing builders.
	Filing *FilingClient
	// FilingList is the client for interacting with the FilingList builders.
	FilingList *FilingListClient
	// OcrResult is the client for interacting with the OcrResult builders.
	OcrResult *OcrResultClient
	// ParseIssue is the client for interacting with the ParseIssue builders.
	ParseIssue *ParseIssueClient
	// Report is the client for interacting with the Report builders.
	Report *ReportClient
	// Transaction is the client for interacting with the Transaction builders.
	Transaction *TransactionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Download = NewDownloadClient(c.config)
	c.Filing = NewFilingClient(c.config)
	c.FilingList = NewFilingListClient(c.config)
	c.OcrResult = NewOcrResultClient(c.config)
	c.ParseIssue = NewParseIssueClient(c.config)
	c.Report = NewReportClient(c.config)
	c.Transaction = NewTransactionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Download:    NewDownloadClient(cfg),
		Filing:      NewFilingClient(cfg),
		FilingList:  NewFilingListClient(cfg),
		OcrResult:   NewOcrResultClient(cfg),
		ParseIssue:  NewParseIssueClient(cfg),
		Report:      NewReportClient(cfg),
		Transaction: NewTransactionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Download:    NewDownloadClient(cfg),
		Filing:      NewFilingClient(cfg),
		FilingList:  NewFilingListClient(cfg),
		OcrResult:   NewOcrResultClient(cfg),
		ParseIssue:  NewParseIssueClient(cfg),
		Report:      NewReportClient(cfg),
		Transaction: NewTransactionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Download.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Download, c.Filing, c.FilingList, c.OcrResult, c.ParseIssue, c.Report,
		c.Transaction,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Download, c.Filing, c.FilingList, c.OcrResult, c.ParseIssue, c.Report,
		c.Transaction,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *DownloadMutation:
		return c.Download.mutate(ctx, m)
	case *FilingMutation:
		return c.Filing.mutate(ctx, m)
	case *FilingListMutation:
		return c.FilingList.mutate(ctx, m)
	case *OcrResultMutation:
		return c.OcrResult.mutate(ctx, m)
	case *ParseIssueMutation:
		return c.ParseIssue.mutate(ctx, m)
	case *ReportMutation:
		return c.Report.mutate(ctx, m)
	case *TransactionMutation:
		return c.Transaction.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// DownloadClient is a client for the Download schema.
type DownloadClient struct {
	config
}

// NewDownloadClient returns a client for the Download from the given config.
func NewDownloadClient(c config) *DownloadClient {
	return &DownloadClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `download.Hooks(f(g(h())))`.
func (c *DownloadClient) Use(hooks ...Hook) {
	c.hooks.Download = append(c.hooks.Download, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `download.Intercept(f(g(h())))`.
func (c *DownloadClient) Intercept(interceptors ...Interceptor) {
	c.inters.Download = append(c.inters.Download, interceptors...)
}

// Create returns a builder for creating a Download entity.
func (c *DownloadClient) Create() *DownloadCreate {
	mutation := newDownloadMutation(c.config, OpCreate)
	return &DownloadCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Download entities.
func (c *DownloadClient) CreateBulk(builders ...*DownloadCreate) *DownloadCreateBulk {
	return &DownloadCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DownloadClient) MapCreateBulk(slice any, setFunc func(*DownloadCreate, int)) *DownloadCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DownloadCreateBulk{err: fmt.Errorf("calling to DownloadClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DownloadCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DownloadCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Download.
func (c *DownloadClient) Update() *DownloadUpdate {
	mutation := newDownloadMutation(c.config, OpUpdate)
	return &DownloadUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DownloadClient) UpdateOne(_m *Download) *DownloadUpdateOne {
	mutation := newDownloadMutation(c.config, OpUpdateOne, withDownload(_m))
	return &DownloadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DownloadClient) UpdateOneID(id int) *DownloadUpdateOne {
	mutation := newDownloadMutation(c.config, OpUpdateOne, withDownloadID(id))
	return &DownloadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Download.
func (c *DownloadClient) Delete() *DownloadDelete {
	mutation := newDownloadMutation(c.config, OpDelete)
	return &DownloadDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DownloadClient) DeleteOne(_m *Download) *DownloadDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DownloadClient) DeleteOneID(id int) *DownloadDeleteOne {
	builder := c.Delete().Where(download.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DownloadDeleteOne{builder}
}

// Query returns a query builder for Download.
func (c *DownloadClient) Query() *DownloadQuery {
	return &DownloadQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDownload},
		inters: c.Interceptors(),
	}
}

// Get returns a Download entity by its id.
func (c *DownloadClient) Get(ctx context.Context, id int) (*Download, error) {
	return c.Query().Where(download.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DownloadClient) GetX(ctx context.Context, id int) *Download {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOcrResults queries the ocr_results edge of a Download.
func (c *DownloadClient) QueryOcrResults(_m *Download) *OcrResultQuery {
	query := (&OcrResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(download.Table, download.FieldID, id),
			sqlgraph.To(ocrresult.Table, ocrresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, download.OcrResultsTable, download.OcrResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DownloadClient) Hooks() []Hook {
	return c.hooks.Download
}

// Interceptors returns the client interceptors.
func (c *DownloadClient) Interceptors() []Interceptor {
	return c.inters.Download
}

func (c *DownloadClient) mutate(ctx context.Context, m *DownloadMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DownloadCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DownloadUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DownloadUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DownloadDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Download mutation op: %q", m.Op())
	}
}

// FilingClient is a client for the Filing schema.
type FilingClient struct {
	config
}

// NewFilingClient returns a client for the Filing from the given config.
func NewFilingClient(c config) *FilingClient {
	return &FilingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filing.Hooks(f(g(h())))`.
func (c *FilingClient) Use(hooks ...Hook) {
	c.hooks.Filing = append(c.hooks.Filing, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filing.Intercept(f(g(h())))`.
func (c *FilingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Filing = append(c.inters.Filing, interceptors...)
}

// Create returns a builder for creating a Filing entity.
func (c *FilingClient) Create() *FilingCreate {
	mutation := newFilingMutation(c.config, OpCreate)
	return &FilingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Filing entities.
func (c *FilingClient) CreateBulk(builders ...*FilingCreate) *FilingCreateBulk {
	return &FilingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FilingClient) MapCreateBulk(slice any, setFunc func(*FilingCreate, int)) *FilingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FilingCreateBulk{err: fmt.Errorf("calling to FilingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FilingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FilingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Filing.
func (c *FilingClient) Update() *FilingUpdate {
	mutation := newFilingMutation(c.config, OpUpdate)
	return &FilingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FilingClient) UpdateOne(_m *Filing) *FilingUpdateOne {
	mutation := newFilingMutation(c.config, OpUpdateOne, withFiling(_m))
	return &FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FilingClient) UpdateOneID(id int) *FilingUpdateOne {
	mutation := newFilingMutation(c.config, OpUpdateOne, withFilingID(id))
	return &FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Filing.
func (c *FilingClient) Delete() *FilingDelete {
	mutation := newFilingMutation(c.config, OpDelete)
	return &FilingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FilingClient) DeleteOne(_m *Filing) *FilingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FilingClient) DeleteOneID(id int) *FilingDeleteOne {
	builder := c.Delete().Where(filing.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FilingDeleteOne{builder}
}

// Query returns a query builder for Filing.
func (c *FilingClient) Query() *FilingQuery {
	return &FilingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFiling},
		inters: c.Interceptors(),
	}
}

// Get returns a Filing entity by its id.
func (c *FilingClient) Get(ctx context.Context, id int) (*Filing, error) {
	return c.Query().Where(filing.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FilingClient) GetX(ctx context.Context, id int) *Filing {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FilingClient) Hooks() []Hook {
	return c.hooks.Filing
}

// Interceptors returns the client interceptors.
func (c *FilingClient) Interceptors() []Interceptor {
	return c.inters.Filing
}

func (c *FilingClient) mutate(ctx context.Context, m *FilingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FilingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FilingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FilingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FilingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Filing mutation op: %q", m.Op())
	}
}

// FilingListClient is a client for the FilingList schema.
type FilingListClient struct {
	config
}

// NewFilingListClient returns a client for the FilingList from the given config.
func NewFilingListClient(c config) *FilingListClient {
	return &FilingListClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `filinglist.Hooks(f(g(h())))`.
func (c *FilingListClient) Use(hooks ...Hook) {
	c.hooks.FilingList = append(c.hooks.FilingList, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `filinglist.Intercept(f(g(h())))`.
func (c *FilingListClient) Intercept(interceptors ...Interceptor) {
	c.inters.FilingList = append(c.inters.FilingList, interceptors...)
}

// Create returns a builder for creating a FilingList entity.
func (c *FilingListClient) Create() *FilingListCreate {
	mutation := newFilingListMutation(c.config, OpCreate)
	return &FilingListCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FilingList entities.
func (c *FilingListClient) CreateBulk(builders ...*FilingListCreate) *FilingListCreateBulk {
	return &FilingListCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FilingListClient) MapCreateBulk(slice any, setFunc func(*FilingListCreate, int)) *FilingListCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FilingListCreateBulk{err: fmt.Errorf("calling to FilingListClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FilingListCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FilingListCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FilingList.
func (c *FilingListClient) Update() *FilingListUpdate {
	mutation := newFilingListMutation(c.config, OpUpdate)
	return &FilingListUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FilingListClient) UpdateOne(_m *FilingList) *FilingListUpdateOne {
	mutation := newFilingListMutation(c.config, OpUpdateOne, withFilingList(_m))
	return &FilingListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FilingListClient) UpdateOneID(id int) *FilingListUpdateOne {
	mutation := newFilingListMutation(c.config, OpUpdateOne, withFilingListID(id))
	return &FilingListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FilingList.
func (c *FilingListClient) Delete() *FilingListDelete {
	mutation := newFilingListMutation(c.config, OpDelete)
	return &FilingListDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FilingListClient) DeleteOne(_m *FilingList) *FilingListDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FilingListClient) DeleteOneID(id int) *FilingListDeleteOne {
	builder := c.Delete().Where(filinglist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FilingListDeleteOne{builder}
}

// Query returns a query builder for FilingList.
func (c *FilingListClient) Query() *FilingListQuery {
	return &FilingListQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFilingList},
		inters: c.Interceptors(),
	}
}

// Get returns a FilingList entity by its id.
func (c *FilingListClient) Get(ctx context.Context, id int) (*FilingList, error) {
	return c.Query().Where(filinglist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FilingListClient) GetX(ctx context.Context, id int) *FilingList {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *FilingListClient) Hooks() []Hook {
	return c.hooks.FilingList
}

// Interceptors returns the client interceptors.
func (c *FilingListClient) Interceptors() []Interceptor {
	return c.inters.FilingList
}

func (c *FilingListClient) mutate(ctx context.Context, m *FilingListMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FilingListCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FilingListUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FilingListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FilingListDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FilingList mutation op: %q", m.Op())
	}
}

// OcrResultClient is a client for the OcrResult schema.
type OcrResultClient struct {
	config
}

// NewOcrResultClient returns a client for the OcrResult from the given config.
func NewOcrResultClient(c config) *OcrResultClient {
	return &OcrResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ocrresult.Hooks(f(g(h())))`.
func (c *OcrResultClient) Use(hooks ...Hook) {
	c.hooks.OcrResult = append(c.hooks.OcrResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ocrresult.Intercept(f(g(h())))`.
func (c *OcrResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.OcrResult = append(c.inters.OcrResult, interceptors...)
}

// Create returns a builder for creating a OcrResult entity.
func (c *OcrResultClient) Create() *OcrResultCreate {
	mutation := newOcrResultMutation(c.config, OpCreate)
	return &OcrResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of OcrResult entities.
func (c *OcrResultClient) CreateBulk(builders ...*OcrResultCreate) *OcrResultCreateBulk {
	return &OcrResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *OcrResultClient) MapCreateBulk(slice any, setFunc func(*OcrResultCreate, int)) *OcrResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &OcrResultCreateBulk{err: fmt.Errorf("calling to OcrResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*OcrResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &OcrResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for OcrResult.
func (c *OcrResultClient) Update() *OcrResultUpdate {
	mutation := newOcrResultMutation(c.config, OpUpdate)
	return &OcrResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *OcrResultClient) UpdateOne(_m *OcrResult) *OcrResultUpdateOne {
	mutation := newOcrResultMutation(c.config, OpUpdateOne, withOcrResult(_m))
	return &OcrResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *OcrResultClient) UpdateOneID(id int) *OcrResultUpdateOne {
	mutation := newOcrResultMutation(c.config, OpUpdateOne, withOcrResultID(id))
	return &OcrResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for OcrResult.
func (c *OcrResultClient) Delete() *OcrResultDelete {
	mutation := newOcrResultMutation(c.config, OpDelete)
	return &OcrResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *OcrResultClient) DeleteOne(_m *OcrResult) *OcrResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *OcrResultClient) DeleteOneID(id int) *OcrResultDeleteOne {
	builder := c.Delete().Where(ocrresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &OcrResultDeleteOne{builder}
}

// Query returns a query builder for OcrResult.
func (c *OcrResultClient) Query() *OcrResultQuery {
	return &OcrResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeOcrResult},
		inters: c.Interceptors(),
	}
}

// Get returns a OcrResult entity by its id.
func (c *OcrResultClient) Get(ctx context.Context, id int) (*OcrResult, error) {
	return c.Query().Where(ocrresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *OcrResultClient) GetX(ctx context.Context, id int) *OcrResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDownload queries the download edge of a OcrResult.
func (c *OcrResultClient) QueryDownload(_m *OcrResult) *DownloadQuery {
	query := (&DownloadClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ocrresult.Table, ocrresult.FieldID, id),
			sqlgraph.To(download.Table, download.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ocrresult.DownloadTable, ocrresult.DownloadColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *OcrResultClient) Hooks() []Hook {
	return c.hooks.OcrResult
}

// Interceptors returns the client interceptors.
func (c *OcrResultClient) Interceptors() []Interceptor {
	return c.inters.OcrResult
}

func (c *OcrResultClient) mutate(ctx context.Context, m *OcrResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&OcrResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&OcrResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&OcrResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&OcrResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown OcrResult mutation op: %q", m.Op())
	}
}

// ParseIssueClient is a client for the ParseIssue schema.
type ParseIssueClient struct {
	config
}

// NewParseIssueClient returns a client for the ParseIssue from the given config.
func NewParseIssueClient(c config) *ParseIssueClient {
	return &ParseIssueClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `parseissue.Hooks(f(g(h())))`.
func (c *ParseIssueClient) Use(hooks ...Hook) {
	c.hooks.ParseIssue = append(c.hooks.ParseIssue, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `parseissue.Intercept(f(g(h())))`.
func (c *ParseIssueClient) Intercept(interceptors ...Interceptor) {
	c.inters.ParseIssue = append(c.inters.ParseIssue, interceptors...)
}

// Create returns a builder for creating a ParseIssue entity.
func (c *ParseIssueClient) Create() *ParseIssueCreate {
	mutation := newParseIssueMutation(c.config, OpCreate)
	return &ParseIssueCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ParseIssue entities.
func (c *ParseIssueClient) CreateBulk(builders ...*ParseIssueCreate) *ParseIssueCreateBulk {
	return &ParseIssueCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ParseIssueClient) MapCreateBulk(slice any, setFunc func(*ParseIssueCreate, int)) *ParseIssueCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ParseIssueCreateBulk{err: fmt.Errorf("calling to ParseIssueClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ParseIssueCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ParseIssueCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ParseIssue.
func (c *ParseIssueClient) Update() *ParseIssueUpdate {
	mutation := newParseIssueMutation(c.config, OpUpdate)
	return &ParseIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ParseIssueClient) UpdateOne(_m *ParseIssue) *ParseIssueUpdateOne {
	mutation := newParseIssueMutation(c.config, OpUpdateOne, withParseIssue(_m))
	return &ParseIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ParseIssueClient) UpdateOneID(id uuid.UUID) *ParseIssueUpdateOne {
	mutation := newParseIssueMutation(c.config, OpUpdateOne, withParseIssueID(id))
	return &ParseIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ParseIssue.
func (c *ParseIssueClient) Delete() *ParseIssueDelete {
	mutation := newParseIssueMutation(c.config, OpDelete)
	return &ParseIssueDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ParseIssueClient) DeleteOne(_m *ParseIssue) *ParseIssueDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ParseIssueClient) DeleteOneID(id uuid.UUID) *ParseIssueDeleteOne {
	builder := c.Delete().Where(parseissue.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ParseIssueDeleteOne{builder}
}

// Query returns a query builder for ParseIssue.
func (c *ParseIssueClient) Query() *ParseIssueQuery {
	return &ParseIssueQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeParseIssue},
		inters: c.Interceptors(),
	}
}

// Get returns a ParseIssue entity by its id.
func (c *ParseIssueClient) Get(ctx context.Context, id uuid.UUID) (*ParseIssue, error) {
	return c.Query().Where(parseissue.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ParseIssueClient) GetX(ctx context.Context, id uuid.UUID) *ParseIssue {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ParseIssueClient) Hooks() []Hook {
	return c.hooks.ParseIssue
}

// Interceptors returns the client interceptors.
func (c *ParseIssueClient) Interceptors() []Interceptor {
	return c.inters.ParseIssue
}

func (c *ParseIssueClient) mutate(ctx context.Context, m *ParseIssueMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ParseIssueCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ParseIssueUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ParseIssueUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ParseIssueDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ParseIssue mutation op: %q", m.Op())
	}
}

// ReportClient is a client for the Report schema.
type ReportClient struct {
	config
}

// NewReportClient returns a client for the Report from the given config.
func NewReportClient(c config) *ReportClient {
	return &ReportClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `report.Hooks(f(g(h())))`.
func (c *ReportClient) Use(hooks ...Hook) {
	c.hooks.Report = append(c.hooks.Report, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `report.Intercept(f(g(h())))`.
func (c *ReportClient) Intercept(interceptors ...Interceptor) {
	c.inters.Report = append(c.inters.Report, interceptors...)
}

// Create returns a builder for creating a Report entity.
func (c *ReportClient) Create() *ReportCreate {
	mutation := newReportMutation(c.config, OpCreate)
	return &ReportCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Report entities.
func (c *ReportClient) CreateBulk(builders ...*ReportCreate) *ReportCreateBulk {
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReportClient) MapCreateBulk(slice any, setFunc func(*ReportCreate, int)) *ReportCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReportCreateBulk{err: fmt.Errorf("calling to ReportClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReportCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReportCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Report.
func (c *ReportClient) Update() *ReportUpdate {
	mutation := newReportMutation(c.config, OpUpdate)
	return &ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReportClient) UpdateOne(_m *Report) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReport(_m))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReportClient) UpdateOneID(id uuid.UUID) *ReportUpdateOne {
	mutation := newReportMutation(c.config, OpUpdateOne, withReportID(id))
	return &ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Report.
func (c *ReportClient) Delete() *ReportDelete {
	mutation := newReportMutation(c.config, OpDelete)
	return &ReportDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReportClient) DeleteOne(_m *Report) *ReportDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReportClient) DeleteOneID(id uuid.UUID) *ReportDeleteOne {
	builder := c.Delete().Where(report.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReportDeleteOne{builder}
}

// Query returns a query builder for Report.
func (c *ReportClient) Query() *ReportQuery {
	return &ReportQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReport},
		inters: c.Interceptors(),
	}
}

// Get returns a Report entity by its id.
func (c *ReportClient) Get(ctx context.Context, id uuid.UUID) (*Report, error) {
	return c.Query().Where(report.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReportClient) GetX(ctx context.Context, id uuid.UUID) *Report {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTransactions queries the transactions edge of a Report.
func (c *ReportClient) QueryTransactions(_m *Report) *TransactionQuery {
	query := (&TransactionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(report.Table, report.FieldID, id),
			sqlgraph.To(transaction.Table, transaction.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, report.TransactionsTable, report.TransactionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReportClient) Hooks() []Hook {
	return c.hooks.Report
}

// Interceptors returns the client interceptors.
func (c *ReportClient) Interceptors() []Interceptor {
	return c.inters.Report
}

func (c *ReportClient) mutate(ctx context.Context, m *ReportMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReportCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReportUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReportUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReportDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Report mutation op: %q", m.Op())
	}
}

// TransactionClient is a client for the Transaction schema.
type TransactionClient struct {
	config
}

// NewTransactionClient returns a client for the Transaction from the given config.
func NewTransactionClient(c config) *TransactionClient {
	return &TransactionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transaction.Hooks(f(g(h())))`.
func (c *TransactionClient) Use(hooks ...Hook) {
	c.hooks.Transaction = append(c.hooks.Transaction, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transaction.Intercept(f(g(h())))`.
func (c *TransactionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Transaction = append(c.inters.Transaction, interceptors...)
}

// Create returns a builder for creating a Transaction entity.
func (c *TransactionClient) Create() *TransactionCreate {
	mutation := newTransactionMutation(c.config, OpCreate)
	return &TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Transaction entities.
func (c *TransactionClient) CreateBulk(builders ...*TransactionCreate) *TransactionCreateBulk {
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransactionClient) MapCreateBulk(slice any, setFunc func(*TransactionCreate, int)) *TransactionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransactionCreateBulk{err: fmt.Errorf("calling to TransactionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransactionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransactionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Transaction.
func (c *TransactionClient) Update() *TransactionUpdate {
	mutation := newTransactionMutation(c.config, OpUpdate)
	return &TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransactionClient) UpdateOne(_m *Transaction) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransaction(_m))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransactionClient) UpdateOneID(id uuid.UUID) *TransactionUpdateOne {
	mutation := newTransactionMutation(c.config, OpUpdateOne, withTransactionID(id))
	return &TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Transaction.
func (c *TransactionClient) Delete() *TransactionDelete {
	mutation := newTransactionMutation(c.config, OpDelete)
	return &TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransactionClient) DeleteOne(_m *Transaction) *TransactionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransactionClient) DeleteOneID(id uuid.UUID) *TransactionDeleteOne {
	builder := c.Delete().Where(transaction.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransactionDeleteOne{builder}
}

// Query returns a query builder for Transaction.
func (c *TransactionClient) Query() *TransactionQuery {
	return &TransactionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransaction},
		inters: c.Interceptors(),
	}
}

// Get returns a Transaction entity by its id.
func (c *TransactionClient) Get(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return c.Query().Where(transaction.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransactionClient) GetX(ctx context.Context, id uuid.UUID) *Transaction {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryReport queries the report edge of a Transaction.
func (c *TransactionClient) QueryReport(_m *Transaction) *ReportQuery {
	query := (&ReportClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(transaction.Table, transaction.FieldID, id),
			sqlgraph.To(report.Table, report.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, transaction.ReportTable, transaction.ReportColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TransactionClient) Hooks() []Hook {
	return c.hooks.Transaction
}

// Interceptors returns the client interceptors.
func (c *TransactionClient) Interceptors() []Interceptor {
	return c.inters.Transaction
}

func (c *TransactionClient) mutate(ctx context.Context, m *TransactionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransactionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransactionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransactionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransactionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Transaction mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Download, Filing, FilingList, OcrResult, ParseIssue, Report,
		Transaction []ent.Hook
	}
	inters struct {
		Download, Filing, FilingList, OcrResult, ParseIssue, Report,
		Transaction []ent.Interceptor
	}
)
