// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/homecheff/affiliates/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/homecheff/affiliates/ent/affiliate"
	"github.com/homecheff/affiliates/ent/attribution"
	"github.com/homecheff/affiliates/ent/businesssubscription"
	"github.com/homecheff/affiliates/ent/ledgerentry"
	"github.com/homecheff/affiliates/ent/promocode"
	"github.com/homecheff/affiliates/ent/referralclick"
	"github.com/homecheff/affiliates/ent/referrallink"
	"github.com/homecheff/affiliates/ent/user"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Affiliate is the client for interacting with the Affiliate builders.
	Affiliate *AffiliateClient
	// Attribution is the client for interacting with the Attribution builders.
	Attribution *AttributionClient
	// BusinessSubscription is the client for interacting with the BusinessSubscription builders.
	BusinessSubscription *BusinessSubscriptionClient
	// LedgerEntry is the client for interacting with the LedgerEntry builders.
	LedgerEntry *LedgerEntryClient
	// PromoCode is the client for interacting with the PromoCode builders.
	PromoCode *PromoCodeClient
	// ReferralClick is the client for interacting with the ReferralClick builders.
	ReferralClick *ReferralClickClient
	// ReferralLink is the client for interacting with the ReferralLink builders.
	ReferralLink *ReferralLinkClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Affiliate = NewAffiliateClient(c.config)
	c.Attribution = NewAttributionClient(c.config)
	c.BusinessSubscription = NewBusinessSubscriptionClient(c.config)
	c.LedgerEntry = NewLedgerEntryClient(c.config)
	c.PromoCode = NewPromoCodeClient(c.config)
	c.ReferralClick = NewReferralClickClient(c.config)
	c.ReferralLink = NewReferralLinkClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:                  ctx,
		config:               cfg,
		Affiliate:            NewAffiliateClient(cfg),
		Attribution:          NewAttributionClient(cfg),
		BusinessSubscription: NewBusinessSubscriptionClient(cfg),
		LedgerEntry:          NewLedgerEntryClient(cfg),
		PromoCode:            NewPromoCodeClient(cfg),
		ReferralClick:        NewReferralClickClient(cfg),
		ReferralLink:         NewReferralLinkClient(cfg),
		User:                 NewUserClient(cfg),
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
		ctx:                  ctx,
		config:               cfg,
		Affiliate:            NewAffiliateClient(cfg),
		Attribution:          NewAttributionClient(cfg),
		BusinessSubscription: NewBusinessSubscriptionClient(cfg),
		LedgerEntry:          NewLedgerEntryClient(cfg),
		PromoCode:            NewPromoCodeClient(cfg),
		ReferralClick:        NewReferralClickClient(cfg),
		ReferralLink:         NewReferralLinkClient(cfg),
		User:                 NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Affiliate.
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
		c.Affiliate, c.Attribution, c.BusinessSubscription, c.LedgerEntry, c.PromoCode,
		c.ReferralClick, c.ReferralLink, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Affiliate, c.Attribution, c.BusinessSubscription, c.LedgerEntry, c.PromoCode,
		c.ReferralClick, c.ReferralLink, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AffiliateMutation:
		return c.Affiliate.mutate(ctx, m)
	case *AttributionMutation:
		return c.Attribution.mutate(ctx, m)
	case *BusinessSubscriptionMutation:
		return c.BusinessSubscription.mutate(ctx, m)
	case *LedgerEntryMutation:
		return c.LedgerEntry.mutate(ctx, m)
	case *PromoCodeMutation:
		return c.PromoCode.mutate(ctx, m)
	case *ReferralClickMutation:
		return c.ReferralClick.mutate(ctx, m)
	case *ReferralLinkMutation:
		return c.ReferralLink.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AffiliateClient is a client for the Affiliate schema.
type AffiliateClient struct {
	config
}

// NewAffiliateClient returns a client for the Affiliate from the given config.
func NewAffiliateClient(c config) *AffiliateClient {
	return &AffiliateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `affiliate.Hooks(f(g(h())))`.
func (c *AffiliateClient) Use(hooks ...Hook) {
	c.hooks.Affiliate = append(c.hooks.Affiliate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `affiliate.Intercept(f(g(h())))`.
func (c *AffiliateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Affiliate = append(c.inters.Affiliate, interceptors...)
}

// Create returns a builder for creating a Affiliate entity.
func (c *AffiliateClient) Create() *AffiliateCreate {
	mutation := newAffiliateMutation(c.config, OpCreate)
	return &AffiliateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Affiliate entities.
func (c *AffiliateClient) CreateBulk(builders ...*AffiliateCreate) *AffiliateCreateBulk {
	return &AffiliateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AffiliateClient) MapCreateBulk(slice any, setFunc func(*AffiliateCreate, int)) *AffiliateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AffiliateCreateBulk{err: fmt.Errorf("calling to AffiliateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AffiliateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AffiliateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Affiliate.
func (c *AffiliateClient) Update() *AffiliateUpdate {
	mutation := newAffiliateMutation(c.config, OpUpdate)
	return &AffiliateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AffiliateClient) UpdateOne(_m *Affiliate) *AffiliateUpdateOne {
	mutation := newAffiliateMutation(c.config, OpUpdateOne, withAffiliate(_m))
	return &AffiliateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AffiliateClient) UpdateOneID(id int) *AffiliateUpdateOne {
	mutation := newAffiliateMutation(c.config, OpUpdateOne, withAffiliateID(id))
	return &AffiliateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Affiliate.
func (c *AffiliateClient) Delete() *AffiliateDelete {
	mutation := newAffiliateMutation(c.config, OpDelete)
	return &AffiliateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AffiliateClient) DeleteOne(_m *Affiliate) *AffiliateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AffiliateClient) DeleteOneID(id int) *AffiliateDeleteOne {
	builder := c.Delete().Where(affiliate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AffiliateDeleteOne{builder}
}

// Query returns a query builder for Affiliate.
func (c *AffiliateClient) Query() *AffiliateQuery {
	return &AffiliateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAffiliate},
		inters: c.Interceptors(),
	}
}

// Get returns a Affiliate entity by its id.
func (c *AffiliateClient) Get(ctx context.Context, id int) (*Affiliate, error) {
	return c.Query().Where(affiliate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AffiliateClient) GetX(ctx context.Context, id int) *Affiliate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Affiliate.
func (c *AffiliateClient) QueryUser(_m *Affiliate) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(affiliate.Table, affiliate.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, affiliate.UserTable, affiliate.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryParent queries the parent edge of a Affiliate.
func (c *AffiliateClient) QueryParent(_m *Affiliate) *AffiliateQuery {
	query := (&AffiliateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(affiliate.Table, affiliate.FieldID, id),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, affiliate.ParentTable, affiliate.ParentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryChildren queries the children edge of a Affiliate.
func (c *AffiliateClient) QueryChildren(_m *Affiliate) *AffiliateQuery {
	query := (&AffiliateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(affiliate.Table, affiliate.FieldID, id),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, affiliate.ChildrenTable, affiliate.ChildrenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLinks queries the links edge of a Affiliate.
func (c *AffiliateClient) QueryLinks(_m *Affiliate) *ReferralLinkQuery {
	query := (&ReferralLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(affiliate.Table, affiliate.FieldID, id),
			sqlgraph.To(referrallink.Table, referrallink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, affiliate.LinksTable, affiliate.LinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromoCodes queries the promo_codes edge of a Affiliate.
func (c *AffiliateClient) QueryPromoCodes(_m *Affiliate) *PromoCodeQuery {
	query := (&PromoCodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(affiliate.Table, affiliate.FieldID, id),
			sqlgraph.To(promocode.Table, promocode.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, affiliate.PromoCodesTable, affiliate.PromoCodesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttributions queries the attributions edge of a Affiliate.
func (c *AffiliateClient) QueryAttributions(_m *Affiliate) *AttributionQuery {
	query := (&AttributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(affiliate.Table, affiliate.FieldID, id),
			sqlgraph.To(attribution.Table, attribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, affiliate.AttributionsTable, affiliate.AttributionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLedgerEntries queries the ledger_entries edge of a Affiliate.
func (c *AffiliateClient) QueryLedgerEntries(_m *Affiliate) *LedgerEntryQuery {
	query := (&LedgerEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(affiliate.Table, affiliate.FieldID, id),
			sqlgraph.To(ledgerentry.Table, ledgerentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, affiliate.LedgerEntriesTable, affiliate.LedgerEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AffiliateClient) Hooks() []Hook {
	return c.hooks.Affiliate
}

// Interceptors returns the client interceptors.
func (c *AffiliateClient) Interceptors() []Interceptor {
	return c.inters.Affiliate
}

func (c *AffiliateClient) mutate(ctx context.Context, m *AffiliateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AffiliateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AffiliateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AffiliateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AffiliateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Affiliate mutation op: %q", m.Op())
	}
}

// AttributionClient is a client for the Attribution schema.
type AttributionClient struct {
	config
}

// NewAttributionClient returns a client for the Attribution from the given config.
func NewAttributionClient(c config) *AttributionClient {
	return &AttributionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attribution.Hooks(f(g(h())))`.
func (c *AttributionClient) Use(hooks ...Hook) {
	c.hooks.Attribution = append(c.hooks.Attribution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attribution.Intercept(f(g(h())))`.
func (c *AttributionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attribution = append(c.inters.Attribution, interceptors...)
}

// Create returns a builder for creating a Attribution entity.
func (c *AttributionClient) Create() *AttributionCreate {
	mutation := newAttributionMutation(c.config, OpCreate)
	return &AttributionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attribution entities.
func (c *AttributionClient) CreateBulk(builders ...*AttributionCreate) *AttributionCreateBulk {
	return &AttributionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttributionClient) MapCreateBulk(slice any, setFunc func(*AttributionCreate, int)) *AttributionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttributionCreateBulk{err: fmt.Errorf("calling to AttributionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttributionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttributionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attribution.
func (c *AttributionClient) Update() *AttributionUpdate {
	mutation := newAttributionMutation(c.config, OpUpdate)
	return &AttributionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttributionClient) UpdateOne(_m *Attribution) *AttributionUpdateOne {
	mutation := newAttributionMutation(c.config, OpUpdateOne, withAttribution(_m))
	return &AttributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttributionClient) UpdateOneID(id int) *AttributionUpdateOne {
	mutation := newAttributionMutation(c.config, OpUpdateOne, withAttributionID(id))
	return &AttributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attribution.
func (c *AttributionClient) Delete() *AttributionDelete {
	mutation := newAttributionMutation(c.config, OpDelete)
	return &AttributionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttributionClient) DeleteOne(_m *Attribution) *AttributionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttributionClient) DeleteOneID(id int) *AttributionDeleteOne {
	builder := c.Delete().Where(attribution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttributionDeleteOne{builder}
}

// Query returns a query builder for Attribution.
func (c *AttributionClient) Query() *AttributionQuery {
	return &AttributionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttribution},
		inters: c.Interceptors(),
	}
}

// Get returns a Attribution entity by its id.
func (c *AttributionClient) Get(ctx context.Context, id int) (*Attribution, error) {
	return c.Query().Where(attribution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttributionClient) GetX(ctx context.Context, id int) *Attribution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Attribution.
func (c *AttributionClient) QueryUser(_m *Attribution) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attribution.Table, attribution.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attribution.UserTable, attribution.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAffiliate queries the affiliate edge of a Attribution.
func (c *AttributionClient) QueryAffiliate(_m *Attribution) *AffiliateQuery {
	query := (&AffiliateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attribution.Table, attribution.FieldID, id),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attribution.AffiliateTable, attribution.AffiliateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubscriptions queries the subscriptions edge of a Attribution.
func (c *AttributionClient) QuerySubscriptions(_m *Attribution) *BusinessSubscriptionQuery {
	query := (&BusinessSubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attribution.Table, attribution.FieldID, id),
			sqlgraph.To(businesssubscription.Table, businesssubscription.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, attribution.SubscriptionsTable, attribution.SubscriptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttributionClient) Hooks() []Hook {
	return c.hooks.Attribution
}

// Interceptors returns the client interceptors.
func (c *AttributionClient) Interceptors() []Interceptor {
	return c.inters.Attribution
}

func (c *AttributionClient) mutate(ctx context.Context, m *AttributionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttributionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttributionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttributionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttributionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attribution mutation op: %q", m.Op())
	}
}

// BusinessSubscriptionClient is a client for the BusinessSubscription schema.
type BusinessSubscriptionClient struct {
	config
}

// NewBusinessSubscriptionClient returns a client for the BusinessSubscription from the given config.
func NewBusinessSubscriptionClient(c config) *BusinessSubscriptionClient {
	return &BusinessSubscriptionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `businesssubscription.Hooks(f(g(h())))`.
func (c *BusinessSubscriptionClient) Use(hooks ...Hook) {
	c.hooks.BusinessSubscription = append(c.hooks.BusinessSubscription, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `businesssubscription.Intercept(f(g(h())))`.
func (c *BusinessSubscriptionClient) Intercept(interceptors ...Interceptor) {
	c.inters.BusinessSubscription = append(c.inters.BusinessSubscription, interceptors...)
}

// Create returns a builder for creating a BusinessSubscription entity.
func (c *BusinessSubscriptionClient) Create() *BusinessSubscriptionCreate {
	mutation := newBusinessSubscriptionMutation(c.config, OpCreate)
	return &BusinessSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BusinessSubscription entities.
func (c *BusinessSubscriptionClient) CreateBulk(builders ...*BusinessSubscriptionCreate) *BusinessSubscriptionCreateBulk {
	return &BusinessSubscriptionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BusinessSubscriptionClient) MapCreateBulk(slice any, setFunc func(*BusinessSubscriptionCreate, int)) *BusinessSubscriptionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BusinessSubscriptionCreateBulk{err: fmt.Errorf("calling to BusinessSubscriptionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BusinessSubscriptionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BusinessSubscriptionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BusinessSubscription.
func (c *BusinessSubscriptionClient) Update() *BusinessSubscriptionUpdate {
	mutation := newBusinessSubscriptionMutation(c.config, OpUpdate)
	return &BusinessSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BusinessSubscriptionClient) UpdateOne(_m *BusinessSubscription) *BusinessSubscriptionUpdateOne {
	mutation := newBusinessSubscriptionMutation(c.config, OpUpdateOne, withBusinessSubscription(_m))
	return &BusinessSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BusinessSubscriptionClient) UpdateOneID(id int) *BusinessSubscriptionUpdateOne {
	mutation := newBusinessSubscriptionMutation(c.config, OpUpdateOne, withBusinessSubscriptionID(id))
	return &BusinessSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BusinessSubscription.
func (c *BusinessSubscriptionClient) Delete() *BusinessSubscriptionDelete {
	mutation := newBusinessSubscriptionMutation(c.config, OpDelete)
	return &BusinessSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BusinessSubscriptionClient) DeleteOne(_m *BusinessSubscription) *BusinessSubscriptionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BusinessSubscriptionClient) DeleteOneID(id int) *BusinessSubscriptionDeleteOne {
	builder := c.Delete().Where(businesssubscription.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BusinessSubscriptionDeleteOne{builder}
}

// Query returns a query builder for BusinessSubscription.
func (c *BusinessSubscriptionClient) Query() *BusinessSubscriptionQuery {
	return &BusinessSubscriptionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBusinessSubscription},
		inters: c.Interceptors(),
	}
}

// Get returns a BusinessSubscription entity by its id.
func (c *BusinessSubscriptionClient) Get(ctx context.Context, id int) (*BusinessSubscription, error) {
	return c.Query().Where(businesssubscription.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BusinessSubscriptionClient) GetX(ctx context.Context, id int) *BusinessSubscription {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttribution queries the attribution edge of a BusinessSubscription.
func (c *BusinessSubscriptionClient) QueryAttribution(_m *BusinessSubscription) *AttributionQuery {
	query := (&AttributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssubscription.Table, businesssubscription.FieldID, id),
			sqlgraph.To(attribution.Table, attribution.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, businesssubscription.AttributionTable, businesssubscription.AttributionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPromoCode queries the promo_code edge of a BusinessSubscription.
func (c *BusinessSubscriptionClient) QueryPromoCode(_m *BusinessSubscription) *PromoCodeQuery {
	query := (&PromoCodeClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssubscription.Table, businesssubscription.FieldID, id),
			sqlgraph.To(promocode.Table, promocode.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, businesssubscription.PromoCodeTable, businesssubscription.PromoCodeColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryLedgerEntries queries the ledger_entries edge of a BusinessSubscription.
func (c *BusinessSubscriptionClient) QueryLedgerEntries(_m *BusinessSubscription) *LedgerEntryQuery {
	query := (&LedgerEntryClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(businesssubscription.Table, businesssubscription.FieldID, id),
			sqlgraph.To(ledgerentry.Table, ledgerentry.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, businesssubscription.LedgerEntriesTable, businesssubscription.LedgerEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BusinessSubscriptionClient) Hooks() []Hook {
	return c.hooks.BusinessSubscription
}

// Interceptors returns the client interceptors.
func (c *BusinessSubscriptionClient) Interceptors() []Interceptor {
	return c.inters.BusinessSubscription
}

func (c *BusinessSubscriptionClient) mutate(ctx context.Context, m *BusinessSubscriptionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BusinessSubscriptionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BusinessSubscriptionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BusinessSubscriptionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BusinessSubscriptionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BusinessSubscription mutation op: %q", m.Op())
	}
}

// LedgerEntryClient is a client for the LedgerEntry schema.
type LedgerEntryClient struct {
	config
}

// NewLedgerEntryClient returns a client for the LedgerEntry from the given config.
func NewLedgerEntryClient(c config) *LedgerEntryClient {
	return &LedgerEntryClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ledgerentry.Hooks(f(g(h())))`.
func (c *LedgerEntryClient) Use(hooks ...Hook) {
	c.hooks.LedgerEntry = append(c.hooks.LedgerEntry, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ledgerentry.Intercept(f(g(h())))`.
func (c *LedgerEntryClient) Intercept(interceptors ...Interceptor) {
	c.inters.LedgerEntry = append(c.inters.LedgerEntry, interceptors...)
}

// Create returns a builder for creating a LedgerEntry entity.
func (c *LedgerEntryClient) Create() *LedgerEntryCreate {
	mutation := newLedgerEntryMutation(c.config, OpCreate)
	return &LedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of LedgerEntry entities.
func (c *LedgerEntryClient) CreateBulk(builders ...*LedgerEntryCreate) *LedgerEntryCreateBulk {
	return &LedgerEntryCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *LedgerEntryClient) MapCreateBulk(slice any, setFunc func(*LedgerEntryCreate, int)) *LedgerEntryCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &LedgerEntryCreateBulk{err: fmt.Errorf("calling to LedgerEntryClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*LedgerEntryCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &LedgerEntryCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for LedgerEntry.
func (c *LedgerEntryClient) Update() *LedgerEntryUpdate {
	mutation := newLedgerEntryMutation(c.config, OpUpdate)
	return &LedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *LedgerEntryClient) UpdateOne(_m *LedgerEntry) *LedgerEntryUpdateOne {
	mutation := newLedgerEntryMutation(c.config, OpUpdateOne, withLedgerEntry(_m))
	return &LedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *LedgerEntryClient) UpdateOneID(id int) *LedgerEntryUpdateOne {
	mutation := newLedgerEntryMutation(c.config, OpUpdateOne, withLedgerEntryID(id))
	return &LedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for LedgerEntry.
func (c *LedgerEntryClient) Delete() *LedgerEntryDelete {
	mutation := newLedgerEntryMutation(c.config, OpDelete)
	return &LedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *LedgerEntryClient) DeleteOne(_m *LedgerEntry) *LedgerEntryDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *LedgerEntryClient) DeleteOneID(id int) *LedgerEntryDeleteOne {
	builder := c.Delete().Where(ledgerentry.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &LedgerEntryDeleteOne{builder}
}

// Query returns a query builder for LedgerEntry.
func (c *LedgerEntryClient) Query() *LedgerEntryQuery {
	return &LedgerEntryQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeLedgerEntry},
		inters: c.Interceptors(),
	}
}

// Get returns a LedgerEntry entity by its id.
func (c *LedgerEntryClient) Get(ctx context.Context, id int) (*LedgerEntry, error) {
	return c.Query().Where(ledgerentry.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *LedgerEntryClient) GetX(ctx context.Context, id int) *LedgerEntry {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAffiliate queries the affiliate edge of a LedgerEntry.
func (c *LedgerEntryClient) QueryAffiliate(_m *LedgerEntry) *AffiliateQuery {
	query := (&AffiliateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ledgerentry.Table, ledgerentry.FieldID, id),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ledgerentry.AffiliateTable, ledgerentry.AffiliateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubscription queries the subscription edge of a LedgerEntry.
func (c *LedgerEntryClient) QuerySubscription(_m *LedgerEntry) *BusinessSubscriptionQuery {
	query := (&BusinessSubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ledgerentry.Table, ledgerentry.FieldID, id),
			sqlgraph.To(businesssubscription.Table, businesssubscription.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ledgerentry.SubscriptionTable, ledgerentry.SubscriptionColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *LedgerEntryClient) Hooks() []Hook {
	return c.hooks.LedgerEntry
}

// Interceptors returns the client interceptors.
func (c *LedgerEntryClient) Interceptors() []Interceptor {
	return c.inters.LedgerEntry
}

func (c *LedgerEntryClient) mutate(ctx context.Context, m *LedgerEntryMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&LedgerEntryCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&LedgerEntryUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&LedgerEntryUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&LedgerEntryDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown LedgerEntry mutation op: %q", m.Op())
	}
}

// PromoCodeClient is a client for the PromoCode schema.
type PromoCodeClient struct {
	config
}

// NewPromoCodeClient returns a client for the PromoCode from the given config.
func NewPromoCodeClient(c config) *PromoCodeClient {
	return &PromoCodeClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `promocode.Hooks(f(g(h())))`.
func (c *PromoCodeClient) Use(hooks ...Hook) {
	c.hooks.PromoCode = append(c.hooks.PromoCode, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `promocode.Intercept(f(g(h())))`.
func (c *PromoCodeClient) Intercept(interceptors ...Interceptor) {
	c.inters.PromoCode = append(c.inters.PromoCode, interceptors...)
}

// Create returns a builder for creating a PromoCode entity.
func (c *PromoCodeClient) Create() *PromoCodeCreate {
	mutation := newPromoCodeMutation(c.config, OpCreate)
	return &PromoCodeCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PromoCode entities.
func (c *PromoCodeClient) CreateBulk(builders ...*PromoCodeCreate) *PromoCodeCreateBulk {
	return &PromoCodeCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PromoCodeClient) MapCreateBulk(slice any, setFunc func(*PromoCodeCreate, int)) *PromoCodeCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PromoCodeCreateBulk{err: fmt.Errorf("calling to PromoCodeClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PromoCodeCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PromoCodeCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PromoCode.
func (c *PromoCodeClient) Update() *PromoCodeUpdate {
	mutation := newPromoCodeMutation(c.config, OpUpdate)
	return &PromoCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PromoCodeClient) UpdateOne(_m *PromoCode) *PromoCodeUpdateOne {
	mutation := newPromoCodeMutation(c.config, OpUpdateOne, withPromoCode(_m))
	return &PromoCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PromoCodeClient) UpdateOneID(id int) *PromoCodeUpdateOne {
	mutation := newPromoCodeMutation(c.config, OpUpdateOne, withPromoCodeID(id))
	return &PromoCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PromoCode.
func (c *PromoCodeClient) Delete() *PromoCodeDelete {
	mutation := newPromoCodeMutation(c.config, OpDelete)
	return &PromoCodeDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PromoCodeClient) DeleteOne(_m *PromoCode) *PromoCodeDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PromoCodeClient) DeleteOneID(id int) *PromoCodeDeleteOne {
	builder := c.Delete().Where(promocode.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PromoCodeDeleteOne{builder}
}

// Query returns a query builder for PromoCode.
func (c *PromoCodeClient) Query() *PromoCodeQuery {
	return &PromoCodeQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePromoCode},
		inters: c.Interceptors(),
	}
}

// Get returns a PromoCode entity by its id.
func (c *PromoCodeClient) Get(ctx context.Context, id int) (*PromoCode, error) {
	return c.Query().Where(promocode.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PromoCodeClient) GetX(ctx context.Context, id int) *PromoCode {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAffiliate queries the affiliate edge of a PromoCode.
func (c *PromoCodeClient) QueryAffiliate(_m *PromoCode) *AffiliateQuery {
	query := (&AffiliateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promocode.Table, promocode.FieldID, id),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, promocode.AffiliateTable, promocode.AffiliateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySubscriptions queries the subscriptions edge of a PromoCode.
func (c *PromoCodeClient) QuerySubscriptions(_m *PromoCode) *BusinessSubscriptionQuery {
	query := (&BusinessSubscriptionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(promocode.Table, promocode.FieldID, id),
			sqlgraph.To(businesssubscription.Table, businesssubscription.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, promocode.SubscriptionsTable, promocode.SubscriptionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PromoCodeClient) Hooks() []Hook {
	return c.hooks.PromoCode
}

// Interceptors returns the client interceptors.
func (c *PromoCodeClient) Interceptors() []Interceptor {
	return c.inters.PromoCode
}

func (c *PromoCodeClient) mutate(ctx context.Context, m *PromoCodeMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PromoCodeCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PromoCodeUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PromoCodeUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PromoCodeDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PromoCode mutation op: %q", m.Op())
	}
}

// ReferralClickClient is a client for the ReferralClick schema.
type ReferralClickClient struct {
	config
}

// NewReferralClickClient returns a client for the ReferralClick from the given config.
func NewReferralClickClient(c config) *ReferralClickClient {
	return &ReferralClickClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `referralclick.Hooks(f(g(h())))`.
func (c *ReferralClickClient) Use(hooks ...Hook) {
	c.hooks.ReferralClick = append(c.hooks.ReferralClick, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `referralclick.Intercept(f(g(h())))`.
func (c *ReferralClickClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReferralClick = append(c.inters.ReferralClick, interceptors...)
}

// Create returns a builder for creating a ReferralClick entity.
func (c *ReferralClickClient) Create() *ReferralClickCreate {
	mutation := newReferralClickMutation(c.config, OpCreate)
	return &ReferralClickCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReferralClick entities.
func (c *ReferralClickClient) CreateBulk(builders ...*ReferralClickCreate) *ReferralClickCreateBulk {
	return &ReferralClickCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReferralClickClient) MapCreateBulk(slice any, setFunc func(*ReferralClickCreate, int)) *ReferralClickCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReferralClickCreateBulk{err: fmt.Errorf("calling to ReferralClickClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReferralClickCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReferralClickCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReferralClick.
func (c *ReferralClickClient) Update() *ReferralClickUpdate {
	mutation := newReferralClickMutation(c.config, OpUpdate)
	return &ReferralClickUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReferralClickClient) UpdateOne(_m *ReferralClick) *ReferralClickUpdateOne {
	mutation := newReferralClickMutation(c.config, OpUpdateOne, withReferralClick(_m))
	return &ReferralClickUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReferralClickClient) UpdateOneID(id int) *ReferralClickUpdateOne {
	mutation := newReferralClickMutation(c.config, OpUpdateOne, withReferralClickID(id))
	return &ReferralClickUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReferralClick.
func (c *ReferralClickClient) Delete() *ReferralClickDelete {
	mutation := newReferralClickMutation(c.config, OpDelete)
	return &ReferralClickDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReferralClickClient) DeleteOne(_m *ReferralClick) *ReferralClickDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReferralClickClient) DeleteOneID(id int) *ReferralClickDeleteOne {
	builder := c.Delete().Where(referralclick.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReferralClickDeleteOne{builder}
}

// Query returns a query builder for ReferralClick.
func (c *ReferralClickClient) Query() *ReferralClickQuery {
	return &ReferralClickQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReferralClick},
		inters: c.Interceptors(),
	}
}

// Get returns a ReferralClick entity by its id.
func (c *ReferralClickClient) Get(ctx context.Context, id int) (*ReferralClick, error) {
	return c.Query().Where(referralclick.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReferralClickClient) GetX(ctx context.Context, id int) *ReferralClick {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryLink queries the link edge of a ReferralClick.
func (c *ReferralClickClient) QueryLink(_m *ReferralClick) *ReferralLinkQuery {
	query := (&ReferralLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(referralclick.Table, referralclick.FieldID, id),
			sqlgraph.To(referrallink.Table, referrallink.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, referralclick.LinkTable, referralclick.LinkColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReferralClickClient) Hooks() []Hook {
	return c.hooks.ReferralClick
}

// Interceptors returns the client interceptors.
func (c *ReferralClickClient) Interceptors() []Interceptor {
	return c.inters.ReferralClick
}

func (c *ReferralClickClient) mutate(ctx context.Context, m *ReferralClickMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReferralClickCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReferralClickUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReferralClickUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReferralClickDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReferralClick mutation op: %q", m.Op())
	}
}

// ReferralLinkClient is a client for the ReferralLink schema.
type ReferralLinkClient struct {
	config
}

// NewReferralLinkClient returns a client for the ReferralLink from the given config.
func NewReferralLinkClient(c config) *ReferralLinkClient {
	return &ReferralLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `referrallink.Hooks(f(g(h())))`.
func (c *ReferralLinkClient) Use(hooks ...Hook) {
	c.hooks.ReferralLink = append(c.hooks.ReferralLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `referrallink.Intercept(f(g(h())))`.
func (c *ReferralLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReferralLink = append(c.inters.ReferralLink, interceptors...)
}

// Create returns a builder for creating a ReferralLink entity.
func (c *ReferralLinkClient) Create() *ReferralLinkCreate {
	mutation := newReferralLinkMutation(c.config, OpCreate)
	return &ReferralLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReferralLink entities.
func (c *ReferralLinkClient) CreateBulk(builders ...*ReferralLinkCreate) *ReferralLinkCreateBulk {
	return &ReferralLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReferralLinkClient) MapCreateBulk(slice any, setFunc func(*ReferralLinkCreate, int)) *ReferralLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReferralLinkCreateBulk{err: fmt.Errorf("calling to ReferralLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReferralLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReferralLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReferralLink.
func (c *ReferralLinkClient) Update() *ReferralLinkUpdate {
	mutation := newReferralLinkMutation(c.config, OpUpdate)
	return &ReferralLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReferralLinkClient) UpdateOne(_m *ReferralLink) *ReferralLinkUpdateOne {
	mutation := newReferralLinkMutation(c.config, OpUpdateOne, withReferralLink(_m))
	return &ReferralLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReferralLinkClient) UpdateOneID(id int) *ReferralLinkUpdateOne {
	mutation := newReferralLinkMutation(c.config, OpUpdateOne, withReferralLinkID(id))
	return &ReferralLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReferralLink.
func (c *ReferralLinkClient) Delete() *ReferralLinkDelete {
	mutation := newReferralLinkMutation(c.config, OpDelete)
	return &ReferralLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReferralLinkClient) DeleteOne(_m *ReferralLink) *ReferralLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReferralLinkClient) DeleteOneID(id int) *ReferralLinkDeleteOne {
	builder := c.Delete().Where(referrallink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReferralLinkDeleteOne{builder}
}

// Query returns a query builder for ReferralLink.
func (c *ReferralLinkClient) Query() *ReferralLinkQuery {
	return &ReferralLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReferralLink},
		inters: c.Interceptors(),
	}
}

// Get returns a ReferralLink entity by its id.
func (c *ReferralLinkClient) Get(ctx context.Context, id int) (*ReferralLink, error) {
	return c.Query().Where(referrallink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReferralLinkClient) GetX(ctx context.Context, id int) *ReferralLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAffiliate queries the affiliate edge of a ReferralLink.
func (c *ReferralLinkClient) QueryAffiliate(_m *ReferralLink) *AffiliateQuery {
	query := (&AffiliateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(referrallink.Table, referrallink.FieldID, id),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, referrallink.AffiliateTable, referrallink.AffiliateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryClicks queries the clicks edge of a ReferralLink.
func (c *ReferralLinkClient) QueryClicks(_m *ReferralLink) *ReferralClickQuery {
	query := (&ReferralClickClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(referrallink.Table, referrallink.FieldID, id),
			sqlgraph.To(referralclick.Table, referralclick.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, referrallink.ClicksTable, referrallink.ClicksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ReferralLinkClient) Hooks() []Hook {
	return c.hooks.ReferralLink
}

// Interceptors returns the client interceptors.
func (c *ReferralLinkClient) Interceptors() []Interceptor {
	return c.inters.ReferralLink
}

func (c *ReferralLinkClient) mutate(ctx context.Context, m *ReferralLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReferralLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReferralLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReferralLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReferralLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReferralLink mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id int) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id int) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id int) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id int) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAffiliate queries the affiliate edge of a User.
func (c *UserClient) QueryAffiliate(_m *User) *AffiliateQuery {
	query := (&AffiliateClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(affiliate.Table, affiliate.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.AffiliateTable, user.AffiliateColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttributions queries the attributions edge of a User.
func (c *UserClient) QueryAttributions(_m *User) *AttributionQuery {
	query := (&AttributionClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(attribution.Table, attribution.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.AttributionsTable, user.AttributionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Affiliate, Attribution, BusinessSubscription, LedgerEntry, PromoCode,
		ReferralClick, ReferralLink, User []ent.Hook
	}
	inters struct {
		Affiliate, Attribution, BusinessSubscription, LedgerEntry, PromoCode,
		ReferralClick, ReferralLink, User []ent.Interceptor
	}
)
