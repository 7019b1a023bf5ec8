// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"uhc-registry.io/registry/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"uhc-registry.io/registry/ent/auditlog"
	"uhc-registry.io/registry/ent/building"
	"uhc-registry.io/registry/ent/certificate"
	"uhc-registry.io/registry/ent/claim"
	"uhc-registry.io/registry/ent/conflictresolution"
	"uhc-registry.io/registry/ent/document"
	"uhc-registry.io/registry/ent/domainevent"
	"uhc-registry.io/registry/ent/duplicatesuppression"
	"uhc-registry.io/registry/ent/evidence"
	"uhc-registry.io/registry/ent/household"
	"uhc-registry.io/registry/ent/identifiersequence"
	"uhc-registry.io/registry/ent/importpackage"
	"uhc-registry.io/registry/ent/notification"
	"uhc-registry.io/registry/ent/person"
	"uhc-registry.io/registry/ent/personpropertyrelation"
	"uhc-registry.io/registry/ent/propertyunit"
	"uhc-registry.io/registry/ent/referral"
	"uhc-registry.io/registry/ent/stagingbuilding"
	"uhc-registry.io/registry/ent/stagingclaim"
	"uhc-registry.io/registry/ent/stagingdocument"
	"uhc-registry.io/registry/ent/stagingevidence"
	"uhc-registry.io/registry/ent/staginghousehold"
	"uhc-registry.io/registry/ent/stagingperson"
	"uhc-registry.io/registry/ent/stagingpersonpropertyrelation"
	"uhc-registry.io/registry/ent/stagingpropertyunit"
	"uhc-registry.io/registry/ent/stagingreferral"
	"uhc-registry.io/registry/ent/stagingsurvey"
	"uhc-registry.io/registry/ent/survey"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Building is the client for interacting with the Building builders.
	Building *BuildingClient
	// Certificate is the client for interacting with the Certificate builders.
	Certificate *CertificateClient
	// Claim is the client for interacting with the Claim builders.
	Claim *ClaimClient
	// ConflictResolution is the client for interacting with the ConflictResolution builders.
	ConflictResolution *ConflictResolutionClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// DomainEvent is the client for interacting with the DomainEvent builders.
	DomainEvent *DomainEventClient
	// DuplicateSuppression is the client for interacting with the DuplicateSuppression builders.
	DuplicateSuppression *DuplicateSuppressionClient
	// Evidence is the client for interacting with the Evidence builders.
	Evidence *EvidenceClient
	// Household is the client for interacting with the Household builders.
	Household *HouseholdClient
	// IdentifierSequence is the client for interacting with the IdentifierSequence builders.
	IdentifierSequence *IdentifierSequenceClient
	// ImportPackage is the client for interacting with the ImportPackage builders.
	ImportPackage *ImportPackageClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// Person is the client for interacting with the Person builders.
	Person *PersonClient
	// PersonPropertyRelation is the client for interacting with the PersonPropertyRelation builders.
	PersonPropertyRelation *PersonPropertyRelationClient
	// PropertyUnit is the client for interacting with the PropertyUnit builders.
	PropertyUnit *PropertyUnitClient
	// Referral is the client for interacting with the Referral builders.
	Referral *ReferralClient
	// StagingBuilding is the client for interacting with the StagingBuilding builders.
	StagingBuilding *StagingBuildingClient
	// StagingClaim is the client for interacting with the StagingClaim builders.
	StagingClaim *StagingClaimClient
	// StagingDocument is the client for interacting with the StagingDocument builders.
	StagingDocument *StagingDocumentClient
	// StagingEvidence is the client for interacting with the StagingEvidence builders.
	StagingEvidence *StagingEvidenceClient
	// StagingHousehold is the client for interacting with the StagingHousehold builders.
	StagingHousehold *StagingHouseholdClient
	// StagingPerson is the client for interacting with the StagingPerson builders.
	StagingPerson *StagingPersonClient
	// StagingPersonPropertyRelation is the client for interacting with the StagingPersonPropertyRelation builders.
	StagingPersonPropertyRelation *StagingPersonPropertyRelationClient
	// StagingPropertyUnit is the client for interacting with the StagingPropertyUnit builders.
	StagingPropertyUnit *StagingPropertyUnitClient
	// StagingReferral is the client for interacting with the StagingReferral builders.
	StagingReferral *StagingReferralClient
	// StagingSurvey is the client for interacting with the StagingSurvey builders.
	StagingSurvey *StagingSurveyClient
	// Survey is the client for interacting with the Survey builders.
	Survey *SurveyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Building = NewBuildingClient(c.config)
	c.Certificate = NewCertificateClient(c.config)
	c.Claim = NewClaimClient(c.config)
	c.ConflictResolution = NewConflictResolutionClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.DomainEvent = NewDomainEventClient(c.config)
	c.DuplicateSuppression = NewDuplicateSuppressionClient(c.config)
	c.Evidence = NewEvidenceClient(c.config)
	c.Household = NewHouseholdClient(c.config)
	c.IdentifierSequence = NewIdentifierSequenceClient(c.config)
	c.ImportPackage = NewImportPackageClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.Person = NewPersonClient(c.config)
	c.PersonPropertyRelation = NewPersonPropertyRelationClient(c.config)
	c.PropertyUnit = NewPropertyUnitClient(c.config)
	c.Referral = NewReferralClient(c.config)
	c.StagingBuilding = NewStagingBuildingClient(c.config)
	c.StagingClaim = NewStagingClaimClient(c.config)
	c.StagingDocument = NewStagingDocumentClient(c.config)
	c.StagingEvidence = NewStagingEvidenceClient(c.config)
	c.StagingHousehold = NewStagingHouseholdClient(c.config)
	c.StagingPerson = NewStagingPersonClient(c.config)
	c.StagingPersonPropertyRelation = NewStagingPersonPropertyRelationClient(c.config)
	c.StagingPropertyUnit = NewStagingPropertyUnitClient(c.config)
	c.StagingReferral = NewStagingReferralClient(c.config)
	c.StagingSurvey = NewStagingSurveyClient(c.config)
	c.Survey = NewSurveyClient(c.config)
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
		ctx:                           ctx,
		config:                        cfg,
		AuditLog:                      NewAuditLogClient(cfg),
		Building:                      NewBuildingClient(cfg),
		Certificate:                   NewCertificateClient(cfg),
		Claim:                         NewClaimClient(cfg),
		ConflictResolution:            NewConflictResolutionClient(cfg),
		Document:                      NewDocumentClient(cfg),
		DomainEvent:                   NewDomainEventClient(cfg),
		DuplicateSuppression:          NewDuplicateSuppressionClient(cfg),
		Evidence:                      NewEvidenceClient(cfg),
		Household:                     NewHouseholdClient(cfg),
		IdentifierSequence:            NewIdentifierSequenceClient(cfg),
		ImportPackage:                 NewImportPackageClient(cfg),
		Notification:                  NewNotificationClient(cfg),
		Person:                        NewPersonClient(cfg),
		PersonPropertyRelation:        NewPersonPropertyRelationClient(cfg),
		PropertyUnit:                  NewPropertyUnitClient(cfg),
		Referral:                      NewReferralClient(cfg),
		StagingBuilding:               NewStagingBuildingClient(cfg),
		StagingClaim:                  NewStagingClaimClient(cfg),
		StagingDocument:               NewStagingDocumentClient(cfg),
		StagingEvidence:               NewStagingEvidenceClient(cfg),
		StagingHousehold:              NewStagingHouseholdClient(cfg),
		StagingPerson:                 NewStagingPersonClient(cfg),
		StagingPersonPropertyRelation: NewStagingPersonPropertyRelationClient(cfg),
		StagingPropertyUnit:           NewStagingPropertyUnitClient(cfg),
		StagingReferral:               NewStagingReferralClient(cfg),
		StagingSurvey:                 NewStagingSurveyClient(cfg),
		Survey:                        NewSurveyClient(cfg),
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
		ctx:                           ctx,
		config:                        cfg,
		AuditLog:                      NewAuditLogClient(cfg),
		Building:                      NewBuildingClient(cfg),
		Certificate:                   NewCertificateClient(cfg),
		Claim:                         NewClaimClient(cfg),
		ConflictResolution:            NewConflictResolutionClient(cfg),
		Document:                      NewDocumentClient(cfg),
		DomainEvent:                   NewDomainEventClient(cfg),
		DuplicateSuppression:          NewDuplicateSuppressionClient(cfg),
		Evidence:                      NewEvidenceClient(cfg),
		Household:                     NewHouseholdClient(cfg),
		IdentifierSequence:            NewIdentifierSequenceClient(cfg),
		ImportPackage:                 NewImportPackageClient(cfg),
		Notification:                  NewNotificationClient(cfg),
		Person:                        NewPersonClient(cfg),
		PersonPropertyRelation:        NewPersonPropertyRelationClient(cfg),
		PropertyUnit:                  NewPropertyUnitClient(cfg),
		Referral:                      NewReferralClient(cfg),
		StagingBuilding:               NewStagingBuildingClient(cfg),
		StagingClaim:                  NewStagingClaimClient(cfg),
		StagingDocument:               NewStagingDocumentClient(cfg),
		StagingEvidence:               NewStagingEvidenceClient(cfg),
		StagingHousehold:              NewStagingHouseholdClient(cfg),
		StagingPerson:                 NewStagingPersonClient(cfg),
		StagingPersonPropertyRelation: NewStagingPersonPropertyRelationClient(cfg),
		StagingPropertyUnit:           NewStagingPropertyUnitClient(cfg),
		StagingReferral:               NewStagingReferralClient(cfg),
		StagingSurvey:                 NewStagingSurveyClient(cfg),
		Survey:                        NewSurveyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
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
		c.AuditLog, c.Building, c.Certificate, c.Claim, c.ConflictResolution,
		c.Document, c.DomainEvent, c.DuplicateSuppression, c.Evidence, c.Household,
		c.IdentifierSequence, c.ImportPackage, c.Notification, c.Person,
		c.PersonPropertyRelation, c.PropertyUnit, c.Referral, c.StagingBuilding,
		c.StagingClaim, c.StagingDocument, c.StagingEvidence, c.StagingHousehold,
		c.StagingPerson, c.StagingPersonPropertyRelation, c.StagingPropertyUnit,
		c.StagingReferral, c.StagingSurvey, c.Survey,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.Building, c.Certificate, c.Claim, c.ConflictResolution,
		c.Document, c.DomainEvent, c.DuplicateSuppression, c.Evidence, c.Household,
		c.IdentifierSequence, c.ImportPackage, c.Notification, c.Person,
		c.PersonPropertyRelation, c.PropertyUnit, c.Referral, c.StagingBuilding,
		c.StagingClaim, c.StagingDocument, c.StagingEvidence, c.StagingHousehold,
		c.StagingPerson, c.StagingPersonPropertyRelation, c.StagingPropertyUnit,
		c.StagingReferral, c.StagingSurvey, c.Survey,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *BuildingMutation:
		return c.Building.mutate(ctx, m)
	case *CertificateMutation:
		return c.Certificate.mutate(ctx, m)
	case *ClaimMutation:
		return c.Claim.mutate(ctx, m)
	case *ConflictResolutionMutation:
		return c.ConflictResolution.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *DomainEventMutation:
		return c.DomainEvent.mutate(ctx, m)
	case *DuplicateSuppressionMutation:
		return c.DuplicateSuppression.mutate(ctx, m)
	case *EvidenceMutation:
		return c.Evidence.mutate(ctx, m)
	case *HouseholdMutation:
		return c.Household.mutate(ctx, m)
	case *IdentifierSequenceMutation:
		return c.IdentifierSequence.mutate(ctx, m)
	case *ImportPackageMutation:
		return c.ImportPackage.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PersonMutation:
		return c.Person.mutate(ctx, m)
	case *PersonPropertyRelationMutation:
		return c.PersonPropertyRelation.mutate(ctx, m)
	case *PropertyUnitMutation:
		return c.PropertyUnit.mutate(ctx, m)
	case *ReferralMutation:
		return c.Referral.mutate(ctx, m)
	case *StagingBuildingMutation:
		return c.StagingBuilding.mutate(ctx, m)
	case *StagingClaimMutation:
		return c.StagingClaim.mutate(ctx, m)
	case *StagingDocumentMutation:
		return c.StagingDocument.mutate(ctx, m)
	case *StagingEvidenceMutation:
		return c.StagingEvidence.mutate(ctx, m)
	case *StagingHouseholdMutation:
		return c.StagingHousehold.mutate(ctx, m)
	case *StagingPersonMutation:
		return c.StagingPerson.mutate(ctx, m)
	case *StagingPersonPropertyRelationMutation:
		return c.StagingPersonPropertyRelation.mutate(ctx, m)
	case *StagingPropertyUnitMutation:
		return c.StagingPropertyUnit.mutate(ctx, m)
	case *StagingReferralMutation:
		return c.StagingReferral.mutate(ctx, m)
	case *StagingSurveyMutation:
		return c.StagingSurvey.mutate(ctx, m)
	case *SurveyMutation:
		return c.Survey.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// BuildingClient is a client for the Building schema.
type BuildingClient struct {
	config
}

// NewBuildingClient returns a client for the Building from the given config.
func NewBuildingClient(c config) *BuildingClient {
	return &BuildingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `building.Hooks(f(g(h())))`.
func (c *BuildingClient) Use(hooks ...Hook) {
	c.hooks.Building = append(c.hooks.Building, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `building.Intercept(f(g(h())))`.
func (c *BuildingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Building = append(c.inters.Building, interceptors...)
}

// Create returns a builder for creating a Building entity.
func (c *BuildingClient) Create() *BuildingCreate {
	mutation := newBuildingMutation(c.config, OpCreate)
	return &BuildingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Building entities.
func (c *BuildingClient) CreateBulk(builders ...*BuildingCreate) *BuildingCreateBulk {
	return &BuildingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BuildingClient) MapCreateBulk(slice any, setFunc func(*BuildingCreate, int)) *BuildingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BuildingCreateBulk{err: fmt.Errorf("calling to BuildingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BuildingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BuildingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Building.
func (c *BuildingClient) Update() *BuildingUpdate {
	mutation := newBuildingMutation(c.config, OpUpdate)
	return &BuildingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BuildingClient) UpdateOne(_m *Building) *BuildingUpdateOne {
	mutation := newBuildingMutation(c.config, OpUpdateOne, withBuilding(_m))
	return &BuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BuildingClient) UpdateOneID(id uuid.UUID) *BuildingUpdateOne {
	mutation := newBuildingMutation(c.config, OpUpdateOne, withBuildingID(id))
	return &BuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Building.
func (c *BuildingClient) Delete() *BuildingDelete {
	mutation := newBuildingMutation(c.config, OpDelete)
	return &BuildingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BuildingClient) DeleteOne(_m *Building) *BuildingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BuildingClient) DeleteOneID(id uuid.UUID) *BuildingDeleteOne {
	builder := c.Delete().Where(building.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BuildingDeleteOne{builder}
}

// Query returns a query builder for Building.
func (c *BuildingClient) Query() *BuildingQuery {
	return &BuildingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBuilding},
		inters: c.Interceptors(),
	}
}

// Get returns a Building entity by its id.
func (c *BuildingClient) Get(ctx context.Context, id uuid.UUID) (*Building, error) {
	return c.Query().Where(building.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BuildingClient) GetX(ctx context.Context, id uuid.UUID) *Building {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BuildingClient) Hooks() []Hook {
	return c.hooks.Building
}

// Interceptors returns the client interceptors.
func (c *BuildingClient) Interceptors() []Interceptor {
	return c.inters.Building
}

func (c *BuildingClient) mutate(ctx context.Context, m *BuildingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BuildingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BuildingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BuildingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Building mutation op: %q", m.Op())
	}
}

// CertificateClient is a client for the Certificate schema.
type CertificateClient struct {
	config
}

// NewCertificateClient returns a client for the Certificate from the given config.
func NewCertificateClient(c config) *CertificateClient {
	return &CertificateClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `certificate.Hooks(f(g(h())))`.
func (c *CertificateClient) Use(hooks ...Hook) {
	c.hooks.Certificate = append(c.hooks.Certificate, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `certificate.Intercept(f(g(h())))`.
func (c *CertificateClient) Intercept(interceptors ...Interceptor) {
	c.inters.Certificate = append(c.inters.Certificate, interceptors...)
}

// Create returns a builder for creating a Certificate entity.
func (c *CertificateClient) Create() *CertificateCreate {
	mutation := newCertificateMutation(c.config, OpCreate)
	return &CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Certificate entities.
func (c *CertificateClient) CreateBulk(builders ...*CertificateCreate) *CertificateCreateBulk {
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CertificateClient) MapCreateBulk(slice any, setFunc func(*CertificateCreate, int)) *CertificateCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CertificateCreateBulk{err: fmt.Errorf("calling to CertificateClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CertificateCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CertificateCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Certificate.
func (c *CertificateClient) Update() *CertificateUpdate {
	mutation := newCertificateMutation(c.config, OpUpdate)
	return &CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CertificateClient) UpdateOne(_m *Certificate) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificate(_m))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CertificateClient) UpdateOneID(id uuid.UUID) *CertificateUpdateOne {
	mutation := newCertificateMutation(c.config, OpUpdateOne, withCertificateID(id))
	return &CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Certificate.
func (c *CertificateClient) Delete() *CertificateDelete {
	mutation := newCertificateMutation(c.config, OpDelete)
	return &CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CertificateClient) DeleteOne(_m *Certificate) *CertificateDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CertificateClient) DeleteOneID(id uuid.UUID) *CertificateDeleteOne {
	builder := c.Delete().Where(certificate.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CertificateDeleteOne{builder}
}

// Query returns a query builder for Certificate.
func (c *CertificateClient) Query() *CertificateQuery {
	return &CertificateQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCertificate},
		inters: c.Interceptors(),
	}
}

// Get returns a Certificate entity by its id.
func (c *CertificateClient) Get(ctx context.Context, id uuid.UUID) (*Certificate, error) {
	return c.Query().Where(certificate.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CertificateClient) GetX(ctx context.Context, id uuid.UUID) *Certificate {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CertificateClient) Hooks() []Hook {
	return c.hooks.Certificate
}

// Interceptors returns the client interceptors.
func (c *CertificateClient) Interceptors() []Interceptor {
	return c.inters.Certificate
}

func (c *CertificateClient) mutate(ctx context.Context, m *CertificateMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CertificateCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CertificateUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CertificateUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CertificateDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Certificate mutation op: %q", m.Op())
	}
}

// ClaimClient is a client for the Claim schema.
type ClaimClient struct {
	config
}

// NewClaimClient returns a client for the Claim from the given config.
func NewClaimClient(c config) *ClaimClient {
	return &ClaimClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `claim.Hooks(f(g(h())))`.
func (c *ClaimClient) Use(hooks ...Hook) {
	c.hooks.Claim = append(c.hooks.Claim, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `claim.Intercept(f(g(h())))`.
func (c *ClaimClient) Intercept(interceptors ...Interceptor) {
	c.inters.Claim = append(c.inters.Claim, interceptors...)
}

// Create returns a builder for creating a Claim entity.
func (c *ClaimClient) Create() *ClaimCreate {
	mutation := newClaimMutation(c.config, OpCreate)
	return &ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Claim entities.
func (c *ClaimClient) CreateBulk(builders ...*ClaimCreate) *ClaimCreateBulk {
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ClaimClient) MapCreateBulk(slice any, setFunc func(*ClaimCreate, int)) *ClaimCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ClaimCreateBulk{err: fmt.Errorf("calling to ClaimClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ClaimCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ClaimCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Claim.
func (c *ClaimClient) Update() *ClaimUpdate {
	mutation := newClaimMutation(c.config, OpUpdate)
	return &ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ClaimClient) UpdateOne(_m *Claim) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaim(_m))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ClaimClient) UpdateOneID(id uuid.UUID) *ClaimUpdateOne {
	mutation := newClaimMutation(c.config, OpUpdateOne, withClaimID(id))
	return &ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Claim.
func (c *ClaimClient) Delete() *ClaimDelete {
	mutation := newClaimMutation(c.config, OpDelete)
	return &ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ClaimClient) DeleteOne(_m *Claim) *ClaimDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ClaimClient) DeleteOneID(id uuid.UUID) *ClaimDeleteOne {
	builder := c.Delete().Where(claim.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ClaimDeleteOne{builder}
}

// Query returns a query builder for Claim.
func (c *ClaimClient) Query() *ClaimQuery {
	return &ClaimQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeClaim},
		inters: c.Interceptors(),
	}
}

// Get returns a Claim entity by its id.
func (c *ClaimClient) Get(ctx context.Context, id uuid.UUID) (*Claim, error) {
	return c.Query().Where(claim.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ClaimClient) GetX(ctx context.Context, id uuid.UUID) *Claim {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ClaimClient) Hooks() []Hook {
	return c.hooks.Claim
}

// Interceptors returns the client interceptors.
func (c *ClaimClient) Interceptors() []Interceptor {
	return c.inters.Claim
}

func (c *ClaimClient) mutate(ctx context.Context, m *ClaimMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ClaimCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ClaimDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Claim mutation op: %q", m.Op())
	}
}

// ConflictResolutionClient is a client for the ConflictResolution schema.
type ConflictResolutionClient struct {
	config
}

// NewConflictResolutionClient returns a client for the ConflictResolution from the given config.
func NewConflictResolutionClient(c config) *ConflictResolutionClient {
	return &ConflictResolutionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conflictresolution.Hooks(f(g(h())))`.
func (c *ConflictResolutionClient) Use(hooks ...Hook) {
	c.hooks.ConflictResolution = append(c.hooks.ConflictResolution, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conflictresolution.Intercept(f(g(h())))`.
func (c *ConflictResolutionClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConflictResolution = append(c.inters.ConflictResolution, interceptors...)
}

// Create returns a builder for creating a ConflictResolution entity.
func (c *ConflictResolutionClient) Create() *ConflictResolutionCreate {
	mutation := newConflictResolutionMutation(c.config, OpCreate)
	return &ConflictResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConflictResolution entities.
func (c *ConflictResolutionClient) CreateBulk(builders ...*ConflictResolutionCreate) *ConflictResolutionCreateBulk {
	return &ConflictResolutionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConflictResolutionClient) MapCreateBulk(slice any, setFunc func(*ConflictResolutionCreate, int)) *ConflictResolutionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConflictResolutionCreateBulk{err: fmt.Errorf("calling to ConflictResolutionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConflictResolutionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConflictResolutionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConflictResolution.
func (c *ConflictResolutionClient) Update() *ConflictResolutionUpdate {
	mutation := newConflictResolutionMutation(c.config, OpUpdate)
	return &ConflictResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConflictResolutionClient) UpdateOne(_m *ConflictResolution) *ConflictResolutionUpdateOne {
	mutation := newConflictResolutionMutation(c.config, OpUpdateOne, withConflictResolution(_m))
	return &ConflictResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConflictResolutionClient) UpdateOneID(id uuid.UUID) *ConflictResolutionUpdateOne {
	mutation := newConflictResolutionMutation(c.config, OpUpdateOne, withConflictResolutionID(id))
	return &ConflictResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConflictResolution.
func (c *ConflictResolutionClient) Delete() *ConflictResolutionDelete {
	mutation := newConflictResolutionMutation(c.config, OpDelete)
	return &ConflictResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConflictResolutionClient) DeleteOne(_m *ConflictResolution) *ConflictResolutionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConflictResolutionClient) DeleteOneID(id uuid.UUID) *ConflictResolutionDeleteOne {
	builder := c.Delete().Where(conflictresolution.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConflictResolutionDeleteOne{builder}
}

// Query returns a query builder for ConflictResolution.
func (c *ConflictResolutionClient) Query() *ConflictResolutionQuery {
	return &ConflictResolutionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConflictResolution},
		inters: c.Interceptors(),
	}
}

// Get returns a ConflictResolution entity by its id.
func (c *ConflictResolutionClient) Get(ctx context.Context, id uuid.UUID) (*ConflictResolution, error) {
	return c.Query().Where(conflictresolution.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConflictResolutionClient) GetX(ctx context.Context, id uuid.UUID) *ConflictResolution {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ConflictResolutionClient) Hooks() []Hook {
	return c.hooks.ConflictResolution
}

// Interceptors returns the client interceptors.
func (c *ConflictResolutionClient) Interceptors() []Interceptor {
	return c.inters.ConflictResolution
}

func (c *ConflictResolutionClient) mutate(ctx context.Context, m *ConflictResolutionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConflictResolutionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConflictResolutionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConflictResolutionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConflictResolutionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConflictResolution mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id uuid.UUID) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id uuid.UUID) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id uuid.UUID) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id uuid.UUID) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// DomainEventClient is a client for the DomainEvent schema.
type DomainEventClient struct {
	config
}

// NewDomainEventClient returns a client for the DomainEvent from the given config.
func NewDomainEventClient(c config) *DomainEventClient {
	return &DomainEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `domainevent.Hooks(f(g(h())))`.
func (c *DomainEventClient) Use(hooks ...Hook) {
	c.hooks.DomainEvent = append(c.hooks.DomainEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `domainevent.Intercept(f(g(h())))`.
func (c *DomainEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.DomainEvent = append(c.inters.DomainEvent, interceptors...)
}

// Create returns a builder for creating a DomainEvent entity.
func (c *DomainEventClient) Create() *DomainEventCreate {
	mutation := newDomainEventMutation(c.config, OpCreate)
	return &DomainEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DomainEvent entities.
func (c *DomainEventClient) CreateBulk(builders ...*DomainEventCreate) *DomainEventCreateBulk {
	return &DomainEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DomainEventClient) MapCreateBulk(slice any, setFunc func(*DomainEventCreate, int)) *DomainEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DomainEventCreateBulk{err: fmt.Errorf("calling to DomainEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DomainEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DomainEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DomainEvent.
func (c *DomainEventClient) Update() *DomainEventUpdate {
	mutation := newDomainEventMutation(c.config, OpUpdate)
	return &DomainEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DomainEventClient) UpdateOne(_m *DomainEvent) *DomainEventUpdateOne {
	mutation := newDomainEventMutation(c.config, OpUpdateOne, withDomainEvent(_m))
	return &DomainEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DomainEventClient) UpdateOneID(id string) *DomainEventUpdateOne {
	mutation := newDomainEventMutation(c.config, OpUpdateOne, withDomainEventID(id))
	return &DomainEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DomainEvent.
func (c *DomainEventClient) Delete() *DomainEventDelete {
	mutation := newDomainEventMutation(c.config, OpDelete)
	return &DomainEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DomainEventClient) DeleteOne(_m *DomainEvent) *DomainEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DomainEventClient) DeleteOneID(id string) *DomainEventDeleteOne {
	builder := c.Delete().Where(domainevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DomainEventDeleteOne{builder}
}

// Query returns a query builder for DomainEvent.
func (c *DomainEventClient) Query() *DomainEventQuery {
	return &DomainEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDomainEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a DomainEvent entity by its id.
func (c *DomainEventClient) Get(ctx context.Context, id string) (*DomainEvent, error) {
	return c.Query().Where(domainevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DomainEventClient) GetX(ctx context.Context, id string) *DomainEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DomainEventClient) Hooks() []Hook {
	return c.hooks.DomainEvent
}

// Interceptors returns the client interceptors.
func (c *DomainEventClient) Interceptors() []Interceptor {
	return c.inters.DomainEvent
}

func (c *DomainEventClient) mutate(ctx context.Context, m *DomainEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DomainEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DomainEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DomainEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DomainEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DomainEvent mutation op: %q", m.Op())
	}
}

// DuplicateSuppressionClient is a client for the DuplicateSuppression schema.
type DuplicateSuppressionClient struct {
	config
}

// NewDuplicateSuppressionClient returns a client for the DuplicateSuppression from the given config.
func NewDuplicateSuppressionClient(c config) *DuplicateSuppressionClient {
	return &DuplicateSuppressionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `duplicatesuppression.Hooks(f(g(h())))`.
func (c *DuplicateSuppressionClient) Use(hooks ...Hook) {
	c.hooks.DuplicateSuppression = append(c.hooks.DuplicateSuppression, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `duplicatesuppression.Intercept(f(g(h())))`.
func (c *DuplicateSuppressionClient) Intercept(interceptors ...Interceptor) {
	c.inters.DuplicateSuppression = append(c.inters.DuplicateSuppression, interceptors...)
}

// Create returns a builder for creating a DuplicateSuppression entity.
func (c *DuplicateSuppressionClient) Create() *DuplicateSuppressionCreate {
	mutation := newDuplicateSuppressionMutation(c.config, OpCreate)
	return &DuplicateSuppressionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DuplicateSuppression entities.
func (c *DuplicateSuppressionClient) CreateBulk(builders ...*DuplicateSuppressionCreate) *DuplicateSuppressionCreateBulk {
	return &DuplicateSuppressionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DuplicateSuppressionClient) MapCreateBulk(slice any, setFunc func(*DuplicateSuppressionCreate, int)) *DuplicateSuppressionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DuplicateSuppressionCreateBulk{err: fmt.Errorf("calling to DuplicateSuppressionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DuplicateSuppressionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DuplicateSuppressionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DuplicateSuppression.
func (c *DuplicateSuppressionClient) Update() *DuplicateSuppressionUpdate {
	mutation := newDuplicateSuppressionMutation(c.config, OpUpdate)
	return &DuplicateSuppressionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DuplicateSuppressionClient) UpdateOne(_m *DuplicateSuppression) *DuplicateSuppressionUpdateOne {
	mutation := newDuplicateSuppressionMutation(c.config, OpUpdateOne, withDuplicateSuppression(_m))
	return &DuplicateSuppressionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DuplicateSuppressionClient) UpdateOneID(id uuid.UUID) *DuplicateSuppressionUpdateOne {
	mutation := newDuplicateSuppressionMutation(c.config, OpUpdateOne, withDuplicateSuppressionID(id))
	return &DuplicateSuppressionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DuplicateSuppression.
func (c *DuplicateSuppressionClient) Delete() *DuplicateSuppressionDelete {
	mutation := newDuplicateSuppressionMutation(c.config, OpDelete)
	return &DuplicateSuppressionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DuplicateSuppressionClient) DeleteOne(_m *DuplicateSuppression) *DuplicateSuppressionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DuplicateSuppressionClient) DeleteOneID(id uuid.UUID) *DuplicateSuppressionDeleteOne {
	builder := c.Delete().Where(duplicatesuppression.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DuplicateSuppressionDeleteOne{builder}
}

// Query returns a query builder for DuplicateSuppression.
func (c *DuplicateSuppressionClient) Query() *DuplicateSuppressionQuery {
	return &DuplicateSuppressionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDuplicateSuppression},
		inters: c.Interceptors(),
	}
}

// Get returns a DuplicateSuppression entity by its id.
func (c *DuplicateSuppressionClient) Get(ctx context.Context, id uuid.UUID) (*DuplicateSuppression, error) {
	return c.Query().Where(duplicatesuppression.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DuplicateSuppressionClient) GetX(ctx context.Context, id uuid.UUID) *DuplicateSuppression {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DuplicateSuppressionClient) Hooks() []Hook {
	return c.hooks.DuplicateSuppression
}

// Interceptors returns the client interceptors.
func (c *DuplicateSuppressionClient) Interceptors() []Interceptor {
	return c.inters.DuplicateSuppression
}

func (c *DuplicateSuppressionClient) mutate(ctx context.Context, m *DuplicateSuppressionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DuplicateSuppressionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DuplicateSuppressionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DuplicateSuppressionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DuplicateSuppressionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DuplicateSuppression mutation op: %q", m.Op())
	}
}

// EvidenceClient is a client for the Evidence schema.
type EvidenceClient struct {
	config
}

// NewEvidenceClient returns a client for the Evidence from the given config.
func NewEvidenceClient(c config) *EvidenceClient {
	return &EvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidence.Hooks(f(g(h())))`.
func (c *EvidenceClient) Use(hooks ...Hook) {
	c.hooks.Evidence = append(c.hooks.Evidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidence.Intercept(f(g(h())))`.
func (c *EvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evidence = append(c.inters.Evidence, interceptors...)
}

// Create returns a builder for creating a Evidence entity.
func (c *EvidenceClient) Create() *EvidenceCreate {
	mutation := newEvidenceMutation(c.config, OpCreate)
	return &EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evidence entities.
func (c *EvidenceClient) CreateBulk(builders ...*EvidenceCreate) *EvidenceCreateBulk {
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceClient) MapCreateBulk(slice any, setFunc func(*EvidenceCreate, int)) *EvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceCreateBulk{err: fmt.Errorf("calling to EvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evidence.
func (c *EvidenceClient) Update() *EvidenceUpdate {
	mutation := newEvidenceMutation(c.config, OpUpdate)
	return &EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceClient) UpdateOne(_m *Evidence) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidence(_m))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceClient) UpdateOneID(id uuid.UUID) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidenceID(id))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evidence.
func (c *EvidenceClient) Delete() *EvidenceDelete {
	mutation := newEvidenceMutation(c.config, OpDelete)
	return &EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceClient) DeleteOne(_m *Evidence) *EvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceClient) DeleteOneID(id uuid.UUID) *EvidenceDeleteOne {
	builder := c.Delete().Where(evidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceDeleteOne{builder}
}

// Query returns a query builder for Evidence.
func (c *EvidenceClient) Query() *EvidenceQuery {
	return &EvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a Evidence entity by its id.
func (c *EvidenceClient) Get(ctx context.Context, id uuid.UUID) (*Evidence, error) {
	return c.Query().Where(evidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceClient) GetX(ctx context.Context, id uuid.UUID) *Evidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *EvidenceClient) Hooks() []Hook {
	return c.hooks.Evidence
}

// Interceptors returns the client interceptors.
func (c *EvidenceClient) Interceptors() []Interceptor {
	return c.inters.Evidence
}

func (c *EvidenceClient) mutate(ctx context.Context, m *EvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evidence mutation op: %q", m.Op())
	}
}

// HouseholdClient is a client for the Household schema.
type HouseholdClient struct {
	config
}

// NewHouseholdClient returns a client for the Household from the given config.
func NewHouseholdClient(c config) *HouseholdClient {
	return &HouseholdClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `household.Hooks(f(g(h())))`.
func (c *HouseholdClient) Use(hooks ...Hook) {
	c.hooks.Household = append(c.hooks.Household, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `household.Intercept(f(g(h())))`.
func (c *HouseholdClient) Intercept(interceptors ...Interceptor) {
	c.inters.Household = append(c.inters.Household, interceptors...)
}

// Create returns a builder for creating a Household entity.
func (c *HouseholdClient) Create() *HouseholdCreate {
	mutation := newHouseholdMutation(c.config, OpCreate)
	return &HouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Household entities.
func (c *HouseholdClient) CreateBulk(builders ...*HouseholdCreate) *HouseholdCreateBulk {
	return &HouseholdCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HouseholdClient) MapCreateBulk(slice any, setFunc func(*HouseholdCreate, int)) *HouseholdCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HouseholdCreateBulk{err: fmt.Errorf("calling to HouseholdClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HouseholdCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HouseholdCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Household.
func (c *HouseholdClient) Update() *HouseholdUpdate {
	mutation := newHouseholdMutation(c.config, OpUpdate)
	return &HouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HouseholdClient) UpdateOne(_m *Household) *HouseholdUpdateOne {
	mutation := newHouseholdMutation(c.config, OpUpdateOne, withHousehold(_m))
	return &HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HouseholdClient) UpdateOneID(id uuid.UUID) *HouseholdUpdateOne {
	mutation := newHouseholdMutation(c.config, OpUpdateOne, withHouseholdID(id))
	return &HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Household.
func (c *HouseholdClient) Delete() *HouseholdDelete {
	mutation := newHouseholdMutation(c.config, OpDelete)
	return &HouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HouseholdClient) DeleteOne(_m *Household) *HouseholdDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HouseholdClient) DeleteOneID(id uuid.UUID) *HouseholdDeleteOne {
	builder := c.Delete().Where(household.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HouseholdDeleteOne{builder}
}

// Query returns a query builder for Household.
func (c *HouseholdClient) Query() *HouseholdQuery {
	return &HouseholdQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHousehold},
		inters: c.Interceptors(),
	}
}

// Get returns a Household entity by its id.
func (c *HouseholdClient) Get(ctx context.Context, id uuid.UUID) (*Household, error) {
	return c.Query().Where(household.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HouseholdClient) GetX(ctx context.Context, id uuid.UUID) *Household {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *HouseholdClient) Hooks() []Hook {
	return c.hooks.Household
}

// Interceptors returns the client interceptors.
func (c *HouseholdClient) Interceptors() []Interceptor {
	return c.inters.Household
}

func (c *HouseholdClient) mutate(ctx context.Context, m *HouseholdMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Household mutation op: %q", m.Op())
	}
}

// IdentifierSequenceClient is a client for the IdentifierSequence schema.
type IdentifierSequenceClient struct {
	config
}

// NewIdentifierSequenceClient returns a client for the IdentifierSequence from the given config.
func NewIdentifierSequenceClient(c config) *IdentifierSequenceClient {
	return &IdentifierSequenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `identifiersequence.Hooks(f(g(h())))`.
func (c *IdentifierSequenceClient) Use(hooks ...Hook) {
	c.hooks.IdentifierSequence = append(c.hooks.IdentifierSequence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `identifiersequence.Intercept(f(g(h())))`.
func (c *IdentifierSequenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.IdentifierSequence = append(c.inters.IdentifierSequence, interceptors...)
}

// Create returns a builder for creating a IdentifierSequence entity.
func (c *IdentifierSequenceClient) Create() *IdentifierSequenceCreate {
	mutation := newIdentifierSequenceMutation(c.config, OpCreate)
	return &IdentifierSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of IdentifierSequence entities.
func (c *IdentifierSequenceClient) CreateBulk(builders ...*IdentifierSequenceCreate) *IdentifierSequenceCreateBulk {
	return &IdentifierSequenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *IdentifierSequenceClient) MapCreateBulk(slice any, setFunc func(*IdentifierSequenceCreate, int)) *IdentifierSequenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &IdentifierSequenceCreateBulk{err: fmt.Errorf("calling to IdentifierSequenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*IdentifierSequenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &IdentifierSequenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for IdentifierSequence.
func (c *IdentifierSequenceClient) Update() *IdentifierSequenceUpdate {
	mutation := newIdentifierSequenceMutation(c.config, OpUpdate)
	return &IdentifierSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *IdentifierSequenceClient) UpdateOne(_m *IdentifierSequence) *IdentifierSequenceUpdateOne {
	mutation := newIdentifierSequenceMutation(c.config, OpUpdateOne, withIdentifierSequence(_m))
	return &IdentifierSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *IdentifierSequenceClient) UpdateOneID(id string) *IdentifierSequenceUpdateOne {
	mutation := newIdentifierSequenceMutation(c.config, OpUpdateOne, withIdentifierSequenceID(id))
	return &IdentifierSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for IdentifierSequence.
func (c *IdentifierSequenceClient) Delete() *IdentifierSequenceDelete {
	mutation := newIdentifierSequenceMutation(c.config, OpDelete)
	return &IdentifierSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *IdentifierSequenceClient) DeleteOne(_m *IdentifierSequence) *IdentifierSequenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *IdentifierSequenceClient) DeleteOneID(id string) *IdentifierSequenceDeleteOne {
	builder := c.Delete().Where(identifiersequence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &IdentifierSequenceDeleteOne{builder}
}

// Query returns a query builder for IdentifierSequence.
func (c *IdentifierSequenceClient) Query() *IdentifierSequenceQuery {
	return &IdentifierSequenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeIdentifierSequence},
		inters: c.Interceptors(),
	}
}

// Get returns a IdentifierSequence entity by its id.
func (c *IdentifierSequenceClient) Get(ctx context.Context, id string) (*IdentifierSequence, error) {
	return c.Query().Where(identifiersequence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *IdentifierSequenceClient) GetX(ctx context.Context, id string) *IdentifierSequence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *IdentifierSequenceClient) Hooks() []Hook {
	return c.hooks.IdentifierSequence
}

// Interceptors returns the client interceptors.
func (c *IdentifierSequenceClient) Interceptors() []Interceptor {
	return c.inters.IdentifierSequence
}

func (c *IdentifierSequenceClient) mutate(ctx context.Context, m *IdentifierSequenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&IdentifierSequenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&IdentifierSequenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&IdentifierSequenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&IdentifierSequenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown IdentifierSequence mutation op: %q", m.Op())
	}
}

// ImportPackageClient is a client for the ImportPackage schema.
type ImportPackageClient struct {
	config
}

// NewImportPackageClient returns a client for the ImportPackage from the given config.
func NewImportPackageClient(c config) *ImportPackageClient {
	return &ImportPackageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importpackage.Hooks(f(g(h())))`.
func (c *ImportPackageClient) Use(hooks ...Hook) {
	c.hooks.ImportPackage = append(c.hooks.ImportPackage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importpackage.Intercept(f(g(h())))`.
func (c *ImportPackageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportPackage = append(c.inters.ImportPackage, interceptors...)
}

// Create returns a builder for creating a ImportPackage entity.
func (c *ImportPackageClient) Create() *ImportPackageCreate {
	mutation := newImportPackageMutation(c.config, OpCreate)
	return &ImportPackageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportPackage entities.
func (c *ImportPackageClient) CreateBulk(builders ...*ImportPackageCreate) *ImportPackageCreateBulk {
	return &ImportPackageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportPackageClient) MapCreateBulk(slice any, setFunc func(*ImportPackageCreate, int)) *ImportPackageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportPackageCreateBulk{err: fmt.Errorf("calling to ImportPackageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportPackageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportPackageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportPackage.
func (c *ImportPackageClient) Update() *ImportPackageUpdate {
	mutation := newImportPackageMutation(c.config, OpUpdate)
	return &ImportPackageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportPackageClient) UpdateOne(_m *ImportPackage) *ImportPackageUpdateOne {
	mutation := newImportPackageMutation(c.config, OpUpdateOne, withImportPackage(_m))
	return &ImportPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportPackageClient) UpdateOneID(id uuid.UUID) *ImportPackageUpdateOne {
	mutation := newImportPackageMutation(c.config, OpUpdateOne, withImportPackageID(id))
	return &ImportPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportPackage.
func (c *ImportPackageClient) Delete() *ImportPackageDelete {
	mutation := newImportPackageMutation(c.config, OpDelete)
	return &ImportPackageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportPackageClient) DeleteOne(_m *ImportPackage) *ImportPackageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportPackageClient) DeleteOneID(id uuid.UUID) *ImportPackageDeleteOne {
	builder := c.Delete().Where(importpackage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportPackageDeleteOne{builder}
}

// Query returns a query builder for ImportPackage.
func (c *ImportPackageClient) Query() *ImportPackageQuery {
	return &ImportPackageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportPackage},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportPackage entity by its id.
func (c *ImportPackageClient) Get(ctx context.Context, id uuid.UUID) (*ImportPackage, error) {
	return c.Query().Where(importpackage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportPackageClient) GetX(ctx context.Context, id uuid.UUID) *ImportPackage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImportPackageClient) Hooks() []Hook {
	return c.hooks.ImportPackage
}

// Interceptors returns the client interceptors.
func (c *ImportPackageClient) Interceptors() []Interceptor {
	return c.inters.ImportPackage
}

func (c *ImportPackageClient) mutate(ctx context.Context, m *ImportPackageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportPackageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportPackageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportPackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportPackageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportPackage mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// PersonClient is a client for the Person schema.
type PersonClient struct {
	config
}

// NewPersonClient returns a client for the Person from the given config.
func NewPersonClient(c config) *PersonClient {
	return &PersonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `person.Hooks(f(g(h())))`.
func (c *PersonClient) Use(hooks ...Hook) {
	c.hooks.Person = append(c.hooks.Person, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `person.Intercept(f(g(h())))`.
func (c *PersonClient) Intercept(interceptors ...Interceptor) {
	c.inters.Person = append(c.inters.Person, interceptors...)
}

// Create returns a builder for creating a Person entity.
func (c *PersonClient) Create() *PersonCreate {
	mutation := newPersonMutation(c.config, OpCreate)
	return &PersonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Person entities.
func (c *PersonClient) CreateBulk(builders ...*PersonCreate) *PersonCreateBulk {
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonClient) MapCreateBulk(slice any, setFunc func(*PersonCreate, int)) *PersonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonCreateBulk{err: fmt.Errorf("calling to PersonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Person.
func (c *PersonClient) Update() *PersonUpdate {
	mutation := newPersonMutation(c.config, OpUpdate)
	return &PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonClient) UpdateOne(_m *Person) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPerson(_m))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonClient) UpdateOneID(id uuid.UUID) *PersonUpdateOne {
	mutation := newPersonMutation(c.config, OpUpdateOne, withPersonID(id))
	return &PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Person.
func (c *PersonClient) Delete() *PersonDelete {
	mutation := newPersonMutation(c.config, OpDelete)
	return &PersonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonClient) DeleteOne(_m *Person) *PersonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonClient) DeleteOneID(id uuid.UUID) *PersonDeleteOne {
	builder := c.Delete().Where(person.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonDeleteOne{builder}
}

// Query returns a query builder for Person.
func (c *PersonClient) Query() *PersonQuery {
	return &PersonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePerson},
		inters: c.Interceptors(),
	}
}

// Get returns a Person entity by its id.
func (c *PersonClient) Get(ctx context.Context, id uuid.UUID) (*Person, error) {
	return c.Query().Where(person.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonClient) GetX(ctx context.Context, id uuid.UUID) *Person {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PersonClient) Hooks() []Hook {
	return c.hooks.Person
}

// Interceptors returns the client interceptors.
func (c *PersonClient) Interceptors() []Interceptor {
	return c.inters.Person
}

func (c *PersonClient) mutate(ctx context.Context, m *PersonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Person mutation op: %q", m.Op())
	}
}

// PersonPropertyRelationClient is a client for the PersonPropertyRelation schema.
type PersonPropertyRelationClient struct {
	config
}

// NewPersonPropertyRelationClient returns a client for the PersonPropertyRelation from the given config.
func NewPersonPropertyRelationClient(c config) *PersonPropertyRelationClient {
	return &PersonPropertyRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `personpropertyrelation.Hooks(f(g(h())))`.
func (c *PersonPropertyRelationClient) Use(hooks ...Hook) {
	c.hooks.PersonPropertyRelation = append(c.hooks.PersonPropertyRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `personpropertyrelation.Intercept(f(g(h())))`.
func (c *PersonPropertyRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.PersonPropertyRelation = append(c.inters.PersonPropertyRelation, interceptors...)
}

// Create returns a builder for creating a PersonPropertyRelation entity.
func (c *PersonPropertyRelationClient) Create() *PersonPropertyRelationCreate {
	mutation := newPersonPropertyRelationMutation(c.config, OpCreate)
	return &PersonPropertyRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PersonPropertyRelation entities.
func (c *PersonPropertyRelationClient) CreateBulk(builders ...*PersonPropertyRelationCreate) *PersonPropertyRelationCreateBulk {
	return &PersonPropertyRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PersonPropertyRelationClient) MapCreateBulk(slice any, setFunc func(*PersonPropertyRelationCreate, int)) *PersonPropertyRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PersonPropertyRelationCreateBulk{err: fmt.Errorf("calling to PersonPropertyRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PersonPropertyRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PersonPropertyRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PersonPropertyRelation.
func (c *PersonPropertyRelationClient) Update() *PersonPropertyRelationUpdate {
	mutation := newPersonPropertyRelationMutation(c.config, OpUpdate)
	return &PersonPropertyRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PersonPropertyRelationClient) UpdateOne(_m *PersonPropertyRelation) *PersonPropertyRelationUpdateOne {
	mutation := newPersonPropertyRelationMutation(c.config, OpUpdateOne, withPersonPropertyRelation(_m))
	return &PersonPropertyRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PersonPropertyRelationClient) UpdateOneID(id uuid.UUID) *PersonPropertyRelationUpdateOne {
	mutation := newPersonPropertyRelationMutation(c.config, OpUpdateOne, withPersonPropertyRelationID(id))
	return &PersonPropertyRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PersonPropertyRelation.
func (c *PersonPropertyRelationClient) Delete() *PersonPropertyRelationDelete {
	mutation := newPersonPropertyRelationMutation(c.config, OpDelete)
	return &PersonPropertyRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PersonPropertyRelationClient) DeleteOne(_m *PersonPropertyRelation) *PersonPropertyRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PersonPropertyRelationClient) DeleteOneID(id uuid.UUID) *PersonPropertyRelationDeleteOne {
	builder := c.Delete().Where(personpropertyrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PersonPropertyRelationDeleteOne{builder}
}

// Query returns a query builder for PersonPropertyRelation.
func (c *PersonPropertyRelationClient) Query() *PersonPropertyRelationQuery {
	return &PersonPropertyRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePersonPropertyRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a PersonPropertyRelation entity by its id.
func (c *PersonPropertyRelationClient) Get(ctx context.Context, id uuid.UUID) (*PersonPropertyRelation, error) {
	return c.Query().Where(personpropertyrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PersonPropertyRelationClient) GetX(ctx context.Context, id uuid.UUID) *PersonPropertyRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PersonPropertyRelationClient) Hooks() []Hook {
	return c.hooks.PersonPropertyRelation
}

// Interceptors returns the client interceptors.
func (c *PersonPropertyRelationClient) Interceptors() []Interceptor {
	return c.inters.PersonPropertyRelation
}

func (c *PersonPropertyRelationClient) mutate(ctx context.Context, m *PersonPropertyRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PersonPropertyRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PersonPropertyRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PersonPropertyRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PersonPropertyRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PersonPropertyRelation mutation op: %q", m.Op())
	}
}

// PropertyUnitClient is a client for the PropertyUnit schema.
type PropertyUnitClient struct {
	config
}

// NewPropertyUnitClient returns a client for the PropertyUnit from the given config.
func NewPropertyUnitClient(c config) *PropertyUnitClient {
	return &PropertyUnitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `propertyunit.Hooks(f(g(h())))`.
func (c *PropertyUnitClient) Use(hooks ...Hook) {
	c.hooks.PropertyUnit = append(c.hooks.PropertyUnit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `propertyunit.Intercept(f(g(h())))`.
func (c *PropertyUnitClient) Intercept(interceptors ...Interceptor) {
	c.inters.PropertyUnit = append(c.inters.PropertyUnit, interceptors...)
}

// Create returns a builder for creating a PropertyUnit entity.
func (c *PropertyUnitClient) Create() *PropertyUnitCreate {
	mutation := newPropertyUnitMutation(c.config, OpCreate)
	return &PropertyUnitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PropertyUnit entities.
func (c *PropertyUnitClient) CreateBulk(builders ...*PropertyUnitCreate) *PropertyUnitCreateBulk {
	return &PropertyUnitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PropertyUnitClient) MapCreateBulk(slice any, setFunc func(*PropertyUnitCreate, int)) *PropertyUnitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PropertyUnitCreateBulk{err: fmt.Errorf("calling to PropertyUnitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PropertyUnitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PropertyUnitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PropertyUnit.
func (c *PropertyUnitClient) Update() *PropertyUnitUpdate {
	mutation := newPropertyUnitMutation(c.config, OpUpdate)
	return &PropertyUnitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PropertyUnitClient) UpdateOne(_m *PropertyUnit) *PropertyUnitUpdateOne {
	mutation := newPropertyUnitMutation(c.config, OpUpdateOne, withPropertyUnit(_m))
	return &PropertyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PropertyUnitClient) UpdateOneID(id uuid.UUID) *PropertyUnitUpdateOne {
	mutation := newPropertyUnitMutation(c.config, OpUpdateOne, withPropertyUnitID(id))
	return &PropertyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PropertyUnit.
func (c *PropertyUnitClient) Delete() *PropertyUnitDelete {
	mutation := newPropertyUnitMutation(c.config, OpDelete)
	return &PropertyUnitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PropertyUnitClient) DeleteOne(_m *PropertyUnit) *PropertyUnitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PropertyUnitClient) DeleteOneID(id uuid.UUID) *PropertyUnitDeleteOne {
	builder := c.Delete().Where(propertyunit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PropertyUnitDeleteOne{builder}
}

// Query returns a query builder for PropertyUnit.
func (c *PropertyUnitClient) Query() *PropertyUnitQuery {
	return &PropertyUnitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePropertyUnit},
		inters: c.Interceptors(),
	}
}

// Get returns a PropertyUnit entity by its id.
func (c *PropertyUnitClient) Get(ctx context.Context, id uuid.UUID) (*PropertyUnit, error) {
	return c.Query().Where(propertyunit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PropertyUnitClient) GetX(ctx context.Context, id uuid.UUID) *PropertyUnit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *PropertyUnitClient) Hooks() []Hook {
	return c.hooks.PropertyUnit
}

// Interceptors returns the client interceptors.
func (c *PropertyUnitClient) Interceptors() []Interceptor {
	return c.inters.PropertyUnit
}

func (c *PropertyUnitClient) mutate(ctx context.Context, m *PropertyUnitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PropertyUnitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PropertyUnitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PropertyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PropertyUnitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PropertyUnit mutation op: %q", m.Op())
	}
}

// ReferralClient is a client for the Referral schema.
type ReferralClient struct {
	config
}

// NewReferralClient returns a client for the Referral from the given config.
func NewReferralClient(c config) *ReferralClient {
	return &ReferralClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `referral.Hooks(f(g(h())))`.
func (c *ReferralClient) Use(hooks ...Hook) {
	c.hooks.Referral = append(c.hooks.Referral, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `referral.Intercept(f(g(h())))`.
func (c *ReferralClient) Intercept(interceptors ...Interceptor) {
	c.inters.Referral = append(c.inters.Referral, interceptors...)
}

// Create returns a builder for creating a Referral entity.
func (c *ReferralClient) Create() *ReferralCreate {
	mutation := newReferralMutation(c.config, OpCreate)
	return &ReferralCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Referral entities.
func (c *ReferralClient) CreateBulk(builders ...*ReferralCreate) *ReferralCreateBulk {
	return &ReferralCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReferralClient) MapCreateBulk(slice any, setFunc func(*ReferralCreate, int)) *ReferralCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReferralCreateBulk{err: fmt.Errorf("calling to ReferralClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReferralCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReferralCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Referral.
func (c *ReferralClient) Update() *ReferralUpdate {
	mutation := newReferralMutation(c.config, OpUpdate)
	return &ReferralUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReferralClient) UpdateOne(_m *Referral) *ReferralUpdateOne {
	mutation := newReferralMutation(c.config, OpUpdateOne, withReferral(_m))
	return &ReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReferralClient) UpdateOneID(id uuid.UUID) *ReferralUpdateOne {
	mutation := newReferralMutation(c.config, OpUpdateOne, withReferralID(id))
	return &ReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Referral.
func (c *ReferralClient) Delete() *ReferralDelete {
	mutation := newReferralMutation(c.config, OpDelete)
	return &ReferralDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReferralClient) DeleteOne(_m *Referral) *ReferralDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReferralClient) DeleteOneID(id uuid.UUID) *ReferralDeleteOne {
	builder := c.Delete().Where(referral.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReferralDeleteOne{builder}
}

// Query returns a query builder for Referral.
func (c *ReferralClient) Query() *ReferralQuery {
	return &ReferralQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReferral},
		inters: c.Interceptors(),
	}
}

// Get returns a Referral entity by its id.
func (c *ReferralClient) Get(ctx context.Context, id uuid.UUID) (*Referral, error) {
	return c.Query().Where(referral.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReferralClient) GetX(ctx context.Context, id uuid.UUID) *Referral {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReferralClient) Hooks() []Hook {
	return c.hooks.Referral
}

// Interceptors returns the client interceptors.
func (c *ReferralClient) Interceptors() []Interceptor {
	return c.inters.Referral
}

func (c *ReferralClient) mutate(ctx context.Context, m *ReferralMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReferralCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReferralUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReferralDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Referral mutation op: %q", m.Op())
	}
}

// StagingBuildingClient is a client for the StagingBuilding schema.
type StagingBuildingClient struct {
	config
}

// NewStagingBuildingClient returns a client for the StagingBuilding from the given config.
func NewStagingBuildingClient(c config) *StagingBuildingClient {
	return &StagingBuildingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingbuilding.Hooks(f(g(h())))`.
func (c *StagingBuildingClient) Use(hooks ...Hook) {
	c.hooks.StagingBuilding = append(c.hooks.StagingBuilding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingbuilding.Intercept(f(g(h())))`.
func (c *StagingBuildingClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingBuilding = append(c.inters.StagingBuilding, interceptors...)
}

// Create returns a builder for creating a StagingBuilding entity.
func (c *StagingBuildingClient) Create() *StagingBuildingCreate {
	mutation := newStagingBuildingMutation(c.config, OpCreate)
	return &StagingBuildingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingBuilding entities.
func (c *StagingBuildingClient) CreateBulk(builders ...*StagingBuildingCreate) *StagingBuildingCreateBulk {
	return &StagingBuildingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingBuildingClient) MapCreateBulk(slice any, setFunc func(*StagingBuildingCreate, int)) *StagingBuildingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingBuildingCreateBulk{err: fmt.Errorf("calling to StagingBuildingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingBuildingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingBuildingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingBuilding.
func (c *StagingBuildingClient) Update() *StagingBuildingUpdate {
	mutation := newStagingBuildingMutation(c.config, OpUpdate)
	return &StagingBuildingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingBuildingClient) UpdateOne(_m *StagingBuilding) *StagingBuildingUpdateOne {
	mutation := newStagingBuildingMutation(c.config, OpUpdateOne, withStagingBuilding(_m))
	return &StagingBuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingBuildingClient) UpdateOneID(id uuid.UUID) *StagingBuildingUpdateOne {
	mutation := newStagingBuildingMutation(c.config, OpUpdateOne, withStagingBuildingID(id))
	return &StagingBuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingBuilding.
func (c *StagingBuildingClient) Delete() *StagingBuildingDelete {
	mutation := newStagingBuildingMutation(c.config, OpDelete)
	return &StagingBuildingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingBuildingClient) DeleteOne(_m *StagingBuilding) *StagingBuildingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingBuildingClient) DeleteOneID(id uuid.UUID) *StagingBuildingDeleteOne {
	builder := c.Delete().Where(stagingbuilding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingBuildingDeleteOne{builder}
}

// Query returns a query builder for StagingBuilding.
func (c *StagingBuildingClient) Query() *StagingBuildingQuery {
	return &StagingBuildingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingBuilding},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingBuilding entity by its id.
func (c *StagingBuildingClient) Get(ctx context.Context, id uuid.UUID) (*StagingBuilding, error) {
	return c.Query().Where(stagingbuilding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingBuildingClient) GetX(ctx context.Context, id uuid.UUID) *StagingBuilding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingBuildingClient) Hooks() []Hook {
	return c.hooks.StagingBuilding
}

// Interceptors returns the client interceptors.
func (c *StagingBuildingClient) Interceptors() []Interceptor {
	return c.inters.StagingBuilding
}

func (c *StagingBuildingClient) mutate(ctx context.Context, m *StagingBuildingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingBuildingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingBuildingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingBuildingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingBuildingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingBuilding mutation op: %q", m.Op())
	}
}

// StagingClaimClient is a client for the StagingClaim schema.
type StagingClaimClient struct {
	config
}

// NewStagingClaimClient returns a client for the StagingClaim from the given config.
func NewStagingClaimClient(c config) *StagingClaimClient {
	return &StagingClaimClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingclaim.Hooks(f(g(h())))`.
func (c *StagingClaimClient) Use(hooks ...Hook) {
	c.hooks.StagingClaim = append(c.hooks.StagingClaim, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingclaim.Intercept(f(g(h())))`.
func (c *StagingClaimClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingClaim = append(c.inters.StagingClaim, interceptors...)
}

// Create returns a builder for creating a StagingClaim entity.
func (c *StagingClaimClient) Create() *StagingClaimCreate {
	mutation := newStagingClaimMutation(c.config, OpCreate)
	return &StagingClaimCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingClaim entities.
func (c *StagingClaimClient) CreateBulk(builders ...*StagingClaimCreate) *StagingClaimCreateBulk {
	return &StagingClaimCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingClaimClient) MapCreateBulk(slice any, setFunc func(*StagingClaimCreate, int)) *StagingClaimCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingClaimCreateBulk{err: fmt.Errorf("calling to StagingClaimClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingClaimCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingClaimCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingClaim.
func (c *StagingClaimClient) Update() *StagingClaimUpdate {
	mutation := newStagingClaimMutation(c.config, OpUpdate)
	return &StagingClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingClaimClient) UpdateOne(_m *StagingClaim) *StagingClaimUpdateOne {
	mutation := newStagingClaimMutation(c.config, OpUpdateOne, withStagingClaim(_m))
	return &StagingClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingClaimClient) UpdateOneID(id uuid.UUID) *StagingClaimUpdateOne {
	mutation := newStagingClaimMutation(c.config, OpUpdateOne, withStagingClaimID(id))
	return &StagingClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingClaim.
func (c *StagingClaimClient) Delete() *StagingClaimDelete {
	mutation := newStagingClaimMutation(c.config, OpDelete)
	return &StagingClaimDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingClaimClient) DeleteOne(_m *StagingClaim) *StagingClaimDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingClaimClient) DeleteOneID(id uuid.UUID) *StagingClaimDeleteOne {
	builder := c.Delete().Where(stagingclaim.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingClaimDeleteOne{builder}
}

// Query returns a query builder for StagingClaim.
func (c *StagingClaimClient) Query() *StagingClaimQuery {
	return &StagingClaimQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingClaim},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingClaim entity by its id.
func (c *StagingClaimClient) Get(ctx context.Context, id uuid.UUID) (*StagingClaim, error) {
	return c.Query().Where(stagingclaim.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingClaimClient) GetX(ctx context.Context, id uuid.UUID) *StagingClaim {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingClaimClient) Hooks() []Hook {
	return c.hooks.StagingClaim
}

// Interceptors returns the client interceptors.
func (c *StagingClaimClient) Interceptors() []Interceptor {
	return c.inters.StagingClaim
}

func (c *StagingClaimClient) mutate(ctx context.Context, m *StagingClaimMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingClaimCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingClaimUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingClaimUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingClaimDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingClaim mutation op: %q", m.Op())
	}
}

// StagingDocumentClient is a client for the StagingDocument schema.
type StagingDocumentClient struct {
	config
}

// NewStagingDocumentClient returns a client for the StagingDocument from the given config.
func NewStagingDocumentClient(c config) *StagingDocumentClient {
	return &StagingDocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingdocument.Hooks(f(g(h())))`.
func (c *StagingDocumentClient) Use(hooks ...Hook) {
	c.hooks.StagingDocument = append(c.hooks.StagingDocument, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingdocument.Intercept(f(g(h())))`.
func (c *StagingDocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingDocument = append(c.inters.StagingDocument, interceptors...)
}

// Create returns a builder for creating a StagingDocument entity.
func (c *StagingDocumentClient) Create() *StagingDocumentCreate {
	mutation := newStagingDocumentMutation(c.config, OpCreate)
	return &StagingDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingDocument entities.
func (c *StagingDocumentClient) CreateBulk(builders ...*StagingDocumentCreate) *StagingDocumentCreateBulk {
	return &StagingDocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingDocumentClient) MapCreateBulk(slice any, setFunc func(*StagingDocumentCreate, int)) *StagingDocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingDocumentCreateBulk{err: fmt.Errorf("calling to StagingDocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingDocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingDocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingDocument.
func (c *StagingDocumentClient) Update() *StagingDocumentUpdate {
	mutation := newStagingDocumentMutation(c.config, OpUpdate)
	return &StagingDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingDocumentClient) UpdateOne(_m *StagingDocument) *StagingDocumentUpdateOne {
	mutation := newStagingDocumentMutation(c.config, OpUpdateOne, withStagingDocument(_m))
	return &StagingDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingDocumentClient) UpdateOneID(id uuid.UUID) *StagingDocumentUpdateOne {
	mutation := newStagingDocumentMutation(c.config, OpUpdateOne, withStagingDocumentID(id))
	return &StagingDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingDocument.
func (c *StagingDocumentClient) Delete() *StagingDocumentDelete {
	mutation := newStagingDocumentMutation(c.config, OpDelete)
	return &StagingDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingDocumentClient) DeleteOne(_m *StagingDocument) *StagingDocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingDocumentClient) DeleteOneID(id uuid.UUID) *StagingDocumentDeleteOne {
	builder := c.Delete().Where(stagingdocument.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingDocumentDeleteOne{builder}
}

// Query returns a query builder for StagingDocument.
func (c *StagingDocumentClient) Query() *StagingDocumentQuery {
	return &StagingDocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingDocument entity by its id.
func (c *StagingDocumentClient) Get(ctx context.Context, id uuid.UUID) (*StagingDocument, error) {
	return c.Query().Where(stagingdocument.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingDocumentClient) GetX(ctx context.Context, id uuid.UUID) *StagingDocument {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingDocumentClient) Hooks() []Hook {
	return c.hooks.StagingDocument
}

// Interceptors returns the client interceptors.
func (c *StagingDocumentClient) Interceptors() []Interceptor {
	return c.inters.StagingDocument
}

func (c *StagingDocumentClient) mutate(ctx context.Context, m *StagingDocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingDocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingDocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingDocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingDocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingDocument mutation op: %q", m.Op())
	}
}

// StagingEvidenceClient is a client for the StagingEvidence schema.
type StagingEvidenceClient struct {
	config
}

// NewStagingEvidenceClient returns a client for the StagingEvidence from the given config.
func NewStagingEvidenceClient(c config) *StagingEvidenceClient {
	return &StagingEvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingevidence.Hooks(f(g(h())))`.
func (c *StagingEvidenceClient) Use(hooks ...Hook) {
	c.hooks.StagingEvidence = append(c.hooks.StagingEvidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingevidence.Intercept(f(g(h())))`.
func (c *StagingEvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingEvidence = append(c.inters.StagingEvidence, interceptors...)
}

// Create returns a builder for creating a StagingEvidence entity.
func (c *StagingEvidenceClient) Create() *StagingEvidenceCreate {
	mutation := newStagingEvidenceMutation(c.config, OpCreate)
	return &StagingEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingEvidence entities.
func (c *StagingEvidenceClient) CreateBulk(builders ...*StagingEvidenceCreate) *StagingEvidenceCreateBulk {
	return &StagingEvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingEvidenceClient) MapCreateBulk(slice any, setFunc func(*StagingEvidenceCreate, int)) *StagingEvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingEvidenceCreateBulk{err: fmt.Errorf("calling to StagingEvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingEvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingEvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingEvidence.
func (c *StagingEvidenceClient) Update() *StagingEvidenceUpdate {
	mutation := newStagingEvidenceMutation(c.config, OpUpdate)
	return &StagingEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingEvidenceClient) UpdateOne(_m *StagingEvidence) *StagingEvidenceUpdateOne {
	mutation := newStagingEvidenceMutation(c.config, OpUpdateOne, withStagingEvidence(_m))
	return &StagingEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingEvidenceClient) UpdateOneID(id uuid.UUID) *StagingEvidenceUpdateOne {
	mutation := newStagingEvidenceMutation(c.config, OpUpdateOne, withStagingEvidenceID(id))
	return &StagingEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingEvidence.
func (c *StagingEvidenceClient) Delete() *StagingEvidenceDelete {
	mutation := newStagingEvidenceMutation(c.config, OpDelete)
	return &StagingEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingEvidenceClient) DeleteOne(_m *StagingEvidence) *StagingEvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingEvidenceClient) DeleteOneID(id uuid.UUID) *StagingEvidenceDeleteOne {
	builder := c.Delete().Where(stagingevidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingEvidenceDeleteOne{builder}
}

// Query returns a query builder for StagingEvidence.
func (c *StagingEvidenceClient) Query() *StagingEvidenceQuery {
	return &StagingEvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingEvidence entity by its id.
func (c *StagingEvidenceClient) Get(ctx context.Context, id uuid.UUID) (*StagingEvidence, error) {
	return c.Query().Where(stagingevidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingEvidenceClient) GetX(ctx context.Context, id uuid.UUID) *StagingEvidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingEvidenceClient) Hooks() []Hook {
	return c.hooks.StagingEvidence
}

// Interceptors returns the client interceptors.
func (c *StagingEvidenceClient) Interceptors() []Interceptor {
	return c.inters.StagingEvidence
}

func (c *StagingEvidenceClient) mutate(ctx context.Context, m *StagingEvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingEvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingEvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingEvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingEvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingEvidence mutation op: %q", m.Op())
	}
}

// StagingHouseholdClient is a client for the StagingHousehold schema.
type StagingHouseholdClient struct {
	config
}

// NewStagingHouseholdClient returns a client for the StagingHousehold from the given config.
func NewStagingHouseholdClient(c config) *StagingHouseholdClient {
	return &StagingHouseholdClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `staginghousehold.Hooks(f(g(h())))`.
func (c *StagingHouseholdClient) Use(hooks ...Hook) {
	c.hooks.StagingHousehold = append(c.hooks.StagingHousehold, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `staginghousehold.Intercept(f(g(h())))`.
func (c *StagingHouseholdClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingHousehold = append(c.inters.StagingHousehold, interceptors...)
}

// Create returns a builder for creating a StagingHousehold entity.
func (c *StagingHouseholdClient) Create() *StagingHouseholdCreate {
	mutation := newStagingHouseholdMutation(c.config, OpCreate)
	return &StagingHouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingHousehold entities.
func (c *StagingHouseholdClient) CreateBulk(builders ...*StagingHouseholdCreate) *StagingHouseholdCreateBulk {
	return &StagingHouseholdCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingHouseholdClient) MapCreateBulk(slice any, setFunc func(*StagingHouseholdCreate, int)) *StagingHouseholdCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingHouseholdCreateBulk{err: fmt.Errorf("calling to StagingHouseholdClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingHouseholdCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingHouseholdCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingHousehold.
func (c *StagingHouseholdClient) Update() *StagingHouseholdUpdate {
	mutation := newStagingHouseholdMutation(c.config, OpUpdate)
	return &StagingHouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingHouseholdClient) UpdateOne(_m *StagingHousehold) *StagingHouseholdUpdateOne {
	mutation := newStagingHouseholdMutation(c.config, OpUpdateOne, withStagingHousehold(_m))
	return &StagingHouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingHouseholdClient) UpdateOneID(id uuid.UUID) *StagingHouseholdUpdateOne {
	mutation := newStagingHouseholdMutation(c.config, OpUpdateOne, withStagingHouseholdID(id))
	return &StagingHouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingHousehold.
func (c *StagingHouseholdClient) Delete() *StagingHouseholdDelete {
	mutation := newStagingHouseholdMutation(c.config, OpDelete)
	return &StagingHouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingHouseholdClient) DeleteOne(_m *StagingHousehold) *StagingHouseholdDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingHouseholdClient) DeleteOneID(id uuid.UUID) *StagingHouseholdDeleteOne {
	builder := c.Delete().Where(staginghousehold.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingHouseholdDeleteOne{builder}
}

// Query returns a query builder for StagingHousehold.
func (c *StagingHouseholdClient) Query() *StagingHouseholdQuery {
	return &StagingHouseholdQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingHousehold},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingHousehold entity by its id.
func (c *StagingHouseholdClient) Get(ctx context.Context, id uuid.UUID) (*StagingHousehold, error) {
	return c.Query().Where(staginghousehold.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingHouseholdClient) GetX(ctx context.Context, id uuid.UUID) *StagingHousehold {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingHouseholdClient) Hooks() []Hook {
	return c.hooks.StagingHousehold
}

// Interceptors returns the client interceptors.
func (c *StagingHouseholdClient) Interceptors() []Interceptor {
	return c.inters.StagingHousehold
}

func (c *StagingHouseholdClient) mutate(ctx context.Context, m *StagingHouseholdMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingHouseholdCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingHouseholdUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingHouseholdUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingHouseholdDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingHousehold mutation op: %q", m.Op())
	}
}

// StagingPersonClient is a client for the StagingPerson schema.
type StagingPersonClient struct {
	config
}

// NewStagingPersonClient returns a client for the StagingPerson from the given config.
func NewStagingPersonClient(c config) *StagingPersonClient {
	return &StagingPersonClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingperson.Hooks(f(g(h())))`.
func (c *StagingPersonClient) Use(hooks ...Hook) {
	c.hooks.StagingPerson = append(c.hooks.StagingPerson, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingperson.Intercept(f(g(h())))`.
func (c *StagingPersonClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingPerson = append(c.inters.StagingPerson, interceptors...)
}

// Create returns a builder for creating a StagingPerson entity.
func (c *StagingPersonClient) Create() *StagingPersonCreate {
	mutation := newStagingPersonMutation(c.config, OpCreate)
	return &StagingPersonCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingPerson entities.
func (c *StagingPersonClient) CreateBulk(builders ...*StagingPersonCreate) *StagingPersonCreateBulk {
	return &StagingPersonCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingPersonClient) MapCreateBulk(slice any, setFunc func(*StagingPersonCreate, int)) *StagingPersonCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingPersonCreateBulk{err: fmt.Errorf("calling to StagingPersonClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingPersonCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingPersonCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingPerson.
func (c *StagingPersonClient) Update() *StagingPersonUpdate {
	mutation := newStagingPersonMutation(c.config, OpUpdate)
	return &StagingPersonUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingPersonClient) UpdateOne(_m *StagingPerson) *StagingPersonUpdateOne {
	mutation := newStagingPersonMutation(c.config, OpUpdateOne, withStagingPerson(_m))
	return &StagingPersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingPersonClient) UpdateOneID(id uuid.UUID) *StagingPersonUpdateOne {
	mutation := newStagingPersonMutation(c.config, OpUpdateOne, withStagingPersonID(id))
	return &StagingPersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingPerson.
func (c *StagingPersonClient) Delete() *StagingPersonDelete {
	mutation := newStagingPersonMutation(c.config, OpDelete)
	return &StagingPersonDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingPersonClient) DeleteOne(_m *StagingPerson) *StagingPersonDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingPersonClient) DeleteOneID(id uuid.UUID) *StagingPersonDeleteOne {
	builder := c.Delete().Where(stagingperson.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingPersonDeleteOne{builder}
}

// Query returns a query builder for StagingPerson.
func (c *StagingPersonClient) Query() *StagingPersonQuery {
	return &StagingPersonQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingPerson},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingPerson entity by its id.
func (c *StagingPersonClient) Get(ctx context.Context, id uuid.UUID) (*StagingPerson, error) {
	return c.Query().Where(stagingperson.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingPersonClient) GetX(ctx context.Context, id uuid.UUID) *StagingPerson {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingPersonClient) Hooks() []Hook {
	return c.hooks.StagingPerson
}

// Interceptors returns the client interceptors.
func (c *StagingPersonClient) Interceptors() []Interceptor {
	return c.inters.StagingPerson
}

func (c *StagingPersonClient) mutate(ctx context.Context, m *StagingPersonMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingPersonCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingPersonUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingPersonUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingPersonDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingPerson mutation op: %q", m.Op())
	}
}

// StagingPersonPropertyRelationClient is a client for the StagingPersonPropertyRelation schema.
type StagingPersonPropertyRelationClient struct {
	config
}

// NewStagingPersonPropertyRelationClient returns a client for the StagingPersonPropertyRelation from the given config.
func NewStagingPersonPropertyRelationClient(c config) *StagingPersonPropertyRelationClient {
	return &StagingPersonPropertyRelationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingpersonpropertyrelation.Hooks(f(g(h())))`.
func (c *StagingPersonPropertyRelationClient) Use(hooks ...Hook) {
	c.hooks.StagingPersonPropertyRelation = append(c.hooks.StagingPersonPropertyRelation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingpersonpropertyrelation.Intercept(f(g(h())))`.
func (c *StagingPersonPropertyRelationClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingPersonPropertyRelation = append(c.inters.StagingPersonPropertyRelation, interceptors...)
}

// Create returns a builder for creating a StagingPersonPropertyRelation entity.
func (c *StagingPersonPropertyRelationClient) Create() *StagingPersonPropertyRelationCreate {
	mutation := newStagingPersonPropertyRelationMutation(c.config, OpCreate)
	return &StagingPersonPropertyRelationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingPersonPropertyRelation entities.
func (c *StagingPersonPropertyRelationClient) CreateBulk(builders ...*StagingPersonPropertyRelationCreate) *StagingPersonPropertyRelationCreateBulk {
	return &StagingPersonPropertyRelationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingPersonPropertyRelationClient) MapCreateBulk(slice any, setFunc func(*StagingPersonPropertyRelationCreate, int)) *StagingPersonPropertyRelationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingPersonPropertyRelationCreateBulk{err: fmt.Errorf("calling to StagingPersonPropertyRelationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingPersonPropertyRelationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingPersonPropertyRelationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingPersonPropertyRelation.
func (c *StagingPersonPropertyRelationClient) Update() *StagingPersonPropertyRelationUpdate {
	mutation := newStagingPersonPropertyRelationMutation(c.config, OpUpdate)
	return &StagingPersonPropertyRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingPersonPropertyRelationClient) UpdateOne(_m *StagingPersonPropertyRelation) *StagingPersonPropertyRelationUpdateOne {
	mutation := newStagingPersonPropertyRelationMutation(c.config, OpUpdateOne, withStagingPersonPropertyRelation(_m))
	return &StagingPersonPropertyRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingPersonPropertyRelationClient) UpdateOneID(id uuid.UUID) *StagingPersonPropertyRelationUpdateOne {
	mutation := newStagingPersonPropertyRelationMutation(c.config, OpUpdateOne, withStagingPersonPropertyRelationID(id))
	return &StagingPersonPropertyRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingPersonPropertyRelation.
func (c *StagingPersonPropertyRelationClient) Delete() *StagingPersonPropertyRelationDelete {
	mutation := newStagingPersonPropertyRelationMutation(c.config, OpDelete)
	return &StagingPersonPropertyRelationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingPersonPropertyRelationClient) DeleteOne(_m *StagingPersonPropertyRelation) *StagingPersonPropertyRelationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingPersonPropertyRelationClient) DeleteOneID(id uuid.UUID) *StagingPersonPropertyRelationDeleteOne {
	builder := c.Delete().Where(stagingpersonpropertyrelation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingPersonPropertyRelationDeleteOne{builder}
}

// Query returns a query builder for StagingPersonPropertyRelation.
func (c *StagingPersonPropertyRelationClient) Query() *StagingPersonPropertyRelationQuery {
	return &StagingPersonPropertyRelationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingPersonPropertyRelation},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingPersonPropertyRelation entity by its id.
func (c *StagingPersonPropertyRelationClient) Get(ctx context.Context, id uuid.UUID) (*StagingPersonPropertyRelation, error) {
	return c.Query().Where(stagingpersonpropertyrelation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingPersonPropertyRelationClient) GetX(ctx context.Context, id uuid.UUID) *StagingPersonPropertyRelation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingPersonPropertyRelationClient) Hooks() []Hook {
	return c.hooks.StagingPersonPropertyRelation
}

// Interceptors returns the client interceptors.
func (c *StagingPersonPropertyRelationClient) Interceptors() []Interceptor {
	return c.inters.StagingPersonPropertyRelation
}

func (c *StagingPersonPropertyRelationClient) mutate(ctx context.Context, m *StagingPersonPropertyRelationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingPersonPropertyRelationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingPersonPropertyRelationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingPersonPropertyRelationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingPersonPropertyRelationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingPersonPropertyRelation mutation op: %q", m.Op())
	}
}

// StagingPropertyUnitClient is a client for the StagingPropertyUnit schema.
type StagingPropertyUnitClient struct {
	config
}

// NewStagingPropertyUnitClient returns a client for the StagingPropertyUnit from the given config.
func NewStagingPropertyUnitClient(c config) *StagingPropertyUnitClient {
	return &StagingPropertyUnitClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingpropertyunit.Hooks(f(g(h())))`.
func (c *StagingPropertyUnitClient) Use(hooks ...Hook) {
	c.hooks.StagingPropertyUnit = append(c.hooks.StagingPropertyUnit, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingpropertyunit.Intercept(f(g(h())))`.
func (c *StagingPropertyUnitClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingPropertyUnit = append(c.inters.StagingPropertyUnit, interceptors...)
}

// Create returns a builder for creating a StagingPropertyUnit entity.
func (c *StagingPropertyUnitClient) Create() *StagingPropertyUnitCreate {
	mutation := newStagingPropertyUnitMutation(c.config, OpCreate)
	return &StagingPropertyUnitCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingPropertyUnit entities.
func (c *StagingPropertyUnitClient) CreateBulk(builders ...*StagingPropertyUnitCreate) *StagingPropertyUnitCreateBulk {
	return &StagingPropertyUnitCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingPropertyUnitClient) MapCreateBulk(slice any, setFunc func(*StagingPropertyUnitCreate, int)) *StagingPropertyUnitCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingPropertyUnitCreateBulk{err: fmt.Errorf("calling to StagingPropertyUnitClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingPropertyUnitCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingPropertyUnitCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingPropertyUnit.
func (c *StagingPropertyUnitClient) Update() *StagingPropertyUnitUpdate {
	mutation := newStagingPropertyUnitMutation(c.config, OpUpdate)
	return &StagingPropertyUnitUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingPropertyUnitClient) UpdateOne(_m *StagingPropertyUnit) *StagingPropertyUnitUpdateOne {
	mutation := newStagingPropertyUnitMutation(c.config, OpUpdateOne, withStagingPropertyUnit(_m))
	return &StagingPropertyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingPropertyUnitClient) UpdateOneID(id uuid.UUID) *StagingPropertyUnitUpdateOne {
	mutation := newStagingPropertyUnitMutation(c.config, OpUpdateOne, withStagingPropertyUnitID(id))
	return &StagingPropertyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingPropertyUnit.
func (c *StagingPropertyUnitClient) Delete() *StagingPropertyUnitDelete {
	mutation := newStagingPropertyUnitMutation(c.config, OpDelete)
	return &StagingPropertyUnitDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingPropertyUnitClient) DeleteOne(_m *StagingPropertyUnit) *StagingPropertyUnitDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingPropertyUnitClient) DeleteOneID(id uuid.UUID) *StagingPropertyUnitDeleteOne {
	builder := c.Delete().Where(stagingpropertyunit.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingPropertyUnitDeleteOne{builder}
}

// Query returns a query builder for StagingPropertyUnit.
func (c *StagingPropertyUnitClient) Query() *StagingPropertyUnitQuery {
	return &StagingPropertyUnitQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingPropertyUnit},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingPropertyUnit entity by its id.
func (c *StagingPropertyUnitClient) Get(ctx context.Context, id uuid.UUID) (*StagingPropertyUnit, error) {
	return c.Query().Where(stagingpropertyunit.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingPropertyUnitClient) GetX(ctx context.Context, id uuid.UUID) *StagingPropertyUnit {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingPropertyUnitClient) Hooks() []Hook {
	return c.hooks.StagingPropertyUnit
}

// Interceptors returns the client interceptors.
func (c *StagingPropertyUnitClient) Interceptors() []Interceptor {
	return c.inters.StagingPropertyUnit
}

func (c *StagingPropertyUnitClient) mutate(ctx context.Context, m *StagingPropertyUnitMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingPropertyUnitCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingPropertyUnitUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingPropertyUnitUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingPropertyUnitDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingPropertyUnit mutation op: %q", m.Op())
	}
}

// StagingReferralClient is a client for the StagingReferral schema.
type StagingReferralClient struct {
	config
}

// NewStagingReferralClient returns a client for the StagingReferral from the given config.
func NewStagingReferralClient(c config) *StagingReferralClient {
	return &StagingReferralClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingreferral.Hooks(f(g(h())))`.
func (c *StagingReferralClient) Use(hooks ...Hook) {
	c.hooks.StagingReferral = append(c.hooks.StagingReferral, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingreferral.Intercept(f(g(h())))`.
func (c *StagingReferralClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingReferral = append(c.inters.StagingReferral, interceptors...)
}

// Create returns a builder for creating a StagingReferral entity.
func (c *StagingReferralClient) Create() *StagingReferralCreate {
	mutation := newStagingReferralMutation(c.config, OpCreate)
	return &StagingReferralCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingReferral entities.
func (c *StagingReferralClient) CreateBulk(builders ...*StagingReferralCreate) *StagingReferralCreateBulk {
	return &StagingReferralCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingReferralClient) MapCreateBulk(slice any, setFunc func(*StagingReferralCreate, int)) *StagingReferralCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingReferralCreateBulk{err: fmt.Errorf("calling to StagingReferralClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingReferralCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingReferralCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingReferral.
func (c *StagingReferralClient) Update() *StagingReferralUpdate {
	mutation := newStagingReferralMutation(c.config, OpUpdate)
	return &StagingReferralUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingReferralClient) UpdateOne(_m *StagingReferral) *StagingReferralUpdateOne {
	mutation := newStagingReferralMutation(c.config, OpUpdateOne, withStagingReferral(_m))
	return &StagingReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingReferralClient) UpdateOneID(id uuid.UUID) *StagingReferralUpdateOne {
	mutation := newStagingReferralMutation(c.config, OpUpdateOne, withStagingReferralID(id))
	return &StagingReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingReferral.
func (c *StagingReferralClient) Delete() *StagingReferralDelete {
	mutation := newStagingReferralMutation(c.config, OpDelete)
	return &StagingReferralDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingReferralClient) DeleteOne(_m *StagingReferral) *StagingReferralDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingReferralClient) DeleteOneID(id uuid.UUID) *StagingReferralDeleteOne {
	builder := c.Delete().Where(stagingreferral.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingReferralDeleteOne{builder}
}

// Query returns a query builder for StagingReferral.
func (c *StagingReferralClient) Query() *StagingReferralQuery {
	return &StagingReferralQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingReferral},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingReferral entity by its id.
func (c *StagingReferralClient) Get(ctx context.Context, id uuid.UUID) (*StagingReferral, error) {
	return c.Query().Where(stagingreferral.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingReferralClient) GetX(ctx context.Context, id uuid.UUID) *StagingReferral {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingReferralClient) Hooks() []Hook {
	return c.hooks.StagingReferral
}

// Interceptors returns the client interceptors.
func (c *StagingReferralClient) Interceptors() []Interceptor {
	return c.inters.StagingReferral
}

func (c *StagingReferralClient) mutate(ctx context.Context, m *StagingReferralMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingReferralCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingReferralUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingReferralUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingReferralDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingReferral mutation op: %q", m.Op())
	}
}

// StagingSurveyClient is a client for the StagingSurvey schema.
type StagingSurveyClient struct {
	config
}

// NewStagingSurveyClient returns a client for the StagingSurvey from the given config.
func NewStagingSurveyClient(c config) *StagingSurveyClient {
	return &StagingSurveyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `stagingsurvey.Hooks(f(g(h())))`.
func (c *StagingSurveyClient) Use(hooks ...Hook) {
	c.hooks.StagingSurvey = append(c.hooks.StagingSurvey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `stagingsurvey.Intercept(f(g(h())))`.
func (c *StagingSurveyClient) Intercept(interceptors ...Interceptor) {
	c.inters.StagingSurvey = append(c.inters.StagingSurvey, interceptors...)
}

// Create returns a builder for creating a StagingSurvey entity.
func (c *StagingSurveyClient) Create() *StagingSurveyCreate {
	mutation := newStagingSurveyMutation(c.config, OpCreate)
	return &StagingSurveyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StagingSurvey entities.
func (c *StagingSurveyClient) CreateBulk(builders ...*StagingSurveyCreate) *StagingSurveyCreateBulk {
	return &StagingSurveyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StagingSurveyClient) MapCreateBulk(slice any, setFunc func(*StagingSurveyCreate, int)) *StagingSurveyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StagingSurveyCreateBulk{err: fmt.Errorf("calling to StagingSurveyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StagingSurveyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StagingSurveyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StagingSurvey.
func (c *StagingSurveyClient) Update() *StagingSurveyUpdate {
	mutation := newStagingSurveyMutation(c.config, OpUpdate)
	return &StagingSurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StagingSurveyClient) UpdateOne(_m *StagingSurvey) *StagingSurveyUpdateOne {
	mutation := newStagingSurveyMutation(c.config, OpUpdateOne, withStagingSurvey(_m))
	return &StagingSurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StagingSurveyClient) UpdateOneID(id uuid.UUID) *StagingSurveyUpdateOne {
	mutation := newStagingSurveyMutation(c.config, OpUpdateOne, withStagingSurveyID(id))
	return &StagingSurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StagingSurvey.
func (c *StagingSurveyClient) Delete() *StagingSurveyDelete {
	mutation := newStagingSurveyMutation(c.config, OpDelete)
	return &StagingSurveyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StagingSurveyClient) DeleteOne(_m *StagingSurvey) *StagingSurveyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StagingSurveyClient) DeleteOneID(id uuid.UUID) *StagingSurveyDeleteOne {
	builder := c.Delete().Where(stagingsurvey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StagingSurveyDeleteOne{builder}
}

// Query returns a query builder for StagingSurvey.
func (c *StagingSurveyClient) Query() *StagingSurveyQuery {
	return &StagingSurveyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStagingSurvey},
		inters: c.Interceptors(),
	}
}

// Get returns a StagingSurvey entity by its id.
func (c *StagingSurveyClient) Get(ctx context.Context, id uuid.UUID) (*StagingSurvey, error) {
	return c.Query().Where(stagingsurvey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StagingSurveyClient) GetX(ctx context.Context, id uuid.UUID) *StagingSurvey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StagingSurveyClient) Hooks() []Hook {
	return c.hooks.StagingSurvey
}

// Interceptors returns the client interceptors.
func (c *StagingSurveyClient) Interceptors() []Interceptor {
	return c.inters.StagingSurvey
}

func (c *StagingSurveyClient) mutate(ctx context.Context, m *StagingSurveyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StagingSurveyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StagingSurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StagingSurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StagingSurveyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StagingSurvey mutation op: %q", m.Op())
	}
}

// SurveyClient is a client for the Survey schema.
type SurveyClient struct {
	config
}

// NewSurveyClient returns a client for the Survey from the given config.
func NewSurveyClient(c config) *SurveyClient {
	return &SurveyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `survey.Hooks(f(g(h())))`.
func (c *SurveyClient) Use(hooks ...Hook) {
	c.hooks.Survey = append(c.hooks.Survey, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `survey.Intercept(f(g(h())))`.
func (c *SurveyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Survey = append(c.inters.Survey, interceptors...)
}

// Create returns a builder for creating a Survey entity.
func (c *SurveyClient) Create() *SurveyCreate {
	mutation := newSurveyMutation(c.config, OpCreate)
	return &SurveyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Survey entities.
func (c *SurveyClient) CreateBulk(builders ...*SurveyCreate) *SurveyCreateBulk {
	return &SurveyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SurveyClient) MapCreateBulk(slice any, setFunc func(*SurveyCreate, int)) *SurveyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SurveyCreateBulk{err: fmt.Errorf("calling to SurveyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SurveyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SurveyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Survey.
func (c *SurveyClient) Update() *SurveyUpdate {
	mutation := newSurveyMutation(c.config, OpUpdate)
	return &SurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SurveyClient) UpdateOne(_m *Survey) *SurveyUpdateOne {
	mutation := newSurveyMutation(c.config, OpUpdateOne, withSurvey(_m))
	return &SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SurveyClient) UpdateOneID(id uuid.UUID) *SurveyUpdateOne {
	mutation := newSurveyMutation(c.config, OpUpdateOne, withSurveyID(id))
	return &SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Survey.
func (c *SurveyClient) Delete() *SurveyDelete {
	mutation := newSurveyMutation(c.config, OpDelete)
	return &SurveyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SurveyClient) DeleteOne(_m *Survey) *SurveyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SurveyClient) DeleteOneID(id uuid.UUID) *SurveyDeleteOne {
	builder := c.Delete().Where(survey.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SurveyDeleteOne{builder}
}

// Query returns a query builder for Survey.
func (c *SurveyClient) Query() *SurveyQuery {
	return &SurveyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSurvey},
		inters: c.Interceptors(),
	}
}

// Get returns a Survey entity by its id.
func (c *SurveyClient) Get(ctx context.Context, id uuid.UUID) (*Survey, error) {
	return c.Query().Where(survey.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SurveyClient) GetX(ctx context.Context, id uuid.UUID) *Survey {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SurveyClient) Hooks() []Hook {
	return c.hooks.Survey
}

// Interceptors returns the client interceptors.
func (c *SurveyClient) Interceptors() []Interceptor {
	return c.inters.Survey
}

func (c *SurveyClient) mutate(ctx context.Context, m *SurveyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SurveyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SurveyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SurveyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SurveyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Survey mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, Building, Certificate, Claim, ConflictResolution, Document,
		DomainEvent, DuplicateSuppression, Evidence, Household, IdentifierSequence,
		ImportPackage, Notification, Person, PersonPropertyRelation, PropertyUnit,
		Referral, StagingBuilding, StagingClaim, StagingDocument, StagingEvidence,
		StagingHousehold, StagingPerson, StagingPersonPropertyRelation,
		StagingPropertyUnit, StagingReferral, StagingSurvey, Survey []ent.Hook
	}
	inters struct {
		AuditLog, Building, Certificate, Claim, ConflictResolution, Document,
		DomainEvent, DuplicateSuppression, Evidence, Household, IdentifierSequence,
		ImportPackage, Notification, Person, PersonPropertyRelation, PropertyUnit,
		Referral, StagingBuilding, StagingClaim, StagingDocument, StagingEvidence,
		StagingHousehold, StagingPerson, StagingPersonPropertyRelation,
		StagingPropertyUnit, StagingReferral, StagingSurvey, Survey []ent.Interceptor
	}
)
