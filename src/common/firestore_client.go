package common

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"
)

// FirestoreClient writes poll responses into one collection of the
// project's default database.
type FirestoreClient struct {
	service    *firestore.Service
	projectID  string
	collection string
}

// NewFirestoreClient reads the service account file at credentialsPath and
// returns a client for collection. opts are passed to firestore.NewService
// after the credential's token source.
func NewFirestoreClient(ctx context.Context, credentialsPath, collection string, opts ...option.ClientOption) (*FirestoreClient, error) {
	b, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, newInitializationError("read "+credentialsPath, err)
	}
	creds, err := google.CredentialsFromJSON(ctx, b, firestore.DatastoreScope)
	if err != nil {
		return nil, newInitializationError("parse "+credentialsPath, err)
	}
	if creds.ProjectID == "" {
		return nil, newInitializationError("no project_id in "+credentialsPath, nil)
	}

	opts = append([]option.ClientOption{option.WithTokenSource(creds.TokenSource)}, opts...)
	srv, err := firestore.NewService(ctx, opts...)
	if err != nil {
		return nil, newInitializationError("create service", err)
	}
	return NewFirestoreClientWithService(srv, creds.ProjectID, collection), nil
}

func NewFirestoreClientWithService(service *firestore.Service, projectID, collection string) *FirestoreClient {
	return &FirestoreClient{service: service, projectID: projectID, collection: collection}
}

func (c *FirestoreClient) ProjectID() string {
	return c.projectID
}

func (c *FirestoreClient) Collection() string {
	return c.collection
}

func (c *FirestoreClient) parent() string {
	return fmt.Sprintf("projects/%s/databases/(default)/documents", c.projectID)
}

// Add creates a new document under a fresh random id and returns its
// resource name. Existing documents are never touched.
func (c *FirestoreClient) Add(ctx context.Context, resp PollResponse) (string, error) {
	if c == nil || c.service == nil {
		return "", newInitializationError("add to nil client", nil)
	}
	fields := make(map[string]firestore.Value)
	for k, v := range resp.Fields() {
		fields[k] = firestore.Value{StringValue: v}
	}
	doc, err := c.service.Projects.Databases.Documents.
		CreateDocument(c.parent(), c.collection, &firestore.Document{Fields: fields}).
		DocumentId(uuid.NewString()).
		Context(ctx).
		Do()
	if err != nil {
		return "", newUploadError("create in "+c.collection, err)
	}
	return doc.Name, nil
}
