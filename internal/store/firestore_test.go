package store

import (
	"context"
	"os"
	"testing"

	"cloud.google.com/go/firestore"

	"github.com/GregMSThompson/travel-admin/internal/models"
	"github.com/GregMSThompson/travel-admin/pkg/helpers"
)

func TestFirestoreDocumentsWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	client, err := firestore.NewClient(ctx, "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	docs := NewFirestoreDocuments(client, "test-project")
	defer docs.Close()

	packages := NewPackageStore(docs)
	lctx := helpers.TestCtx()

	if _, err := packages.InitializeCategories(lctx, testTimeouts); err != nil {
		t.Fatalf("initialize error: %v", err)
	}
	if err := packages.Add(lctx, models.CategoryCurated, record("Petra")); err != nil {
		t.Fatalf("add error: %v", err)
	}

	// Closing disables the network; the next write must bring it back.
	if err := docs.Close(); err != nil {
		t.Fatalf("close error: %v", err)
	}
	if err := packages.Add(lctx, models.CategoryCurated, record("Wadi Rum")); err != nil {
		t.Fatalf("add after close error: %v", err)
	}

	items, err := packages.Items(lctx, models.CategoryCurated)
	if err != nil {
		t.Fatalf("items error: %v", err)
	}
	if len(items) < 2 || items[len(items)-1].Title != "Wadi Rum" {
		t.Fatalf("unexpected items: %v", titles(items))
	}

	testimonials := NewTestimonialStore(docs)
	err = testimonials.Update(lctx, "does-not-exist", models.Testimonial{Name: "x", Message: "y"})
	if err == nil {
		t.Fatal("expected update of missing testimonial to fail")
	}
}

func TestMongoDocumentsWithServer(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}

	ctx := context.Background()
	docs, err := DialMongo(ctx, uri, "travel_test")
	if err != nil {
		t.Fatalf("mongo connect error: %v", err)
	}
	defer docs.Close()

	settings := NewSettingsStore(docs)
	got, err := settings.Update(helpers.TestCtx(), models.SiteSettings{SiteName: "Mongo Travel"})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if got.SiteName != "Mongo Travel" || got.UpdatedAt.IsZero() {
		t.Fatalf("unexpected settings: %+v", got)
	}
}
