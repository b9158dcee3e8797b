// Seed script for creating demo organizations in Landlord.
// Run with: go run ./scripts/seed.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/Harshitk-cp/landlord/internal/domain"
)

func main() {
	// Load environment
	envFile := os.Getenv("LANDLORD_ENV")
	if envFile == "" {
		envFile = ".env"
	}
	_ = godotenv.Load(envFile)
	_ = godotenv.Load(envFile + ".secret")

	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DATABASE_NAME")
	if dbName == "" {
		dbName = "master_db"
	}

	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	fmt.Println("Connected to MongoDB")

	db := client.Database(dbName)
	orgs := db.Collection("organizations")
	admins := db.Collection("admins")

	demos := []struct {
		name     string
		email    string
		password string
	}{
		{"Acme Inc", "admin@acme.example", "acme-demo-password"},
		{"Globex Corporation", "admin@globex.example", "globex-demo-password"},
	}

	for _, d := range demos {
		// Skip organizations that already exist so reruns are safe
		count, err := orgs.CountDocuments(ctx, bson.M{"name": d.name})
		if err != nil {
			log.Fatalf("Failed to check organization %q: %v", d.name, err)
		}
		if count > 0 {
			fmt.Printf("Organization %q already exists, skipping\n", d.name)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(d.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}

		adminID := primitive.NewObjectID()
		_, err = admins.InsertOne(ctx, bson.M{
			"_id":           adminID,
			"email":         d.email,
			"password_hash": string(hash),
			"created_at":    time.Now().UTC(),
		})
		if err != nil {
			log.Fatalf("Failed to create admin for %q: %v", d.name, err)
		}

		partition := domain.PartitionName(d.name)
		_, err = orgs.InsertOne(ctx, bson.M{
			"name":           d.name,
			"partition_name": partition,
			"admin_id":       adminID,
			"admin_email":    d.email,
			"created_at":     time.Now().UTC(),
		})
		if err != nil {
			log.Fatalf("Failed to create organization %q: %v", d.name, err)
		}

		meta := domain.NewPartitionMetadata(d.name)
		if _, err := db.Collection(partition).InsertOne(ctx, meta); err != nil {
			log.Fatalf("Failed to create partition %q: %v", partition, err)
		}

		fmt.Printf("Created organization %q (partition %s)\n", d.name, partition)
		fmt.Printf("  Login: %s / %s\n", d.email, d.password)
	}

	// Drop a few records into Acme's partition so the isolation is visible
	acmePartition := domain.PartitionName("Acme Inc")
	records := []bson.M{
		{"_type": "customer", "name": "Jordan Reeves", "plan": "enterprise"},
		{"_type": "customer", "name": "Sam Okafor", "plan": "starter"},
		{"_type": "invoice", "number": "INV-1001", "amount_cents": 249900},
	}
	for _, rec := range records {
		if _, err := db.Collection(acmePartition).InsertOne(ctx, rec); err != nil {
			log.Printf("Warning: Failed to insert demo record: %v", err)
		}
	}
	fmt.Printf("Inserted %d demo records into %s\n", len(records), acmePartition)

	fmt.Println("\n=== Seed Complete ===")
	fmt.Println("\nTo log in, use:")
	fmt.Println(`curl -X POST http://localhost:8080/v1/auth/login -d '{"email":"admin@acme.example","password":"acme-demo-password"}'`)
}
