package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/matst80/slask-storefront/pkg/common"
	"github.com/matst80/slask-storefront/pkg/messaging"
	"github.com/matst80/slask-storefront/pkg/types"
)

var productsFile = flag.String("products", "data/products.json", "json file with the product records to publish")
var version = flag.String("version", "", "snapshot version, generated when empty")

func readProducts(path string) ([]types.ProductRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	var products []types.ProductRecord
	if err := sonic.ConfigDefault.NewDecoder(file).Decode(&products); err != nil {
		return nil, err
	}
	return products, nil
}

func main() {
	flag.Parse()

	cfg, err := common.LoadConfig(".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.RabbitUrl == "" {
		log.Fatal("RABBIT_URL environment variable is not set")
	}

	products, err := readProducts(*productsFile)
	if err != nil {
		log.Fatalf("Could not read products from %s: %v", *productsFile, err)
	}

	conn, err := messaging.Connect(messaging.RabbitConfig{
		Url:    cfg.RabbitUrl,
		VHost:  cfg.RabbitVHost,
		Prefix: cfg.TopicPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		log.Fatalf("Failed to open channel: %v", err)
	}
	if err := messaging.DefineTopic(ch, cfg.TopicPrefix, messaging.CatalogSnapshotTopic); err != nil {
		log.Fatalf("Failed to define topic: %v", err)
	}
	ch.Close()

	snapshot := messaging.CatalogSnapshot{
		Version:  *version,
		Products: products,
	}
	if snapshot.Version == "" {
		snapshot.Version = uuid.NewString()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := messaging.SendChange(ctx, conn, cfg.TopicPrefix, messaging.CatalogSnapshotTopic, snapshot); err != nil {
		log.Fatalf("Failed to publish snapshot: %v", err)
	}
	log.Printf("Published catalog snapshot %s with %d products", snapshot.Version, len(products))
}
