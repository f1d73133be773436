package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"merchant-dashboard-backend/database"
	"merchant-dashboard-backend/utils"
)

// Writes the storefront QR code of a demo store to a PNG file:
//
//	go run ./cmd -store store-1 -size 512
func main() {
	storeID := flag.String("store", "store-1", "store id to encode")
	size := flag.Int("size", utils.DefaultQRSize, "image size in pixels")
	out := flag.String("out", "", "output file (default <store-slug>-qr.png)")
	flag.Parse()

	name := *storeID
	catalog := database.NewCatalog(database.DefaultSeed(time.Now()))
	if store, ok := catalog.GetStore(*storeID); ok {
		name = store.Name
	} else {
		log.Printf("Warning: store %s is not in the demo data, encoding it anyway", *storeID)
	}

	png, err := utils.GenerateStoreQR(*storeID, *size)
	if err != nil {
		log.Fatal("Failed to generate QR code:", err)
	}

	path := *out
	if path == "" {
		path = utils.GenerateSlug(name) + "-qr.png"
	}
	if err := os.WriteFile(path, png, 0o644); err != nil {
		log.Fatal("Failed to write QR code:", err)
	}

	fmt.Println("Store QR code generated:")
	fmt.Println("================================================")
	fmt.Println("Payload:", utils.StoreQRPayload(*storeID))
	fmt.Println("File:   ", path)
	fmt.Println("Hosted: ", utils.StoreQRServiceURL(*storeID))
}
