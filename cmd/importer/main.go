package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"intown-api/internal/config"

	"github.com/jackc/pgx/v5"
)

type ShopRecord struct {
	ID       string
	Name     string
	Category string
	Address  string
	Phone    string
	ImageURL string
	Price    float64
	Savings  float64
	Lat      float64
	Lon      float64
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure tables exist
	err = createTablesIfNotExist(conn)
	if err != nil {
		fmt.Printf("Error creating tables: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = insertRecords(conn, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(records))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

// CSV columns: id, name, category, address, phone, image_url, price,
// savings, latitude, longitude.
func parseCSV(filePath string) ([]ShopRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []ShopRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 10 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 10 columns", len(record))
		}

		price, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid price: %s", record[6])
		}

		savings, err := strconv.ParseFloat(record[7], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid savings: %s", record[7])
		}

		lat, err := strconv.ParseFloat(record[8], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[8])
		}

		lon, err := strconv.ParseFloat(record[9], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[9])
		}

		shop := ShopRecord{
			ID:       record[0],
			Name:     record[1],
			Category: record[2],
			Address:  record[3],
			Phone:    record[4],
			ImageURL: record[5],
			Price:    price,
			Savings:  savings,
			Lat:      lat,
			Lon:      lon,
		}

		records = append(records, shop)
	}

	return records, nil
}

func createTablesIfNotExist(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS shops (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		category VARCHAR(255),
		address VARCHAR(512),
		phone VARCHAR(32),
		image_url VARCHAR(512),
		price DOUBLE PRECISION,
		savings DOUBLE PRECISION,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS shops_geom_idx ON shops USING GIST (geom);
	CREATE TABLE IF NOT EXISTS plans (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price_per_month DOUBLE PRECISION NOT NULL,
		benefits TEXT[],
		savings DOUBLE PRECISION
	);
	CREATE TABLE IF NOT EXISTS categories (
		id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		icon VARCHAR(64)
	);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertRecords(conn *pgx.Conn, records []ShopRecord) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"shops"},
		[]string{"id", "name", "category", "address", "phone", "image_url", "price", "savings", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", r.Lon, r.Lat) // PostGIS format: lon lat
			return []interface{}{r.ID, r.Name, r.Category, r.Address, r.Phone, r.ImageURL, r.Price, r.Savings, geom}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM shops").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Check a sample geom
	var geom string
	err = conn.QueryRow(context.Background(), "SELECT ST_AsText(geom) FROM shops LIMIT 1").Scan(&geom)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	fmt.Printf("Sample geom: %s\n", geom)
	return nil
}
