package main

import (
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Customer struct {
	ID        uint   `gorm:"primaryKey"`
	FirstName string `gorm:"not null"`
	LastName  string `gorm:"not null"`
	City      string
}

type Order struct {
	ID         uint   `gorm:"primaryKey"`
	Number     string `gorm:"uniqueIndex"`
	Status     string `gorm:"index"`
	Total      float64
	Notes      string
	PlacedAt   time.Time
	CustomerID uint
	Customer   Customer
}

// OpenStore opens the database, migrates the schema and seeds seedSize
// orders when the orders table is empty.
func OpenStore(dsn string, seedSize int) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}

	// A shared in-memory database lives as long as one connection does.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err = db.AutoMigrate(&Customer{}, &Order{}); err != nil {
		return nil, fmt.Errorf("cannot migrate schema: %w", err)
	}

	if err = seed(db, seedSize); err != nil {
		return nil, fmt.Errorf("cannot seed database: %w", err)
	}

	return db, nil
}

var _customers = []Customer{
	{FirstName: "Alice", LastName: "Johnson", City: "New York"},
	{FirstName: "Bob", LastName: "Smith", City: "Los Angeles"},
	{FirstName: "Charlie", LastName: "Brown", City: "Chicago"},
	{FirstName: "Diana", LastName: "Prince", City: "Miami"},
	{FirstName: "Eve", LastName: "Wilson", City: "Seattle"},
	{FirstName: "Frank", LastName: "Miller", City: "Boston"},
}

var _statuses = []string{"open", "paid", "shipped"}

func seed(db *gorm.DB, size int) error {
	var count int64
	if err := db.Model(&Order{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 || size == 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		customers := make([]Customer, len(_customers))
		copy(customers, _customers)
		if err := tx.Create(&customers).Error; err != nil {
			return err
		}

		start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
		orders := make([]Order, 0, size)
		for i := 0; i < size; i++ {
			orders = append(orders, Order{
				Number:     fmt.Sprintf("SO-%05d", 1000+i),
				Status:     _statuses[i%len(_statuses)],
				Total:      float64((i*37)%500) + 0.99,
				PlacedAt:   start.Add(time.Duration(i) * 7 * time.Hour),
				CustomerID: customers[(i*5)%len(customers)].ID,
			})
		}

		return tx.CreateInBatches(&orders, 100).Error
	})
}
