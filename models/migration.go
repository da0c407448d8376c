package models

import (
	"log"

	"bitbucket.org/mmdatafocus/spaces_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Customer{},
		&Space{},
		&Lease{},
		&Payment{},
		&Expense{},
		&User{},
	)
	if err != nil {
		log.Fatal(err)
	}
}
