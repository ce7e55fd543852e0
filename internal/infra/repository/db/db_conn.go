package db

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ConnConfig struct {
	DbName       string
	Host         string
	Port         string
	User         string
	Pas          string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	Verbose      bool
}

func GetDbConn(cf ConnConfig) (*gorm.DB, error) {
	if cf.SSLMode == "" {
		cf.SSLMode = "disable"
	}
	// 資料來源名稱 (DSN)
	dsn := fmt.Sprintf("user=%s password=%s host=%s port=%s dbname=%s sslmode=%s", cf.User, cf.Pas, cf.Host, cf.Port, cf.DbName, cf.SSLMode)

	logLevel := logger.Warn
	if cf.Verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if cf.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cf.MaxOpenConns)
	}
	if cf.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cf.MaxIdleConns)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	return db, nil
}
