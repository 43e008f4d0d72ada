package database

import (
	"fmt"
	"log"

	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/config"
	"github.com/ogooluwanick/pulse-training-platform-sub001/internal/repository"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN 根据驱动拼接连接串
func DSN(cfg *config.DatabaseConfig) string {
	if cfg.Driver == config.DriverPostgres {
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)
}

// InitDB 关系型存储（mysql / postgres），启动时自动迁移作业表
func InitDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverMySQL:
		dialector = mysql.Open(DSN(cfg))
	case config.DriverPostgres:
		dialector = postgres.Open(DSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", cfg.Driver)
	}

	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := db.AutoMigrate(&repository.AssignmentRecord{}); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")
	return db, nil
}
