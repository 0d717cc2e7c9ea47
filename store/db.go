package store

import (
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"

	"studenthub/config"
)

// Open connects to MySQL and bounds the connection pool. Excess
// concurrent requests wait on the pool; there is no queue limit.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dsnCfg := mysql.NewConfig()
	dsnCfg.User = cfg.DBUser
	dsnCfg.Passwd = cfg.DBPassword
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	dsnCfg.DBName = cfg.DBName

	db, err := gorm.Open(gormmysql.Open(dsnCfg.FormatDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)

	return db, nil
}
