package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/serdvr66/orderQPro/entity"
)

// OpenSessionDB opens (and migrates) the local sqlite database that holds
// the persisted session. It is the only durable state this client owns.
func OpenSessionDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entity.StoredSession{}, &entity.Device{}); err != nil {
		return nil, err
	}
	return db, nil
}
